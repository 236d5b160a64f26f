package define

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/lojasmm/definebot/internal/discord"
	"github.com/lojasmm/definebot/internal/store"
)

type CommandRegistrar interface {
	AppID() string
	RegisterCommands(ctx context.Context, cmds []discord.ApplicationCommand) error
}

type RegistrationLedger interface {
	RecordRegistration(r store.Registration) error
	LastRegistration(appID string) (*store.Registration, error)
}

// Register pushes the command surface once and records the outcome. Failures
// are logged and returned; callers run it off the serving path.
func Register(ctx context.Context, reg CommandRegistrar, ledger RegistrationLedger, log *slog.Logger) error {
	cmds := []discord.ApplicationCommand{Command()}
	fp := fingerprint(cmds)
	appID := reg.AppID()

	last, err := ledger.LastRegistration(appID)
	if err != nil {
		log.Warn("register: reading ledger", "error", err)
	}
	if last != nil && last.OK && last.Fingerprint == fp {
		log.Info("register: command surface unchanged", "since", last.At)
	}

	rec := store.Registration{
		AppID:       appID,
		Fingerprint: fp,
		At:          time.Now().UTC(),
	}
	for _, c := range cmds {
		rec.Commands = append(rec.Commands, c.Name)
	}

	regErr := reg.RegisterCommands(ctx, cmds)
	if regErr != nil {
		rec.Error = regErr.Error()
		log.Error("register: command error", "error", regErr)
	} else {
		rec.OK = true
		log.Info("register: command set", "commands", rec.Commands)
	}

	if err := ledger.RecordRegistration(rec); err != nil {
		log.Warn("register: writing ledger", "error", err)
	}
	return regErr
}

func fingerprint(cmds []discord.ApplicationCommand) string {
	data, _ := json.Marshal(cmds)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
