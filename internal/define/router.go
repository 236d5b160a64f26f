package define

import (
	"context"
	"errors"
	"log/slog"

	"github.com/lojasmm/definebot/internal/discord"
	"github.com/lojasmm/definebot/internal/mw"
	"github.com/lojasmm/definebot/internal/observability"
	"github.com/lojasmm/definebot/internal/token"
)

const (
	msgNoTerm         = "You didn't enter a term."
	msgFailure        = "Something went wrong, please try again later."
	msgUnknownCommand = "Unknown command."
	msgPopularPrompt  = "Type your query, or select a current top Merriam-Webster lookup:"

	maxPopularChoices = 24
	maxChoices        = 25
)

type Suggester interface {
	Autocomplete(ctx context.Context, prefix string) ([]string, error)
}

type PopularSource interface {
	PopularTerms(ctx context.Context) ([]string, error)
}

// Router answers every verified interaction with exactly one response.
type Router struct {
	builder   *Builder
	suggester Suggester
	popular   PopularSource
	log       *slog.Logger
}

func NewRouter(builder *Builder, suggester Suggester, popular PopularSource, log *slog.Logger) *Router {
	return &Router{builder: builder, suggester: suggester, popular: popular, log: log}
}

func (r *Router) Handle(ctx context.Context, in *discord.Interaction) *discord.InteractionResponse {
	switch in.Type {
	case discord.InteractionPing:
		return discord.Pong()
	case discord.InteractionApplicationCommand:
		return r.handleCommand(ctx, in)
	case discord.InteractionMessageComponent:
		return r.handleComponent(ctx, in)
	case discord.InteractionAutocomplete:
		return r.handleAutocomplete(ctx, in)
	default:
		return discord.EphemeralMessage(msgUnknownCommand)
	}
}

func (r *Router) handleCommand(ctx context.Context, in *discord.Interaction) *discord.InteractionResponse {
	if in.Data.Name != CommandName {
		return discord.EphemeralMessage(msgUnknownCommand)
	}

	term := in.Data.StringOption(OptionTerm)
	if term == "" {
		return discord.EphemeralMessage(msgNoTerm)
	}

	vis := VisibilityPublic
	if in.Data.BoolOption(OptionHide) {
		vis = VisibilityEphemeral
	}

	msg, err := r.builder.Build(ctx, term, 0, vis)
	if err != nil {
		r.logFailure("command", in, err, "term", term)
		return discord.EphemeralMessage(msgFailure)
	}
	return discord.Message(msg)
}

func (r *Router) handleComponent(ctx context.Context, in *discord.Interaction) *discord.InteractionResponse {
	tok, err := token.FromComponent(in.Data.CustomID, in.Data.Values)
	if err != nil {
		r.logFailure("component", in, err, "custom_id", in.Data.CustomID)
		return discord.EphemeralMessage(msgFailure)
	}

	msg, err := r.builder.Build(ctx, tok.Term, tok.Page, VisibilityPreserve)
	if err != nil {
		r.logFailure("component", in, err, "term", tok.Term, "page", tok.Page, "action", string(tok.Action))
		return discord.EphemeralMessage(msgFailure)
	}
	return discord.Update(msg)
}

func (r *Router) handleAutocomplete(ctx context.Context, in *discord.Interaction) *discord.InteractionResponse {
	query := in.Data.StringOption(OptionTerm)

	if query == "" {
		words, err := r.popular.PopularTerms(ctx)
		if err != nil {
			r.logFailure("autocomplete", in, err)
			words = nil
		}
		choices := []discord.Choice{{Name: msgPopularPrompt, Value: ""}}
		return discord.Autocomplete(append(choices, toChoices(words, maxPopularChoices)...))
	}

	words, err := r.suggester.Autocomplete(ctx, query)
	if err != nil {
		r.logFailure("autocomplete", in, err, "query", query)
		return discord.Autocomplete(nil)
	}
	return discord.Autocomplete(toChoices(words, maxChoices))
}

func toChoices(words []string, limit int) []discord.Choice {
	if len(words) > limit {
		words = words[:limit]
	}
	choices := make([]discord.Choice, 0, len(words))
	for _, w := range words {
		choices = append(choices, discord.Choice{Name: truncate(w, MaxLabelLength), Value: w})
	}
	return choices
}

func (r *Router) logFailure(kind string, in *discord.Interaction, err error, attrs ...any) {
	upstream := "none"
	var upErr *mw.Error
	if errors.As(err, &upErr) {
		upstream = string(upErr.Kind)
		observability.UpstreamErrors.Add(upErr.Endpoint, 1)
	}
	args := append([]any{"interaction", kind, "interaction_id", in.ID, "upstream", upstream, "error", err}, attrs...)
	r.log.Error("define: interaction failed", args...)
}
