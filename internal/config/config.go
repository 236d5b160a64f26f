package config

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	PublicKeyHex string `env:"DISCORD_PUBLIC_KEY,required"`
	AppID        string `env:"DISCORD_APP_ID"`
	BotToken     string `env:"DISCORD_BOT_TOKEN"`
	DiscordAPI   string `env:"DISCORD_API_URL" envDefault:"https://discord.com/api/v10"`

	MWAPIKey      string `env:"MW_API_KEY,required"`
	DictionaryURL string `env:"DICTIONARY_URL" envDefault:"https://dictionaryapi.com/api/v3/references/collegiate/json"`
	SiteURL       string `env:"SITE_URL" envDefault:"https://www.merriam-webster.com"`

	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"15s"`

	Port     string `env:"PORT" envDefault:"10000"`
	DataDir  string `env:"DATA_DIR" envDefault:"."`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// PublicKey is decoded from PublicKeyHex by Load.
	PublicKey ed25519.PublicKey
}

func Load() (*Config, error) {
	// .env is optional; env vars may already be set in production
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	key, err := ParsePublicKey(cfg.PublicKeyHex)
	if err != nil {
		return nil, fmt.Errorf("DISCORD_PUBLIC_KEY: %w", err)
	}
	cfg.PublicKey = key

	cfg.DiscordAPI = strings.TrimRight(cfg.DiscordAPI, "/")
	cfg.DictionaryURL = strings.TrimRight(cfg.DictionaryURL, "/")
	cfg.SiteURL = strings.TrimRight(cfg.SiteURL, "/")

	return &cfg, nil
}

// CanRegister reports whether the command surface can be pushed to the platform.
func (c *Config) CanRegister() bool {
	return c.AppID != "" && c.BotToken != ""
}

// ParsePublicKey decodes a hex encoded ed25519 public key.
func ParsePublicKey(s string) (ed25519.PublicKey, error) {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("decoding hex: %w", err)
	}
	if len(b) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("invalid ed25519 public key length %d", len(b))
	}
	return ed25519.PublicKey(b), nil
}
