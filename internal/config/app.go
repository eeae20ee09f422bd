package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/lapakbot/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"LAPAK_RUNTIME_PATH" envDefault:".lapakbot"`

	// Inactivity window for guided admin commands.
	SessionTimeout time.Duration `env:"LAPAK_SESSION_TIMEOUT" envDefault:"10m"`

	// Transport Flags
	EnableTelegram bool `env:"ENABLE_TELEGRAM" envDefault:"false"`
	EnableCLI      bool `env:"ENABLE_CLI" envDefault:"true"`

	// Generative fallback is optional; the bot runs fully offline
	// without it.
	EnableFallback bool `env:"LAPAK_ENABLE_FALLBACK" envDefault:"false"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "lapakbot.db")
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}
