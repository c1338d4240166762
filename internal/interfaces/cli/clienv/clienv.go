// Package clienv prepares the process environment shared by every command.
package clienv

import (
	"fmt"
	"os"

	"helpcenter/internal/infrastructure/config"
	"helpcenter/internal/infrastructure/database"
	"helpcenter/internal/shared/biztime"
	"helpcenter/internal/shared/logger"
)

// ResolveEnv lets the ENV variable override the --env flag.
func ResolveEnv(flag string) string {
	if envVar := os.Getenv("ENV"); envVar != "" {
		return envVar
	}
	return flag
}

// GinMode maps a deployment environment name onto a gin mode.
func GinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}

// Init loads configuration, then sets up logging, the business timezone and
// the database connection. Callers own database.Close.
func Init(env string) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = GinMode(env)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Timezone.Business); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}
