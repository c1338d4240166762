package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"helpcenter/internal/infrastructure/database"
	"helpcenter/internal/infrastructure/migration"
	"helpcenter/internal/interfaces/cli/clienv"
	httpRouter "helpcenter/internal/interfaces/http"
	"helpcenter/internal/shared/logger"
)

var (
	env                string
	autoMigrate        bool
	skipMigrationCheck bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the help center HTTP server with specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Apply pending database migrations on startup")
	cmd.Flags().BoolVar(&skipMigrationCheck, "skip-migration-check", false, "Skip migration status check on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	env = clienv.ResolveEnv(env)

	cfg, log, err := clienv.Init(env)
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("starting server",
		"environment", env,
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := handleMigrations(database.Get(), log); err != nil {
		return fmt.Errorf("migration handling failed: %w", err)
	}

	container, err := httpRouter.NewContainer(database.Get(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build application container: %w", err)
	}
	defer container.Shutdown()

	container.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      container.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infow("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		log.Errorw("failed to start server", "error", err)
		return err
	case <-quit:
	}

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Info("server exited gracefully")
	return nil
}

func handleMigrations(db *gorm.DB, log logger.Interface) error {
	strategy := migration.NewGooseStrategy(log)

	if autoMigrate {
		if env == "production" {
			log.Warn("auto-migration is enabled in production environment")
		}
		log.Info("running migrations")
		if err := strategy.Migrate(db); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		log.Info("migrations completed successfully")
		return nil
	}

	if skipMigrationCheck {
		log.Info("skipping migration check")
		return nil
	}

	current, err := strategy.GetVersion(db)
	if err != nil {
		log.Warnw("failed to check migration status", "error", err)
		return nil
	}
	latest, err := strategy.LatestVersion(db)
	if err != nil {
		log.Warnw("failed to read bundled migrations", "error", err)
		return nil
	}

	if current < latest {
		log.Warnw("database schema is behind, run `helpcenter migrate up`",
			"current_version", current,
			"latest_version", latest)
	} else {
		log.Infow("database schema is up to date", "version", current)
	}
	return nil
}
