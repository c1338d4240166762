package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"helpcenter/internal/infrastructure/database"
	"helpcenter/internal/infrastructure/migration"
	"helpcenter/internal/interfaces/cli/clienv"
	"helpcenter/internal/shared/logger"
)

var (
	env     string
	name    string
	dialect string
	steps   int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create an empty SQL migration for one dialect under internal/infrastructure/migration/scripts.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.Flags().StringVarP(&dialect, "dialect", "d", "mysql", "Script dialect directory (mysql, postgres, sqlite3)")
	cmd.MarkFlagRequired("name")

	return cmd
}

func initEnv() (*migration.GooseStrategy, logger.Interface, error) {
	env = clienv.ResolveEnv(env)
	_, log, err := clienv.Init(env)
	if err != nil {
		return nil, nil, err
	}
	return migration.NewGooseStrategy(log), log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	strategy, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", env)

	if err := strategy.Migrate(database.Get()); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Info("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	strategy, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running down migrations", "environment", env, "steps", steps)

	if err := strategy.MigrateDown(database.Get(), steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Info("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	strategy, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	version, err := strategy.GetVersion(database.Get())
	if err != nil {
		log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}
	latest, err := strategy.LatestVersion(database.Get())
	if err != nil {
		return fmt.Errorf("failed to get latest migration version: %w", err)
	}

	fmt.Printf("\nMigration Status:\n")
	fmt.Printf("  Environment:     %s\n", env)
	fmt.Printf("  Current Version: %d\n", version)
	fmt.Printf("  Latest Version:  %d\n", latest)

	if err := strategy.Status(database.Get()); err != nil {
		log.Errorw("failed to get detailed status", "error", err)
		return fmt.Errorf("failed to get detailed status: %w", err)
	}

	return nil
}

// runCreate only writes a file, so it does not connect to the database.
func runCreate(cmd *cobra.Command, args []string) error {
	switch dialect {
	case "mysql", "postgres", "sqlite3":
	default:
		return fmt.Errorf("unsupported dialect %q", dialect)
	}

	dir, err := filepath.Abs(filepath.Join("internal", "infrastructure", "migration", "scripts", dialect))
	if err != nil {
		return fmt.Errorf("failed to resolve scripts path: %w", err)
	}

	strategy := migration.NewGooseStrategy(logger.NewLogger())
	if err := strategy.Create(dir, name); err != nil {
		return err
	}

	fmt.Printf("Migration '%s' created in %s\n", name, dir)
	return nil
}
