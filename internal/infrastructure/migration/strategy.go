package migration

import (
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"helpcenter/internal/shared/logger"
)

//go:embed scripts
var scripts embed.FS

// goose keeps its dialect and base filesystem in package state.
var gooseMu sync.Mutex

// Strategy defines the interface for different migration strategies
type Strategy interface {
	// Migrate brings the schema up to date
	Migrate(db *gorm.DB) error
	// GetName returns the strategy name
	GetName() string
}

// GooseStrategy runs the versioned SQL scripts embedded under scripts/<dialect>.
type GooseStrategy struct {
	logger logger.Interface
}

func NewGooseStrategy(log logger.Interface) *GooseStrategy {
	return &GooseStrategy{logger: log.With("component", "migration.goose")}
}

// gooseDialect maps a gorm dialector name to the goose dialect and script directory.
func gooseDialect(db *gorm.DB) (string, error) {
	switch name := db.Dialector.Name(); name {
	case "mysql":
		return "mysql", nil
	case "postgres":
		return "postgres", nil
	case "sqlite", "sqlite3":
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unsupported migration dialect %q", name)
	}
}

// with prepares goose for db and runs fn under the package lock.
func (s *GooseStrategy) with(db *gorm.DB, fn func(dir string) error) error {
	dialect, err := gooseDialect(db)
	if err != nil {
		return err
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(scripts)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return fn("scripts/" + dialect)
}

func (s *GooseStrategy) Migrate(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	return s.with(db, func(dir string) error {
		currentVersion, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			s.logger.Errorw("failed to get current version", "error", err)
			return fmt.Errorf("failed to get current version: %w", err)
		}

		s.logger.Infow("starting goose migration", "dir", dir, "version", currentVersion)

		if err := goose.Up(sqlDB, dir); err != nil {
			s.logger.Errorw("migration failed", "error", err)
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		finalVersion, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get final version: %w", err)
		}

		s.logger.Infow("migration completed successfully",
			"from_version", currentVersion,
			"to_version", finalVersion)
		return nil
	})
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	s.logger.Infow("starting down migration", "steps", steps)

	return s.with(db, func(dir string) error {
		for i := 0; i < steps; i++ {
			if err := goose.Down(sqlDB, dir); err != nil {
				s.logger.Errorw("down migration failed", "error", err)
				return fmt.Errorf("failed to run down migration: %w", err)
			}
		}
		s.logger.Infow("down migration completed successfully")
		return nil
	})
}

func (s *GooseStrategy) GetVersion(db *gorm.DB) (int64, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	var version int64
	err = s.with(db, func(string) error {
		v, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}
		version = v
		return nil
	})
	return version, err
}

// LatestVersion reports the highest script version embedded for db's dialect.
func (s *GooseStrategy) LatestVersion(db *gorm.DB) (int64, error) {
	var latest int64
	err := s.with(db, func(dir string) error {
		migrations, err := goose.CollectMigrations(dir, 0, goose.MaxVersion)
		if err != nil {
			return fmt.Errorf("failed to collect migrations: %w", err)
		}
		last, err := migrations.Last()
		if err != nil {
			return fmt.Errorf("no migrations found: %w", err)
		}
		latest = last.Version
		return nil
	})
	return latest, err
}

func (s *GooseStrategy) Status(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	return s.with(db, func(dir string) error {
		if err := goose.Status(sqlDB, dir); err != nil {
			return fmt.Errorf("failed to get status: %w", err)
		}
		return nil
	})
}

// Create writes a new SQL migration into dir on disk. Embedded scripts
// are picked up on the next build.
func (s *GooseStrategy) Create(dir, name string) error {
	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	s.logger.Infow("migration created successfully", "name", name, "dir", dir)
	return nil
}
