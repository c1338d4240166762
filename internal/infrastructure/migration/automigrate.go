package migration

import (
	"fmt"

	"gorm.io/gorm"

	"helpcenter/internal/infrastructure/persistence/models"
	"helpcenter/internal/shared/logger"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ArticleModel{},
		&models.GuideModel{},
		&models.VideoModel{},
		&models.SequenceCounterModel{},
		&models.SupportTicketModel{},
		&models.SupportMessageModel{},
		&models.AddressBookModel{},
		&models.OnboardingProgressModel{},
	}
}

// GormAutoMigrateStrategy derives the schema from the persistence models.
// Used for local development and by --auto-migrate.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{logger: log.With("component", "migration.automigrate")}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	models := AutoMigrateModels()
	s.logger.Infow("starting gorm auto migration", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	s.logger.Infow("auto migration completed successfully")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
