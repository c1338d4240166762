package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"helpcenter/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// One connection keeps the in-memory database shared and serializes writers.
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, conn.AutoMigrate(
		&models.ArticleModel{},
		&models.GuideModel{},
		&models.VideoModel{},
		&models.SequenceCounterModel{},
		&models.SupportTicketModel{},
		&models.SupportMessageModel{},
		&models.AddressBookModel{},
		&models.OnboardingProgressModel{},
	))
	return conn
}
