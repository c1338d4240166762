package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpcenter/internal/shared/config"
)

func TestOpen_SQLiteInMemory(t *testing.T) {
	conn, err := Open(&config.DatabaseConfig{Driver: "sqlite", Database: ":memory:"})
	require.NoError(t, err)

	var one int
	require.NoError(t, conn.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Close())
}

func TestOpen_RejectsUnknownDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")
}
