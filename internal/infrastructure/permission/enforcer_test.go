package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"helpcenter/internal/shared/constants"
	"helpcenter/internal/shared/logger"
)

func newTestEnforcer(t *testing.T) (*Enforcer, *gorm.DB) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	e, err := NewEnforcer(gdb, logger.NewNop())
	require.NoError(t, err)
	require.NoError(t, e.SeedDefaultPolicies())
	return e, gdb
}

func TestEnforcer_DefaultPolicies(t *testing.T) {
	e, _ := newTestEnforcer(t)

	tests := []struct {
		role, path, method string
		allowed            bool
	}{
		{constants.RoleAdmin, "/api/v1/admin/articles/12/publish", "POST", true},
		{constants.RoleAdmin, "/api/v1/tickets/SUP-2024-000042", "GET", true},
		{constants.RoleCustomer, "/api/v1/admin/articles", "POST", false},
		{constants.RoleCustomer, "/api/v1/tickets/SUP-2024-000042/replies", "POST", true},
		{constants.RoleCustomer, "/api/v1/tickets/SUP-2024-000042", "GET", true},
		{constants.RoleCustomer, "/api/v1/address-book/entries", "POST", true},
		{constants.RoleCustomer, "/api/v1/onboarding/guides/store-setup", "PUT", false},
		{constants.RoleVendor, "/api/v1/onboarding/guides/store-setup", "PUT", true},
		{constants.RoleGuest, "/api/v1/address-book", "GET", false},
		{constants.RoleGuest, "/api/v1/tickets", "GET", false},
		{constants.RoleGuest, "/api/v1/tickets/SUP-2024-000042", "GET", true},
		{constants.RoleGuest, "/api/v1/tickets/SUP-2024-000042/status", "PATCH", false},
		{constants.RoleCustomer, "/api/v1/tickets/SUP-2024-000042/status", "PATCH", false},
		{constants.RoleAdmin, "/api/v1/tickets/SUP-2024-000042/status", "PATCH", true},
	}

	for _, tt := range tests {
		t.Run(tt.role+" "+tt.method+" "+tt.path, func(t *testing.T) {
			allowed, err := e.Enforce(tt.role, tt.path, tt.method)
			require.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}
}

func TestEnforcer_SeedIsIdempotentAndPersisted(t *testing.T) {
	e, gdb := newTestEnforcer(t)
	require.NoError(t, e.SeedDefaultPolicies())

	var count int64
	require.NoError(t, gdb.Table("casbin_rule").Count(&count).Error)
	assert.Equal(t, int64(len(DefaultPolicies)), count)

	reloaded, err := NewEnforcer(gdb, logger.NewNop())
	require.NoError(t, err)
	allowed, err := reloaded.Enforce(constants.RoleAdmin, "/api/v1/admin/videos", "DELETE")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestEnforcer_Policies(t *testing.T) {
	e, _ := newTestEnforcer(t)

	rules, err := e.Policies()
	require.NoError(t, err)
	assert.Len(t, rules, len(DefaultPolicies))
	assert.Contains(t, rules, []string{constants.RoleVendor, "/api/v1/onboarding/*", "*"})
}

func TestEnforcer_AddAndRemovePolicy(t *testing.T) {
	e, _ := newTestEnforcer(t)

	require.NoError(t, e.AddPolicy(constants.RoleCustomer, "/api/v1/onboarding/*", "GET"))
	allowed, err := e.Enforce(constants.RoleCustomer, "/api/v1/onboarding/guides/store-setup", "GET")
	require.NoError(t, err)
	assert.True(t, allowed)

	require.NoError(t, e.RemovePolicy(constants.RoleCustomer, "/api/v1/onboarding/*", "GET"))
	allowed, err = e.Enforce(constants.RoleCustomer, "/api/v1/onboarding/guides/store-setup", "GET")
	require.NoError(t, err)
	assert.False(t, allowed)
}
