package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"helpcenter/internal/shared/constants"
	"helpcenter/internal/shared/logger"
)

// rbacModel matches request paths with keyMatch2 so that ":param" and "*"
// segments in a policy cover whole route families.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = (g(r.sub, p.sub) || r.sub == p.sub) && keyMatch2(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

// DefaultPolicies grants each role the route families it may call.
// Public help-center reads are not listed; they bypass the enforcer.
var DefaultPolicies = [][]string{
	{constants.RoleAdmin, "/api/v1/admin/*", "*"},
	{constants.RoleAdmin, "/api/v1/tickets", "GET"},
	{constants.RoleAdmin, "/api/v1/tickets/*", "*"},

	{constants.RoleGuest, "/api/v1/tickets/*", "GET"},
	{constants.RoleGuest, "/api/v1/tickets/:number/replies", "POST"},

	{constants.RoleCustomer, "/api/v1/tickets", "GET"},
	{constants.RoleCustomer, "/api/v1/tickets/*", "GET"},
	{constants.RoleCustomer, "/api/v1/tickets/:number/replies", "POST"},
	{constants.RoleCustomer, "/api/v1/address-book", "GET"},
	{constants.RoleCustomer, "/api/v1/address-book/*", "*"},

	{constants.RoleVendor, "/api/v1/tickets", "GET"},
	{constants.RoleVendor, "/api/v1/tickets/*", "GET"},
	{constants.RoleVendor, "/api/v1/tickets/:number/replies", "POST"},
	{constants.RoleVendor, "/api/v1/address-book", "GET"},
	{constants.RoleVendor, "/api/v1/address-book/*", "*"},
	{constants.RoleVendor, "/api/v1/onboarding/*", "*"},
}

// Enforcer answers role/path/method questions against policies stored
// through the gorm adapter.
type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

func (e *Enforcer) Enforce(role, path, method string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(role, path, method)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role, "path", path, "method", method)
		return false, fmt.Errorf("permission check failed: %w", err)
	}

	return allowed, nil
}

// SeedDefaultPolicies adds any missing entry of DefaultPolicies and persists
// the result. Existing policies are left alone.
func (e *Enforcer) SeedDefaultPolicies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	added := 0
	for _, p := range DefaultPolicies {
		ok, err := e.enforcer.AddPolicy(p[0], p[1], p[2])
		if err != nil {
			e.logger.Errorw("failed to add policy", "error", err, "role", p[0], "path", p[1], "method", p[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p[0], p[1], p[2], err)
		}
		if ok {
			added++
		}
	}

	if added > 0 {
		e.logger.Infow("default permissions seeded", "added", added)
	}
	return nil
}

func (e *Enforcer) AddPolicy(role, path, method string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.AddPolicy(role, path, method); err != nil {
		e.logger.Errorw("failed to add policy", "error", err)
		return fmt.Errorf("failed to add policy: %w", err)
	}
	return nil
}

func (e *Enforcer) RemovePolicy(role, path, method string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.RemovePolicy(role, path, method); err != nil {
		e.logger.Errorw("failed to remove policy", "error", err)
		return fmt.Errorf("failed to remove policy: %w", err)
	}
	return nil
}

// Policies returns the stored policy rules as role, path, method triples.
func (e *Enforcer) Policies() ([][]string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	rules, err := e.enforcer.GetPolicy()
	if err != nil {
		return nil, fmt.Errorf("failed to list policies: %w", err)
	}
	return rules, nil
}

func (e *Enforcer) LoadPolicy() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}

	e.logger.Info("policy reloaded successfully")
	return nil
}
