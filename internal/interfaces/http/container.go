package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"helpcenter/internal/application/notification"
	"helpcenter/internal/domain/shared/events"
	"helpcenter/internal/domain/ticket"
	"helpcenter/internal/infrastructure/auth"
	"helpcenter/internal/infrastructure/config"
	"helpcenter/internal/infrastructure/email"
	"helpcenter/internal/infrastructure/permission"
	"helpcenter/internal/infrastructure/ratelimit"
	"helpcenter/internal/interfaces/http/middleware"
	"helpcenter/internal/shared/biztime"
	"helpcenter/internal/shared/db"
	"helpcenter/internal/shared/logger"
	"helpcenter/internal/shared/services/markdown"
)

// Container holds all infrastructure components, repositories, use cases and
// handlers. It wires everything together and provides Shutdown() for
// graceful termination.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client // nil when redis is disabled or unreachable
	clock  biztime.Clock

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	apiRateLimiter       *middleware.RateLimiter
	guestRateLimiter     *middleware.RateLimiter

	// Infrastructure services
	jwtSvc       *auth.JWTService
	enforcer     *permission.Enforcer
	limiter      ratelimit.RateLimiter
	txManager    *db.TransactionManager
	counterStore ticket.CounterStore
	numbers      *ticket.NumberGenerator
	renderer     markdown.Renderer
	emailService *email.SMTPEmailService

	// Events
	dispatcher *events.InMemoryEventDispatcher
	notifier   *notification.TicketNotifier
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(gdb *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     gdb,
		cfg:    cfg,
		log:    log,
		clock:  biztime.SystemClock,
	}

	// Section 1: Infrastructure - Redis, Repositories, Auth, Rate limiting
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Events - Dispatcher and ticket notifications
	if err := c.initEvents(); err != nil {
		return nil, err
	}

	// Section 3: Content - Articles, Guides, Videos
	c.initContent()

	// Section 4: Support - Ticket numbering and ticket use cases
	c.initSupport()

	// Section 5: Account - Address book and onboarding progress
	c.initAccount()

	// Section 6: Handlers
	c.initHandlers()

	return c, nil
}

// Engine returns the gin engine. Routes are registered by SetupRoutes.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown drains the event dispatcher and closes the redis client.
func (c *Container) Shutdown() {
	if c.dispatcher != nil {
		if err := c.dispatcher.Stop(); err != nil {
			c.log.Errorw("failed to stop event dispatcher", "error", err)
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close redis client", "error", err)
		}
	}
}
