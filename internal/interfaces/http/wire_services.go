package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	bookUsecases "helpcenter/internal/application/addressbook/usecases"
	contentdto "helpcenter/internal/application/content/dto"
	contentUsecases "helpcenter/internal/application/content/usecases"
	"helpcenter/internal/application/notification"
	onboardingUsecases "helpcenter/internal/application/onboarding/usecases"
	ticketUsecases "helpcenter/internal/application/ticket/usecases"
	"helpcenter/internal/domain/content"
	"helpcenter/internal/domain/shared/events"
	"helpcenter/internal/domain/ticket"
	"helpcenter/internal/infrastructure/auth"
	"helpcenter/internal/infrastructure/cache"
	"helpcenter/internal/infrastructure/config"
	"helpcenter/internal/infrastructure/email"
	"helpcenter/internal/infrastructure/permission"
	"helpcenter/internal/infrastructure/ratelimit"
	addressbookHandlers "helpcenter/internal/interfaces/http/handlers/addressbook"
	adminHandlers "helpcenter/internal/interfaces/http/handlers/admin"
	contentHandlers "helpcenter/internal/interfaces/http/handlers/content"
	onboardingHandlers "helpcenter/internal/interfaces/http/handlers/onboarding"
	ticketHandlers "helpcenter/internal/interfaces/http/handlers/ticket"
	"helpcenter/internal/interfaces/http/middleware"
	"helpcenter/internal/shared/db"
	"helpcenter/internal/shared/logger"
	"helpcenter/internal/shared/services/markdown"
)

const (
	eventBufferSize = 256

	apiRateLimit  = 300
	apiRateWindow = time.Minute
)

// ============================================================
// Section 1: Infrastructure - Redis, Repositories, Auth, Rate limiting
// ============================================================

func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	c.redis = initRedis(cfg, log)
	c.repos = newRepositories(c.db, log)
	c.txManager = db.NewTransactionManager(c.db)
	c.renderer = markdown.NewRenderer()

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)

	enforcer, err := permission.NewEnforcer(c.db, log)
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	if err := enforcer.SeedDefaultPolicies(); err != nil {
		return fmt.Errorf("failed to seed default policies: %w", err)
	}
	c.enforcer = enforcer
	c.permissionMiddleware = middleware.NewPermissionMiddleware(enforcer, log)

	if c.redis != nil {
		c.limiter = ratelimit.NewRedisRateLimiter(c.redis)
	} else {
		c.limiter = ratelimit.NewMemoryRateLimiter()
	}
	c.apiRateLimiter = middleware.NewRateLimiter(c.limiter,
		ratelimit.Policy{Limit: apiRateLimit, Window: apiRateWindow}, "api", log)
	c.guestRateLimiter = middleware.NewRateLimiter(c.limiter,
		ratelimit.Policy{
			Limit:  cfg.Support.GuestRateLimit,
			Window: time.Duration(cfg.Support.GuestRateWindowSeconds) * time.Second,
		}, "guest_ticket", log)

	return nil
}

// initRedis connects when redis is enabled. An unreachable server is logged
// and the in-process fallbacks are used instead.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	if !cfg.Redis.Enabled {
		log.Infow("redis disabled, using database counters and in-memory rate limiting")
		return nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warnw("failed to connect to Redis, falling back to in-process stores", "error", err, "addr", cfg.Redis.GetAddr())
		_ = redisClient.Close()
		return nil
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return redisClient
}

// ============================================================
// Section 2: Events - Dispatcher and ticket notifications
// ============================================================

func (c *Container) initEvents() error {
	c.dispatcher = events.NewInMemoryEventDispatcher(eventBufferSize, c.log.Named("events"))

	c.emailService = email.NewSMTPEmailService(email.SMTPConfig{
		Host:        c.cfg.Email.SMTPHost,
		Port:        c.cfg.Email.SMTPPort,
		Username:    c.cfg.Email.SMTPUser,
		Password:    c.cfg.Email.SMTPPassword,
		FromAddress: c.cfg.Email.FromAddress,
		FromName:    c.cfg.Email.FromName,
		BaseURL:     c.cfg.Server.BaseURL,
	})

	c.notifier = notification.NewTicketNotifier(c.emailService, c.cfg.Email.SupportInbox, c.log.Named("notifier"))
	if err := c.notifier.Register(c.dispatcher); err != nil {
		return fmt.Errorf("failed to register ticket notifier: %w", err)
	}

	if err := c.dispatcher.Start(); err != nil {
		return fmt.Errorf("failed to start event dispatcher: %w", err)
	}
	c.log.Infow("event dispatcher started")
	return nil
}

// ============================================================
// Section 3: Content - Articles, Guides, Videos
// ============================================================

func (c *Container) initContent() {
	if c.ucs == nil {
		c.ucs = &allUseCases{}
	}
	repos := c.repos
	log := c.log
	policy := content.NewPublicationPolicy(c.clock)

	articleSlugs := content.NewSlugAllocator(repos.articleRepo, c.clock)
	c.ucs.createArticleUC = contentUsecases.NewCreateArticleUseCase(repos.articleRepo, articleSlugs, policy, c.renderer, c.dispatcher, c.clock, log)
	c.ucs.updateArticleUC = contentUsecases.NewUpdateArticleUseCase(repos.articleRepo, articleSlugs, policy, c.renderer, c.dispatcher, c.clock, log)
	c.ucs.getArticleUC = contentUsecases.NewGetContentUseCase[*content.Article, *contentdto.ArticleDTO](content.KindArticle, repos.articleRepo, contentdto.ToArticleDTO, log)
	c.ucs.listArticlesUC = contentUsecases.NewListContentUseCase[*content.Article, *contentdto.ArticleDTO](content.KindArticle, repos.articleRepo, contentdto.ToArticleDTO, log)
	c.ucs.articlePublicationUC = contentUsecases.NewChangePublicationUseCase[*content.Article](content.KindArticle, repos.articleRepo, policy, c.dispatcher, c.clock, log)

	guideSlugs := content.NewSlugAllocator(repos.guideRepo, c.clock)
	c.ucs.createGuideUC = contentUsecases.NewCreateGuideUseCase(repos.guideRepo, guideSlugs, policy, c.dispatcher, c.clock, log)
	c.ucs.updateGuideUC = contentUsecases.NewUpdateGuideUseCase(repos.guideRepo, guideSlugs, policy, c.dispatcher, c.clock, log)
	c.ucs.getGuideUC = contentUsecases.NewGetContentUseCase[*content.Guide, *contentdto.GuideDTO](content.KindGuide, repos.guideRepo, contentdto.ToGuideDTO, log)
	c.ucs.listGuidesUC = contentUsecases.NewListContentUseCase[*content.Guide, *contentdto.GuideDTO](content.KindGuide, repos.guideRepo, contentdto.ToGuideDTO, log)
	c.ucs.guidePublicationUC = contentUsecases.NewChangePublicationUseCase[*content.Guide](content.KindGuide, repos.guideRepo, policy, c.dispatcher, c.clock, log)

	videoSlugs := content.NewSlugAllocator(repos.videoRepo, c.clock)
	c.ucs.createVideoUC = contentUsecases.NewCreateVideoUseCase(repos.videoRepo, videoSlugs, policy, c.dispatcher, c.clock, log)
	c.ucs.updateVideoUC = contentUsecases.NewUpdateVideoUseCase(repos.videoRepo, videoSlugs, policy, c.dispatcher, c.clock, log)
	c.ucs.getVideoUC = contentUsecases.NewGetContentUseCase[*content.Video, *contentdto.VideoDTO](content.KindVideo, repos.videoRepo, contentdto.ToVideoDTO, log)
	c.ucs.listVideosUC = contentUsecases.NewListContentUseCase[*content.Video, *contentdto.VideoDTO](content.KindVideo, repos.videoRepo, contentdto.ToVideoDTO, log)
	c.ucs.videoPublicationUC = contentUsecases.NewChangePublicationUseCase[*content.Video](content.KindVideo, repos.videoRepo, policy, c.dispatcher, c.clock, log)
}

// ============================================================
// Section 4: Support - Ticket numbering and ticket use cases
// ============================================================

func (c *Container) initSupport() {
	repos := c.repos
	log := c.log

	c.counterStore = c.newCounterStore()
	c.numbers = ticket.NewNumberGenerator(c.counterStore, c.clock)
	numbering := ticketUsecases.NumberingConfig{
		CounterName: c.cfg.Support.CounterName,
		Prefix:      c.cfg.Support.TicketPrefix,
	}

	c.ucs.createTicketUC = ticketUsecases.NewCreateTicketUseCase(repos.ticketRepo, c.numbers, numbering, c.dispatcher, c.clock, log)
	c.ucs.replyTicketUC = ticketUsecases.NewReplyTicketUseCase(repos.ticketRepo, repos.messageRepo, c.txManager, c.dispatcher, c.clock, log)
	c.ucs.changeStatusUC = ticketUsecases.NewChangeStatusUseCase(repos.ticketRepo, c.txManager, c.dispatcher, c.clock, log)
	c.ucs.changePriorityUC = ticketUsecases.NewChangePriorityUseCase(repos.ticketRepo, c.txManager, c.clock, log)
	c.ucs.getTicketUC = ticketUsecases.NewGetTicketUseCase(repos.ticketRepo, log)
	c.ucs.listTicketsUC = ticketUsecases.NewListTicketsUseCase(repos.ticketRepo, log)
}

// newCounterStore picks the ticket sequence backend. The redis counter is
// raised to the database value first so numbers never go backwards when a
// deployment moves from one store to the other.
func (c *Container) newCounterStore() ticket.CounterStore {
	if c.cfg.Support.CounterStore != "redis" {
		return c.repos.counterRepo
	}
	if c.redis == nil {
		c.log.Warnw("redis counter store requested but redis is unavailable, using database counter")
		return c.repos.counterRepo
	}

	name := c.cfg.Support.CounterName
	if name == "" {
		name = ticket.DefaultCounterName
	}

	store := cache.NewRedisCounterStore(c.redis)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	floor, err := c.repos.counterRepo.Current(ctx, name)
	if err != nil {
		c.log.Warnw("failed to read database counter, redis counter left as is", "error", err, "counter", name)
		return store
	}
	if _, err := store.RaiseFloor(ctx, name, floor); err != nil {
		c.log.Warnw("failed to raise redis counter floor", "error", err, "counter", name, "floor", floor)
	}
	return store
}

// ============================================================
// Section 5: Account - Address book and onboarding progress
// ============================================================

func (c *Container) initAccount() {
	repos := c.repos
	log := c.log

	c.ucs.getAddressBookUC = bookUsecases.NewGetAddressBookUseCase(repos.addressBookRepo, c.clock, log)
	c.ucs.addAddressUC = bookUsecases.NewAddAddressUseCase(repos.addressBookRepo, c.clock, log)
	c.ucs.updateAddressUC = bookUsecases.NewUpdateAddressUseCase(repos.addressBookRepo, c.clock, log)
	c.ucs.removeAddressUC = bookUsecases.NewRemoveAddressUseCase(repos.addressBookRepo, c.clock, log)

	c.ucs.getProgressUC = onboardingUsecases.NewGetProgressUseCase(repos.progressRepo, repos.guideRepo, log)
	c.ucs.listProgressUC = onboardingUsecases.NewListProgressUseCase(repos.progressRepo, repos.guideRepo, log)
	c.ucs.putProgressUC = onboardingUsecases.NewPutProgressUseCase(repos.progressRepo, repos.guideRepo, c.clock, log)
}

// ============================================================
// Section 6: Handlers
// ============================================================

func (c *Container) initHandlers() {
	ucs := c.ucs
	log := c.log

	c.hdlrs = &allHandlers{
		articleHandler: contentHandlers.NewArticleHandler(ucs.createArticleUC, ucs.updateArticleUC, log),
		guideHandler:   contentHandlers.NewGuideHandler(ucs.createGuideUC, ucs.updateGuideUC, log),
		videoHandler:   contentHandlers.NewVideoHandler(ucs.createVideoUC, ucs.updateVideoUC, log),
		articleLifecycle: contentHandlers.NewContentHandler[*contentdto.ArticleDTO](
			"article", ucs.getArticleUC, ucs.listArticlesUC, ucs.articlePublicationUC, log),
		guideLifecycle: contentHandlers.NewContentHandler[*contentdto.GuideDTO](
			"guide", ucs.getGuideUC, ucs.listGuidesUC, ucs.guidePublicationUC, log),
		videoLifecycle: contentHandlers.NewContentHandler[*contentdto.VideoDTO](
			"video", ucs.getVideoUC, ucs.listVideosUC, ucs.videoPublicationUC, log),

		ticketHandler: ticketHandlers.NewTicketHandler(
			ucs.createTicketUC,
			ucs.replyTicketUC,
			ucs.changeStatusUC,
			ucs.changePriorityUC,
			ucs.getTicketUC,
			ucs.listTicketsUC,
			log,
		),

		addressBookHandler: addressbookHandlers.NewAddressBookHandler(
			ucs.getAddressBookUC, ucs.addAddressUC, ucs.updateAddressUC, ucs.removeAddressUC, log),
		onboardingHandler: onboardingHandlers.NewOnboardingHandler(
			ucs.getProgressUC, ucs.listProgressUC, ucs.putProgressUC, log),

		policyHandler: adminHandlers.NewPolicyHandler(c.enforcer, log),
	}
}
