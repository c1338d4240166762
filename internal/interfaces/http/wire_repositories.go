package http

import (
	"gorm.io/gorm"

	"helpcenter/internal/infrastructure/repository"
	"helpcenter/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	articleRepo     *repository.ArticleRepository
	guideRepo       *repository.GuideRepository
	videoRepo       *repository.VideoRepository
	ticketRepo      *repository.TicketRepository
	messageRepo     *repository.MessageRepository
	counterRepo     *repository.SequenceCounterRepository
	addressBookRepo *repository.AddressBookRepository
	progressRepo    *repository.OnboardingProgressRepository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		articleRepo:     repository.NewArticleRepository(db, log),
		guideRepo:       repository.NewGuideRepository(db, log),
		videoRepo:       repository.NewVideoRepository(db, log),
		ticketRepo:      repository.NewTicketRepository(db, log),
		messageRepo:     repository.NewMessageRepository(db),
		counterRepo:     repository.NewSequenceCounterRepository(db),
		addressBookRepo: repository.NewAddressBookRepository(db, log),
		progressRepo:    repository.NewOnboardingProgressRepository(db),
	}
}
