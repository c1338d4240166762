package http

import (
	contentdto "helpcenter/internal/application/content/dto"
	addressbookHandlers "helpcenter/internal/interfaces/http/handlers/addressbook"
	adminHandlers "helpcenter/internal/interfaces/http/handlers/admin"
	contentHandlers "helpcenter/internal/interfaces/http/handlers/content"
	onboardingHandlers "helpcenter/internal/interfaces/http/handlers/onboarding"
	ticketHandlers "helpcenter/internal/interfaces/http/handlers/ticket"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	// Content
	articleHandler   *contentHandlers.ArticleHandler
	guideHandler     *contentHandlers.GuideHandler
	videoHandler     *contentHandlers.VideoHandler
	articleLifecycle *contentHandlers.ContentHandler[*contentdto.ArticleDTO]
	guideLifecycle   *contentHandlers.ContentHandler[*contentdto.GuideDTO]
	videoLifecycle   *contentHandlers.ContentHandler[*contentdto.VideoDTO]

	// Ticket
	ticketHandler *ticketHandlers.TicketHandler

	// Account
	addressBookHandler *addressbookHandlers.AddressBookHandler
	onboardingHandler  *onboardingHandlers.OnboardingHandler

	// Admin
	policyHandler *adminHandlers.PolicyHandler
}
