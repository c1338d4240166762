package http

import (
	bookUsecases "helpcenter/internal/application/addressbook/usecases"
	contentdto "helpcenter/internal/application/content/dto"
	contentUsecases "helpcenter/internal/application/content/usecases"
	onboardingUsecases "helpcenter/internal/application/onboarding/usecases"
	ticketUsecases "helpcenter/internal/application/ticket/usecases"
	"helpcenter/internal/domain/content"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Articles
	createArticleUC      *contentUsecases.CreateArticleUseCase
	updateArticleUC      *contentUsecases.UpdateArticleUseCase
	getArticleUC         *contentUsecases.GetContentUseCase[*content.Article, *contentdto.ArticleDTO]
	listArticlesUC       *contentUsecases.ListContentUseCase[*content.Article, *contentdto.ArticleDTO]
	articlePublicationUC *contentUsecases.ChangePublicationUseCase[*content.Article]

	// Guides
	createGuideUC      *contentUsecases.CreateGuideUseCase
	updateGuideUC      *contentUsecases.UpdateGuideUseCase
	getGuideUC         *contentUsecases.GetContentUseCase[*content.Guide, *contentdto.GuideDTO]
	listGuidesUC       *contentUsecases.ListContentUseCase[*content.Guide, *contentdto.GuideDTO]
	guidePublicationUC *contentUsecases.ChangePublicationUseCase[*content.Guide]

	// Videos
	createVideoUC      *contentUsecases.CreateVideoUseCase
	updateVideoUC      *contentUsecases.UpdateVideoUseCase
	getVideoUC         *contentUsecases.GetContentUseCase[*content.Video, *contentdto.VideoDTO]
	listVideosUC       *contentUsecases.ListContentUseCase[*content.Video, *contentdto.VideoDTO]
	videoPublicationUC *contentUsecases.ChangePublicationUseCase[*content.Video]

	// Tickets
	createTicketUC   *ticketUsecases.CreateTicketUseCase
	replyTicketUC    *ticketUsecases.ReplyTicketUseCase
	changeStatusUC   *ticketUsecases.ChangeStatusUseCase
	changePriorityUC *ticketUsecases.ChangePriorityUseCase
	getTicketUC      *ticketUsecases.GetTicketUseCase
	listTicketsUC    *ticketUsecases.ListTicketsUseCase

	// Address book
	getAddressBookUC *bookUsecases.GetAddressBookUseCase
	addAddressUC     *bookUsecases.AddAddressUseCase
	updateAddressUC  *bookUsecases.UpdateAddressUseCase
	removeAddressUC  *bookUsecases.RemoveAddressUseCase

	// Onboarding
	getProgressUC  *onboardingUsecases.GetProgressUseCase
	listProgressUC *onboardingUsecases.ListProgressUseCase
	putProgressUC  *onboardingUsecases.PutProgressUseCase
}
