package usecases

import (
	"context"

	"helpcenter/internal/application/content/dto"
	"helpcenter/internal/domain/content"
	"helpcenter/internal/domain/shared/events"
	"helpcenter/internal/shared/biztime"
	"helpcenter/internal/shared/errors"
	"helpcenter/internal/shared/logger"
	"helpcenter/internal/shared/services/markdown"
)

type CreateArticleCommand struct {
	Title    string
	Summary  string
	Body     string
	Category string
	Audience string
	Tags     []string
	Status   string
	AuthorID uint
}

type CreateArticleUseCase struct {
	repo      content.ArticleRepository
	slugs     *content.SlugAllocator
	policy    *content.PublicationPolicy
	renderer  markdown.Renderer
	publisher events.EventPublisher
	clock     biztime.Clock
	logger    logger.Interface
}

func NewCreateArticleUseCase(
	repo content.ArticleRepository,
	slugs *content.SlugAllocator,
	policy *content.PublicationPolicy,
	renderer markdown.Renderer,
	publisher events.EventPublisher,
	clock biztime.Clock,
	logger logger.Interface,
) *CreateArticleUseCase {
	if clock == nil {
		clock = biztime.SystemClock
	}
	return &CreateArticleUseCase{
		repo:      repo,
		slugs:     slugs,
		policy:    policy,
		renderer:  renderer,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
	}
}

func (uc *CreateArticleUseCase) Execute(ctx context.Context, cmd CreateArticleCommand) (*dto.ArticleDTO, error) {
	uc.logger.Infow("executing create article use case", "title", cmd.Title, "author_id", cmd.AuthorID)

	requested, err := content.ParseOptionalStatus(cmd.Status)
	if err != nil {
		return nil, err
	}

	now := uc.clock()
	article, err := content.NewArticle(content.ArticleParams{
		Title:    cmd.Title,
		Summary:  cmd.Summary,
		Body:     cmd.Body,
		Category: cmd.Category,
		Audience: content.Audience(cmd.Audience),
		Tags:     cmd.Tags,
		AuthorID: cmd.AuthorID,
	}, now)
	if err != nil {
		return nil, err
	}

	html, err := uc.renderer.Render(article.Body())
	if err != nil {
		uc.logger.Errorw("failed to render article body", "error", err)
		return nil, errors.NewInternalError("failed to render article body")
	}
	article.SetBodyHTML(html)

	tr := uc.policy.Initialize(article, requested)

	slug, err := uc.slugs.AllocateAndPersist(ctx, article.Title(), 0, func(ctx context.Context, slug string) error {
		article.SetSlug(slug)
		return uc.repo.Create(ctx, article)
	})
	if err != nil {
		uc.logger.Errorw("failed to create article", "title", cmd.Title, "error", err)
		return nil, err
	}

	publishTransition(uc.publisher, uc.logger, content.KindArticle, article, tr, cmd.AuthorID, now)

	uc.logger.Infow("article created successfully", "id", article.ID(), "slug", slug, "status", article.Status())
	return dto.ToArticleDTO(article), nil
}
