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

// UpdateArticleCommand carries optional edits. A title change re-derives
// the slug, keeping the current one when it still normalizes the same.
type UpdateArticleCommand struct {
	ID       uint
	Title    *string
	Summary  *string
	Body     *string
	Category *string
	Audience *string
	Tags     []string
	Status   *string
	ActorID  uint
}

type UpdateArticleUseCase struct {
	repo      content.ArticleRepository
	slugs     *content.SlugAllocator
	policy    *content.PublicationPolicy
	renderer  markdown.Renderer
	publisher events.EventPublisher
	clock     biztime.Clock
	logger    logger.Interface
}

func NewUpdateArticleUseCase(
	repo content.ArticleRepository,
	slugs *content.SlugAllocator,
	policy *content.PublicationPolicy,
	renderer markdown.Renderer,
	publisher events.EventPublisher,
	clock biztime.Clock,
	logger logger.Interface,
) *UpdateArticleUseCase {
	if clock == nil {
		clock = biztime.SystemClock
	}
	return &UpdateArticleUseCase{
		repo:      repo,
		slugs:     slugs,
		policy:    policy,
		renderer:  renderer,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
	}
}

func (uc *UpdateArticleUseCase) Execute(ctx context.Context, cmd UpdateArticleCommand) (*dto.ArticleDTO, error) {
	uc.logger.Infow("executing update article use case", "id", cmd.ID, "actor_id", cmd.ActorID)

	requested, err := parseRequestedStatus(cmd.Status)
	if err != nil {
		return nil, err
	}

	article, err := uc.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	now := uc.clock()
	titleChanged, err := article.Apply(content.ArticlePatch{
		Title:    cmd.Title,
		Summary:  cmd.Summary,
		Body:     cmd.Body,
		Category: cmd.Category,
		Audience: cmd.Audience,
		Tags:     cmd.Tags,
	}, now)
	if err != nil {
		return nil, err
	}

	if cmd.Body != nil {
		html, err := uc.renderer.Render(article.Body())
		if err != nil {
			uc.logger.Errorw("failed to render article body", "id", cmd.ID, "error", err)
			return nil, errors.NewInternalError("failed to render article body")
		}
		article.SetBodyHTML(html)
	}

	tr := uc.policy.ApplyEdit(article, requested)

	if err := persistEdit(ctx, uc.slugs, article, titleChanged, article.Title(), article.SetSlug, uc.repo.Update); err != nil {
		uc.logger.Errorw("failed to update article", "id", cmd.ID, "error", err)
		return nil, err
	}

	publishTransition(uc.publisher, uc.logger, content.KindArticle, article, tr, cmd.ActorID, now)

	uc.logger.Infow("article updated successfully", "id", article.ID(), "slug", article.Slug())
	return dto.ToArticleDTO(article), nil
}
