package usecases

import (
	"context"

	"helpcenter/internal/application/content/dto"
	"helpcenter/internal/domain/content"
	"helpcenter/internal/domain/shared/events"
	"helpcenter/internal/shared/biztime"
	"helpcenter/internal/shared/logger"
)

type CreateGuideCommand struct {
	Title       string
	Description string
	Audience    string
	Steps       []dto.GuideStepDTO
	Status      string
	ActorID     uint
}

type CreateGuideUseCase struct {
	repo      content.GuideRepository
	slugs     *content.SlugAllocator
	policy    *content.PublicationPolicy
	publisher events.EventPublisher
	clock     biztime.Clock
	logger    logger.Interface
}

func NewCreateGuideUseCase(
	repo content.GuideRepository,
	slugs *content.SlugAllocator,
	policy *content.PublicationPolicy,
	publisher events.EventPublisher,
	clock biztime.Clock,
	logger logger.Interface,
) *CreateGuideUseCase {
	if clock == nil {
		clock = biztime.SystemClock
	}
	return &CreateGuideUseCase{
		repo:      repo,
		slugs:     slugs,
		policy:    policy,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
	}
}

func (uc *CreateGuideUseCase) Execute(ctx context.Context, cmd CreateGuideCommand) (*dto.GuideDTO, error) {
	uc.logger.Infow("executing create guide use case", "title", cmd.Title, "steps", len(cmd.Steps))

	requested, err := content.ParseOptionalStatus(cmd.Status)
	if err != nil {
		return nil, err
	}

	now := uc.clock()
	guide, err := content.NewGuide(content.GuideParams{
		Title:       cmd.Title,
		Description: cmd.Description,
		Audience:    content.Audience(cmd.Audience),
		Steps:       dto.ToGuideSteps(cmd.Steps),
	}, now)
	if err != nil {
		return nil, err
	}

	tr := uc.policy.Initialize(guide, requested)

	slug, err := uc.slugs.AllocateAndPersist(ctx, guide.Title(), 0, func(ctx context.Context, slug string) error {
		guide.SetSlug(slug)
		return uc.repo.Create(ctx, guide)
	})
	if err != nil {
		uc.logger.Errorw("failed to create guide", "title", cmd.Title, "error", err)
		return nil, err
	}

	publishTransition(uc.publisher, uc.logger, content.KindGuide, guide, tr, cmd.ActorID, now)

	uc.logger.Infow("guide created successfully", "id", guide.ID(), "slug", slug, "status", guide.Status())
	return dto.ToGuideDTO(guide), nil
}

// UpdateGuideCommand replaces the steps when Steps is non-nil.
type UpdateGuideCommand struct {
	ID          uint
	Title       *string
	Description *string
	Audience    *string
	Steps       []dto.GuideStepDTO
	Status      *string
	ActorID     uint
}

type UpdateGuideUseCase struct {
	repo      content.GuideRepository
	slugs     *content.SlugAllocator
	policy    *content.PublicationPolicy
	publisher events.EventPublisher
	clock     biztime.Clock
	logger    logger.Interface
}

func NewUpdateGuideUseCase(
	repo content.GuideRepository,
	slugs *content.SlugAllocator,
	policy *content.PublicationPolicy,
	publisher events.EventPublisher,
	clock biztime.Clock,
	logger logger.Interface,
) *UpdateGuideUseCase {
	if clock == nil {
		clock = biztime.SystemClock
	}
	return &UpdateGuideUseCase{
		repo:      repo,
		slugs:     slugs,
		policy:    policy,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
	}
}

func (uc *UpdateGuideUseCase) Execute(ctx context.Context, cmd UpdateGuideCommand) (*dto.GuideDTO, error) {
	uc.logger.Infow("executing update guide use case", "id", cmd.ID, "actor_id", cmd.ActorID)

	requested, err := parseRequestedStatus(cmd.Status)
	if err != nil {
		return nil, err
	}

	guide, err := uc.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	now := uc.clock()
	titleChanged, err := guide.Apply(content.GuidePatch{
		Title:       cmd.Title,
		Description: cmd.Description,
		Audience:    cmd.Audience,
		Steps:       dto.ToGuideSteps(cmd.Steps),
	}, now)
	if err != nil {
		return nil, err
	}

	tr := uc.policy.ApplyEdit(guide, requested)

	if err := persistEdit(ctx, uc.slugs, guide, titleChanged, guide.Title(), guide.SetSlug, uc.repo.Update); err != nil {
		uc.logger.Errorw("failed to update guide", "id", cmd.ID, "error", err)
		return nil, err
	}

	publishTransition(uc.publisher, uc.logger, content.KindGuide, guide, tr, cmd.ActorID, now)

	uc.logger.Infow("guide updated successfully", "id", guide.ID(), "slug", guide.Slug(), "steps", guide.StepCount())
	return dto.ToGuideDTO(guide), nil
}
