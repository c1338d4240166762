package usecases

import (
	"context"

	"helpcenter/internal/application/content/dto"
	"helpcenter/internal/domain/content"
	"helpcenter/internal/domain/shared/events"
	"helpcenter/internal/shared/biztime"
	"helpcenter/internal/shared/logger"
)

type CreateVideoCommand struct {
	Title           string
	Description     string
	VideoURL        string
	ThumbnailURL    string
	DurationSeconds int
	Audience        string
	Status          string
	ActorID         uint
}

type CreateVideoUseCase struct {
	repo      content.VideoRepository
	slugs     *content.SlugAllocator
	policy    *content.PublicationPolicy
	publisher events.EventPublisher
	clock     biztime.Clock
	logger    logger.Interface
}

func NewCreateVideoUseCase(
	repo content.VideoRepository,
	slugs *content.SlugAllocator,
	policy *content.PublicationPolicy,
	publisher events.EventPublisher,
	clock biztime.Clock,
	logger logger.Interface,
) *CreateVideoUseCase {
	if clock == nil {
		clock = biztime.SystemClock
	}
	return &CreateVideoUseCase{
		repo:      repo,
		slugs:     slugs,
		policy:    policy,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
	}
}

func (uc *CreateVideoUseCase) Execute(ctx context.Context, cmd CreateVideoCommand) (*dto.VideoDTO, error) {
	uc.logger.Infow("executing create video use case", "title", cmd.Title)

	requested, err := content.ParseOptionalStatus(cmd.Status)
	if err != nil {
		return nil, err
	}

	now := uc.clock()
	video, err := content.NewVideo(content.VideoParams{
		Title:           cmd.Title,
		Description:     cmd.Description,
		VideoURL:        cmd.VideoURL,
		ThumbnailURL:    cmd.ThumbnailURL,
		DurationSeconds: cmd.DurationSeconds,
		Audience:        content.Audience(cmd.Audience),
	}, now)
	if err != nil {
		return nil, err
	}

	tr := uc.policy.Initialize(video, requested)

	slug, err := uc.slugs.AllocateAndPersist(ctx, video.Title(), 0, func(ctx context.Context, slug string) error {
		video.SetSlug(slug)
		return uc.repo.Create(ctx, video)
	})
	if err != nil {
		uc.logger.Errorw("failed to create video", "title", cmd.Title, "error", err)
		return nil, err
	}

	publishTransition(uc.publisher, uc.logger, content.KindVideo, video, tr, cmd.ActorID, now)

	uc.logger.Infow("video created successfully", "id", video.ID(), "slug", slug, "status", video.Status())
	return dto.ToVideoDTO(video), nil
}

type UpdateVideoCommand struct {
	ID              uint
	Title           *string
	Description     *string
	VideoURL        *string
	ThumbnailURL    *string
	DurationSeconds *int
	Audience        *string
	Status          *string
	ActorID         uint
}

type UpdateVideoUseCase struct {
	repo      content.VideoRepository
	slugs     *content.SlugAllocator
	policy    *content.PublicationPolicy
	publisher events.EventPublisher
	clock     biztime.Clock
	logger    logger.Interface
}

func NewUpdateVideoUseCase(
	repo content.VideoRepository,
	slugs *content.SlugAllocator,
	policy *content.PublicationPolicy,
	publisher events.EventPublisher,
	clock biztime.Clock,
	logger logger.Interface,
) *UpdateVideoUseCase {
	if clock == nil {
		clock = biztime.SystemClock
	}
	return &UpdateVideoUseCase{
		repo:      repo,
		slugs:     slugs,
		policy:    policy,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
	}
}

func (uc *UpdateVideoUseCase) Execute(ctx context.Context, cmd UpdateVideoCommand) (*dto.VideoDTO, error) {
	uc.logger.Infow("executing update video use case", "id", cmd.ID, "actor_id", cmd.ActorID)

	requested, err := parseRequestedStatus(cmd.Status)
	if err != nil {
		return nil, err
	}

	video, err := uc.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	now := uc.clock()
	titleChanged, err := video.Apply(content.VideoPatch{
		Title:           cmd.Title,
		Description:     cmd.Description,
		VideoURL:        cmd.VideoURL,
		ThumbnailURL:    cmd.ThumbnailURL,
		DurationSeconds: cmd.DurationSeconds,
		Audience:        cmd.Audience,
	}, now)
	if err != nil {
		return nil, err
	}

	tr := uc.policy.ApplyEdit(video, requested)

	if err := persistEdit(ctx, uc.slugs, video, titleChanged, video.Title(), video.SetSlug, uc.repo.Update); err != nil {
		uc.logger.Errorw("failed to update video", "id", cmd.ID, "error", err)
		return nil, err
	}

	publishTransition(uc.publisher, uc.logger, content.KindVideo, video, tr, cmd.ActorID, now)

	uc.logger.Infow("video updated successfully", "id", video.ID(), "slug", video.Slug())
	return dto.ToVideoDTO(video), nil
}
