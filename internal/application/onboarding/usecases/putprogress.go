package usecases

import (
	"context"

	"helpcenter/internal/application/onboarding/dto"
	"helpcenter/internal/domain/content"
	"helpcenter/internal/domain/onboarding"
	"helpcenter/internal/shared/biztime"
	"helpcenter/internal/shared/errors"
	"helpcenter/internal/shared/logger"
)

type PutProgressCommand struct {
	OwnerID        uint
	GuideSlug      string
	CompletedSteps []int
}

type PutProgressUseCase struct {
	progressRepo onboarding.Repository
	guideRepo    content.GuideRepository
	clock        biztime.Clock
	logger       logger.Interface
}

func NewPutProgressUseCase(
	progressRepo onboarding.Repository,
	guideRepo content.GuideRepository,
	clock biztime.Clock,
	logger logger.Interface,
) *PutProgressUseCase {
	return &PutProgressUseCase{progressRepo: progressRepo, guideRepo: guideRepo, clock: clock, logger: logger}
}

// Execute replaces the completed set. Out of range and duplicate indices
// are dropped rather than rejected.
func (uc *PutProgressUseCase) Execute(ctx context.Context, cmd PutProgressCommand) (*dto.ProgressDTO, error) {
	uc.logger.Infow("executing put onboarding progress use case", "owner_id", cmd.OwnerID, "guide_slug", cmd.GuideSlug)

	if cmd.OwnerID == 0 {
		return nil, errors.NewUnauthorizedError("sign in to track onboarding progress")
	}

	guide, err := publishedGuide(ctx, uc.guideRepo, cmd.GuideSlug)
	if err != nil {
		return nil, err
	}

	now := uc.clock()
	p, err := uc.progressRepo.Get(ctx, cmd.OwnerID, cmd.GuideSlug)
	if err != nil {
		uc.logger.Errorw("failed to get onboarding progress", "owner_id", cmd.OwnerID, "guide_slug", cmd.GuideSlug, "error", err)
		return nil, err
	}
	if p == nil {
		if p, err = onboarding.NewProgress(cmd.OwnerID, cmd.GuideSlug, now); err != nil {
			return nil, err
		}
	}

	p.Record(cmd.CompletedSteps, guide.StepCount(), now)
	if err := uc.progressRepo.Upsert(ctx, p); err != nil {
		uc.logger.Errorw("failed to save onboarding progress", "owner_id", cmd.OwnerID, "guide_slug", cmd.GuideSlug, "error", err)
		return nil, err
	}

	uc.logger.Infow("onboarding progress saved",
		"owner_id", cmd.OwnerID,
		"guide_slug", cmd.GuideSlug,
		"completed_steps", len(p.CompletedSteps()),
		"completed", p.Completed(),
	)
	return dto.ToProgressDTO(cmd.GuideSlug, guide.StepCount(), p), nil
}
