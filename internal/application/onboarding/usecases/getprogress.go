package usecases

import (
	"context"

	"helpcenter/internal/application/onboarding/dto"
	"helpcenter/internal/domain/content"
	"helpcenter/internal/domain/onboarding"
	"helpcenter/internal/shared/errors"
	"helpcenter/internal/shared/logger"
)

type GetProgressUseCase struct {
	progressRepo onboarding.Repository
	guideRepo    content.GuideRepository
	logger       logger.Interface
}

func NewGetProgressUseCase(progressRepo onboarding.Repository, guideRepo content.GuideRepository, logger logger.Interface) *GetProgressUseCase {
	return &GetProgressUseCase{progressRepo: progressRepo, guideRepo: guideRepo, logger: logger}
}

// Execute returns the owner's checklist for the guide, normalized against
// the guide's current step count.
func (uc *GetProgressUseCase) Execute(ctx context.Context, ownerID uint, guideSlug string) (*dto.ProgressDTO, error) {
	if ownerID == 0 {
		return nil, errors.NewUnauthorizedError("sign in to track onboarding progress")
	}

	guide, err := publishedGuide(ctx, uc.guideRepo, guideSlug)
	if err != nil {
		return nil, err
	}

	p, err := uc.progressRepo.Get(ctx, ownerID, guideSlug)
	if err != nil {
		uc.logger.Errorw("failed to get onboarding progress", "owner_id", ownerID, "guide_slug", guideSlug, "error", err)
		return nil, err
	}
	if p != nil && p.Reconcile(guide.StepCount()) {
		uc.logger.Debugw("onboarding progress reconciled with guide", "owner_id", ownerID, "guide_slug", guideSlug, "step_count", guide.StepCount())
	}
	return dto.ToProgressDTO(guideSlug, guide.StepCount(), p), nil
}

type ListProgressUseCase struct {
	progressRepo onboarding.Repository
	guideRepo    content.GuideRepository
	logger       logger.Interface
}

func NewListProgressUseCase(progressRepo onboarding.Repository, guideRepo content.GuideRepository, logger logger.Interface) *ListProgressUseCase {
	return &ListProgressUseCase{progressRepo: progressRepo, guideRepo: guideRepo, logger: logger}
}

// Execute lists every checklist the owner has touched. Checklists whose
// guide is no longer published are skipped.
func (uc *ListProgressUseCase) Execute(ctx context.Context, ownerID uint) ([]*dto.ProgressDTO, error) {
	if ownerID == 0 {
		return nil, errors.NewUnauthorizedError("sign in to track onboarding progress")
	}

	records, err := uc.progressRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		uc.logger.Errorw("failed to list onboarding progress", "owner_id", ownerID, "error", err)
		return nil, err
	}

	out := make([]*dto.ProgressDTO, 0, len(records))
	for _, p := range records {
		guide, err := publishedGuide(ctx, uc.guideRepo, p.GuideSlug())
		if err != nil {
			if errors.IsNotFoundError(err) {
				continue
			}
			return nil, err
		}
		p.Reconcile(guide.StepCount())
		out = append(out, dto.ToProgressDTO(p.GuideSlug(), guide.StepCount(), p))
	}
	return out, nil
}
