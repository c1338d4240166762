package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"helpcenter/internal/domain/onboarding"
	"helpcenter/internal/infrastructure/persistence/models"
	"helpcenter/internal/shared/biztime"
)

type OnboardingProgressMapper interface {
	ToModel(p *onboarding.Progress) (*models.OnboardingProgressModel, error)
	ToDomain(model *models.OnboardingProgressModel) (*onboarding.Progress, error)
}

type OnboardingProgressMapperImpl struct{}

func NewOnboardingProgressMapper() OnboardingProgressMapper {
	return &OnboardingProgressMapperImpl{}
}

func (m *OnboardingProgressMapperImpl) ToModel(p *onboarding.Progress) (*models.OnboardingProgressModel, error) {
	steps, err := json.Marshal(p.CompletedSteps())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal completed steps: %w", err)
	}
	return &models.OnboardingProgressModel{
		ID:             p.ID(),
		OwnerID:        p.OwnerID(),
		GuideSlug:      p.GuideSlug(),
		CompletedSteps: datatypes.JSON(steps),
		Completed:      p.Completed(),
		UpdatedAt:      p.UpdatedAt().UnixMilli(),
	}, nil
}

func (m *OnboardingProgressMapperImpl) ToDomain(model *models.OnboardingProgressModel) (*onboarding.Progress, error) {
	var steps []int
	if len(model.CompletedSteps) > 0 {
		if err := json.Unmarshal(model.CompletedSteps, &steps); err != nil {
			return nil, fmt.Errorf("failed to unmarshal completed steps (id=%d): %w", model.ID, err)
		}
	}
	return onboarding.ReconstructProgress(
		model.ID,
		model.OwnerID,
		model.GuideSlug,
		steps,
		model.Completed,
		biztime.FromMillis(model.UpdatedAt),
	), nil
}
