package dto

import (
	"time"

	"helpcenter/internal/domain/onboarding"
)

type ProgressDTO struct {
	GuideSlug      string     `json:"guide_slug"`
	StepCount      int        `json:"step_count"`
	CompletedSteps []int      `json:"completed_steps"`
	Completed      bool       `json:"completed"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// ToProgressDTO renders p, or an untouched checklist when p is nil.
func ToProgressDTO(guideSlug string, stepCount int, p *onboarding.Progress) *ProgressDTO {
	out := &ProgressDTO{GuideSlug: guideSlug, StepCount: stepCount, CompletedSteps: []int{}}
	if p == nil {
		return out
	}
	updated := p.UpdatedAt()
	out.CompletedSteps = p.CompletedSteps()
	out.Completed = p.Completed()
	out.UpdatedAt = &updated
	return out
}
