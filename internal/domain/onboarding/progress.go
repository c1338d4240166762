package onboarding

import (
	"strings"
	"time"

	"helpcenter/internal/shared/errors"
)

// Progress is one owner's checklist state for one guide.
type Progress struct {
	id             uint
	ownerID        uint
	guideSlug      string
	completedSteps []int
	completed      bool
	updatedAt      time.Time
}

func NewProgress(ownerID uint, guideSlug string, now time.Time) (*Progress, error) {
	if ownerID == 0 {
		return nil, errors.NewValidationError("owner ID is required")
	}
	if strings.TrimSpace(guideSlug) == "" {
		return nil, errors.NewValidationError("guide slug is required")
	}
	return &Progress{ownerID: ownerID, guideSlug: guideSlug, completedSteps: []int{}, updatedAt: now}, nil
}

func ReconstructProgress(id, ownerID uint, guideSlug string, completedSteps []int, completed bool, updatedAt time.Time) *Progress {
	return &Progress{
		id:             id,
		ownerID:        ownerID,
		guideSlug:      guideSlug,
		completedSteps: append([]int{}, completedSteps...),
		completed:      completed,
		updatedAt:      updatedAt,
	}
}

func (p *Progress) ID() uint             { return p.id }
func (p *Progress) OwnerID() uint        { return p.ownerID }
func (p *Progress) GuideSlug() string    { return p.guideSlug }
func (p *Progress) Completed() bool      { return p.completed }
func (p *Progress) UpdatedAt() time.Time { return p.updatedAt }

func (p *Progress) CompletedSteps() []int {
	return append([]int{}, p.completedSteps...)
}

func (p *Progress) SetID(id uint) { p.id = id }

// Record replaces the completed set with the normalized form of raw.
func (p *Progress) Record(raw []int, stepCount int, now time.Time) {
	p.completedSteps, p.completed = Normalize(raw, stepCount)
	p.updatedAt = now
}

// Reconcile re-normalizes against the guide's current step count, which
// may have changed since the record was written. It reports whether the
// stored form is stale.
func (p *Progress) Reconcile(stepCount int) bool {
	steps, completed := Normalize(p.completedSteps, stepCount)
	changed := completed != p.completed || !equalInts(steps, p.completedSteps)
	p.completedSteps, p.completed = steps, completed
	return changed
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
