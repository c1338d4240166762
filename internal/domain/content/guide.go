package content

import (
	"strconv"
	"strings"
	"time"

	"helpcenter/internal/shared/errors"
)

// GuideStep is one checklist item of an onboarding guide.
type GuideStep struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Guide is an ordered onboarding checklist. Progress records refer to it by slug.
type Guide struct {
	Publication
	id          uint
	slug        string
	title       string
	description string
	audience    Audience
	steps       []GuideStep
	createdAt   time.Time
	updatedAt   time.Time
}

type GuideParams struct {
	Title       string
	Description string
	Audience    Audience
	Steps       []GuideStep
}

func validateSteps(steps []GuideStep) error {
	for i, s := range steps {
		if strings.TrimSpace(s.Title) == "" {
			return errors.NewValidationError("step title is required", "step "+strconv.Itoa(i))
		}
	}
	return nil
}

func NewGuide(p GuideParams, now time.Time) (*Guide, error) {
	if err := validateTitle(p.Title); err != nil {
		return nil, err
	}
	if err := validateSteps(p.Steps); err != nil {
		return nil, err
	}
	return &Guide{
		Publication: Publication{status: StatusDraft},
		title:       strings.TrimSpace(p.Title),
		description: p.Description,
		audience:    ParseAudience(string(p.Audience)),
		steps:       copySteps(p.Steps),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructGuide(
	id uint,
	slug, title, description string,
	audience Audience,
	steps []GuideStep,
	publication Publication,
	createdAt, updatedAt time.Time,
) *Guide {
	return &Guide{
		Publication: publication,
		id:          id,
		slug:        slug,
		title:       title,
		description: description,
		audience:    audience,
		steps:       copySteps(steps),
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (g *Guide) ID() uint             { return g.id }
func (g *Guide) Slug() string         { return g.slug }
func (g *Guide) Title() string        { return g.title }
func (g *Guide) Description() string  { return g.description }
func (g *Guide) Audience() Audience   { return g.audience }
func (g *Guide) Steps() []GuideStep   { return copySteps(g.steps) }
func (g *Guide) StepCount() int       { return len(g.steps) }
func (g *Guide) CreatedAt() time.Time { return g.createdAt }
func (g *Guide) UpdatedAt() time.Time { return g.updatedAt }

func (g *Guide) SetID(id uint)       { g.id = id }
func (g *Guide) SetSlug(s string)    { g.slug = s }
func (g *Guide) Touch(now time.Time) { g.updatedAt = now }

type GuidePatch struct {
	Title       *string
	Description *string
	Audience    *string
	Steps       []GuideStep
}

// Apply edits the guide. Replacing the steps changes StepCount, which
// progress records pick up on their next read.
func (g *Guide) Apply(p GuidePatch, now time.Time) (titleChanged bool, err error) {
	if p.Title != nil {
		if err := validateTitle(*p.Title); err != nil {
			return false, err
		}
		title := strings.TrimSpace(*p.Title)
		titleChanged = title != g.title
		g.title = title
	}
	if p.Steps != nil {
		if err := validateSteps(p.Steps); err != nil {
			return false, err
		}
		g.steps = copySteps(p.Steps)
	}
	if p.Description != nil {
		g.description = *p.Description
	}
	if p.Audience != nil {
		g.audience = ParseAudience(*p.Audience)
	}
	g.updatedAt = now
	return titleChanged, nil
}

func copySteps(steps []GuideStep) []GuideStep {
	out := make([]GuideStep, len(steps))
	copy(out, steps)
	return out
}
