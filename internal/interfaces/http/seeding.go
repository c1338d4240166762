package http

import (
	"context"

	contentdto "helpcenter/internal/application/content/dto"
	contentUsecases "helpcenter/internal/application/content/usecases"
	"helpcenter/internal/infrastructure/persistence/seeds"
)

// SeedGuides creates the given guide seeds through the regular create guide
// use case. Guides whose slug already exists are skipped.
func (c *Container) SeedGuides(ctx context.Context, guides []seeds.GuideSeed) (int, error) {
	create := func(ctx context.Context, seed seeds.GuideSeed) error {
		steps := make([]contentdto.GuideStepDTO, 0, len(seed.Steps))
		for _, s := range seed.Steps {
			steps = append(steps, contentdto.GuideStepDTO{Title: s.Title, Body: s.Body})
		}
		_, err := c.ucs.createGuideUC.Execute(ctx, contentUsecases.CreateGuideCommand{
			Title:       seed.Title,
			Description: seed.Description,
			Audience:    seed.Audience,
			Status:      seed.Status,
			Steps:       steps,
		})
		return err
	}
	return seeds.SeedGuides(ctx, guides, c.repos.guideRepo, create, c.log.Named("seeds"))
}
