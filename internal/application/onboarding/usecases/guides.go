package usecases

import (
	"context"

	"helpcenter/internal/domain/content"
	"helpcenter/internal/shared/errors"
)

// publishedGuide resolves the guide a checklist belongs to. Drafts and
// archived guides are invisible to vendors.
func publishedGuide(ctx context.Context, guides content.GuideRepository, slug string) (*content.Guide, error) {
	if slug == "" {
		return nil, errors.NewValidationError("guide slug is required")
	}
	g, err := guides.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !g.Status().IsPublished() {
		return nil, errors.NewNotFoundError("guide not found", slug)
	}
	return g, nil
}
