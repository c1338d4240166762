package usecases

import (
	"context"
	"time"

	"helpcenter/internal/domain/content"
	"helpcenter/internal/domain/onboarding"
	"helpcenter/internal/shared/errors"
)

type stubGuideRepository struct {
	content.GuideRepository
	guides map[string]*content.Guide
}

func (s *stubGuideRepository) GetBySlug(ctx context.Context, slug string) (*content.Guide, error) {
	g, ok := s.guides[slug]
	if !ok {
		return nil, errors.NewNotFoundError("guide not found", slug)
	}
	return g, nil
}

func guide(slug string, steps int, status content.Status) *content.Guide {
	list := make([]content.GuideStep, steps)
	for i := range list {
		list[i] = content.GuideStep{Title: "step"}
	}
	var published *time.Time
	if status == content.StatusPublished {
		at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		published = &at
	}
	return content.ReconstructGuide(1, slug, slug, "", content.AudienceVendor, list,
		content.ReconstructPublication(status, published), time.Time{}, time.Time{})
}

type mockProgressRepository struct {
	GetFunc         func(ctx context.Context, ownerID uint, guideSlug string) (*onboarding.Progress, error)
	UpsertFunc      func(ctx context.Context, p *onboarding.Progress) error
	ListByOwnerFunc func(ctx context.Context, ownerID uint) ([]*onboarding.Progress, error)
}

func (m *mockProgressRepository) Get(ctx context.Context, ownerID uint, guideSlug string) (*onboarding.Progress, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, ownerID, guideSlug)
	}
	return nil, nil
}

func (m *mockProgressRepository) Upsert(ctx context.Context, p *onboarding.Progress) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, p)
	}
	return nil
}

func (m *mockProgressRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*onboarding.Progress, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}
