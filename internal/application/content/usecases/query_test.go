package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpcenter/internal/application/content/dto"
	"helpcenter/internal/domain/content"
	"helpcenter/internal/shared/biztime"
	"helpcenter/internal/shared/errors"
	"helpcenter/internal/shared/logger"
)

func storedGuide(slug string, status content.Status) *content.Guide {
	var publishedAt *time.Time
	if status == content.StatusPublished {
		at := contentTestNow
		publishedAt = &at
	}
	return content.ReconstructGuide(4, slug, "Store setup", "", content.AudienceVendor,
		[]content.GuideStep{{Title: "Logo"}, {Title: "Payout"}},
		content.ReconstructPublication(status, publishedAt), contentTestNow, contentTestNow)
}

func TestGetContentUseCase_HidesUnpublishedFromPublic(t *testing.T) {
	repo := &mockGuideRepository{
		GetBySlugFunc: func(_ context.Context, slug string) (*content.Guide, error) {
			return storedGuide(slug, content.StatusDraft), nil
		},
	}
	uc := NewGetContentUseCase[*content.Guide](content.KindGuide, repo, dto.ToGuideDTO, logger.NewNop())

	_, err := uc.Execute(context.Background(), GetContentQuery{Slug: "store-setup"})
	assert.True(t, errors.IsNotFoundError(err))

	got, err := uc.Execute(context.Background(), GetContentQuery{Slug: "store-setup", IncludeUnpublished: true})
	require.NoError(t, err)
	assert.Equal(t, 2, got.StepCount)
}

func TestGetContentUseCase_ByID(t *testing.T) {
	repo := &mockGuideRepository{
		GetByIDFunc: func(_ context.Context, id uint) (*content.Guide, error) {
			return storedGuide("store-setup", content.StatusPublished), nil
		},
	}
	uc := NewGetContentUseCase[*content.Guide](content.KindGuide, repo, dto.ToGuideDTO, logger.NewNop())

	got, err := uc.Execute(context.Background(), GetContentQuery{ID: 4})
	require.NoError(t, err)
	assert.Equal(t, "store-setup", got.Slug)
	assert.Equal(t, "PUBLISHED", got.Status)

	_, err = uc.Execute(context.Background(), GetContentQuery{})
	assert.True(t, errors.IsValidationError(err))
}

func TestListContentUseCase_PublicPinsPublished(t *testing.T) {
	var seen content.ListFilter
	repo := &mockGuideRepository{
		ListFunc: func(_ context.Context, filter content.ListFilter) ([]*content.Guide, int64, error) {
			seen = filter
			return []*content.Guide{storedGuide("store-setup", content.StatusPublished)}, 1, nil
		},
	}
	uc := NewListContentUseCase[*content.Guide](content.KindGuide, repo, dto.ToGuideDTO, logger.NewNop())

	result, err := uc.Execute(context.Background(), ListContentQuery{
		Status:     "DRAFT",
		Audience:   "vendor",
		PublicOnly: true,
		PageSize:   500,
	})

	require.NoError(t, err)
	require.NotNil(t, seen.Status)
	assert.Equal(t, content.StatusPublished, *seen.Status)
	require.NotNil(t, seen.Audience)
	assert.Equal(t, content.AudienceVendor, *seen.Audience)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 100, result.PageSize)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, int64(1), result.Total)
}

func TestListContentUseCase_AdminStatusFilter(t *testing.T) {
	var seen content.ListFilter
	repo := &mockGuideRepository{
		ListFunc: func(_ context.Context, filter content.ListFilter) ([]*content.Guide, int64, error) {
			seen = filter
			return nil, 0, nil
		},
	}
	uc := NewListContentUseCase[*content.Guide](content.KindGuide, repo, dto.ToGuideDTO, logger.NewNop())

	_, err := uc.Execute(context.Background(), ListContentQuery{})
	require.NoError(t, err)
	assert.Nil(t, seen.Status)
	assert.Nil(t, seen.Audience)
	assert.Equal(t, 20, seen.PageSize)

	_, err = uc.Execute(context.Background(), ListContentQuery{Status: "archived"})
	require.NoError(t, err)
	require.NotNil(t, seen.Status)
	assert.Equal(t, content.StatusArchived, *seen.Status)

	_, err = uc.Execute(context.Background(), ListContentQuery{Status: "gone"})
	assert.True(t, errors.IsInvalidTransitionError(err))
}

func TestCreateGuideUseCase_StepsAndSlug(t *testing.T) {
	repo := &mockGuideRepository{
		CreateFunc: func(_ context.Context, g *content.Guide) error {
			g.SetID(2)
			return nil
		},
	}
	clock := biztime.FixedClock(contentTestNow)
	uc := NewCreateGuideUseCase(repo, content.NewSlugAllocator(repo, clock), content.NewPublicationPolicy(clock),
		&mockEventPublisher{}, clock, logger.NewNop())

	result, err := uc.Execute(context.Background(), CreateGuideCommand{
		Title:    "Café Setup",
		Audience: "VENDOR",
		Steps:    []dto.GuideStepDTO{{Title: "Profile"}, {Title: "Inventory"}, {Title: "Payout"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "cafe-setup", result.Slug)
	assert.Equal(t, 3, result.StepCount)
	assert.Equal(t, "DRAFT", result.Status)
}
