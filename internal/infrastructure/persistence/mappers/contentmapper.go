package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"helpcenter/internal/domain/content"
	"helpcenter/internal/infrastructure/persistence/models"
	"helpcenter/internal/shared/biztime"
)

// ContentMapper converts knowledge-base articles, onboarding guides and
// video tutorials between domain entities and persistence models.
type ContentMapper interface {
	ArticleToModel(a *content.Article) (*models.ArticleModel, error)
	ArticleToDomain(model *models.ArticleModel) (*content.Article, error)

	GuideToModel(g *content.Guide) (*models.GuideModel, error)
	GuideToDomain(model *models.GuideModel) (*content.Guide, error)

	VideoToModel(v *content.Video) *models.VideoModel
	VideoToDomain(model *models.VideoModel) (*content.Video, error)
}

type ContentMapperImpl struct{}

func NewContentMapper() ContentMapper {
	return &ContentMapperImpl{}
}

func (m *ContentMapperImpl) ArticleToModel(a *content.Article) (*models.ArticleModel, error) {
	tags, err := json.Marshal(a.Tags())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal article tags: %w", err)
	}
	return &models.ArticleModel{
		ID:              a.ID(),
		Slug:            a.Slug(),
		Title:           a.Title(),
		Summary:         a.Summary(),
		Body:            a.Body(),
		BodyHTML:        a.BodyHTML(),
		Category:        a.Category(),
		Audience:        a.Audience().String(),
		Tags:            datatypes.JSON(tags),
		AuthorID:        a.AuthorID(),
		Status:          a.Status().String(),
		PublishedAt:     toMillisPtr(a.PublishedAt()),
		LastPublishedAt: toMillisPtr(a.LastPublishedAt()),
		CreatedAt:       a.CreatedAt().UnixMilli(),
		UpdatedAt:       a.UpdatedAt().UnixMilli(),
	}, nil
}

func (m *ContentMapperImpl) ArticleToDomain(model *models.ArticleModel) (*content.Article, error) {
	if model == nil {
		return nil, nil
	}
	pub, err := publicationFromModel(model.Status, model.PublishedAt, model.LastPublishedAt, model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("article %d: %w", model.ID, err)
	}
	var tags []string
	if len(model.Tags) > 0 {
		if err := json.Unmarshal(model.Tags, &tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal article tags: %w", err)
		}
	}
	return content.ReconstructArticle(
		model.ID,
		model.Slug,
		model.Title,
		model.Summary,
		model.Body,
		model.BodyHTML,
		model.Category,
		content.ParseAudience(model.Audience),
		tags,
		model.AuthorID,
		pub,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	), nil
}

func (m *ContentMapperImpl) GuideToModel(g *content.Guide) (*models.GuideModel, error) {
	steps, err := json.Marshal(g.Steps())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal guide steps: %w", err)
	}
	return &models.GuideModel{
		ID:              g.ID(),
		Slug:            g.Slug(),
		Title:           g.Title(),
		Description:     g.Description(),
		Audience:        g.Audience().String(),
		Steps:           datatypes.JSON(steps),
		Status:          g.Status().String(),
		PublishedAt:     toMillisPtr(g.PublishedAt()),
		LastPublishedAt: toMillisPtr(g.LastPublishedAt()),
		CreatedAt:       g.CreatedAt().UnixMilli(),
		UpdatedAt:       g.UpdatedAt().UnixMilli(),
	}, nil
}

func (m *ContentMapperImpl) GuideToDomain(model *models.GuideModel) (*content.Guide, error) {
	if model == nil {
		return nil, nil
	}
	pub, err := publicationFromModel(model.Status, model.PublishedAt, model.LastPublishedAt, model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("guide %d: %w", model.ID, err)
	}
	var steps []content.GuideStep
	if len(model.Steps) > 0 {
		if err := json.Unmarshal(model.Steps, &steps); err != nil {
			return nil, fmt.Errorf("failed to unmarshal guide steps: %w", err)
		}
	}
	return content.ReconstructGuide(
		model.ID,
		model.Slug,
		model.Title,
		model.Description,
		content.ParseAudience(model.Audience),
		steps,
		pub,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	), nil
}

func (m *ContentMapperImpl) VideoToModel(v *content.Video) *models.VideoModel {
	return &models.VideoModel{
		ID:              v.ID(),
		Slug:            v.Slug(),
		Title:           v.Title(),
		Description:     v.Description(),
		VideoURL:        v.VideoURL(),
		ThumbnailURL:    v.ThumbnailURL(),
		DurationSeconds: v.DurationSeconds(),
		Audience:        v.Audience().String(),
		Status:          v.Status().String(),
		PublishedAt:     toMillisPtr(v.PublishedAt()),
		LastPublishedAt: toMillisPtr(v.LastPublishedAt()),
		CreatedAt:       v.CreatedAt().UnixMilli(),
		UpdatedAt:       v.UpdatedAt().UnixMilli(),
	}
}

func (m *ContentMapperImpl) VideoToDomain(model *models.VideoModel) (*content.Video, error) {
	if model == nil {
		return nil, nil
	}
	pub, err := publicationFromModel(model.Status, model.PublishedAt, model.LastPublishedAt, model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("video %d: %w", model.ID, err)
	}
	return content.ReconstructVideo(
		model.ID,
		model.Slug,
		model.Title,
		model.Description,
		model.VideoURL,
		model.ThumbnailURL,
		model.DurationSeconds,
		content.ParseAudience(model.Audience),
		pub,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	), nil
}

// publicationFromModel rebuilds the publication state. A stored row that
// violates the publishedAt/status pairing is corrected on read.
func publicationFromModel(status string, publishedAt, lastPublishedAt *int64, updatedAt int64) (content.Publication, error) {
	s, err := content.ParseStatus(status)
	if err != nil {
		return content.Publication{}, err
	}
	var at *time.Time
	if s.IsPublished() {
		ms := updatedAt
		if publishedAt != nil {
			ms = *publishedAt
		}
		t := biztime.FromMillis(ms)
		at = &t
	}
	var last *time.Time
	if lastPublishedAt != nil {
		t := biztime.FromMillis(*lastPublishedAt)
		last = &t
	}
	return content.ReconstructPublicationWithHistory(s, at, last), nil
}

func toMillisPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}
