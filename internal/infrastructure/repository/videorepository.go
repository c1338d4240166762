package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helpcenter/internal/domain/content"
	"helpcenter/internal/infrastructure/persistence/mappers"
	"helpcenter/internal/infrastructure/persistence/models"
	db "helpcenter/internal/shared/db"
	apperrors "helpcenter/internal/shared/errors"
	"helpcenter/internal/shared/logger"
)

type VideoRepository struct {
	db     *gorm.DB
	mapper mappers.ContentMapper
	logger logger.Interface
}

func NewVideoRepository(db *gorm.DB, log logger.Interface) *VideoRepository {
	return &VideoRepository{
		db:     db,
		mapper: mappers.NewContentMapper(),
		logger: log,
	}
}

func (r *VideoRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	return slugTaken(ctx, r.db, &models.VideoModel{}, slug, excludeID)
}

// Create inserts the video. A slug collision is returned wrapped so that
// the caller can detect it with IsDuplicateError.
func (r *VideoRepository) Create(ctx context.Context, v *content.Video) error {
	model := r.mapper.VideoToModel(v)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}
	v.SetID(model.ID)
	return nil
}

func (r *VideoRepository) Update(ctx context.Context, v *content.Video) error {
	model := r.mapper.VideoToModel(v)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.VideoModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update video: %w", result.Error)
	}
	return nil
}

func (r *VideoRepository) GetByID(ctx context.Context, id uint) (*content.Video, error) {
	var model models.VideoModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("video not found")
		}
		return nil, fmt.Errorf("failed to find video: %w", err)
	}
	return r.mapper.VideoToDomain(&model)
}

func (r *VideoRepository) GetBySlug(ctx context.Context, slug string) (*content.Video, error) {
	var model models.VideoModel
	if err := db.GetTxFromContext(ctx, r.db).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("video not found")
		}
		return nil, fmt.Errorf("failed to find video: %w", err)
	}
	return r.mapper.VideoToDomain(&model)
}

func (r *VideoRepository) List(ctx context.Context, filter content.ListFilter) ([]*content.Video, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.VideoModel{}).
		Scopes(contentListScope(filter, "title", "description"))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count videos: %w", err)
	}

	var rows []models.VideoModel
	if err := query.
		Order("updated_at DESC").Order("id DESC").
		Scopes(db.Paginate(filter.Page, pageSizeOrDefault(filter.PageSize))).
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list videos", "error", err)
		return nil, 0, fmt.Errorf("failed to list videos: %w", err)
	}

	videos := make([]*content.Video, 0, len(rows))
	for i := range rows {
		vid, err := r.mapper.VideoToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		videos = append(videos, vid)
	}
	return videos, total, nil
}
