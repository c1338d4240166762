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

type GuideRepository struct {
	db     *gorm.DB
	mapper mappers.ContentMapper
	logger logger.Interface
}

func NewGuideRepository(db *gorm.DB, log logger.Interface) *GuideRepository {
	return &GuideRepository{
		db:     db,
		mapper: mappers.NewContentMapper(),
		logger: log,
	}
}

func (r *GuideRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	return slugTaken(ctx, r.db, &models.GuideModel{}, slug, excludeID)
}

// Create inserts the guide. A slug collision is returned wrapped so that
// the caller can detect it with IsDuplicateError.
func (r *GuideRepository) Create(ctx context.Context, g *content.Guide) error {
	model, err := r.mapper.GuideToModel(g)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create guide: %w", err)
	}
	g.SetID(model.ID)
	return nil
}

func (r *GuideRepository) Update(ctx context.Context, g *content.Guide) error {
	model, err := r.mapper.GuideToModel(g)
	if err != nil {
		return err
	}
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.GuideModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update guide: %w", result.Error)
	}
	return nil
}

func (r *GuideRepository) GetByID(ctx context.Context, id uint) (*content.Guide, error) {
	var model models.GuideModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("guide not found")
		}
		return nil, fmt.Errorf("failed to find guide: %w", err)
	}
	return r.mapper.GuideToDomain(&model)
}

func (r *GuideRepository) GetBySlug(ctx context.Context, slug string) (*content.Guide, error) {
	var model models.GuideModel
	if err := db.GetTxFromContext(ctx, r.db).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("guide not found")
		}
		return nil, fmt.Errorf("failed to find guide: %w", err)
	}
	return r.mapper.GuideToDomain(&model)
}

func (r *GuideRepository) List(ctx context.Context, filter content.ListFilter) ([]*content.Guide, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.GuideModel{}).
		Scopes(contentListScope(filter, "title", "description"))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count guides: %w", err)
	}

	var rows []models.GuideModel
	if err := query.
		Order("updated_at DESC").Order("id DESC").
		Scopes(db.Paginate(filter.Page, pageSizeOrDefault(filter.PageSize))).
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list guides", "error", err)
		return nil, 0, fmt.Errorf("failed to list guides: %w", err)
	}

	guides := make([]*content.Guide, 0, len(rows))
	for i := range rows {
		gd, err := r.mapper.GuideToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		guides = append(guides, gd)
	}
	return guides, total, nil
}
