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

type ArticleRepository struct {
	db     *gorm.DB
	mapper mappers.ContentMapper
	logger logger.Interface
}

func NewArticleRepository(db *gorm.DB, log logger.Interface) *ArticleRepository {
	return &ArticleRepository{
		db:     db,
		mapper: mappers.NewContentMapper(),
		logger: log,
	}
}

func (r *ArticleRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	return slugTaken(ctx, r.db, &models.ArticleModel{}, slug, excludeID)
}

// Create inserts the article. A slug collision is returned wrapped so that
// the caller can detect it with IsDuplicateError.
func (r *ArticleRepository) Create(ctx context.Context, a *content.Article) error {
	model, err := r.mapper.ArticleToModel(a)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}
	a.SetID(model.ID)
	return nil
}

func (r *ArticleRepository) Update(ctx context.Context, a *content.Article) error {
	model, err := r.mapper.ArticleToModel(a)
	if err != nil {
		return err
	}
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ArticleModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update article: %w", result.Error)
	}
	return nil
}

func (r *ArticleRepository) GetByID(ctx context.Context, id uint) (*content.Article, error) {
	var model models.ArticleModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("article not found")
		}
		return nil, fmt.Errorf("failed to find article: %w", err)
	}
	return r.mapper.ArticleToDomain(&model)
}

func (r *ArticleRepository) GetBySlug(ctx context.Context, slug string) (*content.Article, error) {
	var model models.ArticleModel
	if err := db.GetTxFromContext(ctx, r.db).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("article not found")
		}
		return nil, fmt.Errorf("failed to find article: %w", err)
	}
	return r.mapper.ArticleToDomain(&model)
}

func (r *ArticleRepository) List(ctx context.Context, filter content.ListFilter) ([]*content.Article, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.ArticleModel{}).
		Scopes(contentListScope(filter, "title", "summary"))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	var rows []models.ArticleModel
	if err := query.
		Order("updated_at DESC").Order("id DESC").
		Scopes(db.Paginate(filter.Page, pageSizeOrDefault(filter.PageSize))).
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list articles", "error", err)
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}

	articles := make([]*content.Article, 0, len(rows))
	for i := range rows {
		a, err := r.mapper.ArticleToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		articles = append(articles, a)
	}
	return articles, total, nil
}
