package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"helpcenter/internal/domain/onboarding"
	"helpcenter/internal/infrastructure/persistence/mappers"
	"helpcenter/internal/infrastructure/persistence/models"
	db "helpcenter/internal/shared/db"
)

type OnboardingProgressRepository struct {
	db     *gorm.DB
	mapper mappers.OnboardingProgressMapper
}

func NewOnboardingProgressRepository(db *gorm.DB) *OnboardingProgressRepository {
	return &OnboardingProgressRepository{
		db:     db,
		mapper: mappers.NewOnboardingProgressMapper(),
	}
}

// Get returns nil without error when nothing was recorded yet.
func (r *OnboardingProgressRepository) Get(ctx context.Context, ownerID uint, guideSlug string) (*onboarding.Progress, error) {
	var model models.OnboardingProgressModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("owner_id = ? AND guide_slug = ?", ownerID, guideSlug).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find onboarding progress: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// Upsert replaces the (owner, guide) document; the last writer wins.
func (r *OnboardingProgressRepository) Upsert(ctx context.Context, p *onboarding.Progress) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	err = tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}, {Name: "guide_slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed_steps", "completed", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert onboarding progress: %w", err)
	}

	if p.ID() == 0 {
		var stored models.OnboardingProgressModel
		if err := tx.Select("id").
			Where("owner_id = ? AND guide_slug = ?", model.OwnerID, model.GuideSlug).
			First(&stored).Error; err != nil {
			return fmt.Errorf("failed to read onboarding progress id: %w", err)
		}
		p.SetID(stored.ID)
	}
	return nil
}

func (r *OnboardingProgressRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*onboarding.Progress, error) {
	var rows []models.OnboardingProgressModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("owner_id = ?", ownerID).
		Order("guide_slug ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list onboarding progress: %w", err)
	}
	out := make([]*onboarding.Progress, len(rows))
	for i := range rows {
		p, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}
