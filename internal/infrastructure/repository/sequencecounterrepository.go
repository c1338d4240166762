package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"helpcenter/internal/infrastructure/persistence/models"
	"helpcenter/internal/shared/constants"
	db "helpcenter/internal/shared/db"
	apperrors "helpcenter/internal/shared/errors"
)

// SequenceCounterRepository is the relational ticket.CounterStore. Each
// Increment is one upsert that either creates the row at 1 or bumps seq,
// followed by a read of the same row inside the same transaction.
type SequenceCounterRepository struct {
	db *gorm.DB
}

func NewSequenceCounterRepository(db *gorm.DB) *SequenceCounterRepository {
	return &SequenceCounterRepository{db: db}
}

func (r *SequenceCounterRepository) Increment(ctx context.Context, name string) (int64, error) {
	var seq int64
	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		row := &models.SequenceCounterModel{Name: name, Seq: 1, CreatedAt: now, UpdatedAt: now}
		result := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"seq":        gorm.Expr(constants.TableSequenceCounters + ".seq + 1"),
				"updated_at": now,
			}),
		}).Create(row)
		if result.Error != nil {
			return fmt.Errorf("failed to increment counter %s: %w", name, result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewConcurrencyConflictError("counter increment matched no row", name)
		}

		var stored models.SequenceCounterModel
		if err := tx.Select("seq").Where("name = ?", name).First(&stored).Error; err != nil {
			return fmt.Errorf("failed to read counter %s: %w", name, err)
		}
		seq = stored.Seq
		return nil
	})
	if err != nil {
		return 0, err
	}
	return seq, nil
}

// Current returns the last issued value, or 0 when the counter was never used.
func (r *SequenceCounterRepository) Current(ctx context.Context, name string) (int64, error) {
	var stored models.SequenceCounterModel
	result := db.GetTxFromContext(ctx, r.db).Select("seq").Where("name = ?", name).Limit(1).Find(&stored)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to read counter %s: %w", name, result.Error)
	}
	return stored.Seq, nil
}
