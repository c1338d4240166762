package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helpcenter/internal/domain/addressbook"
	"helpcenter/internal/infrastructure/persistence/mappers"
	"helpcenter/internal/infrastructure/persistence/models"
	db "helpcenter/internal/shared/db"
	apperrors "helpcenter/internal/shared/errors"
	"helpcenter/internal/shared/logger"
)

type AddressBookRepository struct {
	db     *gorm.DB
	mapper mappers.AddressBookMapper
	logger logger.Interface
}

func NewAddressBookRepository(db *gorm.DB, log logger.Interface) *AddressBookRepository {
	return &AddressBookRepository{
		db:     db,
		mapper: mappers.NewAddressBookMapper(),
		logger: log,
	}
}

// GetByOwner returns a not-found error when the owner has no book yet.
func (r *AddressBookRepository) GetByOwner(ctx context.Context, ownerID uint) (*addressbook.AddressBook, error) {
	var model models.AddressBookModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("owner_id = ?", ownerID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("address book not found")
		}
		return nil, fmt.Errorf("failed to find address book: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// Save inserts a new book or replaces the stored document when its version
// still matches. Losing either race reports a concurrency conflict.
func (r *AddressBookRepository) Save(ctx context.Context, book *addressbook.AddressBook) error {
	model, err := r.mapper.ToModel(book)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if model.ID == 0 {
		if err := tx.Create(model).Error; err != nil {
			if apperrors.IsDuplicateError(err) {
				return apperrors.NewConcurrencyConflictError("address book was created concurrently")
			}
			return fmt.Errorf("failed to create address book: %w", err)
		}
		book.SetID(model.ID)
		return nil
	}

	result := tx.
		Model(&models.AddressBookModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version).
		Updates(map[string]interface{}{
			"entries":    model.Entries,
			"version":    gorm.Expr("version + 1"),
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update address book: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.logger.Warnw("address book version mismatch", "owner_id", model.OwnerID, "version", model.Version)
		return apperrors.NewConcurrencyConflictError("address book was modified concurrently")
	}
	book.SetVersion(model.Version + 1)
	return nil
}
