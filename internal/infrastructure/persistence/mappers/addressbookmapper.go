package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"helpcenter/internal/domain/addressbook"
	"helpcenter/internal/infrastructure/persistence/models"
	"helpcenter/internal/shared/biztime"
)

type AddressBookMapper interface {
	ToModel(b *addressbook.AddressBook) (*models.AddressBookModel, error)
	ToDomain(model *models.AddressBookModel) (*addressbook.AddressBook, error)
}

type AddressBookMapperImpl struct{}

func NewAddressBookMapper() AddressBookMapper {
	return &AddressBookMapperImpl{}
}

func (m *AddressBookMapperImpl) ToModel(b *addressbook.AddressBook) (*models.AddressBookModel, error) {
	entries, err := json.Marshal(b.Entries())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal address entries: %w", err)
	}
	return &models.AddressBookModel{
		ID:        b.ID(),
		OwnerID:   b.OwnerID(),
		Entries:   datatypes.JSON(entries),
		Version:   b.Version(),
		CreatedAt: b.CreatedAt().UnixMilli(),
		UpdatedAt: b.UpdatedAt().UnixMilli(),
	}, nil
}

func (m *AddressBookMapperImpl) ToDomain(model *models.AddressBookModel) (*addressbook.AddressBook, error) {
	var entries []addressbook.Entry
	if len(model.Entries) > 0 {
		if err := json.Unmarshal(model.Entries, &entries); err != nil {
			return nil, fmt.Errorf("failed to unmarshal address entries (owner=%d): %w", model.OwnerID, err)
		}
	}
	return addressbook.ReconstructAddressBook(
		model.ID,
		model.OwnerID,
		entries,
		model.Version,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	), nil
}
