package models

import (
	"gorm.io/datatypes"

	"helpcenter/internal/shared/constants"
)

// AddressBookModel stores the whole entry list as one JSON document per owner.
type AddressBookModel struct {
	ID        uint           `gorm:"primaryKey"`
	OwnerID   uint           `gorm:"uniqueIndex;not null"`
	Entries   datatypes.JSON `gorm:"type:json;not null"`
	Version   int            `gorm:"not null;default:1"`
	CreatedAt int64          `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64          `gorm:"autoUpdateTime:milli;not null"`
}

func (AddressBookModel) TableName() string {
	return constants.TableAddressBooks
}
