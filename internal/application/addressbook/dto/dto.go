package dto

import (
	"time"

	"helpcenter/internal/domain/addressbook"
)

type AddressDTO struct {
	ID            string `json:"id"`
	Label         string `json:"label"`
	RecipientName string `json:"recipient_name"`
	Phone         string `json:"phone"`
	Line1         string `json:"line1"`
	Line2         string `json:"line2"`
	City          string `json:"city"`
	Region        string `json:"region"`
	PostalCode    string `json:"postal_code"`
	Country       string `json:"country"`
	IsDefault     bool   `json:"is_default"`
}

type AddressBookDTO struct {
	OwnerID   uint         `json:"owner_id"`
	Addresses []AddressDTO `json:"addresses"`
	DefaultID string       `json:"default_id,omitempty"`
	Version   int          `json:"version"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func ToAddressDTO(e addressbook.Entry) AddressDTO {
	return AddressDTO{
		ID:            e.ID,
		Label:         e.Label,
		RecipientName: e.RecipientName,
		Phone:         e.Phone,
		Line1:         e.Line1,
		Line2:         e.Line2,
		City:          e.City,
		Region:        e.Region,
		PostalCode:    e.PostalCode,
		Country:       e.Country,
		IsDefault:     e.IsDefault,
	}
}

func ToAddressBookDTO(b *addressbook.AddressBook) *AddressBookDTO {
	entries := b.Entries()
	out := &AddressBookDTO{
		OwnerID:   b.OwnerID(),
		Addresses: make([]AddressDTO, len(entries)),
		Version:   b.Version(),
		UpdatedAt: b.UpdatedAt(),
	}
	for i, e := range entries {
		out.Addresses[i] = ToAddressDTO(e)
	}
	if def, ok := b.Default(); ok {
		out.DefaultID = def.ID
	}
	return out
}
