// Package addressbook holds each owner's saved shipping addresses. A
// non-empty book always has exactly one default entry.
package addressbook

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"helpcenter/internal/shared/errors"
)

const maxEntries = 50

// Entry is one saved address.
type Entry struct {
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

func (e Entry) validate() error {
	var missing []string
	if strings.TrimSpace(e.RecipientName) == "" {
		missing = append(missing, "recipient_name")
	}
	if strings.TrimSpace(e.Line1) == "" {
		missing = append(missing, "line1")
	}
	if strings.TrimSpace(e.City) == "" {
		missing = append(missing, "city")
	}
	if strings.TrimSpace(e.Country) == "" {
		missing = append(missing, "country")
	}
	if len(missing) > 0 {
		return errors.NewValidationError("address is incomplete", "missing "+strings.Join(missing, ", "))
	}
	return nil
}

// EntryPatch carries optional edits. IsDefault=false never removes the
// default flag from the current default entry.
type EntryPatch struct {
	Label         *string
	RecipientName *string
	Phone         *string
	Line1         *string
	Line2         *string
	City          *string
	Region        *string
	PostalCode    *string
	Country       *string
	IsDefault     *bool
}

// AddressBook is the whole-document aggregate stored per owner.
type AddressBook struct {
	id        uint
	ownerID   uint
	entries   []Entry
	version   int
	createdAt time.Time
	updatedAt time.Time
}

func NewAddressBook(ownerID uint, now time.Time) (*AddressBook, error) {
	if ownerID == 0 {
		return nil, errors.NewValidationError("owner ID is required")
	}
	return &AddressBook{ownerID: ownerID, entries: []Entry{}, version: 1, createdAt: now, updatedAt: now}, nil
}

func ReconstructAddressBook(id, ownerID uint, entries []Entry, version int, createdAt, updatedAt time.Time) *AddressBook {
	b := &AddressBook{id: id, ownerID: ownerID, version: version, createdAt: createdAt, updatedAt: updatedAt}
	b.entries = append([]Entry{}, entries...)
	return b
}

func (b *AddressBook) ID() uint             { return b.id }
func (b *AddressBook) OwnerID() uint        { return b.ownerID }
func (b *AddressBook) Version() int         { return b.version }
func (b *AddressBook) CreatedAt() time.Time { return b.createdAt }
func (b *AddressBook) UpdatedAt() time.Time { return b.updatedAt }
func (b *AddressBook) Len() int             { return len(b.entries) }

func (b *AddressBook) SetID(id uint)    { b.id = id }
func (b *AddressBook) SetVersion(v int) { b.version = v }

// Entries returns a copy in list order.
func (b *AddressBook) Entries() []Entry {
	return append([]Entry{}, b.entries...)
}

// Default returns the default entry, or false for an empty book.
func (b *AddressBook) Default() (Entry, bool) {
	for _, e := range b.entries {
		if e.IsDefault {
			return e, true
		}
	}
	return Entry{}, false
}

func (b *AddressBook) indexOf(id string) int {
	for i := range b.entries {
		if b.entries[i].ID == id {
			return i
		}
	}
	return -1
}

func (b *AddressBook) clearDefaults() {
	for i := range b.entries {
		b.entries[i].IsDefault = false
	}
}

// Insert appends entry. The first entry is always default; a requested
// default takes the flag from every other entry.
func (b *AddressBook) Insert(entry Entry, now time.Time) (Entry, error) {
	if err := entry.validate(); err != nil {
		return Entry{}, err
	}
	if len(b.entries) >= maxEntries {
		return Entry{}, errors.NewValidationError("address book is full", fmt.Sprintf("at most %d addresses", maxEntries))
	}

	entry.ID = uuid.NewString()
	if len(b.entries) == 0 {
		entry.IsDefault = true
	} else if entry.IsDefault {
		b.clearDefaults()
	}
	b.entries = append(b.entries, entry)
	b.updatedAt = now
	return entry, nil
}

// Update applies patch to the entry with id.
func (b *AddressBook) Update(id string, patch EntryPatch, now time.Time) (Entry, error) {
	i := b.indexOf(id)
	if i < 0 {
		return Entry{}, errors.NewNotFoundError("address not found", id)
	}

	updated := b.entries[i]
	applyString(&updated.Label, patch.Label)
	applyString(&updated.RecipientName, patch.RecipientName)
	applyString(&updated.Phone, patch.Phone)
	applyString(&updated.Line1, patch.Line1)
	applyString(&updated.Line2, patch.Line2)
	applyString(&updated.City, patch.City)
	applyString(&updated.Region, patch.Region)
	applyString(&updated.PostalCode, patch.PostalCode)
	applyString(&updated.Country, patch.Country)
	if err := updated.validate(); err != nil {
		return Entry{}, err
	}

	if patch.IsDefault != nil && *patch.IsDefault {
		b.clearDefaults()
		updated.IsDefault = true
	}
	b.entries[i] = updated
	b.updatedAt = now
	return updated, nil
}

// Remove deletes the entry with id. Removing the default promotes the first remaining entry.
func (b *AddressBook) Remove(id string, now time.Time) error {
	i := b.indexOf(id)
	if i < 0 {
		return errors.NewNotFoundError("address not found", id)
	}

	wasDefault := b.entries[i].IsDefault
	b.entries = append(b.entries[:i], b.entries[i+1:]...)
	if wasDefault && len(b.entries) > 0 {
		b.entries[0].IsDefault = true
	}
	b.updatedAt = now
	return nil
}

// Validate checks that the book is empty or has exactly one default.
func (b *AddressBook) Validate() error {
	if len(b.entries) == 0 {
		return nil
	}
	defaults := 0
	for _, e := range b.entries {
		if e.IsDefault {
			defaults++
		}
	}
	if defaults != 1 {
		return fmt.Errorf("address book for owner %d has %d default entries", b.ownerID, defaults)
	}
	return nil
}

// Repair restores the invariant on a document written by an older writer:
// the first default wins, or the first entry when none is flagged. It
// reports whether anything changed.
func (b *AddressBook) Repair() bool {
	if b.Validate() == nil {
		return false
	}
	keep := 0
	for i, e := range b.entries {
		if e.IsDefault {
			keep = i
			break
		}
	}
	b.clearDefaults()
	b.entries[keep].IsDefault = true
	return true
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
