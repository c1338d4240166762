package addressbook

import "context"

// Repository stores one document per owner. Save inserts when the book has
// no id and otherwise replaces it only if the stored version still matches,
// reporting a concurrency conflict when it does not.
type Repository interface {
	GetByOwner(ctx context.Context, ownerID uint) (*AddressBook, error)
	Save(ctx context.Context, book *AddressBook) error
}
