package usecases

import (
	"context"
	"sync"

	"helpcenter/internal/domain/addressbook"
	"helpcenter/internal/shared/errors"
)

// memoryBookRepository keeps one document per owner and enforces the same
// version check as the gorm repository.
type memoryBookRepository struct {
	mu     sync.Mutex
	books  map[uint]*addressbook.AddressBook
	nextID uint
	saves  int

	SaveFunc func(ctx context.Context, book *addressbook.AddressBook) error
}

func newMemoryBookRepository() *memoryBookRepository {
	return &memoryBookRepository{books: make(map[uint]*addressbook.AddressBook)}
}

func (m *memoryBookRepository) GetByOwner(ctx context.Context, ownerID uint) (*addressbook.AddressBook, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.books[ownerID]
	if !ok {
		return nil, errors.NewNotFoundError("address book not found")
	}
	return addressbook.ReconstructAddressBook(stored.ID(), stored.OwnerID(), stored.Entries(), stored.Version(), stored.CreatedAt(), stored.UpdatedAt()), nil
}

func (m *memoryBookRepository) Save(ctx context.Context, book *addressbook.AddressBook) error {
	if m.SaveFunc != nil {
		if err := m.SaveFunc(ctx, book); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++

	stored, ok := m.books[book.OwnerID()]
	if book.ID() == 0 {
		if ok {
			return errors.NewConcurrencyConflictError("address book was created concurrently")
		}
		m.nextID++
		book.SetID(m.nextID)
	} else {
		if !ok || stored.Version() != book.Version() {
			return errors.NewConcurrencyConflictError("address book was modified concurrently")
		}
		book.SetVersion(book.Version() + 1)
	}
	m.books[book.OwnerID()] = addressbook.ReconstructAddressBook(book.ID(), book.OwnerID(), book.Entries(), book.Version(), book.CreatedAt(), book.UpdatedAt())
	return nil
}
