package usecases

import (
	"context"

	"helpcenter/internal/domain/addressbook"
	"helpcenter/internal/shared/biztime"
	"helpcenter/internal/shared/errors"
	"helpcenter/internal/shared/logger"
)

// loadOrCreate returns the owner's book, creating an empty one on first
// access. Losing the creation race to another request re-reads the winner.
// A stored book without exactly one default is repaired and written back.
func loadOrCreate(ctx context.Context, repo addressbook.Repository, ownerID uint, clock biztime.Clock, log logger.Interface) (*addressbook.AddressBook, error) {
	book, err := repo.GetByOwner(ctx, ownerID)
	if err == nil {
		repairOnLoad(ctx, repo, book, log)
		return book, nil
	}
	if !errors.IsNotFoundError(err) {
		return nil, err
	}

	book, err = addressbook.NewAddressBook(ownerID, clock())
	if err != nil {
		return nil, err
	}
	if err := repo.Save(ctx, book); err != nil {
		if errors.IsConcurrencyConflictError(err) {
			book, err = repo.GetByOwner(ctx, ownerID)
			if err != nil {
				return nil, err
			}
			repairOnLoad(ctx, repo, book, log)
			return book, nil
		}
		return nil, err
	}
	return book, nil
}

// repairOnLoad fixes the default flag in memory. Failing to persist the fix
// is only logged: the next successful save stores it, and a stale version
// makes that save retry against fresh state.
func repairOnLoad(ctx context.Context, repo addressbook.Repository, book *addressbook.AddressBook, log logger.Interface) {
	if !book.Repair() {
		return
	}
	log.Warnw("address book default flag repaired", "owner_id", book.OwnerID(), "entries", len(book.Entries()))
	if err := repo.Save(ctx, book); err != nil {
		log.Warnw("failed to store repaired address book", "owner_id", book.OwnerID(), "error", err)
	}
}

// mutateBook applies fn to the current document and saves it. A version
// conflict re-reads the book and applies fn once more against fresh state.
func mutateBook(
	ctx context.Context,
	repo addressbook.Repository,
	ownerID uint,
	clock biztime.Clock,
	log logger.Interface,
	fn func(book *addressbook.AddressBook) error,
) (*addressbook.AddressBook, error) {
	if ownerID == 0 {
		return nil, errors.NewUnauthorizedError("sign in to manage addresses")
	}

	var err error
	for attempt := 0; attempt < 2; attempt++ {
		var book *addressbook.AddressBook
		book, err = loadOrCreate(ctx, repo, ownerID, clock, log)
		if err != nil {
			return nil, err
		}
		if err = fn(book); err != nil {
			return nil, err
		}
		if err = book.Validate(); err != nil {
			log.Errorw("address book invariant violated", "owner_id", ownerID, "error", err)
			return nil, errors.NewInternalError("address book invariant violated", err.Error())
		}
		err = repo.Save(ctx, book)
		if err == nil {
			return book, nil
		}
		if !errors.IsConcurrencyConflictError(err) {
			return nil, err
		}
	}
	return nil, err
}
