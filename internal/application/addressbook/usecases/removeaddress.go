package usecases

import (
	"context"

	"helpcenter/internal/application/addressbook/dto"
	"helpcenter/internal/domain/addressbook"
	"helpcenter/internal/shared/biztime"
	"helpcenter/internal/shared/errors"
	"helpcenter/internal/shared/logger"
)

type RemoveAddressUseCase struct {
	repo   addressbook.Repository
	clock  biztime.Clock
	logger logger.Interface
}

func NewRemoveAddressUseCase(repo addressbook.Repository, clock biztime.Clock, logger logger.Interface) *RemoveAddressUseCase {
	return &RemoveAddressUseCase{repo: repo, clock: clock, logger: logger}
}

// Execute removes the address and returns the remaining book. Removing the
// default promotes the first remaining address.
func (uc *RemoveAddressUseCase) Execute(ctx context.Context, ownerID uint, addressID string) (*dto.AddressBookDTO, error) {
	uc.logger.Infow("executing remove address use case", "owner_id", ownerID, "address_id", addressID)

	if addressID == "" {
		return nil, errors.NewValidationError("address ID is required")
	}

	book, err := mutateBook(ctx, uc.repo, ownerID, uc.clock, uc.logger, func(book *addressbook.AddressBook) error {
		return book.Remove(addressID, uc.clock())
	})
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to remove address", "owner_id", ownerID, "address_id", addressID, "error", err)
		}
		return nil, err
	}
	return dto.ToAddressBookDTO(book), nil
}
