package usecases

import (
	"context"

	"helpcenter/internal/application/addressbook/dto"
	"helpcenter/internal/domain/addressbook"
	"helpcenter/internal/shared/biztime"
	"helpcenter/internal/shared/errors"
	"helpcenter/internal/shared/logger"
)

type GetAddressBookUseCase struct {
	repo   addressbook.Repository
	clock  biztime.Clock
	logger logger.Interface
}

func NewGetAddressBookUseCase(repo addressbook.Repository, clock biztime.Clock, logger logger.Interface) *GetAddressBookUseCase {
	return &GetAddressBookUseCase{repo: repo, clock: clock, logger: logger}
}

// Execute returns the owner's book, creating an empty one on first access.
func (uc *GetAddressBookUseCase) Execute(ctx context.Context, ownerID uint) (*dto.AddressBookDTO, error) {
	if ownerID == 0 {
		return nil, errors.NewUnauthorizedError("sign in to manage addresses")
	}

	book, err := loadOrCreate(ctx, uc.repo, ownerID, uc.clock, uc.logger)
	if err != nil {
		uc.logger.Errorw("failed to load address book", "owner_id", ownerID, "error", err)
		return nil, err
	}
	return dto.ToAddressBookDTO(book), nil
}
