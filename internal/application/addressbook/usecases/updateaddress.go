package usecases

import (
	"context"

	"helpcenter/internal/application/addressbook/dto"
	"helpcenter/internal/domain/addressbook"
	"helpcenter/internal/shared/biztime"
	"helpcenter/internal/shared/errors"
	"helpcenter/internal/shared/logger"
)

// UpdateAddressCommand carries optional fields; nil leaves a field as is.
type UpdateAddressCommand struct {
	OwnerID       uint
	AddressID     string
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

type UpdateAddressUseCase struct {
	repo   addressbook.Repository
	clock  biztime.Clock
	logger logger.Interface
}

func NewUpdateAddressUseCase(repo addressbook.Repository, clock biztime.Clock, logger logger.Interface) *UpdateAddressUseCase {
	return &UpdateAddressUseCase{repo: repo, clock: clock, logger: logger}
}

func (uc *UpdateAddressUseCase) Execute(ctx context.Context, cmd UpdateAddressCommand) (*AddressResult, error) {
	uc.logger.Infow("executing update address use case", "owner_id", cmd.OwnerID, "address_id", cmd.AddressID)

	if cmd.AddressID == "" {
		return nil, errors.NewValidationError("address ID is required")
	}

	patch := addressbook.EntryPatch{
		Label:         cmd.Label,
		RecipientName: cmd.RecipientName,
		Phone:         cmd.Phone,
		Line1:         cmd.Line1,
		Line2:         cmd.Line2,
		City:          cmd.City,
		Region:        cmd.Region,
		PostalCode:    cmd.PostalCode,
		Country:       cmd.Country,
		IsDefault:     cmd.IsDefault,
	}

	var updated addressbook.Entry
	book, err := mutateBook(ctx, uc.repo, cmd.OwnerID, uc.clock, uc.logger, func(book *addressbook.AddressBook) error {
		var err error
		updated, err = book.Update(cmd.AddressID, patch, uc.clock())
		return err
	})
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to update address", "owner_id", cmd.OwnerID, "address_id", cmd.AddressID, "error", err)
		}
		return nil, err
	}

	return &AddressResult{Address: dto.ToAddressDTO(updated), Book: dto.ToAddressBookDTO(book)}, nil
}
