package usecases

import (
	"context"

	"helpcenter/internal/application/addressbook/dto"
	"helpcenter/internal/domain/addressbook"
	"helpcenter/internal/shared/biztime"
	"helpcenter/internal/shared/errors"
	"helpcenter/internal/shared/logger"
)

type AddAddressCommand struct {
	OwnerID       uint
	Label         string
	RecipientName string
	Phone         string
	Line1         string
	Line2         string
	City          string
	Region        string
	PostalCode    string
	Country       string
	IsDefault     bool
}

type AddressResult struct {
	Address dto.AddressDTO      `json:"address"`
	Book    *dto.AddressBookDTO `json:"address_book"`
}

type AddAddressUseCase struct {
	repo   addressbook.Repository
	clock  biztime.Clock
	logger logger.Interface
}

func NewAddAddressUseCase(repo addressbook.Repository, clock biztime.Clock, logger logger.Interface) *AddAddressUseCase {
	return &AddAddressUseCase{repo: repo, clock: clock, logger: logger}
}

func (uc *AddAddressUseCase) Execute(ctx context.Context, cmd AddAddressCommand) (*AddressResult, error) {
	uc.logger.Infow("executing add address use case", "owner_id", cmd.OwnerID)

	entry := addressbook.Entry{
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

	var inserted addressbook.Entry
	book, err := mutateBook(ctx, uc.repo, cmd.OwnerID, uc.clock, uc.logger, func(book *addressbook.AddressBook) error {
		var err error
		inserted, err = book.Insert(entry, uc.clock())
		return err
	})
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to add address", "owner_id", cmd.OwnerID, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("address added", "owner_id", cmd.OwnerID, "address_id", inserted.ID, "is_default", inserted.IsDefault)
	return &AddressResult{Address: dto.ToAddressDTO(inserted), Book: dto.ToAddressBookDTO(book)}, nil
}
