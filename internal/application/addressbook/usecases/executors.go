package usecases

import (
	"context"

	"helpcenter/internal/application/addressbook/dto"
)

type GetAddressBookExecutor interface {
	Execute(ctx context.Context, ownerID uint) (*dto.AddressBookDTO, error)
}

type AddAddressExecutor interface {
	Execute(ctx context.Context, cmd AddAddressCommand) (*AddressResult, error)
}

type UpdateAddressExecutor interface {
	Execute(ctx context.Context, cmd UpdateAddressCommand) (*AddressResult, error)
}

type RemoveAddressExecutor interface {
	Execute(ctx context.Context, ownerID uint, addressID string) (*dto.AddressBookDTO, error)
}
