package usecases

import (
	vo "helpcenter/internal/domain/ticket/valueobjects"
	"helpcenter/internal/shared/constants"
	"helpcenter/internal/shared/errors"
)

// Actor is the caller as seen by the ticket use cases.
type Actor struct {
	ID    uint
	Role  string
	Email string
}

func (a Actor) IsAdmin() bool {
	return a.Role == constants.RoleAdmin
}

// ownerRole maps an access-token role to the ticket owner role.
func (a Actor) ownerRole() (vo.OwnerRole, error) {
	switch a.Role {
	case constants.RoleCustomer:
		return vo.OwnerCustomer, nil
	case constants.RoleVendor:
		return vo.OwnerVendor, nil
	case constants.RoleGuest, "":
		return vo.OwnerGuest, nil
	default:
		return "", errors.NewForbiddenError("role cannot own support tickets", a.Role)
	}
}

func (a Actor) senderRole() vo.SenderRole {
	if a.IsAdmin() {
		return vo.SenderAdmin
	}
	return vo.SenderUser
}
