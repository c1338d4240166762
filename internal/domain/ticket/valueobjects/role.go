package valueobjects

import (
	"strings"

	"helpcenter/internal/shared/errors"
)

// OwnerRole is the kind of account that opened a ticket.
type OwnerRole string

const (
	OwnerGuest    OwnerRole = "GUEST"
	OwnerCustomer OwnerRole = "CUSTOMER"
	OwnerVendor   OwnerRole = "VENDOR"
)

func (r OwnerRole) String() string {
	return string(r)
}

func (r OwnerRole) IsValid() bool {
	switch r {
	case OwnerGuest, OwnerCustomer, OwnerVendor:
		return true
	}
	return false
}

func NewOwnerRole(s string) (OwnerRole, error) {
	r := OwnerRole(strings.ToUpper(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", errors.NewValidationError("invalid ticket owner role", s)
	}
	return r, nil
}

// SenderRole tells whether a message came from the ticket owner or an operator.
type SenderRole string

const (
	SenderUser  SenderRole = "USER"
	SenderAdmin SenderRole = "ADMIN"
)

func (r SenderRole) String() string {
	return string(r)
}

func (r SenderRole) IsValid() bool {
	return r == SenderUser || r == SenderAdmin
}
