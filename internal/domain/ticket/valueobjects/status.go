package valueobjects

import (
	"strings"

	"helpcenter/internal/shared/errors"
)

type TicketStatus string

const (
	StatusOpen       TicketStatus = "OPEN"
	StatusInProgress TicketStatus = "IN_PROGRESS"
	StatusResolved   TicketStatus = "RESOLVED"
	StatusClosed     TicketStatus = "CLOSED"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

// IsSettled reports whether the ticket is resolved or closed; an owner
// reply on a settled ticket reopens it.
func (ts TicketStatus) IsSettled() bool {
	return ts == StatusResolved || ts == StatusClosed
}

// NewTicketStatus parses s case-insensitively.
func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !ts.IsValid() {
		return "", errors.NewInvalidTransitionError("invalid ticket status", s)
	}
	return ts, nil
}
