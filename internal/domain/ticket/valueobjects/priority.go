package valueobjects

import (
	"strings"

	"helpcenter/internal/shared/errors"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

var validPriorities = map[Priority]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
	PriorityUrgent: true,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

// NewPriority parses s case-insensitively; empty selects MEDIUM.
func NewPriority(s string) (Priority, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PriorityMedium, nil
	}
	p := Priority(strings.ToUpper(s))
	if !p.IsValid() {
		return "", errors.NewInvalidTransitionError("invalid ticket priority", s)
	}
	return p, nil
}
