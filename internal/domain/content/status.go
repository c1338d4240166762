package content

import (
	"strings"

	"helpcenter/internal/shared/errors"
)

// Status is the publication state shared by articles, guides and videos.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
	StatusArchived  Status = "ARCHIVED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

func (s Status) IsPublished() bool {
	return s == StatusPublished
}

// ParseStatus accepts any letter case. Unknown values are an invalid transition.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", errors.NewInvalidTransitionError("invalid publication status", s)
	}
	return st, nil
}

// ParseOptionalStatus returns nil for an empty string.
func ParseOptionalStatus(s string) (*Status, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	st, err := ParseStatus(s)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// Audience narrows who a piece of content is written for.
type Audience string

const (
	AudienceAll      Audience = "ALL"
	AudienceCustomer Audience = "CUSTOMER"
	AudienceVendor   Audience = "VENDOR"
)

func (a Audience) String() string {
	return string(a)
}

// ParseAudience coerces unknown or empty values to AudienceAll.
func ParseAudience(s string) Audience {
	switch a := Audience(strings.ToUpper(strings.TrimSpace(s))); a {
	case AudienceCustomer, AudienceVendor:
		return a
	default:
		return AudienceAll
	}
}

// Kind names the entity scope a slug is unique within.
type Kind string

const (
	KindArticle Kind = "article"
	KindGuide   Kind = "guide"
	KindVideo   Kind = "video"
)

func (k Kind) String() string {
	return string(k)
}
