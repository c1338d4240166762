package onboarding

import "context"

// Repository stores one progress document per (owner, guide slug).
// Upsert is last-write-wins.
type Repository interface {
	Get(ctx context.Context, ownerID uint, guideSlug string) (*Progress, error)
	Upsert(ctx context.Context, p *Progress) error
	ListByOwner(ctx context.Context, ownerID uint) ([]*Progress, error)
}
