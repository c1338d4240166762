package content

import (
	"context"
	"fmt"

	"helpcenter/internal/shared/biztime"
	"helpcenter/internal/shared/errors"
)

// MaxSlugChecks caps the candidates examined by one allocation, retries included.
const MaxSlugChecks = 1000

// SlugRegistry answers whether a slug is taken within one entity scope by a
// record other than excludeID. Archived records still hold their slugs.
type SlugRegistry interface {
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
}

// SlugAllocator picks the first free candidate of root, root-1, root-2, ...
// The unique index behind the registry is the final arbiter; see AllocateAndPersist.
type SlugAllocator struct {
	registry  SlugRegistry
	now       biztime.Clock
	maxChecks int
}

func NewSlugAllocator(registry SlugRegistry, now biztime.Clock) *SlugAllocator {
	if now == nil {
		now = biztime.SystemClock
	}
	return &SlugAllocator{registry: registry, now: now, maxChecks: MaxSlugChecks}
}

// Allocate returns a slug for rawText that no other record currently holds.
func (a *SlugAllocator) Allocate(ctx context.Context, rawText string, excludeID uint) (string, error) {
	checks := 0
	slug, _, err := a.allocateFrom(ctx, NormalizeSlug(rawText, a.now()), 0, excludeID, &checks)
	return slug, err
}

// AllocateAndPersist allocates a slug and hands it to persist. When persist
// loses a race on the unique index, allocation resumes from the next suffix.
func (a *SlugAllocator) AllocateAndPersist(
	ctx context.Context,
	rawText string,
	excludeID uint,
	persist func(ctx context.Context, slug string) error,
) (string, error) {
	root := NormalizeSlug(rawText, a.now())
	checks := 0
	start := 0

	for {
		slug, n, err := a.allocateFrom(ctx, root, start, excludeID, &checks)
		if err != nil {
			return "", err
		}

		err = persist(ctx, slug)
		if err == nil {
			return slug, nil
		}
		if !errors.IsDuplicateError(err) {
			return "", err
		}
		start = n + 1
	}
}

func (a *SlugAllocator) allocateFrom(ctx context.Context, root string, start int, excludeID uint, checks *int) (string, int, error) {
	for n := start; ; n++ {
		if *checks >= a.maxChecks {
			return "", 0, errors.NewUniquenessExhaustedError(
				"no free slug found", fmt.Sprintf("root %q after %d candidates", root, *checks))
		}
		*checks++

		candidate := SlugCandidate(root, n)
		taken, err := a.registry.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", 0, fmt.Errorf("check slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, n, nil
		}
	}
}
