package usecases

import (
	"context"
	"time"

	"helpcenter/internal/domain/content"
	"helpcenter/internal/domain/shared/events"
	"helpcenter/internal/shared/logger"
)

// entity is the surface articles, guides and videos share.
type entity interface {
	content.Publishable
	ID() uint
	Slug() string
	Touch(now time.Time)
}

type entityStore[T entity] interface {
	GetByID(ctx context.Context, id uint) (T, error)
	GetBySlug(ctx context.Context, slug string) (T, error)
	Update(ctx context.Context, e T) error
}

type entityLister[T entity] interface {
	List(ctx context.Context, filter content.ListFilter) ([]T, int64, error)
}

// publishTransition emits a publication fact when the status moved.
// Delivery is best effort; a failed publish is logged and swallowed.
func publishTransition(
	publisher events.EventPublisher,
	log logger.Interface,
	kind content.Kind,
	e entity,
	tr content.PublicationTransition,
	actorID uint,
	at time.Time,
) {
	if publisher == nil || !tr.Changed() {
		return
	}
	event := content.NewPublicationChangedEvent(kind, e.ID(), e.Slug(), tr, actorID, at)
	if err := publisher.Publish(event); err != nil {
		log.Warnw("failed to publish publication event",
			"kind", kind, "id", e.ID(), "to", tr.To, "error", err)
	}
}

func parseRequestedStatus(s *string) (*content.Status, error) {
	if s == nil {
		return nil, nil
	}
	return content.ParseOptionalStatus(*s)
}

// persistEdit saves an edited entity, re-slugging it first when its title moved.
func persistEdit[T entity](
	ctx context.Context,
	slugs *content.SlugAllocator,
	e T,
	titleChanged bool,
	title string,
	setSlug func(string),
	update func(context.Context, T) error,
) error {
	if !titleChanged {
		return update(ctx, e)
	}
	_, err := slugs.AllocateAndPersist(ctx, title, e.ID(), func(ctx context.Context, slug string) error {
		setSlug(slug)
		return update(ctx, e)
	})
	return err
}
