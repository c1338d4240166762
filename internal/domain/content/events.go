package content

import (
	"time"

	"helpcenter/internal/domain/shared/events"
)

const EventPublicationChanged = "content.publication_changed"

// PublicationChangedEvent is emitted whenever a content status moves.
type PublicationChangedEvent struct {
	events.BaseEvent
	Kind        Kind
	ContentID   uint
	Slug        string
	From        Status
	To          Status
	PublishedAt *time.Time
	ActorID     uint
}

func NewPublicationChangedEvent(kind Kind, id uint, slug string, tr PublicationTransition, actorID uint, at time.Time) PublicationChangedEvent {
	return PublicationChangedEvent{
		BaseEvent:   events.NewBaseEvent(kind.String()+":"+slug, EventPublicationChanged, at),
		Kind:        kind,
		ContentID:   id,
		Slug:        slug,
		From:        tr.From,
		To:          tr.To,
		PublishedAt: tr.PublishedAt,
		ActorID:     actorID,
	}
}
