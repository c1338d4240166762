package events

import "time"

// DomainEvent is a fact emitted after an aggregate changed.
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetOccurredAt() time.Time
}

// BaseEvent provides common fields for all domain events
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func NewBaseEvent(aggregateID, eventType string, at time.Time) BaseEvent {
	return BaseEvent{AggregateID: aggregateID, EventType: eventType, OccurredAt: at}
}

func (e BaseEvent) GetAggregateID() string   { return e.AggregateID }
func (e BaseEvent) GetEventType() string     { return e.EventType }
func (e BaseEvent) GetOccurredAt() time.Time { return e.OccurredAt }

// EventHandler handles one published event.
type EventHandler interface {
	Handle(event DomainEvent) error
}

// HandlerFunc adapts a function to EventHandler.
type HandlerFunc func(DomainEvent) error

func (f HandlerFunc) Handle(event DomainEvent) error { return f(event) }

// EventPublisher publishes domain events
type EventPublisher interface {
	Publish(event DomainEvent) error
	PublishAll(events []DomainEvent) error
}

// EventDispatcher combines publishing with subscription and lifecycle control.
type EventDispatcher interface {
	EventPublisher
	Subscribe(eventType string, handler EventHandler) error
	Start() error
	Stop() error
}
