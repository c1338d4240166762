package ticket

import (
	"time"

	"helpcenter/internal/domain/shared/events"
)

const (
	EventTicketCreated       = "ticket.created"
	EventTicketStatusChanged = "ticket.status_changed"
	EventTicketReplied       = "ticket.replied"
)

type TicketCreatedEvent struct {
	events.BaseEvent
	TicketID     uint
	Number       string
	Subject      string
	OwnerRole    string
	OwnerID      uint
	ContactEmail string
	ContactName  string
	Priority     string
	Category     string
}

func NewTicketCreatedEvent(t *Ticket) TicketCreatedEvent {
	return TicketCreatedEvent{
		BaseEvent:    events.NewBaseEvent(t.Number(), EventTicketCreated, t.CreatedAt()),
		TicketID:     t.ID(),
		Number:       t.Number(),
		Subject:      t.Subject(),
		OwnerRole:    t.OwnerRole().String(),
		OwnerID:      t.OwnerID(),
		ContactEmail: t.ContactEmail(),
		ContactName:  t.ContactName(),
		Priority:     t.Priority().String(),
		Category:     t.Category().String(),
	}
}

type TicketStatusChangedEvent struct {
	events.BaseEvent
	TicketID     uint
	Number       string
	Subject      string
	ContactEmail string
	OldStatus    string
	NewStatus    string
	ActorRole    string
	ActorID      uint
	Automatic    bool
}

func NewTicketStatusChangedEvent(t *Ticket, tr StatusTransition, at time.Time) TicketStatusChangedEvent {
	return TicketStatusChangedEvent{
		BaseEvent:    events.NewBaseEvent(t.Number(), EventTicketStatusChanged, at),
		TicketID:     t.ID(),
		Number:       t.Number(),
		Subject:      t.Subject(),
		ContactEmail: t.ContactEmail(),
		OldStatus:    tr.Old.String(),
		NewStatus:    tr.New.String(),
		ActorRole:    tr.ActorRole.String(),
		ActorID:      tr.ActorID,
		Automatic:    tr.Automatic,
	}
}

type TicketRepliedEvent struct {
	events.BaseEvent
	TicketID     uint
	Number       string
	Subject      string
	ContactEmail string
	MessageID    uint
	SenderRole   string
	SenderID     uint
	Body         string
}

func NewTicketRepliedEvent(t *Ticket, m *Message) TicketRepliedEvent {
	return TicketRepliedEvent{
		BaseEvent:    events.NewBaseEvent(t.Number(), EventTicketReplied, m.CreatedAt()),
		TicketID:     t.ID(),
		Number:       t.Number(),
		Subject:      t.Subject(),
		ContactEmail: t.ContactEmail(),
		MessageID:    m.ID(),
		SenderRole:   m.SenderRole().String(),
		SenderID:     m.SenderID(),
		Body:         m.Body(),
	}
}
