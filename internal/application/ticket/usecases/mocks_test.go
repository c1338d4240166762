package usecases

import (
	"context"
	"sync"

	"helpcenter/internal/domain/shared/events"
	"helpcenter/internal/domain/ticket"
)

type mockTicketRepository struct {
	CreateFunc      func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc      func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc     func(ctx context.Context, id uint) (*ticket.Ticket, error)
	GetByNumberFunc func(ctx context.Context, number string) (*ticket.Ticket, error)
	ListFunc        func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockMessageRepository struct {
	CreateFunc       func(ctx context.Context, m *ticket.Message) error
	ListByTicketFunc func(ctx context.Context, ticketID uint) ([]*ticket.Message, error)
}

func (m *mockMessageRepository) Create(ctx context.Context, msg *ticket.Message) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, msg)
	}
	return nil
}

func (m *mockMessageRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

// passthroughTx runs fn directly.
type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockNumberSource struct {
	NextFunc func(ctx context.Context, counterName, prefix string) (string, error)
}

func (m *mockNumberSource) Next(ctx context.Context, counterName, prefix string) (string, error) {
	if m.NextFunc != nil {
		return m.NextFunc(ctx, counterName, prefix)
	}
	return prefix + "-2024-000001", nil
}

type mockEventPublisher struct {
	mu     sync.Mutex
	events []events.DomainEvent
}

func (m *mockEventPublisher) Publish(event events.DomainEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *mockEventPublisher) PublishAll(evts []events.DomainEvent) error {
	for _, e := range evts {
		_ = m.Publish(e)
	}
	return nil
}

func (m *mockEventPublisher) types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, e.GetEventType())
	}
	return out
}
