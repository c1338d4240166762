package ticket

import (
	"context"

	vo "helpcenter/internal/domain/ticket/valueobjects"
)

type TicketFilter struct {
	OwnerRole *vo.OwnerRole
	OwnerID   *uint
	Status    *vo.TicketStatus
	Priority  *vo.Priority
	Category  *vo.Category
	Page      int
	PageSize  int
}

// TicketRepository persists tickets. Create stores the ticket and its
// unsaved thread. Update is optimistic on Version and reports a
// concurrency conflict when the stored version moved.
type TicketRepository interface {
	Create(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	GetByNumber(ctx context.Context, number string) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
}

type MessageRepository interface {
	Create(ctx context.Context, m *Message) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*Message, error)
}
