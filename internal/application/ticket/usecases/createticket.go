package usecases

import (
	"context"

	"helpcenter/internal/application/ticket/dto"
	"helpcenter/internal/domain/shared/events"
	"helpcenter/internal/domain/ticket"
	vo "helpcenter/internal/domain/ticket/valueobjects"
	"helpcenter/internal/shared/biztime"
	"helpcenter/internal/shared/logger"
)

// NumberSource issues ticket numbers.
type NumberSource interface {
	Next(ctx context.Context, counterName, prefix string) (string, error)
}

type NumberingConfig struct {
	CounterName string
	Prefix      string
}

type CreateTicketCommand struct {
	Subject      string
	Body         string
	Category     string
	Priority     string
	Attachments  []string
	ContactEmail string
	ContactName  string
	Actor        Actor
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	numbers    NumberSource
	numbering  NumberingConfig
	publisher  events.EventPublisher
	clock      biztime.Clock
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	numbers NumberSource,
	numbering NumberingConfig,
	publisher events.EventPublisher,
	clock biztime.Clock,
	logger logger.Interface,
) *CreateTicketUseCase {
	if numbering.CounterName == "" {
		numbering.CounterName = ticket.DefaultCounterName
	}
	if numbering.Prefix == "" {
		numbering.Prefix = ticket.DefaultTicketPrefix
	}
	if clock == nil {
		clock = biztime.SystemClock
	}
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		numbers:    numbers,
		numbering:  numbering,
		publisher:  publisher,
		clock:      clock,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case",
		"subject", cmd.Subject, "role", cmd.Actor.Role, "user_id", cmd.Actor.ID)

	ownerRole, err := cmd.Actor.ownerRole()
	if err != nil {
		return nil, err
	}
	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, err
	}

	contactEmail := cmd.ContactEmail
	if contactEmail == "" {
		contactEmail = cmd.Actor.Email
	}

	params := ticket.NewTicketParams{
		Subject:      cmd.Subject,
		Category:     vo.NewCategory(cmd.Category),
		Priority:     priority,
		OwnerRole:    ownerRole,
		OwnerID:      cmd.Actor.ID,
		ContactEmail: contactEmail,
		ContactName:  cmd.ContactName,
	}
	if err := ticket.ValidateOpening(params, cmd.Body, cmd.Attachments); err != nil {
		return nil, err
	}

	number, err := uc.numbers.Next(ctx, uc.numbering.CounterName, uc.numbering.Prefix)
	if err != nil {
		uc.logger.Errorw("failed to generate ticket number", "error", err)
		return nil, err
	}
	params.Number = number

	now := uc.clock()
	t, err := ticket.NewTicket(params, now)
	if err != nil {
		return nil, err
	}

	if _, _, err := t.AddMessage(vo.SenderUser, t.OwnerID(), cmd.Body, cmd.Attachments, now); err != nil {
		return nil, err
	}

	if err := uc.ticketRepo.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "number", number, "error", err)
		return nil, err
	}

	if err := uc.publisher.Publish(ticket.NewTicketCreatedEvent(t)); err != nil {
		uc.logger.Warnw("failed to publish ticket created event", "number", number, "error", err)
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", t.ID(), "number", t.Number(), "owner_role", ownerRole)
	return dto.ToTicketDTO(t, true), nil
}
