package usecases

import (
	"context"

	"helpcenter/internal/application/ticket/dto"
	"helpcenter/internal/domain/shared/events"
	"helpcenter/internal/domain/ticket"
	"helpcenter/internal/shared/biztime"
	"helpcenter/internal/shared/db"
	"helpcenter/internal/shared/errors"
	"helpcenter/internal/shared/logger"
)

type ReplyTicketCommand struct {
	Number      string
	Body        string
	Attachments []string
	Actor       Actor
}

type ReplyTicketResult struct {
	Ticket  *dto.TicketDTO `json:"ticket"`
	Message dto.MessageDTO `json:"message"`
}

// ReplyTicketUseCase appends to the thread and applies the automatic status
// rules. The message insert and the ticket update commit together.
type ReplyTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	messageRepo ticket.MessageRepository
	txRunner    db.TxRunner
	publisher   events.EventPublisher
	clock       biztime.Clock
	logger      logger.Interface
}

func NewReplyTicketUseCase(
	ticketRepo ticket.TicketRepository,
	messageRepo ticket.MessageRepository,
	txRunner db.TxRunner,
	publisher events.EventPublisher,
	clock biztime.Clock,
	logger logger.Interface,
) *ReplyTicketUseCase {
	if clock == nil {
		clock = biztime.SystemClock
	}
	return &ReplyTicketUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		txRunner:    txRunner,
		publisher:   publisher,
		clock:       clock,
		logger:      logger,
	}
}

func (uc *ReplyTicketUseCase) Execute(ctx context.Context, cmd ReplyTicketCommand) (*ReplyTicketResult, error) {
	uc.logger.Infow("executing reply ticket use case",
		"number", cmd.Number, "role", cmd.Actor.Role, "user_id", cmd.Actor.ID)

	var (
		msg *ticket.Message
		tr  ticket.StatusTransition
	)
	t, err := mutateTicket(ctx, uc.txRunner, uc.ticketRepo, cmd.Number, func(ctx context.Context, t *ticket.Ticket) error {
		if !canAccess(cmd.Actor, t) {
			return errors.NewNotFoundError("ticket not found")
		}

		m, transition, err := t.AddMessage(cmd.Actor.senderRole(), cmd.Actor.ID, cmd.Body, cmd.Attachments, uc.clock())
		if err != nil {
			return err
		}
		if err := uc.messageRepo.Create(ctx, m); err != nil {
			return err
		}
		msg, tr = m, transition
		return nil
	})
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to reply to ticket", "number", cmd.Number, "error", err)
		}
		return nil, err
	}

	if err := uc.publisher.Publish(ticket.NewTicketRepliedEvent(t, msg)); err != nil {
		uc.logger.Warnw("failed to publish ticket replied event", "number", t.Number(), "error", err)
	}
	if tr.Changed() {
		if err := uc.publisher.Publish(ticket.NewTicketStatusChangedEvent(t, tr, msg.CreatedAt())); err != nil {
			uc.logger.Warnw("failed to publish ticket status event", "number", t.Number(), "error", err)
		}
	}

	uc.logger.Infow("ticket reply added",
		"number", t.Number(), "message_id", msg.ID(), "old_status", tr.Old, "new_status", tr.New)

	return &ReplyTicketResult{
		Ticket:  dto.ToTicketDTO(t, true),
		Message: dto.ToMessageDTO(msg),
	}, nil
}
