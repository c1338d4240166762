package usecases

import (
	"context"

	"helpcenter/internal/application/ticket/dto"
	"helpcenter/internal/domain/shared/events"
	"helpcenter/internal/domain/ticket"
	vo "helpcenter/internal/domain/ticket/valueobjects"
	"helpcenter/internal/shared/biztime"
	"helpcenter/internal/shared/db"
	"helpcenter/internal/shared/errors"
	"helpcenter/internal/shared/logger"
)

type ChangeStatusCommand struct {
	Number  string
	Status  string
	ActorID uint
}

// ChangeStatusUseCase is the administrative status override.
type ChangeStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	txRunner   db.TxRunner
	publisher  events.EventPublisher
	clock      biztime.Clock
	logger     logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.TicketRepository,
	txRunner db.TxRunner,
	publisher events.EventPublisher,
	clock biztime.Clock,
	logger logger.Interface,
) *ChangeStatusUseCase {
	if clock == nil {
		clock = biztime.SystemClock
	}
	return &ChangeStatusUseCase{
		ticketRepo: ticketRepo,
		txRunner:   txRunner,
		publisher:  publisher,
		clock:      clock,
		logger:     logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing change status use case", "number", cmd.Number, "status", cmd.Status, "actor_id", cmd.ActorID)

	next, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, err
	}

	now := uc.clock()
	var tr ticket.StatusTransition
	t, err := mutateTicket(ctx, uc.txRunner, uc.ticketRepo, cmd.Number, func(_ context.Context, t *ticket.Ticket) error {
		var err error
		tr, err = t.ChangeStatus(next, cmd.ActorID, now)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to change ticket status", "number", cmd.Number, "error", err)
		return nil, err
	}

	if tr.Changed() {
		if err := uc.publisher.Publish(ticket.NewTicketStatusChangedEvent(t, tr, now)); err != nil {
			uc.logger.Warnw("failed to publish ticket status event", "number", t.Number(), "error", err)
		}
	}

	uc.logger.Infow("ticket status changed", "number", t.Number(), "old_status", tr.Old, "new_status", tr.New)
	return dto.ToTicketDTO(t, false), nil
}

type ChangePriorityCommand struct {
	Number   string
	Priority string
	ActorID  uint
}

// ChangePriorityUseCase changes priority without touching status.
type ChangePriorityUseCase struct {
	ticketRepo ticket.TicketRepository
	txRunner   db.TxRunner
	clock      biztime.Clock
	logger     logger.Interface
}

func NewChangePriorityUseCase(
	ticketRepo ticket.TicketRepository,
	txRunner db.TxRunner,
	clock biztime.Clock,
	logger logger.Interface,
) *ChangePriorityUseCase {
	if clock == nil {
		clock = biztime.SystemClock
	}
	return &ChangePriorityUseCase{
		ticketRepo: ticketRepo,
		txRunner:   txRunner,
		clock:      clock,
		logger:     logger,
	}
}

func (uc *ChangePriorityUseCase) Execute(ctx context.Context, cmd ChangePriorityCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing change priority use case", "number", cmd.Number, "priority", cmd.Priority, "actor_id", cmd.ActorID)

	if cmd.Priority == "" {
		return nil, errors.NewValidationError("priority is required")
	}
	next, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, err
	}

	var old vo.Priority
	t, err := mutateTicket(ctx, uc.txRunner, uc.ticketRepo, cmd.Number, func(_ context.Context, t *ticket.Ticket) error {
		var err error
		old, err = t.ChangePriority(next, uc.clock())
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to change ticket priority", "number", cmd.Number, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket priority changed", "number", t.Number(), "old_priority", old, "new_priority", next)
	return dto.ToTicketDTO(t, false), nil
}
