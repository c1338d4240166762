package usecases

import (
	"context"

	"helpcenter/internal/application/ticket/dto"
	"helpcenter/internal/domain/ticket"
	"helpcenter/internal/shared/errors"
	"helpcenter/internal/shared/logger"
)

type GetTicketQuery struct {
	Number string
	Actor  Actor
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

// Execute returns the ticket with its thread. Tickets the actor may not see
// are reported as not found.
func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.Number == "" {
		return nil, errors.NewValidationError("ticket number is required")
	}

	t, err := uc.ticketRepo.GetByNumber(ctx, query.Number)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to get ticket", "number", query.Number, "error", err)
		}
		return nil, err
	}

	if !canAccess(query.Actor, t) {
		uc.logger.Warnw("ticket access denied", "number", query.Number, "user_id", query.Actor.ID, "role", query.Actor.Role)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	return dto.ToTicketDTO(t, true), nil
}
