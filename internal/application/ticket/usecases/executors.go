package usecases

import (
	"context"

	"helpcenter/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type ReplyTicketExecutor interface {
	Execute(ctx context.Context, cmd ReplyTicketCommand) (*ReplyTicketResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.TicketDTO, error)
}

type ChangePriorityExecutor interface {
	Execute(ctx context.Context, cmd ChangePriorityCommand) (*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}
