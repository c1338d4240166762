package usecases

import (
	"context"

	"helpcenter/internal/application/ticket/dto"
	"helpcenter/internal/domain/ticket"
	vo "helpcenter/internal/domain/ticket/valueobjects"
	"helpcenter/internal/shared/constants"
	"helpcenter/internal/shared/errors"
	"helpcenter/internal/shared/logger"
)

// ListTicketsQuery filters are honored for admins. Other callers only ever
// see their own tickets; OwnerRole and OwnerID are overridden for them.
type ListTicketsQuery struct {
	Actor     Actor
	Status    string
	Priority  string
	Category  string
	OwnerRole string
	OwnerID   uint
	Page      int
	PageSize  int
}

type ListTicketsResult struct {
	Tickets  []*dto.TicketDTO
	Total    int64
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	items := make([]*dto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, dto.ToTicketDTO(t, false))
	}

	return &ListTicketsResult{
		Tickets:  items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (uc *ListTicketsUseCase) buildFilter(query ListTicketsQuery) (ticket.TicketFilter, error) {
	filter := ticket.TicketFilter{Page: query.Page, PageSize: query.PageSize}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = constants.DefaultPageSize
	}
	if filter.PageSize > constants.MaxPageSize {
		filter.PageSize = constants.MaxPageSize
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return filter, err
		}
		filter.Priority = &priority
	}
	if query.Category != "" {
		category := vo.NewCategory(query.Category)
		filter.Category = &category
	}

	if query.Actor.IsAdmin() {
		if query.OwnerRole != "" {
			role, err := vo.NewOwnerRole(query.OwnerRole)
			if err != nil {
				return filter, err
			}
			filter.OwnerRole = &role
		}
		if query.OwnerID != 0 {
			ownerID := query.OwnerID
			filter.OwnerID = &ownerID
		}
		return filter, nil
	}

	role, err := query.Actor.ownerRole()
	if err != nil {
		return filter, err
	}
	if role == vo.OwnerGuest || query.Actor.ID == 0 {
		return filter, errors.NewUnauthorizedError("sign in to list tickets")
	}
	ownerID := query.Actor.ID
	filter.OwnerRole = &role
	filter.OwnerID = &ownerID
	return filter, nil
}
