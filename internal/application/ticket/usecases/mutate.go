package usecases

import (
	"context"

	"helpcenter/internal/domain/ticket"
	"helpcenter/internal/shared/db"
	"helpcenter/internal/shared/errors"
)

// mutateTicket loads the ticket by number and runs apply followed by an
// optimistic update inside one transaction. A concurrency conflict reloads
// the ticket and reapplies once.
func mutateTicket(
	ctx context.Context,
	txRunner db.TxRunner,
	repo ticket.TicketRepository,
	number string,
	apply func(ctx context.Context, t *ticket.Ticket) error,
) (*ticket.Ticket, error) {
	var (
		t   *ticket.Ticket
		err error
	)
	for attempt := 0; attempt < 2; attempt++ {
		err = txRunner.RunInTransaction(ctx, func(ctx context.Context) error {
			loaded, err := repo.GetByNumber(ctx, number)
			if err != nil {
				return err
			}
			if err := apply(ctx, loaded); err != nil {
				return err
			}
			if err := repo.Update(ctx, loaded); err != nil {
				return err
			}
			t = loaded
			return nil
		})
		if !errors.IsConcurrencyConflictError(err) {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// canAccess reports whether actor may read or reply to t.
func canAccess(actor Actor, t *ticket.Ticket) bool {
	return actor.IsAdmin() || t.IsOwnedBy(actor.ID, actor.Email)
}
