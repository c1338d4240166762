package ticket

import (
	"context"
	"fmt"

	"helpcenter/internal/shared/biztime"
	"helpcenter/internal/shared/errors"
)

const (
	DefaultCounterName  = "support_ticket_seq"
	DefaultTicketPrefix = "SUP"
)

// CounterStore increments a named counter and returns the new value in one
// atomic storage operation. A missing counter is created at 1.
type CounterStore interface {
	Increment(ctx context.Context, name string) (int64, error)
}

// NumberGenerator issues codes of the form PREFIX-YEAR-NNNNNN.
type NumberGenerator struct {
	store CounterStore
	clock biztime.Clock
}

func NewNumberGenerator(store CounterStore, clock biztime.Clock) *NumberGenerator {
	if clock == nil {
		clock = biztime.SystemClock
	}
	return &NumberGenerator{store: store, clock: clock}
}

// Next draws the next sequence value from counterName. The year is taken
// from the business-timezone calendar at the moment of generation.
func (g *NumberGenerator) Next(ctx context.Context, counterName, prefix string) (string, error) {
	seq, err := g.store.Increment(ctx, counterName)
	if errors.IsConcurrencyConflictError(err) {
		seq, err = g.store.Increment(ctx, counterName)
	}
	if err != nil {
		return "", fmt.Errorf("increment counter %s: %w", counterName, err)
	}
	return FormatNumber(prefix, biztime.YearOf(g.clock()), seq), nil
}

// FormatNumber zero-pads seq to six digits; larger values widen the field.
func FormatNumber(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%06d", prefix, year, seq)
}
