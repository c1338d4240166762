package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "helpcenter/internal/domain/ticket/valueobjects"
	"helpcenter/internal/shared/errors"
)

var ticketTestNow = time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC)

func newCustomerTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket(NewTicketParams{
		Number:    "SUP-2024-000001",
		Subject:   "Parcel never arrived",
		Category:  vo.CategoryShipping,
		Priority:  vo.PriorityMedium,
		OwnerRole: vo.OwnerCustomer,
		OwnerID:   7,
	}, ticketTestNow)
	require.NoError(t, err)
	return tk
}

func ticketInStatus(t *testing.T, status vo.TicketStatus) *Ticket {
	t.Helper()
	return ReconstructTicket(1, "SUP-2024-000001", "Parcel never arrived",
		status, vo.PriorityMedium, vo.CategoryShipping, vo.OwnerCustomer, 7,
		"", "", ticketTestNow, 3, ticketTestNow, ticketTestNow)
}

func TestNewTicket_Validation(t *testing.T) {
	tests := []struct {
		name   string
		params NewTicketParams
	}{
		{"missing number", NewTicketParams{Subject: "x", OwnerRole: vo.OwnerCustomer, OwnerID: 1}},
		{"missing subject", NewTicketParams{Number: "SUP-1", OwnerRole: vo.OwnerCustomer, OwnerID: 1}},
		{"long subject", NewTicketParams{Number: "SUP-1", Subject: strings.Repeat("s", 201), OwnerRole: vo.OwnerCustomer, OwnerID: 1}},
		{"guest without email", NewTicketParams{Number: "SUP-1", Subject: "x", OwnerRole: vo.OwnerGuest}},
		{"customer without id", NewTicketParams{Number: "SUP-1", Subject: "x", OwnerRole: vo.OwnerCustomer}},
		{"bad owner role", NewTicketParams{Number: "SUP-1", Subject: "x", OwnerRole: "ROBOT", OwnerID: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTicket(tt.params, ticketTestNow)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestValidateOpening(t *testing.T) {
	valid := NewTicketParams{Subject: "Parcel never arrived", OwnerRole: vo.OwnerCustomer, OwnerID: 7}
	assert.NoError(t, ValidateOpening(valid, "Where is it?", nil))

	tests := []struct {
		name        string
		params      NewTicketParams
		body        string
		attachments []string
	}{
		{"missing subject", NewTicketParams{OwnerRole: vo.OwnerCustomer, OwnerID: 1}, "hi", nil},
		{"guest without email", NewTicketParams{Subject: "x", OwnerRole: vo.OwnerGuest}, "hi", nil},
		{"blank body", valid, "  ", nil},
		{"long body", valid, strings.Repeat("b", 5001), nil},
		{"too many attachments", valid, "hi", make([]string, 11)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOpening(tt.params, tt.body, tt.attachments)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestNewTicket_StartsOpen(t *testing.T) {
	tk := newCustomerTicket(t)
	assert.Equal(t, vo.StatusOpen, tk.Status())
	assert.Equal(t, 1, tk.Version())
	assert.True(t, tk.IsOwnedBy(7, ""))
	assert.False(t, tk.IsOwnedBy(8, ""))
}

func TestNewTicket_GuestOwnership(t *testing.T) {
	tk, err := NewTicket(NewTicketParams{
		Number: "SUP-2024-000002", Subject: "Where is my order", OwnerRole: vo.OwnerGuest,
		OwnerID: 99, ContactEmail: "Buyer@Example.com",
	}, ticketTestNow)
	require.NoError(t, err)

	assert.Equal(t, uint(0), tk.OwnerID())
	assert.True(t, tk.IsOwnedBy(0, "buyer@example.com"))
	assert.False(t, tk.IsOwnedBy(0, ""))
}

func TestApplyReply_Rules(t *testing.T) {
	tests := []struct {
		from   vo.TicketStatus
		sender vo.SenderRole
		want   vo.TicketStatus
	}{
		{vo.StatusOpen, vo.SenderAdmin, vo.StatusInProgress},
		{vo.StatusOpen, vo.SenderUser, vo.StatusOpen},
		{vo.StatusInProgress, vo.SenderAdmin, vo.StatusInProgress},
		{vo.StatusInProgress, vo.SenderUser, vo.StatusInProgress},
		{vo.StatusResolved, vo.SenderUser, vo.StatusInProgress},
		{vo.StatusResolved, vo.SenderAdmin, vo.StatusResolved},
		{vo.StatusClosed, vo.SenderUser, vo.StatusInProgress},
		{vo.StatusClosed, vo.SenderAdmin, vo.StatusClosed},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"/"+tt.sender.String(), func(t *testing.T) {
			tk := ticketInStatus(t, tt.from)
			tr := tk.ApplyReply(tt.sender, 1)

			assert.Equal(t, tt.want, tk.Status())
			assert.Equal(t, tt.from, tr.Old)
			assert.Equal(t, tt.want, tr.New)
			assert.True(t, tr.Automatic)
			assert.Equal(t, tt.from != tt.want, tr.Changed())
		})
	}
}

func TestApplyReply_GuestTicketReopens(t *testing.T) {
	tk := ReconstructTicket(2, "SUP-2024-000002", "Where is my order",
		vo.StatusClosed, vo.PriorityLow, vo.CategoryOrder, vo.OwnerGuest, 0,
		"buyer@example.com", "", ticketTestNow, 1, ticketTestNow, ticketTestNow)

	tk.ApplyReply(vo.SenderUser, 0)
	assert.Equal(t, vo.StatusInProgress, tk.Status())
}

func TestChangeStatus_AnyToAny(t *testing.T) {
	statuses := []vo.TicketStatus{vo.StatusOpen, vo.StatusInProgress, vo.StatusResolved, vo.StatusClosed}
	for _, from := range statuses {
		for _, to := range statuses {
			tk := ticketInStatus(t, from)
			tr, err := tk.ChangeStatus(to, 42, ticketTestNow)
			require.NoError(t, err)
			assert.Equal(t, to, tk.Status())
			assert.False(t, tr.Automatic)
			assert.Equal(t, uint(42), tr.ActorID)
		}
	}
}

func TestChangeStatus_RejectsUnknown(t *testing.T) {
	tk := ticketInStatus(t, vo.StatusOpen)
	_, err := tk.ChangeStatus("ESCALATED", 1, ticketTestNow)

	assert.True(t, errors.IsInvalidTransitionError(err))
	assert.Equal(t, vo.StatusOpen, tk.Status())
}

func TestChangePriority_IsOrthogonal(t *testing.T) {
	tk := ticketInStatus(t, vo.StatusResolved)
	old, err := tk.ChangePriority(vo.PriorityUrgent, ticketTestNow)
	require.NoError(t, err)

	assert.Equal(t, vo.PriorityMedium, old)
	assert.Equal(t, vo.PriorityUrgent, tk.Priority())
	assert.Equal(t, vo.StatusResolved, tk.Status())

	_, err = tk.ChangePriority("SEVERE", ticketTestNow)
	assert.True(t, errors.IsInvalidTransitionError(err))
}

func TestAddMessage_StrictlyIncreasingTimestamps(t *testing.T) {
	tk := newCustomerTicket(t)

	// Same instant, then an instant in the past: both must land after the previous message.
	m1, _, err := tk.AddMessage(vo.SenderUser, 7, "It never came", nil, ticketTestNow)
	require.NoError(t, err)
	m2, _, err := tk.AddMessage(vo.SenderAdmin, 1, "Checking with the carrier", nil, ticketTestNow)
	require.NoError(t, err)
	m3, _, err := tk.AddMessage(vo.SenderUser, 7, "Thanks", []string{"https://cdn.example.com/r.png"}, ticketTestNow.Add(-time.Hour))
	require.NoError(t, err)

	assert.True(t, m2.CreatedAt().After(m1.CreatedAt()))
	assert.True(t, m3.CreatedAt().After(m2.CreatedAt()))
	assert.Equal(t, m3.CreatedAt(), tk.LastMessageAt())
	assert.Len(t, tk.Messages(), 3)
	assert.Equal(t, []string{"https://cdn.example.com/r.png"}, m3.Attachments())
}

func TestAddMessage_AppliesReplyRules(t *testing.T) {
	tk := newCustomerTicket(t)

	_, tr, err := tk.AddMessage(vo.SenderUser, 7, "Opening message", nil, ticketTestNow)
	require.NoError(t, err)
	assert.False(t, tr.Changed())

	_, tr, err = tk.AddMessage(vo.SenderAdmin, 1, "On it", nil, ticketTestNow.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, vo.StatusInProgress, tr.New)
}

func TestAddMessage_Validation(t *testing.T) {
	tk := newCustomerTicket(t)

	_, _, err := tk.AddMessage(vo.SenderUser, 7, "   ", nil, ticketTestNow)
	assert.True(t, errors.IsValidationError(err))

	_, _, err = tk.AddMessage("BOT", 7, "hi", nil, ticketTestNow)
	assert.True(t, errors.IsValidationError(err))

	_, _, err = tk.AddMessage(vo.SenderUser, 7, "hi", make([]string, 11), ticketTestNow)
	assert.True(t, errors.IsValidationError(err))

	assert.Empty(t, tk.Messages())
}

func TestSetID_PropagatesToThread(t *testing.T) {
	tk := newCustomerTicket(t)
	m, _, err := tk.AddMessage(vo.SenderUser, 7, "hello", nil, ticketTestNow)
	require.NoError(t, err)

	tk.SetID(55)
	assert.Equal(t, uint(55), m.TicketID())
}

func TestReopenScenario(t *testing.T) {
	tk := newCustomerTicket(t)
	at := ticketTestNow

	_, _, err := tk.AddMessage(vo.SenderUser, 7, "Opening", nil, at)
	require.NoError(t, err)
	_, _, err = tk.AddMessage(vo.SenderAdmin, 1, "Looking", nil, at)
	require.NoError(t, err)
	assert.Equal(t, vo.StatusInProgress, tk.Status())

	_, _, err = tk.AddMessage(vo.SenderUser, 7, "Any news?", nil, at)
	require.NoError(t, err)
	assert.Equal(t, vo.StatusInProgress, tk.Status())

	_, err = tk.ChangeStatus(vo.StatusResolved, 1, at)
	require.NoError(t, err)

	_, tr, err := tk.AddMessage(vo.SenderUser, 7, "Still missing", nil, at)
	require.NoError(t, err)
	assert.Equal(t, vo.StatusResolved, tr.Old)
	assert.Equal(t, vo.StatusInProgress, tk.Status())
}
