package ticket

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketdto "helpcenter/internal/application/ticket/dto"
	"helpcenter/internal/application/ticket/usecases"
	"helpcenter/internal/interfaces/http/handlers/testutil"
	"helpcenter/internal/shared/constants"
	"helpcenter/internal/shared/errors"
)

type mockCreateTicketUC struct {
	result *ticketdto.TicketDTO
	err    error
	got    usecases.CreateTicketCommand
}

func (m *mockCreateTicketUC) Execute(_ context.Context, cmd usecases.CreateTicketCommand) (*ticketdto.TicketDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockReplyTicketUC struct {
	result *usecases.ReplyTicketResult
	err    error
	got    usecases.ReplyTicketCommand
}

func (m *mockReplyTicketUC) Execute(_ context.Context, cmd usecases.ReplyTicketCommand) (*usecases.ReplyTicketResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockChangeStatusUC struct {
	result *ticketdto.TicketDTO
	err    error
	got    usecases.ChangeStatusCommand
}

func (m *mockChangeStatusUC) Execute(_ context.Context, cmd usecases.ChangeStatusCommand) (*ticketdto.TicketDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockChangePriorityUC struct {
	result *ticketdto.TicketDTO
	err    error
}

func (m *mockChangePriorityUC) Execute(_ context.Context, _ usecases.ChangePriorityCommand) (*ticketdto.TicketDTO, error) {
	return m.result, m.err
}

type mockGetTicketUC struct {
	result *ticketdto.TicketDTO
	err    error
	got    usecases.GetTicketQuery
}

func (m *mockGetTicketUC) Execute(_ context.Context, q usecases.GetTicketQuery) (*ticketdto.TicketDTO, error) {
	m.got = q
	return m.result, m.err
}

type mockListTicketsUC struct {
	result *usecases.ListTicketsResult
	err    error
	got    usecases.ListTicketsQuery
}

func (m *mockListTicketsUC) Execute(_ context.Context, q usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	m.got = q
	return m.result, m.err
}

type testDeps struct {
	createTicketUC   usecases.CreateTicketExecutor
	replyTicketUC    usecases.ReplyTicketExecutor
	changeStatusUC   usecases.ChangeStatusExecutor
	changePriorityUC usecases.ChangePriorityExecutor
	getTicketUC      usecases.GetTicketExecutor
	listTicketsUC    usecases.ListTicketsExecutor
}

func newTestTicketHandler(deps testDeps) *TicketHandler {
	return NewTicketHandler(
		deps.createTicketUC,
		deps.replyTicketUC,
		deps.changeStatusUC,
		deps.changePriorityUC,
		deps.getTicketUC,
		deps.listTicketsUC,
		testutil.NewMockLogger(),
	)
}

func sampleTicket() *ticketdto.TicketDTO {
	now := time.Date(2024, 11, 5, 9, 0, 0, 0, time.UTC)
	return &ticketdto.TicketDTO{
		ID:            1,
		Number:        "SUP-2024-000042",
		Subject:       "Order never arrived",
		Status:        "OPEN",
		Priority:      "MEDIUM",
		Category:      "ORDER",
		OwnerRole:     "CUSTOMER",
		OwnerID:       7,
		LastMessageAt: now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestTicketHandler_CreateTicket_Success(t *testing.T) {
	mockUC := &mockCreateTicketUC{result: sampleTicket()}
	handler := newTestTicketHandler(testDeps{createTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/tickets", CreateTicketRequest{
		Subject:  "Order never arrived",
		Body:     "Placed last week, still nothing",
		Category: "order",
	})
	testutil.SetAuthContext(c, 7, constants.RoleCustomer)

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var got ticketdto.TicketDTO
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, "SUP-2024-000042", got.Number)
	assert.Equal(t, uint(7), mockUC.got.Actor.ID)
	assert.Equal(t, constants.RoleCustomer, mockUC.got.Actor.Role)
}

func TestTicketHandler_CreateTicket_BindError(t *testing.T) {
	handler := newTestTicketHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/tickets", map[string]string{"subject": "only subject"})
	testutil.SetAuthContext(c, 7, constants.RoleCustomer)

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, string(errors.ErrorTypeValidation), resp.Error.Type)
}

func TestTicketHandler_CreateTicket_GuestNeedsContactEmail(t *testing.T) {
	mockUC := &mockCreateTicketUC{result: sampleTicket()}
	handler := newTestTicketHandler(testDeps{createTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/tickets", CreateTicketRequest{
		Subject: "Question",
		Body:    "Do you ship abroad?",
	})

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mockUC.got.Subject)
}

func TestTicketHandler_CreateTicket_Guest(t *testing.T) {
	mockUC := &mockCreateTicketUC{result: sampleTicket()}
	handler := newTestTicketHandler(testDeps{createTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/tickets", CreateTicketRequest{
		Subject:      "Question",
		Body:         "Do you ship abroad?",
		ContactEmail: "guest@example.com",
	})

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, constants.RoleGuest, mockUC.got.Actor.Role)
	assert.Equal(t, uint(0), mockUC.got.Actor.ID)
	assert.Equal(t, "guest@example.com", mockUC.got.ContactEmail)
}

func TestTicketHandler_GetTicket(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"found", nil, http.StatusOK},
		{"hidden from other owners", errors.NewNotFoundError("ticket not found"), http.StatusNotFound},
		{"unexpected failure", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockGetTicketUC{err: tt.err}
			if tt.err == nil {
				mockUC.result = sampleTicket()
			}
			handler := newTestTicketHandler(testDeps{getTicketUC: mockUC})

			c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/tickets/sup-2024-000042", nil)
			testutil.SetURLParam(c, "number", "sup-2024-000042")
			testutil.SetAuthContext(c, 7, constants.RoleCustomer)

			handler.GetTicket(c)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, "SUP-2024-000042", mockUC.got.Number)
		})
	}
}

func TestTicketHandler_ListTickets(t *testing.T) {
	mockUC := &mockListTicketsUC{result: &usecases.ListTicketsResult{
		Tickets:  []*ticketdto.TicketDTO{sampleTicket()},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}}
	handler := newTestTicketHandler(testDeps{listTicketsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/tickets", nil)
	testutil.SetQueryParams(c, map[string]string{"status": "OPEN", "owner_id": "7", "page_size": "500"})
	testutil.SetAuthContext(c, 1, constants.RoleAdmin)

	handler.ListTickets(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OPEN", mockUC.got.Status)
	assert.Equal(t, uint(7), mockUC.got.OwnerID)
	assert.Equal(t, constants.MaxPageSize, mockUC.got.PageSize)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var list testutil.ListData
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Equal(t, int64(1), list.Total)
}

func TestTicketHandler_ListTickets_InvalidOwnerID(t *testing.T) {
	handler := newTestTicketHandler(testDeps{listTicketsUC: &mockListTicketsUC{}})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/tickets", nil)
	testutil.SetQueryParams(c, map[string]string{"owner_id": "abc"})
	testutil.SetAuthContext(c, 1, constants.RoleAdmin)

	handler.ListTickets(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_ReplyTicket_GuestUsesTokenEmail(t *testing.T) {
	mockUC := &mockReplyTicketUC{result: &usecases.ReplyTicketResult{Ticket: sampleTicket()}}
	handler := newTestTicketHandler(testDeps{replyTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/tickets/SUP-2024-000042/replies", ReplyTicketRequest{Body: "Any news?"})
	testutil.SetURLParam(c, "number", "SUP-2024-000042")
	testutil.SetGuestContext(c, "guest@example.com")

	handler.ReplyTicket(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "guest@example.com", mockUC.got.Actor.Email)
	assert.Equal(t, constants.RoleGuest, mockUC.got.Actor.Role)
}

func TestTicketHandler_ReplyTicket_EmptyBody(t *testing.T) {
	handler := newTestTicketHandler(testDeps{replyTicketUC: &mockReplyTicketUC{}})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/tickets/SUP-2024-000042/replies", ReplyTicketRequest{})
	testutil.SetURLParam(c, "number", "SUP-2024-000042")
	testutil.SetAuthContext(c, 7, constants.RoleCustomer)

	handler.ReplyTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_ChangeStatus(t *testing.T) {
	mockUC := &mockChangeStatusUC{result: sampleTicket()}
	handler := newTestTicketHandler(testDeps{changeStatusUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/v1/tickets/SUP-2024-000042/status", ChangeStatusRequest{Status: "RESOLVED"})
	testutil.SetURLParam(c, "number", "SUP-2024-000042")
	testutil.SetAuthContext(c, 1, constants.RoleAdmin)

	handler.ChangeStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "RESOLVED", mockUC.got.Status)
	assert.Equal(t, uint(1), mockUC.got.ActorID)
}

func TestTicketHandler_ChangeStatus_InvalidTransition(t *testing.T) {
	mockUC := &mockChangeStatusUC{err: errors.NewInvalidTransitionError("invalid ticket status", "DONE")}
	handler := newTestTicketHandler(testDeps{changeStatusUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/v1/tickets/SUP-2024-000042/status", ChangeStatusRequest{Status: "DONE"})
	testutil.SetURLParam(c, "number", "SUP-2024-000042")
	testutil.SetAuthContext(c, 1, constants.RoleAdmin)

	handler.ChangeStatus(c)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, string(errors.ErrorTypeInvalidTransition), resp.Error.Type)
}

func TestTicketHandler_ChangePriority(t *testing.T) {
	handler := newTestTicketHandler(testDeps{changePriorityUC: &mockChangePriorityUC{result: sampleTicket()}})

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/v1/tickets/SUP-2024-000042/priority", ChangePriorityRequest{Priority: "HIGH"})
	testutil.SetURLParam(c, "number", "SUP-2024-000042")
	testutil.SetAuthContext(c, 1, constants.RoleAdmin)

	handler.ChangePriority(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
