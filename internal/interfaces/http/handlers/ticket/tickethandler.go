package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpcenter/internal/application/ticket/usecases"
	"helpcenter/internal/shared/errors"
	"helpcenter/internal/shared/logger"
	"helpcenter/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC   usecases.CreateTicketExecutor
	replyTicketUC    usecases.ReplyTicketExecutor
	changeStatusUC   usecases.ChangeStatusExecutor
	changePriorityUC usecases.ChangePriorityExecutor
	getTicketUC      usecases.GetTicketExecutor
	listTicketsUC    usecases.ListTicketsExecutor
	logger           logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	replyTicketUC usecases.ReplyTicketExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	changePriorityUC usecases.ChangePriorityExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	log logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:   createTicketUC,
		replyTicketUC:    replyTicketUC,
		changeStatusUC:   changeStatusUC,
		changePriorityUC: changePriorityUC,
		getTicketUC:      getTicketUC,
		listTicketsUC:    listTicketsUC,
		logger:           log,
	}
}

// CreateTicket handles POST /tickets. Anonymous callers must supply a contact email.
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	actor := ticketActor(c)
	if actor.ID == 0 && req.ContactEmail == "" && actor.Email == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("contact_email is required for guest tickets"))
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:number
func (h *TicketHandler) GetTicket(c *gin.Context) {
	number, err := parseTicketNumber(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		Number: number,
		Actor:  ticketActor(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	p := utils.ParsePagination(c)
	query := usecases.ListTicketsQuery{
		Actor:     ticketActor(c),
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		Category:  c.Query("category"),
		OwnerRole: c.Query("owner_role"),
		Page:      p.Page,
		PageSize:  p.PageSize,
	}
	if raw := c.Query("owner_id"); raw != "" {
		id, err := parseUint(raw)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid owner_id"))
			return
		}
		query.OwnerID = id
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// ReplyTicket handles POST /tickets/:number/replies
func (h *TicketHandler) ReplyTicket(c *gin.Context) {
	number, err := parseTicketNumber(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReplyTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for reply ticket", "error", err, "number", number)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.replyTicketUC.Execute(c.Request.Context(), usecases.ReplyTicketCommand{
		Number:      number,
		Body:        req.Body,
		Attachments: req.Attachments,
		Actor:       ticketActor(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Reply added successfully")
}

// ChangeStatus handles PATCH /tickets/:number/status
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	number, err := parseTicketNumber(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		Number:  number,
		Status:  req.Status,
		ActorID: utils.GetActor(c).UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated", result)
}

// ChangePriority handles PATCH /tickets/:number/priority
func (h *TicketHandler) ChangePriority(c *gin.Context) {
	number, err := parseTicketNumber(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangePriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.changePriorityUC.Execute(c.Request.Context(), usecases.ChangePriorityCommand{
		Number:   number,
		Priority: req.Priority,
		ActorID:  utils.GetActor(c).UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket priority updated", result)
}
