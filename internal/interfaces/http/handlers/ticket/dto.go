package ticket

import (
	"helpcenter/internal/application/ticket/usecases"
)

type CreateTicketRequest struct {
	Subject      string   `json:"subject" binding:"required,max=200"`
	Body         string   `json:"body" binding:"required,max=10000"`
	Category     string   `json:"category"`
	Priority     string   `json:"priority"`
	Attachments  []string `json:"attachments,omitempty" binding:"max=10,dive,url"`
	ContactEmail string   `json:"contact_email" binding:"omitempty,email"`
	ContactName  string   `json:"contact_name" binding:"max=100"`
}

func (r *CreateTicketRequest) ToCommand(actor usecases.Actor) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Subject:      r.Subject,
		Body:         r.Body,
		Category:     r.Category,
		Priority:     r.Priority,
		Attachments:  r.Attachments,
		ContactEmail: r.ContactEmail,
		ContactName:  r.ContactName,
		Actor:        actor,
	}
}

type ReplyTicketRequest struct {
	Body        string   `json:"body" binding:"required,max=10000"`
	Attachments []string `json:"attachments,omitempty" binding:"max=10,dive,url"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ChangePriorityRequest struct {
	Priority string `json:"priority" binding:"required"`
}
