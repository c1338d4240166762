package dto

import (
	"time"

	"helpcenter/internal/domain/ticket"
)

type TicketDTO struct {
	ID            uint         `json:"id"`
	Number        string       `json:"number"`
	Subject       string       `json:"subject"`
	Status        string       `json:"status"`
	Priority      string       `json:"priority"`
	Category      string       `json:"category"`
	OwnerRole     string       `json:"owner_role"`
	OwnerID       uint         `json:"owner_id"`
	ContactEmail  string       `json:"contact_email"`
	ContactName   string       `json:"contact_name"`
	LastMessageAt time.Time    `json:"last_message_at"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
	Messages      []MessageDTO `json:"messages,omitempty"`
}

type MessageDTO struct {
	ID          uint      `json:"id"`
	SenderRole  string    `json:"sender_role"`
	SenderID    uint      `json:"sender_id"`
	Body        string    `json:"body"`
	Attachments []string  `json:"attachments"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToTicketDTO maps a ticket. The thread is included only when withThread is set.
func ToTicketDTO(t *ticket.Ticket, withThread bool) *TicketDTO {
	if t == nil {
		return nil
	}

	d := &TicketDTO{
		ID:            t.ID(),
		Number:        t.Number(),
		Subject:       t.Subject(),
		Status:        t.Status().String(),
		Priority:      t.Priority().String(),
		Category:      t.Category().String(),
		OwnerRole:     t.OwnerRole().String(),
		OwnerID:       t.OwnerID(),
		ContactEmail:  t.ContactEmail(),
		ContactName:   t.ContactName(),
		LastMessageAt: t.LastMessageAt(),
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
	}

	if withThread {
		messages := t.Messages()
		d.Messages = make([]MessageDTO, 0, len(messages))
		for _, m := range messages {
			d.Messages = append(d.Messages, ToMessageDTO(m))
		}
	}
	return d
}

func ToMessageDTO(m *ticket.Message) MessageDTO {
	return MessageDTO{
		ID:          m.ID(),
		SenderRole:  m.SenderRole().String(),
		SenderID:    m.SenderID(),
		Body:        m.Body(),
		Attachments: m.Attachments(),
		CreatedAt:   m.CreatedAt(),
	}
}
