package ticket

import (
	"strings"
	"time"

	vo "helpcenter/internal/domain/ticket/valueobjects"
	"helpcenter/internal/shared/errors"
)

const (
	maxMessageLength = 5000
	maxAttachments   = 10
)

// Message is one entry in a ticket thread. Messages are append-only.
type Message struct {
	id          uint
	ticketID    uint
	senderRole  vo.SenderRole
	senderID    uint
	body        string
	attachments []string
	createdAt   time.Time
}

func validateMessage(sender vo.SenderRole, body string, attachments []string) error {
	if !sender.IsValid() {
		return errors.NewValidationError("invalid sender role", sender.String())
	}
	if strings.TrimSpace(body) == "" {
		return errors.NewValidationError("message body is required")
	}
	if len(body) > maxMessageLength {
		return errors.NewValidationError("message body exceeds maximum length of 5000 characters")
	}
	if len(attachments) > maxAttachments {
		return errors.NewValidationError("too many attachments", "at most 10")
	}
	return nil
}

func ReconstructMessage(
	id, ticketID uint,
	senderRole vo.SenderRole,
	senderID uint,
	body string,
	attachments []string,
	createdAt time.Time,
) *Message {
	if attachments == nil {
		attachments = []string{}
	}
	return &Message{
		id:          id,
		ticketID:    ticketID,
		senderRole:  senderRole,
		senderID:    senderID,
		body:        body,
		attachments: attachments,
		createdAt:   createdAt,
	}
}

func (m *Message) ID() uint                  { return m.id }
func (m *Message) TicketID() uint            { return m.ticketID }
func (m *Message) SenderRole() vo.SenderRole { return m.senderRole }
func (m *Message) SenderID() uint            { return m.senderID }
func (m *Message) Body() string              { return m.body }
func (m *Message) CreatedAt() time.Time      { return m.createdAt }

func (m *Message) Attachments() []string {
	out := make([]string, len(m.attachments))
	copy(out, m.attachments)
	return out
}

func (m *Message) SetID(id uint) { m.id = id }

func (m *Message) SetTicketID(id uint) { m.ticketID = id }
