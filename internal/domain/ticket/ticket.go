package ticket

import (
	"strings"
	"time"

	vo "helpcenter/internal/domain/ticket/valueobjects"
	"helpcenter/internal/shared/errors"
)

const maxSubjectLength = 200

// Ticket is a support request and the head of its message thread.
// lastMessageAt orders the thread: every new message is stamped strictly
// after it.
type Ticket struct {
	id            uint
	number        string
	subject       string
	status        vo.TicketStatus
	priority      vo.Priority
	category      vo.Category
	ownerRole     vo.OwnerRole
	ownerID       uint
	contactEmail  string
	contactName   string
	lastMessageAt time.Time
	version       int
	createdAt     time.Time
	updatedAt     time.Time
	messages      []*Message
}

type NewTicketParams struct {
	Number       string
	Subject      string
	Category     vo.Category
	Priority     vo.Priority
	OwnerRole    vo.OwnerRole
	OwnerID      uint
	ContactEmail string
	ContactName  string
}

// ValidateOpening runs every check NewTicket and the first AddMessage would
// run, except the number, so callers can reject input before issuing one.
func ValidateOpening(p NewTicketParams, body string, attachments []string) error {
	if err := p.validate(); err != nil {
		return err
	}
	return validateMessage(vo.SenderUser, body, attachments)
}

func (p NewTicketParams) validate() error {
	subject := strings.TrimSpace(p.Subject)
	if subject == "" {
		return errors.NewValidationError("subject is required")
	}
	if len(subject) > maxSubjectLength {
		return errors.NewValidationError("subject exceeds maximum length of 200 characters")
	}
	if !p.OwnerRole.IsValid() {
		return errors.NewValidationError("invalid ticket owner role", p.OwnerRole.String())
	}
	if p.OwnerRole == vo.OwnerGuest {
		if strings.TrimSpace(p.ContactEmail) == "" {
			return errors.NewValidationError("contact email is required for guest tickets")
		}
	} else if p.OwnerID == 0 {
		return errors.NewValidationError("owner ID is required")
	}
	return nil
}

// NewTicket opens a ticket in OPEN. Guests have no owner id and must leave a contact email.
func NewTicket(p NewTicketParams, now time.Time) (*Ticket, error) {
	if p.Number == "" {
		return nil, errors.NewValidationError("ticket number is required")
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	subject := strings.TrimSpace(p.Subject)
	if p.OwnerRole == vo.OwnerGuest {
		p.OwnerID = 0
	}
	if !p.Priority.IsValid() {
		p.Priority = vo.PriorityMedium
	}
	if !p.Category.IsValid() {
		p.Category = vo.CategoryOther
	}

	return &Ticket{
		number:       p.Number,
		subject:      subject,
		status:       vo.StatusOpen,
		priority:     p.Priority,
		category:     p.Category,
		ownerRole:    p.OwnerRole,
		ownerID:      p.OwnerID,
		contactEmail: strings.TrimSpace(p.ContactEmail),
		contactName:  strings.TrimSpace(p.ContactName),
		version:      1,
		createdAt:    now,
		updatedAt:    now,
		messages:     []*Message{},
	}, nil
}

func ReconstructTicket(
	id uint,
	number, subject string,
	status vo.TicketStatus,
	priority vo.Priority,
	category vo.Category,
	ownerRole vo.OwnerRole,
	ownerID uint,
	contactEmail, contactName string,
	lastMessageAt time.Time,
	version int,
	createdAt, updatedAt time.Time,
) *Ticket {
	return &Ticket{
		id:            id,
		number:        number,
		subject:       subject,
		status:        status,
		priority:      priority,
		category:      category,
		ownerRole:     ownerRole,
		ownerID:       ownerID,
		contactEmail:  contactEmail,
		contactName:   contactName,
		lastMessageAt: lastMessageAt,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		messages:      []*Message{},
	}
}

func (t *Ticket) ID() uint                 { return t.id }
func (t *Ticket) Number() string           { return t.number }
func (t *Ticket) Subject() string          { return t.subject }
func (t *Ticket) Status() vo.TicketStatus  { return t.status }
func (t *Ticket) Priority() vo.Priority    { return t.priority }
func (t *Ticket) Category() vo.Category    { return t.category }
func (t *Ticket) OwnerRole() vo.OwnerRole  { return t.ownerRole }
func (t *Ticket) OwnerID() uint            { return t.ownerID }
func (t *Ticket) ContactEmail() string     { return t.contactEmail }
func (t *Ticket) ContactName() string      { return t.contactName }
func (t *Ticket) LastMessageAt() time.Time { return t.lastMessageAt }
func (t *Ticket) Version() int             { return t.version }
func (t *Ticket) CreatedAt() time.Time     { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time     { return t.updatedAt }

// Messages returns the thread in creation order.
func (t *Ticket) Messages() []*Message {
	out := make([]*Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// SetID assigns the storage id to the ticket and its unsaved messages.
func (t *Ticket) SetID(id uint) {
	t.id = id
	for _, m := range t.messages {
		m.ticketID = id
	}
}

// SetVersion is called by the repository after an optimistic update.
func (t *Ticket) SetVersion(v int) { t.version = v }

// AttachThread replaces the in-memory thread with messages loaded from storage.
func (t *Ticket) AttachThread(messages []*Message) {
	t.messages = make([]*Message, len(messages))
	copy(t.messages, messages)
}

// IsOwnedBy reports whether userID owns the ticket. Guest tickets are matched
// on the contact email instead.
func (t *Ticket) IsOwnedBy(userID uint, email string) bool {
	if t.ownerRole == vo.OwnerGuest {
		return email != "" && strings.EqualFold(email, t.contactEmail)
	}
	return userID != 0 && userID == t.ownerID
}

// StatusTransition is the fact handed to notification subscribers.
type StatusTransition struct {
	Old       vo.TicketStatus
	New       vo.TicketStatus
	ActorRole vo.SenderRole
	ActorID   uint
	Automatic bool
}

func (s StatusTransition) Changed() bool {
	return s.Old != s.New
}

// AddMessage appends a message and applies the reply rules. The message is
// stamped at or after at, and strictly after the previous message.
func (t *Ticket) AddMessage(sender vo.SenderRole, senderID uint, body string, attachments []string, at time.Time) (*Message, StatusTransition, error) {
	if err := validateMessage(sender, body, attachments); err != nil {
		return nil, StatusTransition{}, err
	}

	createdAt := at.UTC().Truncate(time.Millisecond)
	if !t.lastMessageAt.IsZero() && !createdAt.After(t.lastMessageAt) {
		createdAt = t.lastMessageAt.Add(time.Millisecond)
	}

	if attachments == nil {
		attachments = []string{}
	}
	msg := &Message{
		ticketID:    t.id,
		senderRole:  sender,
		senderID:    senderID,
		body:        body,
		attachments: append([]string(nil), attachments...),
		createdAt:   createdAt,
	}
	t.messages = append(t.messages, msg)
	t.lastMessageAt = createdAt
	t.updatedAt = createdAt

	return msg, t.ApplyReply(sender, senderID), nil
}

// ApplyReply is the automatic part of the lifecycle: an operator reply on an
// OPEN ticket starts work, and an owner reply on a RESOLVED or CLOSED ticket
// reopens it. Every other reply leaves the status alone.
func (t *Ticket) ApplyReply(sender vo.SenderRole, senderID uint) StatusTransition {
	old := t.status
	next := old
	switch {
	case sender == vo.SenderAdmin && old == vo.StatusOpen:
		next = vo.StatusInProgress
	case sender == vo.SenderUser && old.IsSettled():
		next = vo.StatusInProgress
	}
	t.status = next
	return StatusTransition{Old: old, New: next, ActorRole: sender, ActorID: senderID, Automatic: true}
}

// ChangeStatus is the administrative override. Any status may move to any other.
func (t *Ticket) ChangeStatus(next vo.TicketStatus, actorID uint, at time.Time) (StatusTransition, error) {
	if !next.IsValid() {
		return StatusTransition{}, errors.NewInvalidTransitionError("invalid ticket status", next.String())
	}
	old := t.status
	t.status = next
	t.updatedAt = at
	return StatusTransition{Old: old, New: next, ActorRole: vo.SenderAdmin, ActorID: actorID}, nil
}

// ChangePriority returns the previous priority.
func (t *Ticket) ChangePriority(p vo.Priority, at time.Time) (vo.Priority, error) {
	if !p.IsValid() {
		return "", errors.NewInvalidTransitionError("invalid ticket priority", p.String())
	}
	old := t.priority
	t.priority = p
	t.updatedAt = at
	return old, nil
}
