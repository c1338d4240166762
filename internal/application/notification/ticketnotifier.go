// Package notification turns ticket events into outgoing email.
package notification

import (
	"fmt"

	"helpcenter/internal/domain/shared/events"
	"helpcenter/internal/domain/ticket"
	vo "helpcenter/internal/domain/ticket/valueobjects"
	"helpcenter/internal/shared/logger"
)

// TicketMailer is satisfied by email.SMTPEmailService.
type TicketMailer interface {
	SendTicketConfirmation(to, name, number, subject string) error
	SendTicketReply(to, number, subject, body string) error
	SendTicketStatusChange(to, number, subject, oldStatus, newStatus string) error
	SendNewTicketAlert(inbox, number, subject, category, priority, contact string) error
}

// TicketNotifier subscribes to ticket events. Requesters hear about new
// tickets, operator replies and explicit status changes; the support inbox
// hears about new tickets and requester replies.
type TicketNotifier struct {
	mailer       TicketMailer
	supportInbox string
	logger       logger.Interface
}

func NewTicketNotifier(mailer TicketMailer, supportInbox string, logger logger.Interface) *TicketNotifier {
	return &TicketNotifier{mailer: mailer, supportInbox: supportInbox, logger: logger}
}

// Register subscribes the notifier to every ticket event type.
func (n *TicketNotifier) Register(dispatcher events.EventDispatcher) error {
	for _, eventType := range []string{
		ticket.EventTicketCreated,
		ticket.EventTicketReplied,
		ticket.EventTicketStatusChanged,
	} {
		if err := dispatcher.Subscribe(eventType, n); err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", eventType, err)
		}
	}
	return nil
}

func (n *TicketNotifier) Handle(event events.DomainEvent) error {
	switch e := event.(type) {
	case ticket.TicketCreatedEvent:
		return n.onCreated(e)
	case ticket.TicketRepliedEvent:
		return n.onReplied(e)
	case ticket.TicketStatusChangedEvent:
		return n.onStatusChanged(e)
	default:
		n.logger.Warnw("ignoring unexpected event", "event_type", event.GetEventType())
		return nil
	}
}

func (n *TicketNotifier) onCreated(e ticket.TicketCreatedEvent) error {
	var firstErr error
	if e.ContactEmail != "" {
		if err := n.mailer.SendTicketConfirmation(e.ContactEmail, e.ContactName, e.Number, e.Subject); err != nil {
			n.logger.Errorw("failed to send ticket confirmation", "number", e.Number, "error", err)
			firstErr = err
		}
	}
	if n.supportInbox != "" {
		if err := n.mailer.SendNewTicketAlert(n.supportInbox, e.Number, e.Subject, e.Category, e.Priority, e.ContactEmail); err != nil {
			n.logger.Errorw("failed to send new ticket alert", "number", e.Number, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (n *TicketNotifier) onReplied(e ticket.TicketRepliedEvent) error {
	to := e.ContactEmail
	if e.SenderRole == vo.SenderUser.String() {
		to = n.supportInbox
	}
	if to == "" {
		n.logger.Debugw("no recipient for ticket reply", "number", e.Number, "sender_role", e.SenderRole)
		return nil
	}

	if err := n.mailer.SendTicketReply(to, e.Number, e.Subject, e.Body); err != nil {
		n.logger.Errorw("failed to send ticket reply notification", "number", e.Number, "error", err)
		return err
	}
	return nil
}

// onStatusChanged skips automatic transitions; the reply that caused them
// already produced a notification.
func (n *TicketNotifier) onStatusChanged(e ticket.TicketStatusChangedEvent) error {
	if e.Automatic || e.ContactEmail == "" {
		return nil
	}
	if err := n.mailer.SendTicketStatusChange(e.ContactEmail, e.Number, e.Subject, e.OldStatus, e.NewStatus); err != nil {
		n.logger.Errorw("failed to send status change notification", "number", e.Number, "error", err)
		return err
	}
	return nil
}
