package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"helpcenter/internal/domain/ticket"
	vo "helpcenter/internal/domain/ticket/valueobjects"
	"helpcenter/internal/infrastructure/persistence/models"
	"helpcenter/internal/shared/biztime"
)

// TicketMapper handles the conversion between support tickets and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.SupportTicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	// The thread is not loaded; the repository attaches it.
	ToDomain(model *models.SupportTicketModel) (*ticket.Ticket, error)

	MessageToModel(msg *ticket.Message) (*models.SupportMessageModel, error)
	MessageToDomain(model *models.SupportMessageModel) (*ticket.Message, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.SupportTicketModel {
	model := &models.SupportTicketModel{
		ID:           t.ID(),
		Number:       t.Number(),
		Subject:      t.Subject(),
		Status:       t.Status().String(),
		Priority:     t.Priority().String(),
		Category:     t.Category().String(),
		OwnerRole:    t.OwnerRole().String(),
		OwnerID:      t.OwnerID(),
		ContactEmail: t.ContactEmail(),
		ContactName:  t.ContactName(),
		Version:      t.Version(),
		CreatedAt:    t.CreatedAt().UnixMilli(),
		UpdatedAt:    t.UpdatedAt().UnixMilli(),
	}
	if !t.LastMessageAt().IsZero() {
		model.LastMessageAt = t.LastMessageAt().UnixMilli()
	}
	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.SupportTicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}
	ownerRole, err := vo.NewOwnerRole(model.OwnerRole)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}

	lastMessageAt := biztime.FromMillis(model.CreatedAt)
	if model.LastMessageAt > 0 {
		lastMessageAt = biztime.FromMillis(model.LastMessageAt)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.Subject,
		status,
		priority,
		vo.NewCategory(model.Category),
		ownerRole,
		model.OwnerID,
		model.ContactEmail,
		model.ContactName,
		lastMessageAt,
		model.Version,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	), nil
}

func (m *TicketMapperImpl) MessageToModel(msg *ticket.Message) (*models.SupportMessageModel, error) {
	attachments, err := json.Marshal(msg.Attachments())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message attachments: %w", err)
	}
	return &models.SupportMessageModel{
		ID:          msg.ID(),
		TicketID:    msg.TicketID(),
		SenderRole:  msg.SenderRole().String(),
		SenderID:    msg.SenderID(),
		Body:        msg.Body(),
		Attachments: datatypes.JSON(attachments),
		CreatedAt:   msg.CreatedAt().UnixMilli(),
	}, nil
}

func (m *TicketMapperImpl) MessageToDomain(model *models.SupportMessageModel) (*ticket.Message, error) {
	sender := vo.SenderRole(model.SenderRole)
	if !sender.IsValid() {
		return nil, fmt.Errorf("message %d has unknown sender role %q", model.ID, model.SenderRole)
	}
	var attachments []string
	if len(model.Attachments) > 0 {
		if err := json.Unmarshal(model.Attachments, &attachments); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message attachments (id=%d): %w", model.ID, err)
		}
	}
	return ticket.ReconstructMessage(
		model.ID,
		model.TicketID,
		sender,
		model.SenderID,
		model.Body,
		attachments,
		biztime.FromMillis(model.CreatedAt),
	), nil
}
