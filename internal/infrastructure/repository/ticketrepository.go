package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helpcenter/internal/domain/ticket"
	"helpcenter/internal/infrastructure/persistence/mappers"
	"helpcenter/internal/infrastructure/persistence/models"
	db "helpcenter/internal/shared/db"
	apperrors "helpcenter/internal/shared/errors"
	"helpcenter/internal/shared/logger"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(db *gorm.DB, log logger.Interface) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: log,
	}
}

// Create inserts the ticket row and every message already on its thread.
func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save ticket: %w", err)
		}
		t.SetID(model.ID)

		for _, msg := range t.Messages() {
			msgModel, err := r.mapper.MessageToModel(msg)
			if err != nil {
				return err
			}
			if err := tx.Create(msgModel).Error; err != nil {
				return fmt.Errorf("failed to save ticket message: %w", err)
			}
			msg.SetID(msgModel.ID)
		}
		return nil
	})
}

// Update writes the mutable ticket fields if the stored version still
// equals t.Version(), then advances the version.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.SupportTicketModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version).
		Updates(map[string]interface{}{
			"subject":         model.Subject,
			"status":          model.Status,
			"priority":        model.Priority,
			"category":        model.Category,
			"contact_email":   model.ContactEmail,
			"contact_name":    model.ContactName,
			"last_message_at": model.LastMessageAt,
			"version":         gorm.Expr("version + 1"),
			"updated_at":      model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.logger.Warnw("ticket version mismatch", "ticket_id", model.ID, "version", model.Version)
		return apperrors.NewConcurrencyConflictError("ticket was modified concurrently", t.Number())
	}

	t.SetVersion(model.Version + 1)
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.SupportTicketModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}
	return r.withThread(ctx, &model)
}

func (r *TicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	var model models.SupportTicketModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("number = ?", number).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found", number)
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}
	return r.withThread(ctx, &model)
}

// List returns tickets without their threads, newest first.
func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.SupportTicketModel{})

	if filter.OwnerRole != nil {
		query = query.Where("owner_role = ?", filter.OwnerRole.String())
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.Category != nil {
		query = query.Where("category = ?", filter.Category.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var rows []models.SupportTicketModel
	if err := query.
		Order("created_at DESC").Order("id DESC").
		Scopes(db.Paginate(filter.Page, pageSizeOrDefault(filter.PageSize))).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(rows))
	for i := range rows {
		t, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		tickets[i] = t
	}
	return tickets, total, nil
}

func (r *TicketRepository) withThread(ctx context.Context, model *models.SupportTicketModel) (*ticket.Ticket, error) {
	t, err := r.mapper.ToDomain(model)
	if err != nil {
		return nil, err
	}
	messages, err := listThread(ctx, db.GetTxFromContext(ctx, r.db), r.mapper, model.ID)
	if err != nil {
		return nil, err
	}
	t.AttachThread(messages)
	return t, nil
}

type MessageRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

// Create appends one message. Messages are never updated or deleted.
func (r *MessageRepository) Create(ctx context.Context, m *ticket.Message) error {
	model, err := r.mapper.MessageToModel(m)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket message: %w", err)
	}
	m.SetID(model.ID)
	return nil
}

func (r *MessageRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
	return listThread(ctx, db.GetTxFromContext(ctx, r.db), r.mapper, ticketID)
}

func listThread(ctx context.Context, tx *gorm.DB, mapper mappers.TicketMapper, ticketID uint) ([]*ticket.Message, error) {
	var rows []models.SupportMessageModel
	if err := tx.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket thread: %w", err)
	}
	messages := make([]*ticket.Message, len(rows))
	for i := range rows {
		m, err := mapper.MessageToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		messages[i] = m
	}
	return messages, nil
}
