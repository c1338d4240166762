package models

import (
	"gorm.io/datatypes"

	"helpcenter/internal/shared/constants"
)

type SupportTicketModel struct {
	ID            uint   `gorm:"primaryKey"`
	Number        string `gorm:"uniqueIndex;size:50;not null"`
	Subject       string `gorm:"size:200;not null"`
	Status        string `gorm:"size:20;not null;index"`
	Priority      string `gorm:"size:20;not null;index"`
	Category      string `gorm:"size:20;not null;index"`
	OwnerRole     string `gorm:"size:20;not null;index:idx_ticket_owner"`
	OwnerID       uint   `gorm:"not null;default:0;index:idx_ticket_owner"`
	ContactEmail  string `gorm:"size:255;index"`
	ContactName   string `gorm:"size:100"`
	LastMessageAt int64  `gorm:"not null;default:0"`
	Version       int    `gorm:"not null;default:1"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt     int64  `gorm:"autoUpdateTime:milli;not null"`

	// No foreign keys; the thread lives in support_messages keyed by ticket_id.
}

func (SupportTicketModel) TableName() string {
	return constants.TableSupportTickets
}

type SupportMessageModel struct {
	ID          uint           `gorm:"primaryKey"`
	TicketID    uint           `gorm:"not null;index:idx_message_thread"`
	SenderRole  string         `gorm:"size:10;not null"`
	SenderID    uint           `gorm:"not null;default:0"`
	Body        string         `gorm:"type:text;not null"`
	Attachments datatypes.JSON `gorm:"type:json"`
	CreatedAt   int64          `gorm:"autoCreateTime:milli;not null;index:idx_message_thread"`
}

func (SupportMessageModel) TableName() string {
	return constants.TableSupportMessages
}
