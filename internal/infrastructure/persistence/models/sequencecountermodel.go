package models

import "helpcenter/internal/shared/constants"

// SequenceCounterModel backs named monotonically increasing counters.
// Rows are only ever incremented.
type SequenceCounterModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:100;not null"`
	Seq       int64  `gorm:"not null;default:0"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (SequenceCounterModel) TableName() string {
	return constants.TableSequenceCounters
}
