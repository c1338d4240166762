package models

import (
	"gorm.io/datatypes"

	"helpcenter/internal/shared/constants"
)

type OnboardingProgressModel struct {
	ID             uint           `gorm:"primaryKey"`
	OwnerID        uint           `gorm:"not null;uniqueIndex:idx_progress_owner_guide"`
	GuideSlug      string         `gorm:"size:120;not null;uniqueIndex:idx_progress_owner_guide"`
	CompletedSteps datatypes.JSON `gorm:"type:json;not null"`
	Completed      bool           `gorm:"not null;default:false"`
	CreatedAt      int64          `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64          `gorm:"autoUpdateTime:milli;not null"`
}

func (OnboardingProgressModel) TableName() string {
	return constants.TableOnboardingProgress
}
