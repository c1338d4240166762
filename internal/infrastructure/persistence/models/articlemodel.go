package models

import (
	"gorm.io/datatypes"

	"helpcenter/internal/shared/constants"
)

type ArticleModel struct {
	ID              uint           `gorm:"primaryKey"`
	Slug            string         `gorm:"uniqueIndex;size:120;not null"`
	Title           string         `gorm:"size:200;not null"`
	Summary         string         `gorm:"size:500"`
	Body            string         `gorm:"type:text;not null"`
	BodyHTML        string         `gorm:"column:body_html;type:text"`
	Category        string         `gorm:"size:50;index"`
	Audience        string         `gorm:"size:20;not null;index"`
	Tags            datatypes.JSON `gorm:"type:json"`
	AuthorID        uint           `gorm:"not null;index"`
	Status          string         `gorm:"size:20;not null;index"`
	PublishedAt     *int64         `gorm:"index"`
	LastPublishedAt *int64
	CreatedAt       int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (ArticleModel) TableName() string {
	return constants.TableArticles
}

type GuideModel struct {
	ID              uint           `gorm:"primaryKey"`
	Slug            string         `gorm:"uniqueIndex;size:120;not null"`
	Title           string         `gorm:"size:200;not null"`
	Description     string         `gorm:"type:text"`
	Audience        string         `gorm:"size:20;not null;index"`
	Steps           datatypes.JSON `gorm:"type:json;not null"`
	Status          string         `gorm:"size:20;not null;index"`
	PublishedAt     *int64         `gorm:"index"`
	LastPublishedAt *int64
	CreatedAt       int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (GuideModel) TableName() string {
	return constants.TableGuides
}

type VideoModel struct {
	ID              uint   `gorm:"primaryKey"`
	Slug            string `gorm:"uniqueIndex;size:120;not null"`
	Title           string `gorm:"size:200;not null"`
	Description     string `gorm:"type:text"`
	VideoURL        string `gorm:"column:video_url;size:1024;not null"`
	ThumbnailURL    string `gorm:"column:thumbnail_url;size:1024"`
	DurationSeconds int    `gorm:"not null;default:0"`
	Audience        string `gorm:"size:20;not null;index"`
	Status          string `gorm:"size:20;not null;index"`
	PublishedAt     *int64 `gorm:"index"`
	LastPublishedAt *int64
	CreatedAt       int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (VideoModel) TableName() string {
	return constants.TableVideos
}
