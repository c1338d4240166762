package dto

import (
	"time"

	"helpcenter/internal/domain/content"
)

type ArticleDTO struct {
	ID          uint       `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	Body        string     `json:"body"`
	BodyHTML    string     `json:"body_html"`
	Category    string     `json:"category"`
	Audience    string     `json:"audience"`
	Tags        []string   `json:"tags"`
	AuthorID    uint       `json:"author_id"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type GuideStepDTO struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type GuideDTO struct {
	ID          uint           `json:"id"`
	Slug        string         `json:"slug"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Audience    string         `json:"audience"`
	Steps       []GuideStepDTO `json:"steps"`
	StepCount   int            `json:"step_count"`
	Status      string         `json:"status"`
	PublishedAt *time.Time     `json:"published_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type VideoDTO struct {
	ID              uint       `json:"id"`
	Slug            string     `json:"slug"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	VideoURL        string     `json:"video_url"`
	ThumbnailURL    string     `json:"thumbnail_url"`
	DurationSeconds int        `json:"duration_seconds"`
	Audience        string     `json:"audience"`
	Status          string     `json:"status"`
	PublishedAt     *time.Time `json:"published_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// PublicationDTO is returned by lifecycle-only operations.
type PublicationDTO struct {
	ID          uint       `json:"id"`
	Kind        string     `json:"kind"`
	Slug        string     `json:"slug"`
	From        string     `json:"from"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"published_at"`
}

func ToArticleDTO(a *content.Article) *ArticleDTO {
	if a == nil {
		return nil
	}
	return &ArticleDTO{
		ID:          a.ID(),
		Slug:        a.Slug(),
		Title:       a.Title(),
		Summary:     a.Summary(),
		Body:        a.Body(),
		BodyHTML:    a.BodyHTML(),
		Category:    a.Category(),
		Audience:    a.Audience().String(),
		Tags:        a.Tags(),
		AuthorID:    a.AuthorID(),
		Status:      a.Status().String(),
		PublishedAt: a.PublishedAt(),
		CreatedAt:   a.CreatedAt(),
		UpdatedAt:   a.UpdatedAt(),
	}
}

func ToGuideDTO(g *content.Guide) *GuideDTO {
	if g == nil {
		return nil
	}
	steps := make([]GuideStepDTO, 0, g.StepCount())
	for _, s := range g.Steps() {
		steps = append(steps, GuideStepDTO{Title: s.Title, Body: s.Body})
	}
	return &GuideDTO{
		ID:          g.ID(),
		Slug:        g.Slug(),
		Title:       g.Title(),
		Description: g.Description(),
		Audience:    g.Audience().String(),
		Steps:       steps,
		StepCount:   g.StepCount(),
		Status:      g.Status().String(),
		PublishedAt: g.PublishedAt(),
		CreatedAt:   g.CreatedAt(),
		UpdatedAt:   g.UpdatedAt(),
	}
}

func ToVideoDTO(v *content.Video) *VideoDTO {
	if v == nil {
		return nil
	}
	return &VideoDTO{
		ID:              v.ID(),
		Slug:            v.Slug(),
		Title:           v.Title(),
		Description:     v.Description(),
		VideoURL:        v.VideoURL(),
		ThumbnailURL:    v.ThumbnailURL(),
		DurationSeconds: v.DurationSeconds(),
		Audience:        v.Audience().String(),
		Status:          v.Status().String(),
		PublishedAt:     v.PublishedAt(),
		CreatedAt:       v.CreatedAt(),
		UpdatedAt:       v.UpdatedAt(),
	}
}

// ToGuideSteps converts request steps into domain steps.
func ToGuideSteps(steps []GuideStepDTO) []content.GuideStep {
	if steps == nil {
		return nil
	}
	out := make([]content.GuideStep, 0, len(steps))
	for _, s := range steps {
		out = append(out, content.GuideStep{Title: s.Title, Body: s.Body})
	}
	return out
}
