package content

import (
	contentdto "helpcenter/internal/application/content/dto"
	"helpcenter/internal/application/content/usecases"
)

type CreateArticleRequest struct {
	Title    string   `json:"title" binding:"required,max=200"`
	Summary  string   `json:"summary" binding:"max=500"`
	Body     string   `json:"body" binding:"required"`
	Category string   `json:"category"`
	Audience string   `json:"audience"`
	Tags     []string `json:"tags,omitempty" binding:"max=20"`
	Status   string   `json:"status"`
}

func (r *CreateArticleRequest) ToCommand(authorID uint) usecases.CreateArticleCommand {
	return usecases.CreateArticleCommand{
		Title:    r.Title,
		Summary:  r.Summary,
		Body:     r.Body,
		Category: r.Category,
		Audience: r.Audience,
		Tags:     r.Tags,
		Status:   r.Status,
		AuthorID: authorID,
	}
}

type UpdateArticleRequest struct {
	Title    *string  `json:"title" binding:"omitempty,max=200"`
	Summary  *string  `json:"summary" binding:"omitempty,max=500"`
	Body     *string  `json:"body"`
	Category *string  `json:"category"`
	Audience *string  `json:"audience"`
	Tags     []string `json:"tags,omitempty" binding:"max=20"`
	Status   *string  `json:"status"`
}

func (r *UpdateArticleRequest) ToCommand(id, actorID uint) usecases.UpdateArticleCommand {
	return usecases.UpdateArticleCommand{
		ID:       id,
		Title:    r.Title,
		Summary:  r.Summary,
		Body:     r.Body,
		Category: r.Category,
		Audience: r.Audience,
		Tags:     r.Tags,
		Status:   r.Status,
		ActorID:  actorID,
	}
}

type GuideStepRequest struct {
	Title string `json:"title" binding:"required,max=200"`
	Body  string `json:"body"`
}

func toStepDTOs(steps []GuideStepRequest) []contentdto.GuideStepDTO {
	if steps == nil {
		return nil
	}
	out := make([]contentdto.GuideStepDTO, 0, len(steps))
	for _, s := range steps {
		out = append(out, contentdto.GuideStepDTO{Title: s.Title, Body: s.Body})
	}
	return out
}

type CreateGuideRequest struct {
	Title       string             `json:"title" binding:"required,max=200"`
	Description string             `json:"description"`
	Audience    string             `json:"audience"`
	Steps       []GuideStepRequest `json:"steps" binding:"required,min=1,dive"`
	Status      string             `json:"status"`
}

func (r *CreateGuideRequest) ToCommand(actorID uint) usecases.CreateGuideCommand {
	return usecases.CreateGuideCommand{
		Title:       r.Title,
		Description: r.Description,
		Audience:    r.Audience,
		Steps:       toStepDTOs(r.Steps),
		Status:      r.Status,
		ActorID:     actorID,
	}
}

type UpdateGuideRequest struct {
	Title       *string            `json:"title" binding:"omitempty,max=200"`
	Description *string            `json:"description"`
	Audience    *string            `json:"audience"`
	Steps       []GuideStepRequest `json:"steps" binding:"omitempty,dive"`
	Status      *string            `json:"status"`
}

func (r *UpdateGuideRequest) ToCommand(id, actorID uint) usecases.UpdateGuideCommand {
	return usecases.UpdateGuideCommand{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Audience:    r.Audience,
		Steps:       toStepDTOs(r.Steps),
		Status:      r.Status,
		ActorID:     actorID,
	}
}

type CreateVideoRequest struct {
	Title           string `json:"title" binding:"required,max=200"`
	Description     string `json:"description"`
	VideoURL        string `json:"video_url" binding:"required,url"`
	ThumbnailURL    string `json:"thumbnail_url" binding:"omitempty,url"`
	DurationSeconds int    `json:"duration_seconds" binding:"gte=0"`
	Audience        string `json:"audience"`
	Status          string `json:"status"`
}

func (r *CreateVideoRequest) ToCommand(actorID uint) usecases.CreateVideoCommand {
	return usecases.CreateVideoCommand{
		Title:           r.Title,
		Description:     r.Description,
		VideoURL:        r.VideoURL,
		ThumbnailURL:    r.ThumbnailURL,
		DurationSeconds: r.DurationSeconds,
		Audience:        r.Audience,
		Status:          r.Status,
		ActorID:         actorID,
	}
}

type UpdateVideoRequest struct {
	Title           *string `json:"title" binding:"omitempty,max=200"`
	Description     *string `json:"description"`
	VideoURL        *string `json:"video_url" binding:"omitempty,url"`
	ThumbnailURL    *string `json:"thumbnail_url" binding:"omitempty,url"`
	DurationSeconds *int    `json:"duration_seconds" binding:"omitempty,gte=0"`
	Audience        *string `json:"audience"`
	Status          *string `json:"status"`
}

func (r *UpdateVideoRequest) ToCommand(id, actorID uint) usecases.UpdateVideoCommand {
	return usecases.UpdateVideoCommand{
		ID:              id,
		Title:           r.Title,
		Description:     r.Description,
		VideoURL:        r.VideoURL,
		ThumbnailURL:    r.ThumbnailURL,
		DurationSeconds: r.DurationSeconds,
		Audience:        r.Audience,
		Status:          r.Status,
		ActorID:         actorID,
	}
}
