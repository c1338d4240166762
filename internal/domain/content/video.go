package content

import (
	"net/url"
	"strings"
	"time"

	"helpcenter/internal/shared/errors"
)

// Video is a hosted tutorial. The media itself lives behind VideoURL.
type Video struct {
	Publication
	id              uint
	slug            string
	title           string
	description     string
	videoURL        string
	thumbnailURL    string
	durationSeconds int
	audience        Audience
	createdAt       time.Time
	updatedAt       time.Time
}

type VideoParams struct {
	Title           string
	Description     string
	VideoURL        string
	ThumbnailURL    string
	DurationSeconds int
	Audience        Audience
}

func validateMediaURL(field, raw string, required bool) error {
	if raw == "" {
		if required {
			return errors.NewValidationError(field + " is required")
		}
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.NewValidationError(field+" must be an http(s) URL", raw)
	}
	return nil
}

func NewVideo(p VideoParams, now time.Time) (*Video, error) {
	if err := validateTitle(p.Title); err != nil {
		return nil, err
	}
	if err := validateMediaURL("video_url", p.VideoURL, true); err != nil {
		return nil, err
	}
	if err := validateMediaURL("thumbnail_url", p.ThumbnailURL, false); err != nil {
		return nil, err
	}
	if p.DurationSeconds < 0 {
		return nil, errors.NewValidationError("duration cannot be negative")
	}
	return &Video{
		Publication:     Publication{status: StatusDraft},
		title:           strings.TrimSpace(p.Title),
		description:     p.Description,
		videoURL:        p.VideoURL,
		thumbnailURL:    p.ThumbnailURL,
		durationSeconds: p.DurationSeconds,
		audience:        ParseAudience(string(p.Audience)),
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructVideo(
	id uint,
	slug, title, description, videoURL, thumbnailURL string,
	durationSeconds int,
	audience Audience,
	publication Publication,
	createdAt, updatedAt time.Time,
) *Video {
	return &Video{
		Publication:     publication,
		id:              id,
		slug:            slug,
		title:           title,
		description:     description,
		videoURL:        videoURL,
		thumbnailURL:    thumbnailURL,
		durationSeconds: durationSeconds,
		audience:        audience,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (v *Video) ID() uint             { return v.id }
func (v *Video) Slug() string         { return v.slug }
func (v *Video) Title() string        { return v.title }
func (v *Video) Description() string  { return v.description }
func (v *Video) VideoURL() string     { return v.videoURL }
func (v *Video) ThumbnailURL() string { return v.thumbnailURL }
func (v *Video) DurationSeconds() int { return v.durationSeconds }
func (v *Video) Audience() Audience   { return v.audience }
func (v *Video) CreatedAt() time.Time { return v.createdAt }
func (v *Video) UpdatedAt() time.Time { return v.updatedAt }

func (v *Video) SetID(id uint)       { v.id = id }
func (v *Video) SetSlug(s string)    { v.slug = s }
func (v *Video) Touch(now time.Time) { v.updatedAt = now }

type VideoPatch struct {
	Title           *string
	Description     *string
	VideoURL        *string
	ThumbnailURL    *string
	DurationSeconds *int
	Audience        *string
}

func (v *Video) Apply(p VideoPatch, now time.Time) (titleChanged bool, err error) {
	if p.Title != nil {
		if err := validateTitle(*p.Title); err != nil {
			return false, err
		}
		title := strings.TrimSpace(*p.Title)
		titleChanged = title != v.title
		v.title = title
	}
	if p.VideoURL != nil {
		if err := validateMediaURL("video_url", *p.VideoURL, true); err != nil {
			return false, err
		}
		v.videoURL = *p.VideoURL
	}
	if p.ThumbnailURL != nil {
		if err := validateMediaURL("thumbnail_url", *p.ThumbnailURL, false); err != nil {
			return false, err
		}
		v.thumbnailURL = *p.ThumbnailURL
	}
	if p.DurationSeconds != nil {
		if *p.DurationSeconds < 0 {
			return false, errors.NewValidationError("duration cannot be negative")
		}
		v.durationSeconds = *p.DurationSeconds
	}
	if p.Description != nil {
		v.description = *p.Description
	}
	if p.Audience != nil {
		v.audience = ParseAudience(*p.Audience)
	}
	v.updatedAt = now
	return titleChanged, nil
}
