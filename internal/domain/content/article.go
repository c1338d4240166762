package content

import (
	"strings"
	"time"

	"helpcenter/internal/shared/errors"
)

const (
	maxTitleLength   = 200
	maxSummaryLength = 500
)

// Article is a knowledge-base entry written in markdown.
type Article struct {
	Publication
	id        uint
	slug      string
	title     string
	summary   string
	body      string
	bodyHTML  string
	category  string
	audience  Audience
	tags      []string
	authorID  uint
	createdAt time.Time
	updatedAt time.Time
}

// ArticleParams carries the editable fields of an article.
type ArticleParams struct {
	Title    string
	Summary  string
	Body     string
	Category string
	Audience Audience
	Tags     []string
	AuthorID uint
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.NewValidationError("title is required")
	}
	if len(title) > maxTitleLength {
		return errors.NewValidationError("title exceeds maximum length of 200 characters")
	}
	return nil
}

// NewArticle builds an unsaved article. The slug and publication state are
// assigned by the caller through SetSlug and a PublicationPolicy.
func NewArticle(p ArticleParams, now time.Time) (*Article, error) {
	if err := validateTitle(p.Title); err != nil {
		return nil, err
	}
	if strings.TrimSpace(p.Body) == "" {
		return nil, errors.NewValidationError("body is required")
	}
	if len(p.Summary) > maxSummaryLength {
		return nil, errors.NewValidationError("summary exceeds maximum length of 500 characters")
	}

	return &Article{
		Publication: Publication{status: StatusDraft},
		title:       strings.TrimSpace(p.Title),
		summary:     p.Summary,
		body:        p.Body,
		category:    strings.TrimSpace(p.Category),
		audience:    ParseAudience(string(p.Audience)),
		tags:        normalizeTags(p.Tags),
		authorID:    p.AuthorID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructArticle(
	id uint,
	slug, title, summary, body, bodyHTML, category string,
	audience Audience,
	tags []string,
	authorID uint,
	publication Publication,
	createdAt, updatedAt time.Time,
) *Article {
	if tags == nil {
		tags = []string{}
	}
	return &Article{
		Publication: publication,
		id:          id,
		slug:        slug,
		title:       title,
		summary:     summary,
		body:        body,
		bodyHTML:    bodyHTML,
		category:    category,
		audience:    audience,
		tags:        tags,
		authorID:    authorID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (a *Article) ID() uint             { return a.id }
func (a *Article) Slug() string         { return a.slug }
func (a *Article) Title() string        { return a.title }
func (a *Article) Summary() string      { return a.summary }
func (a *Article) Body() string         { return a.body }
func (a *Article) BodyHTML() string     { return a.bodyHTML }
func (a *Article) Category() string     { return a.category }
func (a *Article) Audience() Audience   { return a.audience }
func (a *Article) AuthorID() uint       { return a.authorID }
func (a *Article) CreatedAt() time.Time { return a.createdAt }
func (a *Article) UpdatedAt() time.Time { return a.updatedAt }

func (a *Article) Tags() []string {
	out := make([]string, len(a.tags))
	copy(out, a.tags)
	return out
}

func (a *Article) SetID(id uint)    { a.id = id }
func (a *Article) SetSlug(s string) { a.slug = s }

// SetBodyHTML stores the rendered body; rendering happens outside the domain.
func (a *Article) SetBodyHTML(html string) { a.bodyHTML = html }

// ArticlePatch holds optional edits; nil fields are left unchanged.
type ArticlePatch struct {
	Title    *string
	Summary  *string
	Body     *string
	Category *string
	Audience *string
	Tags     []string
}

// Apply edits the article and reports whether the title changed.
func (a *Article) Apply(p ArticlePatch, now time.Time) (titleChanged bool, err error) {
	if p.Title != nil {
		if err := validateTitle(*p.Title); err != nil {
			return false, err
		}
		title := strings.TrimSpace(*p.Title)
		titleChanged = title != a.title
		a.title = title
	}
	if p.Summary != nil {
		if len(*p.Summary) > maxSummaryLength {
			return false, errors.NewValidationError("summary exceeds maximum length of 500 characters")
		}
		a.summary = *p.Summary
	}
	if p.Body != nil {
		if strings.TrimSpace(*p.Body) == "" {
			return false, errors.NewValidationError("body cannot be empty")
		}
		a.body = *p.Body
	}
	if p.Category != nil {
		a.category = strings.TrimSpace(*p.Category)
	}
	if p.Audience != nil {
		a.audience = ParseAudience(*p.Audience)
	}
	if p.Tags != nil {
		a.tags = normalizeTags(p.Tags)
	}
	a.updatedAt = now
	return titleChanged, nil
}

// Touch bumps updatedAt after a lifecycle-only change.
func (a *Article) Touch(now time.Time) { a.updatedAt = now }

func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
