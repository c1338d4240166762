package content

import "context"

// ListFilter narrows content listings. Nil fields do not filter.
type ListFilter struct {
	Status   *Status
	Audience *Audience
	Query    string
	Page     int
	PageSize int
}

// ArticleRepository stores articles. Create and Update surface unique-index
// violations on slug so that SlugAllocator.AllocateAndPersist can retry.
type ArticleRepository interface {
	SlugRegistry
	Create(ctx context.Context, a *Article) error
	Update(ctx context.Context, a *Article) error
	GetByID(ctx context.Context, id uint) (*Article, error)
	GetBySlug(ctx context.Context, slug string) (*Article, error)
	List(ctx context.Context, filter ListFilter) ([]*Article, int64, error)
}

type GuideRepository interface {
	SlugRegistry
	Create(ctx context.Context, g *Guide) error
	Update(ctx context.Context, g *Guide) error
	GetByID(ctx context.Context, id uint) (*Guide, error)
	GetBySlug(ctx context.Context, slug string) (*Guide, error)
	List(ctx context.Context, filter ListFilter) ([]*Guide, int64, error)
}

type VideoRepository interface {
	SlugRegistry
	Create(ctx context.Context, v *Video) error
	Update(ctx context.Context, v *Video) error
	GetByID(ctx context.Context, id uint) (*Video, error)
	GetBySlug(ctx context.Context, slug string) (*Video, error)
	List(ctx context.Context, filter ListFilter) ([]*Video, int64, error)
}
