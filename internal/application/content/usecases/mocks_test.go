package usecases

import (
	"context"
	"sync"

	"helpcenter/internal/domain/content"
	"helpcenter/internal/domain/shared/events"
)

type mockArticleRepository struct {
	SlugExistsFunc func(ctx context.Context, slug string, excludeID uint) (bool, error)
	CreateFunc     func(ctx context.Context, a *content.Article) error
	UpdateFunc     func(ctx context.Context, a *content.Article) error
	GetByIDFunc    func(ctx context.Context, id uint) (*content.Article, error)
	GetBySlugFunc  func(ctx context.Context, slug string) (*content.Article, error)
	ListFunc       func(ctx context.Context, filter content.ListFilter) ([]*content.Article, int64, error)
}

func (m *mockArticleRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	if m.SlugExistsFunc != nil {
		return m.SlugExistsFunc(ctx, slug, excludeID)
	}
	return false, nil
}

func (m *mockArticleRepository) Create(ctx context.Context, a *content.Article) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockArticleRepository) Update(ctx context.Context, a *content.Article) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockArticleRepository) GetByID(ctx context.Context, id uint) (*content.Article, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockArticleRepository) GetBySlug(ctx context.Context, slug string) (*content.Article, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockArticleRepository) List(ctx context.Context, filter content.ListFilter) ([]*content.Article, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockGuideRepository struct {
	SlugExistsFunc func(ctx context.Context, slug string, excludeID uint) (bool, error)
	CreateFunc     func(ctx context.Context, g *content.Guide) error
	UpdateFunc     func(ctx context.Context, g *content.Guide) error
	GetByIDFunc    func(ctx context.Context, id uint) (*content.Guide, error)
	GetBySlugFunc  func(ctx context.Context, slug string) (*content.Guide, error)
	ListFunc       func(ctx context.Context, filter content.ListFilter) ([]*content.Guide, int64, error)
}

func (m *mockGuideRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	if m.SlugExistsFunc != nil {
		return m.SlugExistsFunc(ctx, slug, excludeID)
	}
	return false, nil
}

func (m *mockGuideRepository) Create(ctx context.Context, g *content.Guide) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, g)
	}
	return nil
}

func (m *mockGuideRepository) Update(ctx context.Context, g *content.Guide) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, g)
	}
	return nil
}

func (m *mockGuideRepository) GetByID(ctx context.Context, id uint) (*content.Guide, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockGuideRepository) GetBySlug(ctx context.Context, slug string) (*content.Guide, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockGuideRepository) List(ctx context.Context, filter content.ListFilter) ([]*content.Guide, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockEventPublisher struct {
	mu     sync.Mutex
	events []events.DomainEvent
	err    error
}

func (m *mockEventPublisher) Publish(event events.DomainEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return m.err
}

func (m *mockEventPublisher) PublishAll(evts []events.DomainEvent) error {
	for _, e := range evts {
		if err := m.Publish(e); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockEventPublisher) published() []events.DomainEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]events.DomainEvent, len(m.events))
	copy(out, m.events)
	return out
}

type stubRenderer struct {
	html string
	err  error
}

func (r stubRenderer) Render(string) (string, error) {
	return r.html, r.err
}
