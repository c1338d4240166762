package usecases

import (
	"context"

	"helpcenter/internal/domain/content"
	"helpcenter/internal/shared/errors"
	"helpcenter/internal/shared/logger"
)

// GetContentQuery looks up by ID when it is set and by Slug otherwise.
// Public readers only see published content.
type GetContentQuery struct {
	ID                 uint
	Slug               string
	IncludeUnpublished bool
}

type GetContentUseCase[T entity, D any] struct {
	kind   content.Kind
	repo   entityStore[T]
	toDTO  func(T) D
	logger logger.Interface
}

func NewGetContentUseCase[T entity, D any](
	kind content.Kind,
	repo entityStore[T],
	toDTO func(T) D,
	logger logger.Interface,
) *GetContentUseCase[T, D] {
	return &GetContentUseCase[T, D]{kind: kind, repo: repo, toDTO: toDTO, logger: logger}
}

func (uc *GetContentUseCase[T, D]) Execute(ctx context.Context, query GetContentQuery) (D, error) {
	var zero D

	var (
		e   T
		err error
	)
	if query.ID != 0 {
		e, err = uc.repo.GetByID(ctx, query.ID)
	} else {
		if query.Slug == "" {
			return zero, errors.NewValidationError("slug is required")
		}
		e, err = uc.repo.GetBySlug(ctx, query.Slug)
	}
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to load content", "kind", uc.kind, "slug", query.Slug, "id", query.ID, "error", err)
		}
		return zero, err
	}

	if !query.IncludeUnpublished && !e.Status().IsPublished() {
		return zero, errors.NewNotFoundError(uc.kind.String() + " not found")
	}

	return uc.toDTO(e), nil
}
