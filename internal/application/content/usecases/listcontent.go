package usecases

import (
	"context"

	"helpcenter/internal/domain/content"
	"helpcenter/internal/shared/constants"
	"helpcenter/internal/shared/logger"
)

type ListContentQuery struct {
	Status   string
	Audience string
	Query    string
	Page     int
	PageSize int
	// PublicOnly pins the status filter to PUBLISHED.
	PublicOnly bool
}

type ListContentResult[D any] struct {
	Items    []D
	Total    int64
	Page     int
	PageSize int
}

type ListContentUseCase[T entity, D any] struct {
	kind   content.Kind
	repo   entityLister[T]
	toDTO  func(T) D
	logger logger.Interface
}

func NewListContentUseCase[T entity, D any](
	kind content.Kind,
	repo entityLister[T],
	toDTO func(T) D,
	logger logger.Interface,
) *ListContentUseCase[T, D] {
	return &ListContentUseCase[T, D]{kind: kind, repo: repo, toDTO: toDTO, logger: logger}
}

func (uc *ListContentUseCase[T, D]) Execute(ctx context.Context, query ListContentQuery) (*ListContentResult[D], error) {
	filter := content.ListFilter{
		Query:    query.Query,
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = constants.DefaultPageSize
	}
	if filter.PageSize > constants.MaxPageSize {
		filter.PageSize = constants.MaxPageSize
	}

	if query.PublicOnly {
		published := content.StatusPublished
		filter.Status = &published
	} else {
		status, err := content.ParseOptionalStatus(query.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = status
	}
	if query.Audience != "" {
		audience := content.ParseAudience(query.Audience)
		filter.Audience = &audience
	}

	items, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list content", "kind", uc.kind, "error", err)
		return nil, err
	}

	out := make([]D, 0, len(items))
	for _, e := range items {
		out = append(out, uc.toDTO(e))
	}

	return &ListContentResult[D]{
		Items:    out,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
