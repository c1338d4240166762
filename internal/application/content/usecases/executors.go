package usecases

import (
	"context"

	"helpcenter/internal/application/content/dto"
)

type CreateArticleExecutor interface {
	Execute(ctx context.Context, cmd CreateArticleCommand) (*dto.ArticleDTO, error)
}

type UpdateArticleExecutor interface {
	Execute(ctx context.Context, cmd UpdateArticleCommand) (*dto.ArticleDTO, error)
}

type CreateGuideExecutor interface {
	Execute(ctx context.Context, cmd CreateGuideCommand) (*dto.GuideDTO, error)
}

type UpdateGuideExecutor interface {
	Execute(ctx context.Context, cmd UpdateGuideCommand) (*dto.GuideDTO, error)
}

type CreateVideoExecutor interface {
	Execute(ctx context.Context, cmd CreateVideoCommand) (*dto.VideoDTO, error)
}

type UpdateVideoExecutor interface {
	Execute(ctx context.Context, cmd UpdateVideoCommand) (*dto.VideoDTO, error)
}

type ChangePublicationExecutor interface {
	Execute(ctx context.Context, cmd ChangePublicationCommand) (*dto.PublicationDTO, error)
}

type GetContentExecutor[D any] interface {
	Execute(ctx context.Context, query GetContentQuery) (D, error)
}

type ListContentExecutor[D any] interface {
	Execute(ctx context.Context, query ListContentQuery) (*ListContentResult[D], error)
}
