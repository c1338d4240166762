package usecases

import (
	"context"

	"helpcenter/internal/application/onboarding/dto"
)

type GetProgressExecutor interface {
	Execute(ctx context.Context, ownerID uint, guideSlug string) (*dto.ProgressDTO, error)
}

type ListProgressExecutor interface {
	Execute(ctx context.Context, ownerID uint) ([]*dto.ProgressDTO, error)
}

type PutProgressExecutor interface {
	Execute(ctx context.Context, cmd PutProgressCommand) (*dto.ProgressDTO, error)
}
