package usecases

import (
	"context"

	"helpcenter/internal/application/content/dto"
	"helpcenter/internal/domain/content"
	"helpcenter/internal/domain/shared/events"
	"helpcenter/internal/shared/biztime"
	"helpcenter/internal/shared/errors"
	"helpcenter/internal/shared/logger"
)

type PublicationAction string

const (
	ActionPublish   PublicationAction = "publish"
	ActionUnpublish PublicationAction = "unpublish"
	ActionArchive   PublicationAction = "archive"
)

type ChangePublicationCommand struct {
	ID     uint
	Action PublicationAction
	// Target is the unpublish destination; empty means DRAFT.
	Target  string
	ActorID uint
}

// ChangePublicationUseCase drives publish, unpublish and archive (delete)
// for one content kind.
type ChangePublicationUseCase[T entity] struct {
	kind      content.Kind
	repo      entityStore[T]
	policy    *content.PublicationPolicy
	publisher events.EventPublisher
	clock     biztime.Clock
	logger    logger.Interface
}

func NewChangePublicationUseCase[T entity](
	kind content.Kind,
	repo entityStore[T],
	policy *content.PublicationPolicy,
	publisher events.EventPublisher,
	clock biztime.Clock,
	logger logger.Interface,
) *ChangePublicationUseCase[T] {
	if clock == nil {
		clock = biztime.SystemClock
	}
	return &ChangePublicationUseCase[T]{
		kind:      kind,
		repo:      repo,
		policy:    policy,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
	}
}

func (uc *ChangePublicationUseCase[T]) Execute(ctx context.Context, cmd ChangePublicationCommand) (*dto.PublicationDTO, error) {
	uc.logger.Infow("executing change publication use case",
		"kind", uc.kind, "id", cmd.ID, "action", cmd.Action, "actor_id", cmd.ActorID)

	e, err := uc.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	var tr content.PublicationTransition
	switch cmd.Action {
	case ActionPublish:
		tr = uc.policy.Publish(e)
	case ActionArchive:
		tr = uc.policy.Archive(e)
	case ActionUnpublish:
		target := content.StatusDraft
		if cmd.Target != "" {
			if target, err = content.ParseStatus(cmd.Target); err != nil {
				return nil, err
			}
		}
		if tr, err = uc.policy.Unpublish(e, target); err != nil {
			return nil, err
		}
	default:
		return nil, errors.NewInvalidTransitionError("unknown publication action", string(cmd.Action))
	}

	now := uc.clock()
	e.Touch(now)
	if err := uc.repo.Update(ctx, e); err != nil {
		uc.logger.Errorw("failed to persist publication change", "kind", uc.kind, "id", cmd.ID, "error", err)
		return nil, err
	}

	publishTransition(uc.publisher, uc.logger, uc.kind, e, tr, cmd.ActorID, now)

	uc.logger.Infow("publication changed", "kind", uc.kind, "id", cmd.ID, "from", tr.From, "to", tr.To)

	return &dto.PublicationDTO{
		ID:          e.ID(),
		Kind:        uc.kind.String(),
		Slug:        e.Slug(),
		From:        tr.From.String(),
		Status:      e.Status().String(),
		PublishedAt: e.PublishedAt(),
	}, nil
}
