package commands

import (
	"context"

	"seller-catalog/internal/infra/changefeed"
	"seller-catalog/internal/usecase/shared"
)

//go:generate mockgen -source=exclusion.go -destination=../../../tests/mock/commands/exclusion_mock.go -package=commandsmock

// ExclusionCommands replace one exclusion list wholesale. Both lists are
// global, so only an actor covering every shop may change them.
type ExclusionCommands interface {
	ReplaceInvalidSpecIDs(ctx context.Context, actor Actor, values []string) (int64, error)
	ReplaceEnabledSKUs(ctx context.Context, actor Actor, values []string) (int64, error)
}

type exclusionCommandsImpl struct {
	uow    shared.UnitOfWork
	events ChangePublisher
}

func NewExclusionCommands(uow shared.UnitOfWork, events ChangePublisher) ExclusionCommands {
	return &exclusionCommandsImpl{uow: uow, events: events}
}

func (uc *exclusionCommandsImpl) ReplaceInvalidSpecIDs(ctx context.Context, actor Actor, values []string) (int64, error) {
	return uc.replace(ctx, actor, func(ctx context.Context, repo shared.ExclusionRepository) (int64, error) {
		return repo.ReplaceInvalidSpecIDs(ctx, values)
	})
}

func (uc *exclusionCommandsImpl) ReplaceEnabledSKUs(ctx context.Context, actor Actor, values []string) (int64, error) {
	return uc.replace(ctx, actor, func(ctx context.Context, repo shared.ExclusionRepository) (int64, error) {
		return repo.ReplaceEnabledSKUs(ctx, values)
	})
}

func (uc *exclusionCommandsImpl) replace(ctx context.Context, actor Actor, fn func(context.Context, shared.ExclusionRepository) (int64, error)) (int64, error) {
	if err := actor.authorizeAll(); err != nil {
		return 0, err
	}

	var stored int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		stored, derr = fn(ctx, tx.Exclusions())
		return derr
	})
	if err != nil {
		return 0, translateRepoErr(err, nil, nil)
	}
	uc.events.Publish(changefeed.KindExclusions, "")
	return stored, nil
}
