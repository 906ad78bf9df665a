package uow

import (
	"context"
	"registration/internal/core/domain/activation"
	"registration/internal/core/domain/user"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Users() user.UserRepository
	Profiles() activation.ProfileRepository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
