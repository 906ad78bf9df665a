package uow

import (
	"context"
	"fmt"
	"registration/internal/core/domain/activation"
	"registration/internal/core/domain/user"
)

// FakeUnitOfWorkContext works on copies of the committed repositories,
// so nothing written through it is visible before Commit.
type FakeUnitOfWorkContext struct {
	UserRepository    *user.FakeUserRepository
	ProfileRepository *activation.FakeProfileRepository
	WasRollbackCalled bool
	WasCommitCalled   bool
	ReturnCommitError bool

	uow *FakeUnitOfWork
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.WasRollbackCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	if c.ReturnCommitError {
		return fmt.Errorf("could not commit")
	}
	if c.WasCommitCalled || c.WasRollbackCalled {
		return fmt.Errorf("transaction is already closed")
	}
	c.WasCommitCalled = true
	c.uow.UserRepository.Replace(c.UserRepository)
	c.uow.ProfileRepository.Replace(c.ProfileRepository)
	return nil
}

func (c *FakeUnitOfWorkContext) Users() user.UserRepository {
	return c.UserRepository
}

func (c *FakeUnitOfWorkContext) Profiles() activation.ProfileRepository {
	return c.ProfileRepository
}

type FakeUnitOfWork struct {
	// Committed state.
	UserRepository    *user.FakeUserRepository
	ProfileRepository *activation.FakeProfileRepository
	// The most recently begun unit of work.
	Context *FakeUnitOfWorkContext

	ReturnBeginError  bool
	ReturnCommitError bool
	// Invoked with every newly begun context, lets tests inject failures.
	OnBegin func(c *FakeUnitOfWorkContext)
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	return &FakeUnitOfWork{
		UserRepository:    user.NewFakeUserRepository(),
		ProfileRepository: activation.NewFakeProfileRepository(),
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	if u.ReturnBeginError {
		return nil, fmt.Errorf("could not begin unit of work")
	}
	u.Context = &FakeUnitOfWorkContext{
		UserRepository:    u.UserRepository.Clone(),
		ProfileRepository: u.ProfileRepository.Clone(),
		ReturnCommitError: u.ReturnCommitError,
		uow:               u,
	}
	if u.OnBegin != nil {
		u.OnBegin(u.Context)
	}
	return u.Context, nil
}
