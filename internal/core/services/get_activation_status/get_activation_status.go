package getactivationstatus

import (
	"context"
	"errors"
	"registration/internal/core/domain/activation"
	c "registration/internal/core/domain/common"
	e "registration/internal/core/domain/errors"
	"registration/internal/core/domain/logging"
	uow "registration/internal/core/domain/unit_of_work"
	"registration/internal/core/domain/user"
	"registration/internal/core/services"
	"time"
)

type Input struct {
	UserID user.ID
}

type Result struct {
	Activated bool
	Expired   bool
	// ExpiresAt is absent once the key has been used.
	ExpiresAt c.Optional[time.Time]
}

type service struct {
	log    logging.Logger
	uow    uow.UnitOfWork
	window time.Duration
	now    func() time.Time
}

func New(
	log logging.Logger,
	uow uow.UnitOfWork,
	config activation.Config,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if uow == nil {
		panic(e.NewNilArgumentError("uow"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	if err := config.Validate(); err != nil {
		panic(err)
	}
	return &service{log: log, uow: uow, window: config.Window(), now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not begin unit of work.",
			logging.Entry("userId", input.UserID),
			logging.Entry("err", err),
		)
		return result, err
	}
	defer tx.Rollback(ctx)

	u, err := tx.Users().GetByID(ctx, input.UserID)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not get user.", logging.Entry("userId", input.UserID), logging.Entry("err", err))
		return result, err
	}

	profile, err := tx.Profiles().GetByUserID(ctx, u.ID)
	if errors.Is(err, activation.ErrProfileDoesNotExist) {
		s.log.Warning(ctx, "User has no registration profile.", logging.Entry("userId", u.ID))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get registration profile.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	if profile.IsActivated() {
		return Result{Activated: true, Expired: true}, nil
	}
	return Result{
		Activated: false,
		Expired:   profile.IsExpired(u.CreatedAt, s.window, s.now()),
		ExpiresAt: c.NewOptional(activation.ExpiresAt(u.CreatedAt, s.window), true),
	}, nil
}
