package activateuser

import (
	"context"
	"errors"
	"registration/internal/core/domain/activation"
	e "registration/internal/core/domain/errors"
	"registration/internal/core/domain/logging"
	uow "registration/internal/core/domain/unit_of_work"
	"registration/internal/core/domain/user"
	"registration/internal/core/services"
	"time"
)

type Status string

const (
	StatusActivated = Status("activated")
	StatusNotFound  = Status("not_found")
	StatusExpired   = Status("expired")
)

type Input struct {
	Key activation.Key
}

// Result carries the outcome of an activation attempt. Unknown and expired keys
// are reported through Status, not as errors.
type Result struct {
	Status Status
	User   user.User
}

func (r Result) IsActivated() bool {
	return r.Status == StatusActivated
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
	return &service{
		log:    log,
		uow:    uow,
		window: config.Window(),
		now:    now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.Key == "" || input.Key == activation.KeyActivated {
		s.log.Info(ctx, "Activation key is not valid.", logging.Entry("key", input.Key))
		return Result{Status: StatusNotFound}, nil
	}

	tx, err := s.uow.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not begin unit of work.",
			logging.Entry("input", input),
			logging.Entry("err", err),
		)
		return result, err
	}
	defer tx.Rollback(ctx)

	profile, err := tx.Profiles().GetByKeyWithLock(ctx, input.Key)
	if errors.Is(err, activation.ErrProfileDoesNotExist) {
		s.log.Info(ctx, "Registration profile not found.", logging.Entry("key", input.Key))
		return Result{Status: StatusNotFound}, nil
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get registration profile.",
			logging.Entry("input", input),
			logging.Entry("err", err),
		)
		return result, err
	}

	u, err := tx.Users().GetByID(ctx, profile.UserID)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user of the registration profile.",
			logging.Entry("profileId", profile.ID),
			logging.Entry("userId", profile.UserID),
			logging.Entry("err", err),
		)
		return result, err
	}

	if profile.IsExpired(u.CreatedAt, s.window, s.now()) {
		s.log.Info(
			ctx,
			"Activation key has expired.",
			logging.Entry("userId", u.ID),
			logging.Entry("joinedAt", u.CreatedAt),
		)
		return Result{Status: StatusExpired}, nil
	}

	u, err = tx.Users().SetActive(ctx, u.ID, true)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not activate user.",
			logging.Entry("userId", profile.UserID),
			logging.Entry("err", err),
		)
		return result, err
	}

	_, err = tx.Profiles().SetKey(ctx, profile.ID, activation.KeyActivated)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not mark registration profile as activated.",
			logging.Entry("profileId", profile.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	if err = tx.Commit(ctx); err != nil {
		s.log.Error(
			ctx,
			"Could not commit unit of work.",
			logging.Entry("input", input),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "User successfully activated.", logging.Entry("userId", u.ID))
	return Result{Status: StatusActivated, User: u}, nil
}
