package createinactiveuser

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

// ProfileCallback runs against the new user inside the registration transaction,
// an error from it undoes the whole registration.
type ProfileCallback func(ctx context.Context, tx uow.Context, u user.User) error

type Input struct {
	Username        user.Username
	Email           c.Email
	Password        user.RawPassword
	SendEmail       bool
	ProfileCallback ProfileCallback
}

type Result struct {
	User    user.User
	Profile activation.Profile
}

type service struct {
	log            logging.Logger
	unitOfWork     uow.UnitOfWork
	passwordHasher user.PasswordHasher
	keyGenerator   activation.KeyGenerator
	email          *activationEmail
	now            func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordHasher user.PasswordHasher,
	keyGenerator activation.KeyGenerator,
	renderer activation.TemplateRenderer,
	mailer activation.Mailer,
	config activation.Config,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if keyGenerator == nil {
		panic(e.NewNilArgumentError("keyGenerator"))
	}
	if renderer == nil {
		panic(e.NewNilArgumentError("renderer"))
	}
	if mailer == nil {
		panic(e.NewNilArgumentError("mailer"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	if err := config.Validate(); err != nil {
		panic(err)
	}
	return &service{
		log:            log,
		unitOfWork:     unitOfWork,
		passwordHasher: passwordHasher,
		keyGenerator:   keyGenerator,
		email:          newActivationEmail(renderer, mailer, config),
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	passwordHash, err := s.passwordHasher.HashPassword(input.Password)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("err", err))
		return result, err
	}

	tx, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not begin unit of work.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}
	defer tx.Rollback(ctx)

	createdUser, err := tx.Users().Create(ctx, user.CreateUserInput{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
		IsActive:     false,
		CreatedAt:    s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUsernameAlreadyExists) {
		s.log.Info(ctx, "User with the username already exists.", logging.Entry("username", input.Username))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create new user.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}

	key, err := s.keyGenerator.GenerateKey(createdUser)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not generate activation key.",
			logging.Entry("userId", createdUser.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	profile, err := tx.Profiles().Create(ctx, activation.CreateProfileInput{UserID: createdUser.ID, Key: key})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create registration profile.",
			logging.Entry("userId", createdUser.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	if input.ProfileCallback != nil {
		if err = input.ProfileCallback(ctx, tx, createdUser); err != nil {
			s.log.Error(
				ctx,
				"Profile callback failed.",
				logging.Entry("userId", createdUser.ID),
				logging.Entry("err", err),
			)
			return result, err
		}
	}

	if input.SendEmail {
		err = s.email.send(ctx, createdUser, profile)
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		if err != nil {
			s.log.Error(
				ctx,
				"Could not send activation email.",
				logging.Entry("userId", createdUser.ID),
				logging.Entry("err", err),
			)
			return result, err
		}
		s.log.Info(ctx, "Activation email has been sent to the user.", logging.Entry("userId", createdUser.ID))
	}

	err = tx.Commit(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not commit unit of work.",
			logging.Entry("userId", createdUser.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"New inactive user has been created.",
		logging.Entry("userId", createdUser.ID),
		logging.Entry("username", createdUser.Username),
	)
	return Result{User: createdUser, Profile: profile}, nil
}
