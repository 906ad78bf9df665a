package createinactiveuser

import (
	"context"
	"errors"
	"fmt"
	"registration/internal/core/domain/activation"
	c "registration/internal/core/domain/common"
	"registration/internal/core/domain/logging"
	uow "registration/internal/core/domain/unit_of_work"
	"registration/internal/core/domain/user"
	"registration/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	ACTIVATION_KEY = "0123456789abcdef0123456789abcdef01234567"
	USERNAME       = user.Username("alice")
	EMAIL          = c.Email("alice@example.com")
	RAW_PASSWORD   = user.RawPassword("test-password")
	FROM_EMAIL     = c.Email("noreply@example.com")
)

var NOW time.Time = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

var CONFIG = activation.Config{
	ExpirationDays:   7,
	DefaultFromEmail: FROM_EMAIL,
	Site:             activation.Site{Name: "Example", Domain: "example.com"},
}

var errCallback = fmt.Errorf("callback error")

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UnitOfWork     *uow.FakeUnitOfWork
	PasswordHasher *user.FakePasswordHasher
	KeyGenerator   *activation.FakeKeyGenerator
	Renderer       *activation.FakeTemplateRenderer
	Mailer         *activation.FakeMailer
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UnitOfWork = uow.NewFakeUnitOfWork()
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.KeyGenerator = activation.NewFakeKeyGenerator(ACTIVATION_KEY)
	suite.Renderer = activation.NewFakeTemplateRenderer("Account activation on Example\n")
	suite.Mailer = activation.NewFakeMailer()
	suite.Service = New(
		suite.Logger,
		suite.UnitOfWork,
		suite.PasswordHasher,
		suite.KeyGenerator,
		suite.Renderer,
		suite.Mailer,
		CONFIG,
		func() time.Time { return NOW },
	)
}

func TestCreateInactiveUserService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) input() Input {
	return Input{Username: USERNAME, Email: EMAIL, Password: RAW_PASSWORD, SendEmail: true}
}

func (suite *testSuite) TestSuccess() {
	result, err := suite.Service.Run(context.Background(), suite.input())

	assert := suite.Require()
	assert.Nil(err)
	assert.NotEqual(user.ID(0), result.User.ID)
	assert.Equal(USERNAME, result.User.Username)
	assert.Equal(EMAIL, result.User.Email)
	assert.Equal(NOW, result.User.CreatedAt)
	assert.False(result.User.IsActive)
	assert.NotEqual(user.PasswordHash(RAW_PASSWORD), result.User.PasswordHash)
	assert.Equal(result.User.ID, result.Profile.UserID)
	assert.Equal(activation.Key(ACTIVATION_KEY), result.Profile.Key)
	assert.True(suite.UnitOfWork.Context.WasCommitCalled)

	assert.Equal(1, suite.UnitOfWork.UserRepository.Count())
	assert.Equal(1, suite.UnitOfWork.ProfileRepository.Count())
	stored, err := suite.UnitOfWork.ProfileRepository.GetByUserID(context.Background(), result.User.ID)
	assert.Nil(err)
	assert.Equal(result.Profile, stored)
}

func (suite *testSuite) TestActivationEmailSent() {
	result, err := suite.Service.Run(context.Background(), suite.input())

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(1, suite.Mailer.SentCount())
	message := suite.Mailer.LastSent()
	assert.Equal(FROM_EMAIL, message.From)
	assert.Equal(EMAIL, message.To)
	assert.Equal("Account activation on Example", message.Subject)
	assert.Contains(message.Body, ACTIVATION_KEY)
	assert.Contains(message.Body, "7 days")

	assert.Len(suite.Renderer.Rendered, 2)
	for _, data := range suite.Renderer.Rendered {
		assert.Equal(CONFIG.Site, data.Site)
		assert.Equal(result.Profile.Key, data.ActivationKey)
		assert.Equal(CONFIG.ExpirationDays, data.ExpirationDays)
	}
}

func (suite *testSuite) TestEmailNotSentWhenDisabled() {
	input := suite.input()
	input.SendEmail = false
	_, err := suite.Service.Run(context.Background(), input)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(0, suite.Mailer.SentCount())
	assert.Equal(1, suite.UnitOfWork.UserRepository.Count())
}

func (suite *testSuite) TestUsernameAlreadyExists() {
	ctx := context.Background()
	_, err := suite.Service.Run(ctx, suite.input())
	suite.Require().Nil(err)

	input := suite.input()
	input.Email = c.Email("other@example.com")
	_, err = suite.Service.Run(ctx, input)

	assert := suite.Require()
	assert.True(errors.Is(err, user.ErrUsernameAlreadyExists))
	assert.False(suite.UnitOfWork.Context.WasCommitCalled)
	assert.True(suite.UnitOfWork.Context.WasRollbackCalled)
	assert.Equal(1, suite.UnitOfWork.UserRepository.Count())
	assert.Equal(1, suite.UnitOfWork.ProfileRepository.Count())
	assert.Equal(1, suite.Mailer.SentCount())
}

func (suite *testSuite) TestProfileCreationFailureRollsBackUser() {
	suite.UnitOfWork.ProfileRepository.ReturnError = true

	_, err := suite.Service.Run(context.Background(), suite.input())

	assert := suite.Require()
	assert.NotNil(err)
	assert.False(suite.UnitOfWork.Context.WasCommitCalled)
	assert.True(suite.UnitOfWork.Context.WasRollbackCalled)
	assert.Equal(0, suite.UnitOfWork.UserRepository.Count())
	assert.Equal(0, suite.UnitOfWork.ProfileRepository.Count())
	assert.Equal(0, suite.Mailer.SentCount())
}

func (suite *testSuite) TestKeyGenerationFailure() {
	suite.KeyGenerator.ReturnError = true

	_, err := suite.Service.Run(context.Background(), suite.input())

	assert := suite.Require()
	assert.NotNil(err)
	assert.Equal(0, suite.UnitOfWork.UserRepository.Count())
}

func (suite *testSuite) TestProfileCallback() {
	var calledWith user.User
	input := suite.input()
	input.ProfileCallback = func(ctx context.Context, tx uow.Context, u user.User) error {
		calledWith = u
		_, err := tx.Profiles().GetByUserID(ctx, u.ID)
		return err
	}

	result, err := suite.Service.Run(context.Background(), input)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(result.User, calledWith)
}

func (suite *testSuite) TestProfileCallbackFailureRollsBack() {
	input := suite.input()
	input.ProfileCallback = func(ctx context.Context, tx uow.Context, u user.User) error {
		return errCallback
	}

	_, err := suite.Service.Run(context.Background(), input)

	assert := suite.Require()
	assert.True(errors.Is(err, errCallback))
	assert.Equal(0, suite.UnitOfWork.UserRepository.Count())
	assert.Equal(0, suite.UnitOfWork.ProfileRepository.Count())
	assert.Equal(0, suite.Mailer.SentCount())
}

func (suite *testSuite) TestRenderFailureRollsBack() {
	suite.Renderer.ReturnError = true

	_, err := suite.Service.Run(context.Background(), suite.input())

	assert := suite.Require()
	assert.NotNil(err)
	assert.Equal(0, suite.UnitOfWork.UserRepository.Count())
	assert.Equal(0, suite.Mailer.SentCount())
}

func (suite *testSuite) TestMailFailureRollsBack() {
	suite.Mailer.ReturnError = true

	_, err := suite.Service.Run(context.Background(), suite.input())

	assert := suite.Require()
	assert.NotNil(err)
	assert.Equal(0, suite.UnitOfWork.UserRepository.Count())
	assert.Equal(0, suite.UnitOfWork.ProfileRepository.Count())
}

func (suite *testSuite) TestCommitFailure() {
	suite.UnitOfWork.ReturnCommitError = true

	_, err := suite.Service.Run(context.Background(), suite.input())

	assert := suite.Require()
	assert.NotNil(err)
	assert.Equal(0, suite.UnitOfWork.UserRepository.Count())
}

func (suite *testSuite) TestPasswordHashingFailure() {
	suite.PasswordHasher.ReturnError = true

	_, err := suite.Service.Run(context.Background(), suite.input())

	assert := suite.Require()
	assert.NotNil(err)
	assert.Nil(suite.UnitOfWork.Context)
}

func (suite *testSuite) TestInvalidConfigPanics() {
	suite.Require().Panics(func() {
		New(
			suite.Logger,
			suite.UnitOfWork,
			suite.PasswordHasher,
			suite.KeyGenerator,
			suite.Renderer,
			suite.Mailer,
			activation.Config{},
			func() time.Time { return NOW },
		)
	})
}
