package deps

import (
	"context"
	"registration/internal/config"
	"registration/internal/core/domain/activation"
	dl "registration/internal/core/domain/logging"
	duow "registration/internal/core/domain/unit_of_work"
	"registration/internal/core/domain/user"
	uow "registration/internal/db/unit_of_work"
	activationkey "registration/internal/implementations/activation_key"
	"registration/internal/implementations/email"
	"registration/internal/implementations/logging"
	passwordhasher "registration/internal/implementations/password_hasher"
	"registration/internal/implementations/templates"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Deps struct {
	Config           *config.Config
	ActivationConfig activation.Config
	AwsConfig        aws.Config
	Logger           dl.Logger

	DB *pgxpool.Pool

	Now func() time.Time

	UnitOfWork duow.UnitOfWork

	PasswordHasher         user.PasswordHasher
	ActivationKeyGenerator activation.KeyGenerator
	TemplateRenderer       activation.TemplateRenderer
	Mailer                 activation.Mailer
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()

	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)
	deps.ActivationKeyGenerator = activationkey.NewGenerator()
	deps.initTemplateRenderer()
	deps.initMailer()

	return deps, func() {
		closeFuncs := []func(){
			closePgxPool,
			closeLogger,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
	deps.ActivationConfig = config.Activation()
	if err := deps.ActivationConfig.Validate(); err != nil {
		panic(err)
	}
}

func (deps *Deps) initAwsConfig() {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger(deps.Config.IsTestMode)
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initTemplateRenderer() {
	renderer, err := templates.NewPongo2Renderer()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not load email templates.", dl.Entry("err", err))
		panic(err)
	}
	deps.TemplateRenderer = renderer
}

func (deps *Deps) initMailer() {
	if deps.Config.IsTestMode {
		deps.Logger.Info(context.Background(), "Emails are written to the log in test mode.")
		deps.Mailer = email.NewLogMailer(deps.Logger)
		return
	}
	deps.Mailer = email.NewSESMailer(deps.AwsConfig)
}
