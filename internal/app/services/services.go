package services

import (
	"registration/internal/app/deps"
	"registration/internal/core/services"
	activateuser "registration/internal/core/services/activate_user"
	createinactiveuser "registration/internal/core/services/create_inactive_user"
	getactivationstatus "registration/internal/core/services/get_activation_status"
)

type Services struct {
	CreateInactiveUser  services.Service[createinactiveuser.Input, createinactiveuser.Result]
	ActivateUser        services.Service[activateuser.Input, activateuser.Result]
	GetActivationStatus services.Service[getactivationstatus.Input, getactivationstatus.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.CreateInactiveUser = createinactiveuser.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordHasher,
		deps.ActivationKeyGenerator,
		deps.TemplateRenderer,
		deps.Mailer,
		deps.ActivationConfig,
		deps.Now,
	)
	s.ActivateUser = activateuser.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.ActivationConfig,
		deps.Now,
	)
	s.GetActivationStatus = getactivationstatus.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.ActivationConfig,
		deps.Now,
	)

	return s
}
