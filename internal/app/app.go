package app

import (
	"fmt"
	"net/http"
	"registration/internal/app/deps"
	"registration/internal/app/services"
	"registration/internal/http/handlers/registration/activate"
	activationstatus "registration/internal/http/handlers/registration/activation_status"
	signup "registration/internal/http/handlers/registration/sign_up"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	return &http.Server{
		Handler: NewRouter(deps.Config.AllowedOrigins, deps.Config.IsTestMode, s),
		Addr:    fmt.Sprintf("0.0.0.0:%d", deps.Config.Port),
	}
}

func NewRouter(allowedOrigins []string, isTestMode bool, s *services.Services) *chi.Mux {
	registrationRouter := chi.NewRouter()
	registrationRouter.Method(http.MethodPost, "/signup", signup.New(s.CreateInactiveUser, isTestMode))
	registrationRouter.Method(http.MethodPost, "/activate", activate.New(s.ActivateUser))
	registrationRouter.Method(
		http.MethodGet,
		fmt.Sprintf("/users/{%s:[0-9]+}/activation", activationstatus.URL_PARAM_USER_ID),
		activationstatus.New(s.GetActivationStatus),
	)

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{signup.TEST_ACTIVATION_KEY_HEADER},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/registration", registrationRouter)

	return router
}
