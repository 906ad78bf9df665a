package signup

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"regexp"
	c "registration/internal/core/domain/common"
	e "registration/internal/core/domain/errors"
	"registration/internal/core/domain/user"
	"registration/internal/core/services"
	createinactiveuser "registration/internal/core/services/create_inactive_user"
	"registration/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const TEST_ACTIVATION_KEY_HEADER = "x-test-activation-key"

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

type Handler struct {
	service    services.Service[createinactiveuser.Input, createinactiveuser.Result]
	isTestMode bool
}

func New(
	service services.Service[createinactiveuser.Input, createinactiveuser.Result],
	isTestMode bool,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service, isTestMode: isTestMode}
}

type Input struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(
			&i.Username,
			validation.Required,
			validation.Length(1, 150),
			validation.Match(usernamePattern),
		),
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Password, validation.Required, validation.Length(6, 256)),
	)
}

type Output struct {
	User response.User `json:"user"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		createinactiveuser.Input{
			Username:  user.Username(input.Username),
			Email:     c.NewEmail(input.Email),
			Password:  user.RawPassword(input.Password),
			SendEmail: true,
		},
	)
	if errors.Is(err, user.ErrUsernameAlreadyExists) {
		response.RenderError(rw, "username already exists", http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	if h.isTestMode {
		rw.Header().Set(TEST_ACTIVATION_KEY_HEADER, string(result.Profile.Key))
	}
	output := Output{}
	output.User.FromDomainUser(result.User)
	response.Render(rw, output, http.StatusCreated)
}
