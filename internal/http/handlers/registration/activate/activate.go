package activate

import (
	"encoding/json"
	"io"
	"net/http"
	"registration/internal/core/domain/activation"
	e "registration/internal/core/domain/errors"
	"registration/internal/core/services"
	activateuser "registration/internal/core/services/activate_user"
	"registration/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[activateuser.Input, activateuser.Result]
}

func New(
	service services.Service[activateuser.Input, activateuser.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Key string `json:"key"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Key, validation.Required, validation.Length(0, 128)),
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

	result, err := h.service.Run(r.Context(), activateuser.Input{Key: activation.Key(input.Key)})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	if !result.IsActivated() {
		response.RenderError(rw, "activation key is invalid or expired", http.StatusUnprocessableEntity)
		return
	}

	output := Output{}
	output.User.FromDomainUser(result.User)
	response.Render(rw, output, http.StatusOK)
}
