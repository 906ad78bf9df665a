package activationstatus

import (
	"errors"
	"net/http"
	"registration/internal/core/domain/activation"
	e "registration/internal/core/domain/errors"
	"registration/internal/core/domain/user"
	"registration/internal/core/services"
	getactivationstatus "registration/internal/core/services/get_activation_status"
	"registration/internal/http/handlers/response"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

const URL_PARAM_USER_ID = "userID"

type Handler struct {
	service services.Service[getactivationstatus.Input, getactivationstatus.Result]
}

func New(
	service services.Service[getactivationstatus.Input, getactivationstatus.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Output struct {
	Activated bool       `json:"activated"`
	Expired   bool       `json:"expired"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawUserID := chi.URLParam(r, URL_PARAM_USER_ID)
	userID, err := strconv.ParseInt(rawUserID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid user ID", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), getactivationstatus.Input{UserID: user.ID(userID)})
	if errors.Is(err, user.ErrUserDoesNotExist) || errors.Is(err, activation.ErrProfileDoesNotExist) {
		response.RenderError(rw, "registration not found", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	output := Output{Activated: result.Activated, Expired: result.Expired}
	if result.ExpiresAt.IsPresent {
		expiresAt := result.ExpiresAt.Value
		output.ExpiresAt = &expiresAt
	}
	response.Render(rw, output, http.StatusOK)
}
