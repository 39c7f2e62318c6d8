package sign_in

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DentalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DentalBooking/internal/service/identity"
	"github.com/m04kA/SMC-DentalBooking/internal/service/identity/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidCredentials = "invalid email or password"
)

type Handler struct {
	service IdentityService
	logger  Logger
}

func NewHandler(service IdentityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/sign-in
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/sign-in - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SignIn(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrInvalidCredentials):
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /auth/sign-in - Failed to sign in: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/sign-in - User signed in: id=%s", result.User.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
