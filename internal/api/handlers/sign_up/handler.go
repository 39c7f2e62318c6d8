package sign_up

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DentalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DentalBooking/internal/service/identity"
	"github.com/m04kA/SMC-DentalBooking/internal/service/identity/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgEmailTaken         = "email is already registered"
	msgEmailReserved      = "this email cannot be used for sign-up"
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

// Handle POST /api/v1/auth/sign-up
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/sign-up - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if msg := handlers.ValidateStruct(req); msg != "" {
		handlers.RespondBadRequest(w, msg)
		return
	}

	result, err := h.service.SignUp(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, identity.ErrInvalidInput))

		case errors.Is(err, identity.ErrEmailTaken):
			handlers.RespondConflict(w, msgEmailTaken)

		case errors.Is(err, identity.ErrAdminEmailReserved):
			handlers.RespondForbidden(w, msgEmailReserved)

		default:
			h.logger.Error("POST /auth/sign-up - Failed to register user: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/sign-up - User registered: id=%s", result.User.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
