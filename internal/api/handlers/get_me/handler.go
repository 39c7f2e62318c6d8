package get_me

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DentalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DentalBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DentalBooking/internal/service/identity"
)

const msgUserNotFound = "user not found"

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

// Handle GET /api/v1/auth/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "")
		return
	}

	result, err := h.service.Me(r.Context(), user.ID)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrUserNotFound):
			h.logger.Warn("GET /auth/me - User from token not found: id=%s", user.ID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /auth/me - Failed to get user: id=%s, error=%v", user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
