package get_user_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-DentalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DentalBooking/internal/api/middleware"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/me/bookings
// Бронирования текущего пользователя, новые первыми
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "")
		return
	}

	result, err := h.service.GetUserBookings(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("GET /me/bookings - Failed to get bookings: user_id=%s, error=%v", user.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /me/bookings - Bookings retrieved: user_id=%s, count=%d", user.ID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
