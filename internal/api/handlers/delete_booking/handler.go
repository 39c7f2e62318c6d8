package delete_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DentalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DentalBooking/internal/service/bookings"
)

const msgNotFound = "booking not found"

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

// Handle DELETE /api/v1/admin/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	if err := h.service.Delete(r.Context(), bookingID); err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /admin/bookings/{id} - Failed to delete booking: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/bookings/{id} - Booking deleted: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
