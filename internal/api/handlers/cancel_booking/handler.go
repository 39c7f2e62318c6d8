package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DentalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DentalBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DentalBooking/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "booking not found"
	msgForbidden          = "access denied"
	msgCannotCancel       = "only pending bookings can be cancelled"
	msgReasonRequired     = "cancellation reason is required"
	msgConcurrentUpdate   = "the booking was just updated, please try again"
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

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "")
		return
	}

	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CancelOwn(r.Context(), bookingID, req.ToServiceRequest(user.ID))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Access denied: booking_id=%s, user_id=%s", bookingID, user.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrCannotCancel):
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, bookings.ErrCancellationReasonRequired):
			handlers.RespondBadRequest(w, msgReasonRequired)

		case errors.Is(err, bookings.ErrConcurrentUpdate):
			handlers.RespondConflict(w, msgConcurrentUpdate)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed to cancel booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled: booking_id=%s, user_id=%s", bookingID, user.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
