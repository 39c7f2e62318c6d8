package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DentalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DentalBooking/internal/service/bookings"
	"github.com/m04kA/SMC-DentalBooking/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "booking not found"
	msgInvalidStatus      = "status must be one of: pending, confirmed, cancelled, done"
	msgInvalidTransition  = "this status change is not allowed"
	msgReasonRequired     = "cancellation reason is required"
	msgSlotTaken          = "another confirmed booking already holds this slot"
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

// Handle PATCH /api/v1/admin/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), bookingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrCancellationReasonRequired):
			handlers.RespondBadRequest(w, msgReasonRequired)

		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid transition: booking_id=%s, status=%s", bookingID, req.Status)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, bookings.ErrSlotTaken):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Slot taken: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, bookings.ErrConcurrentUpdate):
			handlers.RespondConflict(w, msgConcurrentUpdate)

		default:
			h.logger.Error("PATCH /admin/bookings/{id}/status - Failed to update status: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/{id}/status - Status updated: booking_id=%s, status=%s", bookingID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
