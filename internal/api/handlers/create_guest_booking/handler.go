package create_guest_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DentalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DentalBooking/internal/service/contacts"
	"github.com/m04kA/SMC-DentalBooking/internal/service/contacts/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownBranch      = "unknown branch"
	msgUnknownService     = "unknown service"
)

type Handler struct {
	service ContactService
	logger  Logger
}

func NewHandler(service ContactService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/guest-bookings
// Гостевая заявка сохраняется как обращение; бронирование по ней создает администратор
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.GuestBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /guest-bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if msg := handlers.ValidateStruct(req); msg != "" {
		h.logger.Warn("POST /guest-bookings - Validation failed: %s", msg)
		handlers.RespondBadRequest(w, msg)
		return
	}

	result, err := h.service.GuestRequest(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, contacts.ErrUnknownBranch):
			handlers.RespondBadRequest(w, msgUnknownBranch)

		case errors.Is(err, contacts.ErrUnknownService):
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, contacts.ErrInvalidInput):
			h.logger.Warn("POST /guest-bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, contacts.ErrInvalidInput))

		default:
			h.logger.Error("POST /guest-bookings - Failed to store request: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /guest-bookings - Guest request stored as contact id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
