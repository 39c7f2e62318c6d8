package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DentalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DentalBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DentalBooking/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-DentalBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgUnknownBranch      = "unknown branch"
	msgUnknownService     = "unknown service"
	msgInvalidTimeSlot    = "time is not one of the clinic's slots"
	msgPastSlot           = "the selected date or time has already passed"
	msgSlotTaken          = "the selected slot is already taken"
	msgConcurrentUpdate   = "the slot was just updated, please try again"
)

type Handler struct {
	useCase CreateBookingUseCase
	origin  string
	logger  Logger
}

// NewHandler создает handler. origin - self для пациента (владелец берется из токена)
// или admin для бронирования, созданного администратором
func NewHandler(useCase CreateBookingUseCase, origin string, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		origin:  origin,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings и POST /api/v1/admin/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if msg := handlers.ValidateStruct(req); msg != "" {
		h.logger.Warn("POST /bookings - Validation failed: %s", msg)
		handlers.RespondBadRequest(w, msg)
		return
	}

	var userID *string
	if h.origin == createBooking.OriginSelf {
		user, ok := middleware.UserFromContext(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w, "")
			return
		}
		userID = &user.ID
	}

	useCaseReq, err := req.ToUseCaseRequest(h.origin, userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, createBooking.ErrInvalidInput))

		case errors.Is(err, createBooking.ErrUnknownBranch):
			handlers.RespondBadRequest(w, msgUnknownBranch)

		case errors.Is(err, createBooking.ErrUnknownService):
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrPastSlot):
			handlers.RespondBadRequest(w, msgPastSlot)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: branch=%s, date=%s, time=%s", req.Branch, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrConcurrentUpdate):
			h.logger.Warn("POST /bookings - Concurrent booking of branch=%s, date=%s, time=%s", req.Branch, req.Date, req.Time)
			handlers.RespondConflict(w, msgConcurrentUpdate)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: origin=%s, error=%v", h.origin, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%s, origin=%s", result.ID, h.origin)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainBooking(result))
}
