package transfer_contact

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DentalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DentalBooking/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-DentalBooking/internal/usecase/create_booking"
	transferContact "github.com/m04kA/SMC-DentalBooking/internal/usecase/transfer_contact"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgNotFound           = "contact not found"
	msgUnknownBranch      = "unknown branch"
	msgUnknownService     = "unknown service"
	msgInvalidTimeSlot    = "time is not one of the clinic's slots"
	msgPastSlot           = "the selected date or time has already passed"
	msgSlotTaken          = "the selected slot is already taken"
	msgConcurrentUpdate   = "the slot was just updated, please try again"
)

type Handler struct {
	useCase TransferContactUseCase
	logger  Logger
}

func NewHandler(useCase TransferContactUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/contacts/{contactId}/transfer
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	contactID := mux.Vars(r)["contactId"]

	var req TransferContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/contacts/{id}/transfer - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if msg := handlers.ValidateStruct(req); msg != "" {
		handlers.RespondBadRequest(w, msg)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(contactID)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, transferContact.ErrContactNotFound):
			handlers.RespondNotFound(w, msgNotFound)

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
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrConcurrentUpdate):
			handlers.RespondConflict(w, msgConcurrentUpdate)

		default:
			h.logger.Error("POST /admin/contacts/{id}/transfer - Failed to transfer contact: contact_id=%s, error=%v", contactID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/contacts/{id}/transfer - Contact transferred: contact_id=%s, booking_id=%s", contactID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainBooking(result))
}
