package update_contact_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DentalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DentalBooking/internal/service/contacts"
	"github.com/m04kA/SMC-DentalBooking/internal/service/contacts/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidStatus      = "status must be one of: unread, read"
	msgNotFound           = "contact not found"
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

// Handle PATCH /api/v1/admin/contacts/{contactId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	contactID := mux.Vars(r)["contactId"]

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/contacts/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetStatus(r.Context(), contactID, &req); err != nil {
		switch {
		case errors.Is(err, contacts.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, contacts.ErrContactNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /admin/contacts/{id}/status - Failed to update contact: contact_id=%s, error=%v", contactID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
