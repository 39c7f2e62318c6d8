package delete_contact

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DentalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DentalBooking/internal/service/contacts"
)

const msgNotFound = "contact not found"

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

// Handle DELETE /api/v1/admin/contacts/{contactId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	contactID := mux.Vars(r)["contactId"]

	if err := h.service.Delete(r.Context(), contactID); err != nil {
		if errors.Is(err, contacts.ErrContactNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /admin/contacts/{id} - Failed to delete contact: contact_id=%s, error=%v", contactID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/contacts/{id} - Contact deleted: contact_id=%s", contactID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
