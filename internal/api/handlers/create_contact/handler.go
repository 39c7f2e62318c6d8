package create_contact

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DentalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DentalBooking/internal/service/contacts"
	"github.com/m04kA/SMC-DentalBooking/internal/service/contacts/models"
)

const msgInvalidRequestBody = "invalid request body"

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

// Handle POST /api/v1/contacts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contacts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if msg := handlers.ValidateStruct(req); msg != "" {
		h.logger.Warn("POST /contacts - Validation failed: %s", msg)
		handlers.RespondBadRequest(w, msg)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, contacts.ErrInvalidInput):
			h.logger.Warn("POST /contacts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, contacts.ErrInvalidInput))

		default:
			h.logger.Error("POST /contacts - Failed to create contact: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /contacts - Contact created: id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
