package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DentalBooking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-DentalBooking/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate   = "invalid date format, expected YYYY-MM-DD"
	msgUnknownBranch = "branch not found"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/branches/{branch}/available-slots
// Query params: date (YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branch := mux.Vars(r)["branch"]

	useCaseReq, err := ToUseCaseRequest(branch, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /branches/{branch}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrUnknownBranch):
			h.logger.Warn("GET /branches/{branch}/available-slots - Unknown branch: %s", branch)
			handlers.RespondNotFound(w, msgUnknownBranch)

		default:
			h.logger.Error("GET /branches/{branch}/available-slots - Failed to get slots: branch=%s, error=%v", branch, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /branches/{branch}/available-slots - Slots retrieved: branch=%s, slots_count=%d", branch, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
