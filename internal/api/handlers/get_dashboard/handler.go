package get_dashboard

import (
	"net/http"

	"github.com/m04kA/SMC-DentalBooking/internal/api/handlers"
)

type Handler struct {
	useCase GetDashboardUseCase
	logger  Logger
}

func NewHandler(useCase GetDashboardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/dashboard - Failed to build dashboard: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
