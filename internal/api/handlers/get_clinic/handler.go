package get_clinic

import (
	"net/http"

	"github.com/m04kA/SMC-DentalBooking/internal/api/handlers"
)

type Handler struct {
	service ClinicService
}

func NewHandler(service ClinicService) *Handler {
	return &Handler{service: service}
}

// Handle GET /api/v1/clinic
// Публичный endpoint - филиалы, услуги и сетка слотов для формы записи
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.GetClinic())
}
