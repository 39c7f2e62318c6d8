package get_clinic

import "github.com/m04kA/SMC-DentalBooking/internal/service/config/models"

type ClinicService interface {
	GetClinic() *models.ClinicResponse
}
