package config

import (
	"github.com/m04kA/SMC-DentalBooking/internal/domain"
	"github.com/m04kA/SMC-DentalBooking/internal/service/config/models"
)

// Service отдает настройки клиники: филиалы, услуги, сетку слотов
type Service struct {
	clinic *domain.Clinic
	logger Logger
}

// NewService создает новый экземпляр сервиса настроек клиники
func NewService(clinic *domain.Clinic, logger Logger) *Service {
	return &Service{
		clinic: clinic,
		logger: logger,
	}
}

// GetClinic возвращает копию настроек; изменения ответа не влияют на сервис
func (s *Service) GetClinic() *models.ClinicResponse {
	timezone := "UTC"
	if s.clinic.Location != nil {
		timezone = s.clinic.Location.String()
	}

	return &models.ClinicResponse{
		Timezone: timezone,
		Branches: append([]string{}, s.clinic.Branches...),
		Services: append([]string{}, s.clinic.Services...),
		SlotGrid: s.clinic.SlotGrid.Labels(),
	}
}
