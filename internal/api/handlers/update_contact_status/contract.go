package update_contact_status

import (
	"context"

	"github.com/m04kA/SMC-DentalBooking/internal/service/contacts/models"
)

type ContactService interface {
	SetStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
