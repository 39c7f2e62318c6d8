package create_contact

import (
	"context"

	"github.com/m04kA/SMC-DentalBooking/internal/service/contacts/models"
)

type ContactService interface {
	Create(ctx context.Context, req *models.CreateContactRequest) (*models.ContactResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
