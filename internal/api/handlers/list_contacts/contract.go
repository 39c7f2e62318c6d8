package list_contacts

import (
	"context"

	"github.com/m04kA/SMC-DentalBooking/internal/service/contacts/models"
)

type ContactService interface {
	List(ctx context.Context, status string) (*models.ContactListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
