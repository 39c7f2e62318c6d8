package create_guest_booking

import (
	"context"

	"github.com/m04kA/SMC-DentalBooking/internal/service/contacts/models"
)

type ContactService interface {
	GuestRequest(ctx context.Context, req *models.GuestBookingRequest) (*models.ContactResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
