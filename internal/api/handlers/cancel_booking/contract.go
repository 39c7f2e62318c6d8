package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-DentalBooking/internal/service/bookings/models"
)

type BookingService interface {
	CancelOwn(ctx context.Context, id string, req *models.CancelBookingRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
