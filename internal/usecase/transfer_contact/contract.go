package transfer_contact

import (
	"context"

	"github.com/m04kA/SMC-DentalBooking/internal/domain"
	"github.com/m04kA/SMC-DentalBooking/internal/usecase/create_booking"
)

// ContactRepository интерфейс репозитория обращений
type ContactRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Contact, error)
}

// BookingCreator создает бронирование со всеми проверками слота
type BookingCreator interface {
	Execute(ctx context.Context, req *create_booking.Request) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
