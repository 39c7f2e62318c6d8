package get_dashboard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DentalBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetAll(ctx context.Context) ([]*domain.Booking, error)
}

// ContactRepository интерфейс репозитория обращений
type ContactRepository interface {
	GetAll(ctx context.Context, status *domain.ContactStatus) ([]*domain.Contact, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
