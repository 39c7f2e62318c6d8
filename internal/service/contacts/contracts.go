package contacts

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DentalBooking/internal/domain"
	"github.com/m04kA/SMC-DentalBooking/internal/infra/notify"
)

// ContactRepository интерфейс репозитория обращений
type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
	GetAll(ctx context.Context, status *domain.ContactStatus) ([]*domain.Contact, error)
	UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) error
	Delete(ctx context.Context, id string) error
}

// Metrics счетчик новых обращений
type Metrics interface {
	ObserveContactCreated()
}

// Notifier публикует события об изменениях
type Notifier interface {
	Publish(ctx context.Context, event notify.Event) error
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
