package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-DentalBooking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusDone      BookingStatus = "done"
)

var (
	// ErrUnknownStatus неизвестный статус бронирования
	ErrUnknownStatus = errors.New("domain: unknown booking status")
	// ErrInvalidTransition переход между статусами запрещен
	ErrInvalidTransition = errors.New("domain: invalid status transition")
	// ErrCancellationReasonRequired отмена без причины
	ErrCancellationReasonRequired = errors.New("domain: cancellation reason is required")
)

// allowedTransitions таблица переходов статусов.
// В confirmed и pending можно перейти из любого статуса, в done - только из confirmed,
// в cancelled - из любого, кроме cancelled
var allowedTransitions = map[BookingStatus]map[BookingStatus]bool{
	StatusPending: {
		StatusPending:   true,
		StatusConfirmed: true,
		StatusCancelled: true,
	},
	StatusConfirmed: {
		StatusPending:   true,
		StatusConfirmed: true,
		StatusDone:      true,
		StatusCancelled: true,
	},
	StatusDone: {
		StatusPending:   true,
		StatusConfirmed: true,
		StatusCancelled: true,
	},
	StatusCancelled: {
		StatusPending:   true,
		StatusConfirmed: true,
	},
}

// ParseBookingStatus парсит статус из строки
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return status, nil
}

// IsValid returns true for the four known statuses
func (s BookingStatus) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransition проверяет, разрешен ли переход from -> to
func CanTransition(from, to BookingStatus) bool {
	targets, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return targets[to]
}

// Booking represents a clinic appointment
type Booking struct {
	ID      string
	Name    string
	Email   string
	Phone   string
	Branch  string
	Service string
	Date    time.Time
	// Time метка слота в том виде, в каком она сохранена ("9:30 AM")
	Time   string
	Status BookingStatus
	Notes  *string

	CancellationReason *string
	CancelledAt        *time.Time

	UserID    *string // nil для гостевых и созданных администратором бронирований
	ContactID *string // обращение, из которого перенесено бронирование

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TimeOfDay парсит сохраненную метку слота
func (b *Booking) TimeOfDay() (types.TimeString, bool) {
	ts, err := types.NewTimeStringFromString(b.Time)
	if err != nil {
		return types.TimeString{}, false
	}
	return ts, true
}

// DateString возвращает дату в формате YYYY-MM-DD
func (b *Booking) DateString() string {
	return b.Date.Format(DateFormat)
}

// IsActive returns true if the booking still occupies the clinic's schedule
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsOwnedBy returns true if the booking was made by the given user
func (b *Booking) IsOwnedBy(userID string) bool {
	return b.UserID != nil && *b.UserID == userID
}

// CanBeCancelledByOwner returns true if the owner may still cancel the booking himself
func (b *Booking) CanBeCancelledByOwner() bool {
	return b.Status == StatusPending
}

// ApplyTransition переводит бронирование в статус to и проставляет временные метки.
// Для отмены нужна непустая причина; при выходе из cancelled причина и время отмены сбрасываются.
// Повторное подтверждение меняет только UpdatedAt
func (b *Booking) ApplyTransition(to BookingStatus, reason string, now time.Time) error {
	if !to.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, to)
	}

	reason = strings.TrimSpace(reason)
	if to == StatusCancelled && reason == "" {
		return ErrCancellationReasonRequired
	}

	if !CanTransition(b.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, to)
	}

	b.Status = to
	b.UpdatedAt = now

	if to == StatusCancelled {
		b.CancellationReason = &reason
		cancelledAt := now
		b.CancelledAt = &cancelledAt
	} else {
		b.CancellationReason = nil
		b.CancelledAt = nil
	}

	return nil
}

// Matches проверяет совпадение с поисковой строкой (без учета регистра)
// хотя бы по одному из полей: имя, email, телефон, услуга
func (b *Booking) Matches(search string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}

	for _, field := range []string{b.Name, b.Email, b.Phone, b.Service} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}
