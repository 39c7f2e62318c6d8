package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrAccessDenied возвращается, когда пользователь не владеет бронированием
	ErrAccessDenied = errors.New("bookings.service: access denied")

	// ErrCannotCancel возвращается, когда пациент пытается отменить уже обработанное бронирование
	ErrCannotCancel = errors.New("bookings.service: booking cannot be cancelled")

	// ErrInvalidStatus возвращается при неизвестном статусе
	ErrInvalidStatus = errors.New("bookings.service: invalid booking status")

	// ErrInvalidTransition возвращается при запрещенном переходе статуса
	ErrInvalidTransition = errors.New("bookings.service: invalid status transition")

	// ErrCancellationReasonRequired возвращается при отмене без причины
	ErrCancellationReasonRequired = errors.New("bookings.service: cancellation reason is required")

	// ErrSlotTaken возвращается при подтверждении, если слот уже занят другим подтвержденным бронированием
	ErrSlotTaken = errors.New("bookings.service: slot is already taken")

	// ErrConcurrentUpdate возвращается, когда параллельная операция изменила те же данные
	ErrConcurrentUpdate = errors.New("bookings.service: concurrent update, retry")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
