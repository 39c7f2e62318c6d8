package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrUnknownBranch возвращается, когда филиал не входит в список филиалов клиники
	ErrUnknownBranch = errors.New("create_booking: unknown branch")

	// ErrUnknownService возвращается, когда услуга не оказывается клиникой
	ErrUnknownService = errors.New("create_booking: unknown service")

	// ErrInvalidTimeSlot возвращается, когда время не входит в сетку слотов
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrPastSlot возвращается при попытке записаться на прошедшую дату или время
	ErrPastSlot = errors.New("create_booking: slot is in the past")

	// ErrSlotTaken возвращается, когда слот уже занят подтвержденным бронированием
	ErrSlotTaken = errors.New("create_booking: slot is already taken")

	// ErrConcurrentUpdate возвращается, когда параллельная транзакция заняла тот же слот
	ErrConcurrentUpdate = errors.New("create_booking: slot was updated concurrently")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
