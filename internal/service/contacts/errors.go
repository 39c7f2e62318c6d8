package contacts

import "errors"

var (
	// ErrContactNotFound возвращается, когда обращение не найдено
	ErrContactNotFound = errors.New("contacts.service: contact not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("contacts.service: invalid input data")

	// ErrInvalidStatus возвращается при неизвестном статусе обращения
	ErrInvalidStatus = errors.New("contacts.service: invalid contact status")

	// ErrUnknownBranch возвращается, если филиал не обслуживается клиникой
	ErrUnknownBranch = errors.New("contacts.service: unknown branch")

	// ErrUnknownService возвращается, если услуга не оказывается клиникой
	ErrUnknownService = errors.New("contacts.service: unknown service")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("contacts.service: internal error")
)
