package transfer_contact

import "errors"

var (
	// ErrContactNotFound возвращается, когда обращение не найдено
	ErrContactNotFound = errors.New("transfer_contact: contact not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("transfer_contact: internal error")
)
