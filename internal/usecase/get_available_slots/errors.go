package get_available_slots

import "errors"

var (
	// ErrUnknownBranch возвращается, когда филиал не входит в список филиалов клиники
	ErrUnknownBranch = errors.New("get_available_slots: unknown branch")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
