package get_dashboard

import "errors"

// ErrInternal возвращается при внутренних ошибках usecase
var ErrInternal = errors.New("get_dashboard: internal error")
