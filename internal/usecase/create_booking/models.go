package create_booking

import (
	"time"
)

// Источники бронирования (метка метрики)
const (
	OriginSelf     = "self"
	OriginAdmin    = "admin"
	OriginTransfer = "transfer"
)

// Request модель запроса на создание бронирования
type Request struct {
	Origin    string  // self, admin или transfer
	UserID    *string // Владелец (только для self)
	ContactID *string // Исходное обращение (только для transfer)

	Name    string
	Email   string
	Phone   string
	Branch  string
	Service string
	Date    time.Time // Дата бронирования (без времени)
	Time    string    // Метка слота ("9:30 AM")
	Notes   *string
}
