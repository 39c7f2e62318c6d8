package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-DentalBooking/pkg/types"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	Branch string     // Филиал; пустая строка - не выбран
	Date   *time.Time // Дата (без времени); nil - не выбрана
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date   *time.Time
	Branch string
	Slots  []types.TimeString // в хронологическом порядке
}
