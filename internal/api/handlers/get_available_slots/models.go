package get_available_slots

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-DentalBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-DentalBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date   *string  `json:"date"`
	Branch string   `json:"branch"`
	Slots  []string `json:"slots"` // ["8:00 AM", "8:30 AM", ...]
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	result := &AvailableSlotsResponse{
		Branch: resp.Branch,
		Slots:  slots,
	}
	if resp.Date != nil {
		date := resp.Date.Format(domain.DateFormat)
		result.Date = &date
	}
	return result
}

// ToUseCaseRequest создает запрос use case из параметров пути и query.
// Пустая дата допустима: ответ будет пустым списком
func ToUseCaseRequest(branch, dateStr string) (*getAvailableSlots.Request, error) {
	req := &getAvailableSlots.Request{Branch: branch}

	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return req, nil
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	req.Date = &date
	return req, nil
}
