package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-DentalBooking/internal/domain"
	"github.com/m04kA/SMC-DentalBooking/pkg/types"
)

// calculateAvailableSlots возвращает слоты сетки, не занятые подтвержденными бронированиями.
// Если date - сегодня (по часам now), остаются только слоты, начинающиеся строго после now.
// Бронирования с нечитаемым временем не учитываются
func calculateAvailableSlots(
	date time.Time,
	grid domain.SlotGrid,
	confirmed []*domain.Booking,
	now time.Time,
) []types.TimeString {
	today := domain.SameDay(date, now)

	available := make([]types.TimeString, 0, len(grid))
	for _, slot := range grid {
		if domain.IsSlotTaken(slot, confirmed, "") {
			continue
		}
		if today && !domain.StartsAfter(slot, now) {
			continue
		}
		available = append(available, slot)
	}

	return available
}
