package create_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-DentalBooking/internal/domain"
	"github.com/m04kA/SMC-DentalBooking/pkg/types"
)

// validateRequest проверяет обязательные поля: имя, email, телефон, филиал, услугу, дату и время
func validateRequest(req *Request) error {
	required := []struct {
		name  string
		value string
	}{
		{"name", req.Name},
		{"email", req.Email},
		{"phone", req.Phone},
		{"branch", req.Branch},
		{"service", req.Service},
		{"time", req.Time},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, field.name)
		}
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateSlot проверяет, что время входит в сетку и слот еще не прошел
func validateSlot(grid domain.SlotGrid, date time.Time, label string, now time.Time) (types.TimeString, error) {
	slot, err := types.NewTimeStringFromString(label)
	if err != nil {
		return types.TimeString{}, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	if !grid.Contains(slot) {
		return types.TimeString{}, fmt.Errorf("%w: %s is not offered", ErrInvalidTimeSlot, slot)
	}

	if domain.DateBefore(date, now) {
		return types.TimeString{}, fmt.Errorf("%w: date %s has passed", ErrPastSlot, date.Format(domain.DateFormat))
	}

	if domain.SameDay(date, now) && !domain.StartsAfter(slot, now) {
		return types.TimeString{}, fmt.Errorf("%w: %s today has passed", ErrPastSlot, slot)
	}

	return slot, nil
}
