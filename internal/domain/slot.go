package domain

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-DentalBooking/pkg/types"
)

// ErrInvalidSlotGrid некорректная сетка слотов
var ErrInvalidSlotGrid = errors.New("domain: invalid slot grid")

// SlotGrid упорядоченная по времени сетка слотов одного дня
type SlotGrid []types.TimeString

// NewSlotGrid строит сетку из меток ("8:00 AM", ...); дубликаты удаляются, порядок - хронологический
func NewSlotGrid(labels []string) (SlotGrid, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidSlotGrid)
	}

	seen := make(map[int]struct{}, len(labels))
	grid := make(SlotGrid, 0, len(labels))
	for _, label := range labels {
		ts, err := types.NewTimeStringFromString(label)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSlotGrid, err)
		}
		if _, dup := seen[ts.Minutes()]; dup {
			continue
		}
		seen[ts.Minutes()] = struct{}{}
		grid = append(grid, ts)
	}

	sort.Slice(grid, func(i, j int) bool { return grid[i].IsBefore(grid[j]) })
	return grid, nil
}

// GenerateSlotGrid генерирует сетку от first до last включительно с шагом stepMinutes
func GenerateSlotGrid(first, last types.TimeString, stepMinutes int) (SlotGrid, error) {
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("%w: step must be positive, got %d", ErrInvalidSlotGrid, stepMinutes)
	}
	if last.IsBefore(first) {
		return nil, fmt.Errorf("%w: last slot %s is before first slot %s", ErrInvalidSlotGrid, last, first)
	}

	grid := make(SlotGrid, 0)
	for current := first; !current.IsAfter(last); {
		grid = append(grid, current)

		next, err := current.AddMinutes(stepMinutes)
		if err != nil {
			break
		}
		current = next
	}
	return grid, nil
}

// DefaultSlotGrid 8:00 AM - 4:30 PM каждые 30 минут
func DefaultSlotGrid() SlotGrid {
	grid, _ := GenerateSlotGrid(
		types.MustTimeString(DefaultFirstSlot),
		types.MustTimeString(DefaultLastSlot),
		DefaultSlotStepMinutes,
	)
	return grid
}

// Contains проверяет, что время входит в сетку
func (g SlotGrid) Contains(ts types.TimeString) bool {
	for _, slot := range g {
		if slot.Equal(ts) {
			return true
		}
	}
	return false
}

// Labels возвращает метки слотов для отображения
func (g SlotGrid) Labels() []string {
	labels := make([]string, len(g))
	for i, slot := range g {
		labels[i] = slot.String()
	}
	return labels
}

// SameDay проверяет, что два момента относятся к одной календарной дате (каждый в своей зоне)
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateBefore проверяет, что календарная дата date раньше даты now
func DateBefore(date, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	return time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC).Before(time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC))
}

// StartsAfter проверяет, что слот начинается строго позже времени суток now
func StartsAfter(slot types.TimeString, now time.Time) bool {
	return slot.Seconds() > now.Hour()*3600+now.Minute()*60+now.Second()
}

// IsSlotTaken проверяет, занят ли слот одним из подтвержденных бронирований.
// Бронирование excludeID не учитывается, бронирования с нечитаемым временем пропускаются
func IsSlotTaken(slot types.TimeString, confirmed []*Booking, excludeID string) bool {
	for _, b := range confirmed {
		if b.Status != StatusConfirmed || (excludeID != "" && b.ID == excludeID) {
			continue
		}
		if ts, ok := b.TimeOfDay(); ok && ts.Equal(slot) {
			return true
		}
	}
	return false
}
