package get_dashboard

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-DentalBooking/internal/domain"
)

// countStatuses считает бронирования по статусам; сумма всегда равна Total
func countStatuses(bookings []*domain.Booking) StatusCounts {
	counts := StatusCounts{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case domain.StatusPending:
			counts.Pending++
		case domain.StatusConfirmed:
			counts.Confirmed++
		case domain.StatusCancelled:
			counts.Cancelled++
		case domain.StatusDone:
			counts.Done++
		}
	}
	return counts
}

func countContacts(contacts []*domain.Contact) ContactCounts {
	counts := ContactCounts{Total: len(contacts)}
	for _, c := range contacts {
		if c.Status == domain.ContactRead {
			counts.Read++
		} else {
			counts.Unread++
		}
	}
	return counts
}

// countBranches считает бронирования по филиалам. Настроенные филиалы идут первыми
// (в том числе с нулем), затем встреченные в данных, по алфавиту
func countBranches(bookings []*domain.Booking, known []string) []BranchCount {
	byBranch := make(map[string]int, len(known))
	for _, b := range bookings {
		byBranch[domain.NormalizeKey(b.Branch)]++
	}

	result := make([]BranchCount, 0, len(byBranch))
	seen := make(map[string]struct{}, len(known))
	for _, branch := range known {
		key := domain.NormalizeKey(branch)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, BranchCount{Branch: key, Count: byBranch[key]})
	}

	extra := make([]string, 0)
	for branch := range byBranch {
		if _, ok := seen[branch]; !ok {
			extra = append(extra, branch)
		}
	}
	sort.Strings(extra)
	for _, branch := range extra {
		result = append(result, BranchCount{Branch: branch, Count: byBranch[branch]})
	}

	return result
}

// upcomingWeek раскладывает неотмененные бронирования по дням начиная с today.
// Внутри дня порядок по разобранному времени; нечитаемые метки - в конце
func upcomingWeek(bookings []*domain.Booking, today time.Time, days int) []Day {
	y, m, d := today.Date()

	result := make([]Day, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		date := time.Date(y, m, d+i, 0, 0, 0, 0, time.UTC)
		result[i] = Day{Date: date, Bookings: make([]*domain.Booking, 0)}
		index[date.Format(domain.DateFormat)] = i
	}

	for _, b := range bookings {
		if b.Status == domain.StatusCancelled {
			continue
		}
		if i, ok := index[b.DateString()]; ok {
			result[i].Bookings = append(result[i].Bookings, b)
		}
	}

	for i := range result {
		sortByTime(result[i].Bookings)
	}

	return result
}

func sortByTime(bookings []*domain.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		ti, okI := bookings[i].TimeOfDay()
		tj, okJ := bookings[j].TimeOfDay()
		switch {
		case okI && okJ:
			return ti.IsBefore(tj)
		case okI:
			return true
		default:
			return false
		}
	})
}

// recentActivity объединяет бронирования и обращения по времени создания (новые первыми)
func recentActivity(bookings []*domain.Booking, contacts []*domain.Contact, limit int) []Activity {
	items := make([]Activity, 0, len(bookings)+len(contacts))

	for _, b := range bookings {
		items = append(items, Activity{
			Kind:      ActivityBooking,
			ID:        b.ID,
			Name:      b.Name,
			Status:    string(b.Status),
			Summary:   fmt.Sprintf("%s at %s, %s %s", b.Service, b.Branch, b.DateString(), b.Time),
			CreatedAt: b.CreatedAt,
		})
	}
	for _, c := range contacts {
		items = append(items, Activity{
			Kind:      ActivityContact,
			ID:        c.ID,
			Name:      c.Name,
			Status:    string(c.Status),
			Summary:   c.Email,
			CreatedAt: c.CreatedAt,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	if limit >= 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
