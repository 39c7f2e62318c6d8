package domain

import "time"

// BookingsFilter фильтр для выборки бронирований из хранилища (все условия - равенство)
type BookingsFilter struct {
	Date   *time.Time     // Дата бронирования (опционально)
	Branch *string        // Филиал (опционально)
	Status *BookingStatus // Статус (опционально)
	UserID *string        // Владелец (опционально)
}

// ListQuery фильтр списка бронирований в админке
type ListQuery struct {
	Status   string // статус или "all"
	Branch   string // филиал или "all"
	Search   string // подстрока по имени, email, телефону или услуге
	Page     int    // с 1
	PageSize int
}

// Matches проверяет бронирование на соответствие фильтру:
// статус И филиал И (поиск по любому из полей)
func (q ListQuery) Matches(b *Booking) bool {
	if q.Status != "" && q.Status != FilterAll && string(b.Status) != q.Status {
		return false
	}
	if q.Branch != "" && q.Branch != FilterAll && NormalizeKey(b.Branch) != NormalizeKey(q.Branch) {
		return false
	}
	return b.Matches(q.Search)
}

// FilterBookings возвращает бронирования, подходящие под фильтр, сохраняя порядок
func FilterBookings(bookings []*Booking, q ListQuery) []*Booking {
	result := make([]*Booking, 0, len(bookings))
	for _, b := range bookings {
		if q.Matches(b) {
			result = append(result, b)
		}
	}
	return result
}

// Page страница результата
type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
}

// Paginate режет items на страницы размера pageSize (страницы с 1).
// Номер страницы меньше 1 считается первой страницей, страница за пределами - пустая
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	pageItems := make([]T, end-start)
	copy(pageItems, items[start:end])

	return Page[T]{
		Items:      pageItems,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
