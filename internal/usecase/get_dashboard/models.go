package get_dashboard

import (
	"time"

	"github.com/m04kA/SMC-DentalBooking/internal/domain"
)

// Тип записи в ленте активности
const (
	ActivityBooking = "booking"
	ActivityContact = "contact"
)

// Options параметры панели
type Options struct {
	UpcomingDays        int
	RecentActivityLimit int
}

// StatusCounts количество бронирований по статусам
type StatusCounts struct {
	Pending   int
	Confirmed int
	Cancelled int
	Done      int
	Total     int
}

// ContactCounts количество обращений по статусам
type ContactCounts struct {
	Unread int
	Read   int
	Total  int
}

// BranchCount количество бронирований филиала
type BranchCount struct {
	Branch string
	Count  int
}

// Day бронирования одного дня, отсортированные по времени
type Day struct {
	Date     time.Time
	Bookings []*domain.Booking
}

// Activity запись ленты последних событий
type Activity struct {
	Kind      string // booking или contact
	ID        string
	Name      string
	Status    string
	Summary   string
	CreatedAt time.Time
}

// Response данные панели администратора
type Response struct {
	Bookings       StatusCounts
	Contacts       ContactCounts
	Branches       []BranchCount
	UpcomingWeek   []Day
	RecentActivity []Activity
}
