package get_dashboard

import (
	"time"

	"github.com/m04kA/SMC-DentalBooking/internal/domain"
	"github.com/m04kA/SMC-DentalBooking/internal/service/bookings/models"
	getDashboard "github.com/m04kA/SMC-DentalBooking/internal/usecase/get_dashboard"
)

type StatusCounts struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
	Done      int `json:"done"`
	Total     int `json:"total"`
}

type ContactCounts struct {
	Unread int `json:"unread"`
	Read   int `json:"read"`
	Total  int `json:"total"`
}

type BranchCount struct {
	Branch string `json:"branch"`
	Count  int    `json:"count"`
}

type Day struct {
	Date     string                   `json:"date"`
	Bookings []models.BookingResponse `json:"bookings"`
}

type Activity struct {
	Kind      string    `json:"kind"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"createdAt"`
}

// DashboardResponse HTTP response model
type DashboardResponse struct {
	Bookings       StatusCounts  `json:"bookings"`
	Contacts       ContactCounts `json:"contacts"`
	Branches       []BranchCount `json:"branches"`
	UpcomingWeek   []Day         `json:"upcomingWeek"`
	RecentActivity []Activity    `json:"recentActivity"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getDashboard.Response) *DashboardResponse {
	result := &DashboardResponse{
		Bookings: StatusCounts{
			Pending:   resp.Bookings.Pending,
			Confirmed: resp.Bookings.Confirmed,
			Cancelled: resp.Bookings.Cancelled,
			Done:      resp.Bookings.Done,
			Total:     resp.Bookings.Total,
		},
		Contacts: ContactCounts{
			Unread: resp.Contacts.Unread,
			Read:   resp.Contacts.Read,
			Total:  resp.Contacts.Total,
		},
		Branches:       make([]BranchCount, 0, len(resp.Branches)),
		UpcomingWeek:   make([]Day, 0, len(resp.UpcomingWeek)),
		RecentActivity: make([]Activity, 0, len(resp.RecentActivity)),
	}

	for _, b := range resp.Branches {
		result.Branches = append(result.Branches, BranchCount{Branch: b.Branch, Count: b.Count})
	}
	for _, d := range resp.UpcomingWeek {
		result.UpcomingWeek = append(result.UpcomingWeek, Day{
			Date:     d.Date.Format(domain.DateFormat),
			Bookings: models.FromDomainBookingList(d.Bookings).Bookings,
		})
	}
	for _, a := range resp.RecentActivity {
		result.RecentActivity = append(result.RecentActivity, Activity(a))
	}

	return result
}
