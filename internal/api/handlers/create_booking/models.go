package create_booking

import (
	"time"

	"github.com/m04kA/SMC-DentalBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-DentalBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name    string  `json:"name" validate:"required,max=120"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   string  `json:"phone" validate:"required,max=32"`
	Branch  string  `json:"branch" validate:"required"`
	Service string  `json:"service" validate:"required"`
	Date    string  `json:"date" validate:"required"` // "2025-06-12"
	Time    string  `json:"time" validate:"required"` // "9:30 AM"
	Notes   *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(origin string, userID *string) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Origin:  origin,
		UserID:  userID,
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Branch:  r.Branch,
		Service: r.Service,
		Date:    date,
		Time:    r.Time,
		Notes:   r.Notes,
	}, nil
}
