package transfer_contact

import (
	"time"

	"github.com/m04kA/SMC-DentalBooking/internal/domain"
	transferContact "github.com/m04kA/SMC-DentalBooking/internal/usecase/transfer_contact"
)

// TransferContactRequest поля, которых нет в обращении
type TransferContactRequest struct {
	Phone   string  `json:"phone" validate:"omitempty,max=32"`
	Branch  string  `json:"branch" validate:"required"`
	Service string  `json:"service" validate:"required"`
	Date    string  `json:"date" validate:"required"`
	Time    string  `json:"time" validate:"required"`
	Notes   *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

func (r *TransferContactRequest) ToUseCaseRequest(contactID string) (*transferContact.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &transferContact.Request{
		ContactID: contactID,
		Phone:     r.Phone,
		Branch:    r.Branch,
		Service:   r.Service,
		Date:      date,
		Time:      r.Time,
		Notes:     r.Notes,
	}, nil
}
