package transfer_contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DentalBooking/internal/domain"
	contactRepo "github.com/m04kA/SMC-DentalBooking/internal/infra/storage/contact"
	"github.com/m04kA/SMC-DentalBooking/internal/usecase/create_booking"
)

// UseCase переносит обращение в новое бронирование. Само обращение не меняется
type UseCase struct {
	contactRepo    ContactRepository
	bookingCreator BookingCreator
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(contactRepo ContactRepository, bookingCreator BookingCreator, logger Logger) *UseCase {
	return &UseCase{
		contactRepo:    contactRepo,
		bookingCreator: bookingCreator,
		logger:         logger,
	}
}

// Execute выполняет перенос обращения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Booking, error) {
	uc.logger.Info("TransferContact: contact=%s, branch=%s, date=%s, time=%s",
		req.ContactID, req.Branch, req.Date.Format(domain.DateFormat), req.Time)

	contact, err := uc.contactRepo.GetByID(ctx, req.ContactID)
	if err != nil {
		if errors.Is(err, contactRepo.ErrContactNotFound) {
			uc.logger.Warn("TransferContact: contact id=%s not found", req.ContactID)
			return nil, ErrContactNotFound
		}
		uc.logger.Error("TransferContact: failed to get contact id=%s: %v", req.ContactID, err)
		return nil, fmt.Errorf("%w: failed to get contact: %v", ErrInternal, err)
	}

	draft := contact.ToBooking(domain.TransferDetails{
		Phone:   req.Phone,
		Branch:  req.Branch,
		Service: req.Service,
		Date:    req.Date,
		Time:    req.Time,
		Notes:   req.Notes,
	})

	booking, err := uc.bookingCreator.Execute(ctx, &create_booking.Request{
		Origin:    create_booking.OriginTransfer,
		ContactID: draft.ContactID,
		Name:      draft.Name,
		Email:     draft.Email,
		Phone:     draft.Phone,
		Branch:    draft.Branch,
		Service:   draft.Service,
		Date:      draft.Date,
		Time:      draft.Time,
		Notes:     draft.Notes,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("TransferContact: contact=%s transferred to booking id=%s", contact.ID, booking.ID)
	return booking, nil
}
