package transfer_contact

import (
	"context"

	"github.com/m04kA/SMC-DentalBooking/internal/domain"
	transferContact "github.com/m04kA/SMC-DentalBooking/internal/usecase/transfer_contact"
)

type TransferContactUseCase interface {
	Execute(ctx context.Context, req *transferContact.Request) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
