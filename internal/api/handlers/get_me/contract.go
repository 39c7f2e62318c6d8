package get_me

import (
	"context"

	"github.com/m04kA/SMC-DentalBooking/internal/service/identity/models"
)

type IdentityService interface {
	Me(ctx context.Context, userID string) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
