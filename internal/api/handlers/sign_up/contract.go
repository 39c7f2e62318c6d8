package sign_up

import (
	"context"

	"github.com/m04kA/SMC-DentalBooking/internal/service/identity/models"
)

type IdentityService interface {
	SignUp(ctx context.Context, req *models.CredentialsRequest) (*models.AuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
