package sign_in

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-DentalBooking/internal/service/identity"
	"github.com/m04kA/SMC-DentalBooking/internal/service/identity/models"
)

type mockIdentityService struct {
	mock.Mock
}

func (m *mockIdentityService) SignIn(ctx context.Context, req *models.CredentialsRequest) (*models.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/sign-in", strings.NewReader(body)))
	return rec
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		resp     *models.AuthResponse
		err      error
		wantCode int
	}{
		{
			name:     "signed in",
			body:     `{"email":"maria@example.com","password":"s3cret-pass"}`,
			resp:     &models.AuthResponse{AccessToken: "token", User: models.UserResponse{ID: "u-1"}},
			wantCode: http.StatusOK,
		},
		{
			name:     "wrong password",
			body:     `{"email":"maria@example.com","password":"wrong-pass"}`,
			err:      identity.ErrInvalidCredentials,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "internal",
			body:     `{"email":"maria@example.com","password":"s3cret-pass"}`,
			err:      identity.ErrInternal,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockIdentityService{}
			if tt.resp != nil {
				svc.On("SignIn", mock.Anything, mock.Anything).Return(tt.resp, nil)
			} else {
				svc.On("SignIn", mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			rec := post(NewHandler(svc, nopLogger{}), tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandle_BadBody(t *testing.T) {
	svc := &mockIdentityService{}

	rec := post(NewHandler(svc, nopLogger{}), `not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "SignIn", mock.Anything, mock.Anything)
}
