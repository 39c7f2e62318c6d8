package list_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-DentalBooking/internal/service/bookings"
	"github.com/m04kA/SMC-DentalBooking/internal/service/bookings/models"
)

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingPageResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingPageResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func get(h *Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_PassesFilters(t *testing.T) {
	svc := &mockBookingService{}
	svc.On("List", mock.Anything, &models.ListBookingsRequest{
		Status: "pending",
		Branch: "carmen",
		Search: "maria",
		Page:   2,
	}).Return(&models.BookingPageResponse{
		Bookings:   []models.BookingResponse{},
		Page:       2,
		PageSize:   8,
		TotalItems: 9,
		TotalPages: 2,
	}, nil)

	rec := get(NewHandler(svc, nopLogger{}), "/api/v1/admin/bookings?status=Pending&branch=carmen&q=maria&page=2")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"bookings":[],"page":2,"pageSize":8,"totalItems":9,"totalPages":2}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	svc := &mockBookingService{}
	svc.On("List", mock.Anything, mock.MatchedBy(func(r *models.ListBookingsRequest) bool { return r.Status == "archived" })).
		Return(nil, bookings.ErrInvalidInput)
	h := NewHandler(svc, nopLogger{})

	assert.Equal(t, http.StatusBadRequest, get(h, "/api/v1/admin/bookings?page=two").Code)
	assert.Equal(t, http.StatusBadRequest, get(h, "/api/v1/admin/bookings?status=archived").Code)
}
