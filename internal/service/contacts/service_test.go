package contacts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DentalBooking/internal/domain"
	"github.com/m04kA/SMC-DentalBooking/internal/infra/notify"
	contactRepo "github.com/m04kA/SMC-DentalBooking/internal/infra/storage/contact"
	"github.com/m04kA/SMC-DentalBooking/internal/service/contacts/models"
	"github.com/m04kA/SMC-DentalBooking/pkg/ptr"
)

type mockContactRepository struct {
	mock.Mock
}

func (m *mockContactRepository) Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	args := m.Called(ctx, contact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *mockContactRepository) GetAll(ctx context.Context, status *domain.ContactStatus) ([]*domain.Contact, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Contact), args.Error(1)
}

func (m *mockContactRepository) UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockContactRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) ObserveContactCreated() {
	m.Called()
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Publish(ctx context.Context, event notify.Event) error {
	return m.Called(ctx, event).Error(0)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

func newTestService() (*Service, *mockContactRepository, *mockMetrics, *mockNotifier) {
	repo := &mockContactRepository{}
	metrics := &mockMetrics{}
	notifier := &mockNotifier{}
	clinic := &domain.Clinic{
		Branches: domain.DefaultBranches,
		Services: domain.DefaultServices,
		SlotGrid: domain.DefaultSlotGrid(),
		Location: time.UTC,
	}
	svc := NewService(repo, clinic, metrics, notifier, nopLogger{})
	svc.timeProvider = fixedTime{now: testNow}
	return svc, repo, metrics, notifier
}

// stored имитирует присвоение ID хранилищем
func stored(c *domain.Contact) *domain.Contact {
	out := *c
	out.ID = "c-1"
	out.CreatedAt = testNow
	return &out
}

func TestCreate(t *testing.T) {
	svc, repo, metrics, notifier := newTestService()
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(c *domain.Contact) bool {
		return c.Name == "Ana Reyes" && c.Status == domain.ContactUnread && c.Phone == nil
	})).Return(func() *domain.Contact {
		return stored(&domain.Contact{Name: "Ana Reyes", Email: "ana@example.com", Message: "Hello", Status: domain.ContactUnread})
	}(), nil)
	metrics.On("ObserveContactCreated").Return()
	notifier.On("Publish", ctx, notify.Event{
		Type:     notify.EventContactCreated,
		EntityID: "c-1",
		Status:   "unread",
		At:       testNow,
	}).Return(nil)

	resp, err := svc.Create(ctx, &models.CreateContactRequest{
		Name:    " Ana Reyes ",
		Email:   "ana@example.com",
		Phone:   ptr.Ptr("  "),
		Message: "Hello",
	})

	require.NoError(t, err)
	assert.Equal(t, "c-1", resp.ID)
	assert.Equal(t, "unread", resp.Status)
	metrics.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCreate_Invalid(t *testing.T) {
	svc, repo, _, _ := newTestService()

	_, err := svc.Create(context.Background(), &models.CreateContactRequest{Name: "Ana", Email: "ana@example.com"})

	assert.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_StoreFailure(t *testing.T) {
	svc, repo, metrics, _ := newTestService()
	ctx := context.Background()
	repo.On("Create", ctx, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := svc.Create(ctx, &models.CreateContactRequest{Name: "Ana", Email: "ana@example.com", Message: "Hi"})

	assert.ErrorIs(t, err, ErrInternal)
	metrics.AssertNotCalled(t, "ObserveContactCreated")
}

func TestGuestRequest_DescribesSlot(t *testing.T) {
	svc, repo, metrics, notifier := newTestService()
	ctx := context.Background()

	var captured *domain.Contact
	repo.On("Create", ctx, mock.MatchedBy(func(c *domain.Contact) bool {
		captured = c
		return true
	})).Return(stored(&domain.Contact{Status: domain.ContactUnread}), nil)
	metrics.On("ObserveContactCreated").Return()
	notifier.On("Publish", ctx, mock.Anything).Return(nil)

	_, err := svc.GuestRequest(ctx, &models.GuestBookingRequest{
		Name:    "Jose Rizal",
		Email:   "jose@example.com",
		Phone:   "09170000000",
		Branch:  "Carmen",
		Service: "Filling",
		Date:    "2025-06-12",
		Time:    "9:30am",
		Notes:   ptr.Ptr("left molar"),
	})

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, "Booking request: filling at carmen branch on 2025-06-12, 9:30 AM. Notes: left molar", captured.Message)
	require.NotNil(t, captured.Phone)
	assert.Equal(t, "09170000000", *captured.Phone)
	assert.Equal(t, domain.ContactUnread, captured.Status)
}

func TestGuestRequest_Rejections(t *testing.T) {
	valid := models.GuestBookingRequest{
		Name:    "Jose",
		Email:   "jose@example.com",
		Phone:   "0917",
		Branch:  "villasis",
		Service: "cleaning",
		Date:    "2025-06-12",
		Time:    "9:30 AM",
	}

	tests := []struct {
		name    string
		mutate  func(r *models.GuestBookingRequest)
		wantErr error
	}{
		{"no phone", func(r *models.GuestBookingRequest) { r.Phone = "" }, ErrInvalidInput},
		{"unknown branch", func(r *models.GuestBookingRequest) { r.Branch = "dagupan" }, ErrUnknownBranch},
		{"unknown service", func(r *models.GuestBookingRequest) { r.Service = "surgery" }, ErrUnknownService},
		{"bad date", func(r *models.GuestBookingRequest) { r.Date = "12/06/2025" }, ErrInvalidInput},
		{"bad time", func(r *models.GuestBookingRequest) { r.Time = "noon" }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, _ := newTestService()
			req := valid
			tt.mutate(&req)

			_, err := svc.GuestRequest(context.Background(), &req)

			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestList(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()

	unread := domain.ContactUnread
	repo.On("GetAll", ctx, &unread).Return([]*domain.Contact{stored(&domain.Contact{Status: unread})}, nil)
	repo.On("GetAll", ctx, (*domain.ContactStatus)(nil)).Return([]*domain.Contact{}, nil)

	resp, err := svc.List(ctx, "unread")
	require.NoError(t, err)
	assert.Len(t, resp.Contacts, 1)

	resp, err = svc.List(ctx, "all")
	require.NoError(t, err)
	assert.Empty(t, resp.Contacts)

	_, err = svc.List(ctx, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSetStatus(t *testing.T) {
	svc, repo, _, notifier := newTestService()
	ctx := context.Background()

	repo.On("UpdateStatus", ctx, "c-1", domain.ContactRead).Return(nil)
	repo.On("UpdateStatus", ctx, "missing", domain.ContactRead).Return(contactRepo.ErrContactNotFound)
	notifier.On("Publish", ctx, notify.Event{
		Type:     notify.EventContactStatusChanged,
		EntityID: "c-1",
		Status:   "read",
		At:       testNow,
	}).Return(nil)

	require.NoError(t, svc.SetStatus(ctx, "c-1", &models.UpdateStatusRequest{Status: "READ"}))
	assert.ErrorIs(t, svc.SetStatus(ctx, "missing", &models.UpdateStatusRequest{Status: "read"}), ErrContactNotFound)
	assert.ErrorIs(t, svc.SetStatus(ctx, "c-1", &models.UpdateStatusRequest{Status: "archived"}), ErrInvalidStatus)
	notifier.AssertNumberOfCalls(t, "Publish", 1)
}

func TestDelete(t *testing.T) {
	svc, repo, _, notifier := newTestService()
	ctx := context.Background()

	repo.On("Delete", ctx, "c-1").Return(nil)
	repo.On("Delete", ctx, "c-2").Return(errors.New("timeout"))
	notifier.On("Publish", ctx, mock.Anything).Return(nil)

	require.NoError(t, svc.Delete(ctx, "c-1"))
	assert.ErrorIs(t, svc.Delete(ctx, "c-2"), ErrInternal)
}
