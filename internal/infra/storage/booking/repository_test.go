package booking

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DentalBooking/internal/domain"
	"github.com/m04kA/SMC-DentalBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-DentalBooking/pkg/ptr"
)

const testID = "5f0c6a3e-8d4b-4b8e-9a55-2f4b1d1f9c11"

func setupRepository(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	wrapped := dbmetrics.Wrap(db, nil)
	return NewRepository(wrapped), wrapped, mock
}

func bookingRow(status string) *sqlmock.Rows {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(bookingColumns).AddRow(
		testID, "Maria Santos", "maria@example.com", "09171234567",
		"villasis", "cleaning", time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), "9:30 AM",
		status, nil, nil, nil, nil, nil, now, now,
	)
}

func TestRepository_Create(t *testing.T) {
	repo, _, mock := setupRepository(t)
	created := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs(sqlmock.AnyArg(), "Maria Santos", "maria@example.com", "09171234567",
			"villasis", "cleaning", date, "9:30 AM", "pending", nil, "user-1", nil).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(created, created))

	b, err := repo.Create(context.Background(), &domain.Booking{
		Name:    "Maria Santos",
		Email:   "maria@example.com",
		Phone:   "09171234567",
		Branch:  "villasis",
		Service: "cleaning",
		Date:    date,
		Time:    "9:30 AM",
		Status:  domain.StatusPending,
		UserID:  ptr.Ptr("user-1"),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, created, b.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ExecError(t *testing.T) {
	repo, _, mock := setupRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), &domain.Booking{Status: domain.StatusPending})
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_GetByID(t *testing.T) {
	repo, _, mock := setupRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
		WithArgs(testID).
		WillReturnRows(bookingRow("confirmed"))

	b, err := repo.GetByID(context.Background(), testID)
	require.NoError(t, err)

	assert.Equal(t, testID, b.ID)
	assert.Equal(t, domain.StatusConfirmed, b.Status)
	assert.Equal(t, "9:30 AM", b.Time)
	assert.Nil(t, b.Notes)
	assert.Nil(t, b.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, _, mock := setupRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
		WithArgs(testID).
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	_, err := repo.GetByID(context.Background(), testID)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = repo.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByFilter(t *testing.T) {
	repo, _, mock := setupRepository(t)
	date := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE booking_date = $1 AND branch = $2 AND status = $3 ORDER BY created_at DESC")).
		WithArgs("2025-06-12", "villasis", "confirmed").
		WillReturnRows(bookingRow("confirmed"))

	bookings, err := repo.GetByFilter(context.Background(), domain.BookingsFilter{
		Date:   &date,
		Branch: ptr.Ptr("villasis"),
		Status: ptr.Ptr(domain.StatusConfirmed),
	})

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "villasis", bookings[0].Branch)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByFilter_LocksInTransaction(t *testing.T) {
	repo, db, mock := setupRepository(t)
	date := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC FOR UPDATE")).
		WithArgs("2025-06-12").
		WillReturnRows(sqlmock.NewRows(bookingColumns))
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	ctx := dbmetrics.WithTx(context.Background(), tx)
	bookings, err := repo.GetByFilter(ctx, domain.BookingsFilter{Date: &date})
	require.NoError(t, err)
	assert.Empty(t, bookings)

	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetAll(t *testing.T) {
	repo, _, mock := setupRepository(t)

	rows := bookingRow("pending")
	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings ORDER BY created_at DESC")).
		WillReturnRows(rows)

	bookings, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, _, mock := setupRepository(t)
	cancelledAt := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = $1, cancellation_reason = $2, cancelled_at = $3, updated_at = NOW() WHERE id = $4")).
		WithArgs("cancelled", "no show", cancelledAt, testID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), &domain.Booking{
		ID:                 testID,
		Status:             domain.StatusCancelled,
		CancellationReason: ptr.Ptr("no show"),
		CancelledAt:        &cancelledAt,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_NotFound(t *testing.T) {
	repo, _, mock := setupRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), &domain.Booking{ID: testID, Status: domain.StatusPending})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_Delete(t *testing.T) {
	repo, _, mock := setupRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings WHERE id = $1")).
		WithArgs(testID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings WHERE id = $1")).
		WithArgs(testID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), testID))
	assert.ErrorIs(t, repo.Delete(context.Background(), testID), ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
