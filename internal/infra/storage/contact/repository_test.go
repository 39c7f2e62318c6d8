package contact

import (
	"context"
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

const testID = "0d6f2c9a-1b7e-4c3a-8f21-6a9e5b4c3d21"

func setupRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := setupRepository(t)
	created := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO contacts")).
		WithArgs(sqlmock.AnyArg(), "Lito Cruz", "lito@example.com", "0917", "Do you accept HMO?", "unread").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	c, err := repo.Create(context.Background(), &domain.Contact{
		Name:    "Lito Cruz",
		Email:   "lito@example.com",
		Phone:   ptr.Ptr("0917"),
		Message: "Do you accept HMO?",
		Status:  domain.ContactUnread,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, created, c.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetAll_ByStatus(t *testing.T) {
	repo, mock := setupRepository(t)
	created := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM contacts WHERE status = $1 ORDER BY created_at DESC")).
		WithArgs("unread").
		WillReturnRows(sqlmock.NewRows(contactColumns).
			AddRow(testID, "Lito Cruz", "lito@example.com", nil, "Hello", "unread", created))

	contacts, err := repo.GetAll(context.Background(), ptr.Ptr(domain.ContactUnread))

	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Nil(t, contacts[0].Phone)
	assert.Equal(t, domain.ContactUnread, contacts[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := setupRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM contacts WHERE id = $1")).
		WithArgs(testID).
		WillReturnRows(sqlmock.NewRows(contactColumns))

	_, err := repo.GetByID(context.Background(), testID)
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestRepository_UpdateStatusAndDelete(t *testing.T) {
	repo, mock := setupRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE contacts SET status = $1 WHERE id = $2")).
		WithArgs("read", testID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM contacts WHERE id = $1")).
		WithArgs(testID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.UpdateStatus(context.Background(), testID, domain.ContactRead))
	assert.ErrorIs(t, repo.Delete(context.Background(), testID), ErrContactNotFound)
	assert.ErrorIs(t, repo.Delete(context.Background(), "42"), ErrContactNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
