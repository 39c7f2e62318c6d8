package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DentalBooking/internal/domain"
	userRepo "github.com/m04kA/SMC-DentalBooking/internal/infra/storage/user"
	"github.com/m04kA/SMC-DentalBooking/internal/service/identity/models"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	args := m.Called(ctx, email, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *mockUserRepository) {
	repo := &mockUserRepository{}
	tokens := NewTokenIssuer(testSecret, "dental-booking", time.Hour)
	return NewService(repo, tokens, []string{" Admin@Clinic.ph "}, nopLogger{}), repo
}

func TestSignUp(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	var storedHash string
	repo.On("Create", ctx, "maria@example.com", mock.MatchedBy(func(hash string) bool {
		storedHash = hash
		return checkPassword(hash, "s3cret-pass")
	})).Return(&domain.User{ID: "u-1", Email: "maria@example.com"}, nil)

	resp, err := svc.SignUp(ctx, &models.CredentialsRequest{Email: " Maria@Example.com", Password: "s3cret-pass"})

	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", storedHash)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, "u-1", resp.User.ID)
	assert.False(t, resp.User.IsAdmin)

	claims, err := svc.Authenticate(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
}

func TestSignUp_Rejections(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.SignUp(ctx, &models.CredentialsRequest{Email: "not-an-email", Password: "long-enough"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SignUp(ctx, &models.CredentialsRequest{Email: "a@example.com", Password: "short"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo.On("Create", ctx, "taken@example.com", mock.Anything).Return(nil, userRepo.ErrUserAlreadyExists)
	_, err = svc.SignUp(ctx, &models.CredentialsRequest{Email: "taken@example.com", Password: "long-enough"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignIn(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	hash, err := hashPassword("s3cret-pass")
	require.NoError(t, err)
	user := &domain.User{ID: "u-9", Email: "admin@clinic.ph", PasswordHash: hash}

	repo.On("GetByEmail", ctx, "admin@clinic.ph").Return(user, nil)
	repo.On("GetByEmail", ctx, "nobody@clinic.ph").Return(nil, userRepo.ErrUserNotFound)
	repo.On("GetByEmail", ctx, "broken@clinic.ph").Return(nil, errors.New("db down"))

	resp, err := svc.SignIn(ctx, &models.CredentialsRequest{Email: "ADMIN@clinic.ph", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.True(t, resp.User.IsAdmin)

	_, err = svc.SignIn(ctx, &models.CredentialsRequest{Email: "admin@clinic.ph", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.SignIn(ctx, &models.CredentialsRequest{Email: "nobody@clinic.ph", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.SignIn(ctx, &models.CredentialsRequest{Email: "broken@clinic.ph", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestMe(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	repo.On("GetByID", ctx, "u-1").Return(&domain.User{ID: "u-1", Email: "maria@example.com"}, nil)
	repo.On("GetByID", ctx, "u-2").Return(nil, userRepo.ErrUserNotFound)

	resp, err := svc.Me(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", resp.Email)

	_, err = svc.Me(ctx, "u-2")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestIsAdmin(t *testing.T) {
	svc, _ := newTestService()

	assert.True(t, svc.IsAdmin("admin@clinic.ph"))
	assert.True(t, svc.IsAdmin(" ADMIN@CLINIC.PH"))
	assert.False(t, svc.IsAdmin("maria@example.com"))
	assert.False(t, svc.IsAdmin(""))
}

func TestSignUp_AdminEmailReserved(t *testing.T) {
	svc, repo := newTestService()

	resp, err := svc.SignUp(context.Background(), &models.CredentialsRequest{Email: "ADMIN@clinic.ph ", Password: "long-enough"})

	assert.ErrorIs(t, err, ErrAdminEmailReserved)
	assert.Nil(t, resp)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestEnsureAdmins_CreatesMissingAccount(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	hash, err := hashPassword("staff-password")
	require.NoError(t, err)

	repo.On("GetByEmail", ctx, "admin@clinic.ph").Return(nil, userRepo.ErrUserNotFound).Once()
	repo.On("Create", ctx, "admin@clinic.ph", hash).
		Return(&domain.User{ID: "u-admin", Email: "admin@clinic.ph", PasswordHash: hash}, nil).Once()

	require.NoError(t, svc.EnsureAdmins(ctx, hash))
	repo.AssertExpectations(t)

	repo.On("GetByEmail", ctx, "admin@clinic.ph").
		Return(&domain.User{ID: "u-admin", Email: "admin@clinic.ph", PasswordHash: hash}, nil)

	resp, err := svc.SignIn(ctx, &models.CredentialsRequest{Email: "admin@clinic.ph", Password: "staff-password"})
	require.NoError(t, err)
	assert.True(t, resp.User.IsAdmin)
}

func TestEnsureAdmins_ExistingAccountKept(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	hash, err := hashPassword("staff-password")
	require.NoError(t, err)
	repo.On("GetByEmail", ctx, "admin@clinic.ph").Return(&domain.User{ID: "u-admin", Email: "admin@clinic.ph"}, nil)

	require.NoError(t, svc.EnsureAdmins(ctx, hash))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestEnsureAdmins_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("no hash configured", func(t *testing.T) {
		svc, repo := newTestService()
		require.NoError(t, svc.EnsureAdmins(ctx, ""))
		repo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})

	t.Run("plain text instead of hash", func(t *testing.T) {
		svc, repo := newTestService()
		assert.ErrorIs(t, svc.EnsureAdmins(ctx, "staff-password"), ErrInvalidAdminSeed)
		repo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})

	t.Run("repository failure", func(t *testing.T) {
		svc, repo := newTestService()
		hash, err := hashPassword("staff-password")
		require.NoError(t, err)
		repo.On("GetByEmail", ctx, "admin@clinic.ph").Return(nil, errors.New("db down"))

		assert.ErrorIs(t, svc.EnsureAdmins(ctx, hash), ErrInternal)
	})

	t.Run("no admins configured", func(t *testing.T) {
		repo := &mockUserRepository{}
		svc := NewService(repo, NewTokenIssuer(testSecret, "dental-booking", time.Hour), nil, nopLogger{})
		require.NoError(t, svc.EnsureAdmins(ctx, "anything"))
	})
}
