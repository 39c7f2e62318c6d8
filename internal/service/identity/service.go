package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-DentalBooking/internal/domain"
	userRepo "github.com/m04kA/SMC-DentalBooking/internal/infra/storage/user"
	"github.com/m04kA/SMC-DentalBooking/internal/service/identity/models"
)

// bcrypt учитывает только первые 72 байта пароля
const maxPasswordBytes = 72

var validate = validator.New(validator.WithRequiredStructEnabled())

// Service регистрация, вход и проверка прав администратора
type Service struct {
	userRepo     UserRepository
	tokens       *TokenIssuer
	adminEmails  map[string]struct{}
	adminList    []string
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса учетных записей
func NewService(userRepo UserRepository, tokens *TokenIssuer, adminEmails []string, logger Logger) *Service {
	admins := make(map[string]struct{}, len(adminEmails))
	list := make([]string, 0, len(adminEmails))
	for _, email := range adminEmails {
		email = normalizeEmail(email)
		if _, seen := admins[email]; email == "" || seen {
			continue
		}
		admins[email] = struct{}{}
		list = append(list, email)
	}

	return &Service{
		userRepo:     userRepo,
		tokens:       tokens,
		adminEmails:  admins,
		adminList:    list,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// SignUp регистрирует пользователя и сразу выпускает токен
func (s *Service) SignUp(ctx context.Context, req *models.CredentialsRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if err := validateCredentials(email, req.Password); err != nil {
		return nil, err
	}

	// учетные записи администраторов создаются только при старте сервиса
	if s.IsAdmin(email) {
		s.logger.Warn("SignUp: rejected self sign-up for admin email=%s", email)
		return nil, ErrAdminEmailReserved
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		s.logger.Error("SignUp: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: SignUp - hash password: %v", ErrInternal, err)
	}

	user, err := s.userRepo.Create(ctx, email, hash)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserAlreadyExists) {
			s.logger.Warn("SignUp: email=%s already registered", email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("SignUp: repository error: %v", err)
		return nil, fmt.Errorf("%w: SignUp - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SignUp: user id=%s registered", user.ID)
	return s.issue(user)
}

// SignIn проверяет пароль и выпускает токен
func (s *Service) SignIn(ctx context.Context, req *models.CredentialsRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("SignIn: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("SignIn: repository error: %v", err)
		return nil, fmt.Errorf("%w: SignIn - repository error: %v", ErrInternal, err)
	}

	if !checkPassword(user.PasswordHash, req.Password) {
		s.logger.Warn("SignIn: wrong password for user id=%s", user.ID)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("SignIn: user id=%s signed in", user.ID)
	return s.issue(user)
}

// Me возвращает данные пользователя из токена
func (s *Service) Me(ctx context.Context, userID string) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("Me: repository error for user id=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: Me - repository error: %v", ErrInternal, err)
	}
	return s.toResponse(user), nil
}

// EnsureAdmins создает недостающие учетные записи администраторов с общим bcrypt хешем пароля.
// Без хеша учетные записи не создаются, и вход под email администратора невозможен
func (s *Service) EnsureAdmins(ctx context.Context, passwordHash string) error {
	if len(s.adminList) == 0 {
		return nil
	}
	if passwordHash == "" {
		s.logger.Warn("EnsureAdmins: admin password hash is not configured, missing admin accounts are not created")
		return nil
	}
	if !isPasswordHash(passwordHash) {
		return ErrInvalidAdminSeed
	}

	for _, email := range s.adminList {
		_, err := s.userRepo.GetByEmail(ctx, email)
		if err == nil {
			continue
		}
		if !errors.Is(err, userRepo.ErrUserNotFound) {
			return fmt.Errorf("%w: EnsureAdmins - get %s: %v", ErrInternal, email, err)
		}

		user, err := s.userRepo.Create(ctx, email, passwordHash)
		if err != nil && !errors.Is(err, userRepo.ErrUserAlreadyExists) {
			return fmt.Errorf("%w: EnsureAdmins - create %s: %v", ErrInternal, email, err)
		}
		if user != nil {
			s.logger.Info("EnsureAdmins: admin account id=%s created for email=%s", user.ID, email)
		}
	}
	return nil
}

// Authenticate разбирает access токен
func (s *Service) Authenticate(token string) (*Claims, error) {
	return s.tokens.Parse(token)
}

// IsAdmin проверяет email по списку администраторов из конфигурации
func (s *Service) IsAdmin(email string) bool {
	_, ok := s.adminEmails[normalizeEmail(email)]
	return ok
}

func (s *Service) issue(user *domain.User) (*models.AuthResponse, error) {
	token, expiresAt, err := s.tokens.Issue(user.ID, user.Email, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("issue: failed to sign token for user id=%s: %v", user.ID, err)
		return nil, err
	}

	return &models.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        *s.toResponse(user),
	}, nil
}

func (s *Service) toResponse(user *domain.User) *models.UserResponse {
	return &models.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		IsAdmin:   s.IsAdmin(user.Email),
		CreatedAt: user.CreatedAt,
	}
}

func validateCredentials(email, password string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if utf8.RuneCountInString(password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}
	if len(password) > maxPasswordBytes {
		return fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidInput, maxPasswordBytes)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
