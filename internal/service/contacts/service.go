package contacts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-DentalBooking/internal/domain"
	"github.com/m04kA/SMC-DentalBooking/internal/infra/notify"
	contactRepo "github.com/m04kA/SMC-DentalBooking/internal/infra/storage/contact"
	"github.com/m04kA/SMC-DentalBooking/internal/service/contacts/models"
	"github.com/m04kA/SMC-DentalBooking/pkg/types"
)

// Service сервис обращений и гостевых заявок
type Service struct {
	contactRepo  ContactRepository
	clinic       *domain.Clinic
	metrics      Metrics
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса обращений
func NewService(
	contactRepo ContactRepository,
	clinic *domain.Clinic,
	metrics Metrics,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		contactRepo:  contactRepo,
		clinic:       clinic,
		metrics:      metrics,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create сохраняет обращение с публичной формы со статусом unread
func (s *Service) Create(ctx context.Context, req *models.CreateContactRequest) (*models.ContactResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)

	if name == "" || email == "" || message == "" {
		return nil, fmt.Errorf("%w: name, email and message are required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(message) > domain.MaxMessageLength {
		return nil, fmt.Errorf("%w: message must be at most %d characters", ErrInvalidInput, domain.MaxMessageLength)
	}

	return s.store(ctx, "Create", &domain.Contact{
		Name:    name,
		Email:   email,
		Phone:   trimOptional(req.Phone),
		Message: message,
		Status:  domain.ContactUnread,
	})
}

// GuestRequest сохраняет гостевую заявку на запись как обращение с описанием желаемого слота
func (s *Service) GuestRequest(ctx context.Context, req *models.GuestBookingRequest) (*models.ContactResponse, error) {
	phone := strings.TrimSpace(req.Phone)
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || phone == "" {
		return nil, fmt.Errorf("%w: name, email and phone are required", ErrInvalidInput)
	}

	branch := domain.NormalizeKey(req.Branch)
	if !s.clinic.IsKnownBranch(branch) {
		s.logger.Warn("GuestRequest: unknown branch=%s", req.Branch)
		return nil, fmt.Errorf("%w: %s", ErrUnknownBranch, req.Branch)
	}

	service := domain.NormalizeKey(req.Service)
	if !s.clinic.IsKnownService(service) {
		s.logger.Warn("GuestRequest: unknown service=%s", req.Service)
		return nil, fmt.Errorf("%w: %s", ErrUnknownService, req.Service)
	}

	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(req.Date))
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	slot, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	message := fmt.Sprintf("Booking request: %s at %s branch on %s, %s.",
		service, branch, date.Format(domain.DateFormat), slot)
	if notes := trimOptional(req.Notes); notes != nil {
		message += " Notes: " + *notes
	}

	return s.store(ctx, "GuestRequest", &domain.Contact{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   &phone,
		Message: message,
		Status:  domain.ContactUnread,
	})
}

// List возвращает обращения, новые первыми. status пустой или "all" - без фильтра
func (s *Service) List(ctx context.Context, status string) (*models.ContactListResponse, error) {
	var filter *domain.ContactStatus
	if status != "" && status != domain.FilterAll {
		parsed, err := domain.ParseContactStatus(status)
		if err != nil {
			s.logger.Warn("List: invalid status filter=%s", status)
			return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
		}
		filter = &parsed
	}

	contacts, err := s.contactRepo.GetAll(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: found %d contacts, status=%s", len(contacts), status)
	return models.FromDomainContactList(contacts), nil
}

// SetStatus отмечает обращение прочитанным или непрочитанным
func (s *Service) SetStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) error {
	status, err := domain.ParseContactStatus(req.Status)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	if err := s.contactRepo.UpdateStatus(ctx, id, status); err != nil {
		return s.mapRepoError("SetStatus", id, err)
	}

	s.publish(ctx, notify.Event{Type: notify.EventContactStatusChanged, EntityID: id, Status: string(status)})
	s.logger.Info("SetStatus: contact id=%s marked %s", id, status)
	return nil
}

// Delete удаляет обращение
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.contactRepo.Delete(ctx, id); err != nil {
		return s.mapRepoError("Delete", id, err)
	}

	s.publish(ctx, notify.Event{Type: notify.EventContactDeleted, EntityID: id})
	s.logger.Info("Delete: contact id=%s deleted", id)
	return nil
}

func (s *Service) store(ctx context.Context, op string, contact *domain.Contact) (*models.ContactResponse, error) {
	if utf8.RuneCountInString(contact.Name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	created, err := s.contactRepo.Create(ctx, contact)
	if err != nil {
		s.logger.Error("%s: failed to store contact: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	s.metrics.ObserveContactCreated()
	s.publish(ctx, notify.Event{Type: notify.EventContactCreated, EntityID: created.ID, Status: string(created.Status)})

	s.logger.Info("%s: contact id=%s stored", op, created.ID)
	return models.FromDomainContact(created), nil
}

func (s *Service) mapRepoError(op, id string, err error) error {
	if errors.Is(err, contactRepo.ErrContactNotFound) {
		s.logger.Warn("%s: contact id=%s not found", op, id)
		return ErrContactNotFound
	}
	s.logger.Error("%s: repository error for contact id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

// publish отправляет событие; ошибка не отменяет уже выполненную операцию
func (s *Service) publish(ctx context.Context, event notify.Event) {
	event.At = s.timeProvider.Now()
	if err := s.notifier.Publish(ctx, event); err != nil {
		s.logger.Warn("notify: failed to publish %s for %s: %v", event.Type, event.EntityID, err)
	}
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
