package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DentalBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-DentalBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-DentalBooking/internal/infra/notify"
	"github.com/m04kA/SMC-DentalBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-DentalBooking/pkg/txmanager"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	metrics      Metrics
	notifier     Notifier
	pageSize     int
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	metrics Metrics,
	notifier Notifier,
	pageSize int,
	logger Logger,
) *Service {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	return &Service{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		metrics:      metrics,
		notifier:     notifier,
		pageSize:     pageSize,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID (админка)
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает бронирования пользователя, новые первыми
func (s *Service) GetUserBookings(ctx context.Context, userID string) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s", userID)

	bookings, err := s.bookingRepo.GetByFilter(ctx, domain.BookingsFilter{UserID: &userID})
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: found %d bookings for user=%s", len(bookings), userID)
	return models.FromDomainBookingList(bookings), nil
}

// List возвращает страницу бронирований по фильтру статуса, филиала и поисковой строке
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingPageResponse, error) {
	query := domain.ListQuery{
		Status:   req.Status,
		Branch:   req.Branch,
		Search:   req.Search,
		Page:     req.Page,
		PageSize: s.pageSize,
	}

	if query.Status != "" && query.Status != domain.FilterAll {
		status, err := domain.ParseBookingStatus(query.Status)
		if err != nil {
			s.logger.Warn("List: invalid status filter=%s", req.Status)
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
		}
		query.Status = string(status)
	}

	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	page := domain.Paginate(domain.FilterBookings(bookings, query), query.Page, query.PageSize)

	s.logger.Info("List: status=%s, branch=%s, page=%d, matched=%d", req.Status, req.Branch, page.Page, page.TotalItems)
	return models.FromDomainBookingPage(page), nil
}

// UpdateStatus переводит бронирование в новый статус (админка).
// Подтверждение проверяет, что слот не занят другим подтвержденным бронированием
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%s, new status=%s", id, req.Status)

	to, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	from, updated, err := s.transition(ctx, "UpdateStatus", id, to, req.CancellationReason, nil)
	if err != nil {
		return nil, err
	}

	s.afterTransition(ctx, from, updated)
	s.logger.Info("UpdateStatus: booking id=%s moved %s -> %s", id, from, updated.Status)
	return models.FromDomainBooking(updated), nil
}

// CancelOwn отменяет бронирование его владельцем. Доступно только для бронирований в статусе pending
func (s *Service) CancelOwn(ctx context.Context, id string, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("CancelOwn: user=%s cancelling booking id=%s", req.UserID, id)

	guard := func(b *domain.Booking) error {
		if !b.IsOwnedBy(req.UserID) {
			s.logger.Warn("CancelOwn: access denied for user=%s to booking id=%s", req.UserID, id)
			return ErrAccessDenied
		}
		if !b.CanBeCancelledByOwner() {
			s.logger.Warn("CancelOwn: booking id=%s has status=%s, cannot cancel", id, b.Status)
			return fmt.Errorf("%w: current status %s", ErrCannotCancel, b.Status)
		}
		return nil
	}

	from, updated, err := s.transition(ctx, "CancelOwn", id, domain.StatusCancelled, req.CancellationReason, guard)
	if err != nil {
		return nil, err
	}

	s.afterTransition(ctx, from, updated)
	s.logger.Info("CancelOwn: booking id=%s cancelled by owner", id)
	return models.FromDomainBooking(updated), nil
}

// Delete удаляет бронирование (админка)
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting booking id=%s", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.publish(ctx, notify.Event{Type: notify.EventBookingDeleted, EntityID: id})
	s.logger.Info("Delete: booking id=%s deleted", id)
	return nil
}

// transition применяет переход внутри serializable транзакции и перечитывает измененную запись.
// guard вызывается до перехода и может запретить операцию
func (s *Service) transition(
	ctx context.Context,
	op string,
	id string,
	to domain.BookingStatus,
	reason string,
	guard func(*domain.Booking) error,
) (domain.BookingStatus, *domain.Booking, error) {
	var (
		from    domain.BookingStatus
		updated *domain.Booking
	)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, op, id)
		if err != nil {
			return err
		}

		if guard != nil {
			if err := guard(booking); err != nil {
				return err
			}
		}

		from = booking.Status
		if err := booking.ApplyTransition(to, reason, s.timeProvider.Now()); err != nil {
			s.logger.Warn("%s: booking id=%s transition %s -> %s rejected: %v", op, id, from, to, err)
			return mapTransitionError(err)
		}

		if to == domain.StatusConfirmed {
			if err := s.ensureSlotFree(txCtx, op, booking); err != nil {
				return err
			}
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, booking); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("%s: failed to update booking id=%s: %v", op, id, err)
			return fmt.Errorf("%w: %s - update status: %v", ErrInternal, op, err)
		}

		updated, err = s.getBooking(txCtx, op, id)
		return err
	})
	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			s.logger.Warn("%s: concurrent update of booking id=%s: %v", op, id, err)
			return "", nil, fmt.Errorf("%w: %v", ErrConcurrentUpdate, err)
		}
		return "", nil, err
	}

	return from, updated, nil
}

// ensureSlotFree проверяет, что никакое другое подтвержденное бронирование не занимает тот же слот
func (s *Service) ensureSlotFree(ctx context.Context, op string, booking *domain.Booking) error {
	slot, ok := booking.TimeOfDay()
	if !ok {
		// Метку, которую нельзя распарсить, не с чем сравнивать
		s.logger.Warn("%s: booking id=%s has malformed time %q, skipping slot check", op, booking.ID, booking.Time)
		return nil
	}

	confirmed := domain.StatusConfirmed
	date := booking.Date
	branch := booking.Branch
	holders, err := s.bookingRepo.GetByFilter(ctx, domain.BookingsFilter{
		Date:   &date,
		Branch: &branch,
		Status: &confirmed,
	})
	if err != nil {
		s.logger.Error("%s: failed to fetch confirmed bookings: %v", op, err)
		return fmt.Errorf("%w: %s - fetch confirmed bookings: %v", ErrInternal, op, err)
	}

	if domain.IsSlotTaken(slot, holders, booking.ID) {
		s.logger.Warn("%s: slot %s %s at %s already taken", op, booking.DateString(), booking.Branch, booking.Time)
		return ErrSlotTaken
	}
	return nil
}

func (s *Service) getBooking(ctx context.Context, op, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

func (s *Service) afterTransition(ctx context.Context, from domain.BookingStatus, b *domain.Booking) {
	s.metrics.ObserveTransition(string(from), string(b.Status))
	s.publish(ctx, notify.Event{
		Type:     notify.EventBookingStatusChanged,
		EntityID: b.ID,
		Status:   string(b.Status),
	})
}

// publish отправляет событие; ошибка не отменяет уже выполненную операцию
func (s *Service) publish(ctx context.Context, event notify.Event) {
	event.At = s.timeProvider.Now()
	if err := s.notifier.Publish(ctx, event); err != nil {
		s.logger.Warn("notify: failed to publish %s for %s: %v", event.Type, event.EntityID, err)
	}
}

func mapTransitionError(err error) error {
	switch {
	case errors.Is(err, domain.ErrCancellationReasonRequired):
		return ErrCancellationReasonRequired
	case errors.Is(err, domain.ErrUnknownStatus):
		return fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	case errors.Is(err, domain.ErrInvalidTransition):
		return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
