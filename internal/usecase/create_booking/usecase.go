package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DentalBooking/internal/domain"
	"github.com/m04kA/SMC-DentalBooking/internal/infra/notify"
	"github.com/m04kA/SMC-DentalBooking/pkg/ptr"
	"github.com/m04kA/SMC-DentalBooking/pkg/txmanager"
)

// UseCase use case для создания бронирования в статусе pending
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	clinic       *domain.Clinic
	metrics      Metrics
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	clinic *domain.Clinic,
	metrics Metrics,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		clinic:       clinic,
		metrics:      metrics,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка занятости слота и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Booking, error) {
	uc.logger.Info("CreateBooking: origin=%s, branch=%s, service=%s, date=%s, time=%s",
		req.Origin, req.Branch, req.Service, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	branch := domain.NormalizeKey(req.Branch)
	if !uc.clinic.IsKnownBranch(branch) {
		uc.logger.Warn("CreateBooking: unknown branch %q", req.Branch)
		return nil, ErrUnknownBranch
	}

	service := domain.NormalizeKey(req.Service)
	if !uc.clinic.IsKnownService(service) {
		uc.logger.Warn("CreateBooking: unknown service %q", req.Service)
		return nil, ErrUnknownService
	}

	// 2. Проверяем слот по часам клиники
	now := uc.clinic.Now(uc.timeProvider.Now())
	slot, err := validateSlot(uc.clinic.SlotGrid, req.Date, req.Time, now)
	if err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		return nil, err
	}

	booking := &domain.Booking{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Branch:    branch,
		Service:   service,
		Date:      req.Date,
		Time:      slot.String(),
		Status:    domain.StatusPending,
		Notes:     req.Notes,
		UserID:    req.UserID,
		ContactID: req.ContactID,
	}

	var result *domain.Booking

	// 3. Проверяем занятость и создаем бронирование в транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		confirmed, err := uc.bookingRepo.GetByFilter(txCtx, domain.BookingsFilter{
			Date:   &booking.Date,
			Branch: &branch,
			Status: ptr.Ptr(domain.StatusConfirmed),
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		if domain.IsSlotTaken(slot, confirmed, "") {
			uc.logger.Warn("CreateBooking: slot %s on %s at %s is taken", slot, booking.DateString(), branch)
			return ErrSlotTaken
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("CreateBooking: concurrent booking of %s on %s at %s: %v", slot, booking.DateString(), branch, err)
			return nil, fmt.Errorf("%w: %v", ErrConcurrentUpdate, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	uc.metrics.ObserveBookingCreated(req.Origin, branch)

	event := notify.Event{
		Type:     notify.EventBookingCreated,
		EntityID: result.ID,
		Status:   string(result.Status),
		At:       now,
	}
	if err := uc.notifier.Publish(ctx, event); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish event for booking id=%s: %v", result.ID, err)
	}

	return result, nil
}
