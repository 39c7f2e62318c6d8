package get_dashboard

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-DentalBooking/internal/domain"
)

// UseCase собирает сводку для панели администратора.
// Все значения пересчитываются из полного списка на каждый запрос
type UseCase struct {
	bookingRepo  BookingRepository
	contactRepo  ContactRepository
	clinic       *domain.Clinic
	options      Options
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	contactRepo ContactRepository,
	clinic *domain.Clinic,
	options Options,
	logger Logger,
) *UseCase {
	if options.UpcomingDays <= 0 {
		options.UpcomingDays = domain.DefaultUpcomingDays
	}
	if options.RecentActivityLimit <= 0 {
		options.RecentActivityLimit = domain.DefaultRecentActivityLimit
	}

	return &UseCase{
		bookingRepo:  bookingRepo,
		contactRepo:  contactRepo,
		clinic:       clinic,
		options:      options,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	bookings, err := uc.bookingRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("GetDashboard: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	contacts, err := uc.contactRepo.GetAll(ctx, nil)
	if err != nil {
		uc.logger.Error("GetDashboard: failed to get contacts: %v", err)
		return nil, fmt.Errorf("%w: failed to get contacts: %v", ErrInternal, err)
	}

	today := uc.clinic.Now(uc.timeProvider.Now())

	return &Response{
		Bookings:       countStatuses(bookings),
		Contacts:       countContacts(contacts),
		Branches:       countBranches(bookings, uc.clinic.Branches),
		UpcomingWeek:   upcomingWeek(bookings, today, uc.options.UpcomingDays),
		RecentActivity: recentActivity(bookings, contacts, uc.options.RecentActivityLimit),
	}, nil
}
