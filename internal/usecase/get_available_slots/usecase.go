package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-DentalBooking/internal/domain"
	"github.com/m04kA/SMC-DentalBooking/pkg/ptr"
	"github.com/m04kA/SMC-DentalBooking/pkg/types"
)

// UseCase use case для получения свободных слотов филиала на дату
type UseCase struct {
	bookingRepo  BookingRepository
	clinic       *domain.Clinic
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	clinic *domain.Clinic,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		clinic:       clinic,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных слотов.
// Без даты или филиала возвращает пустой список и не обращается к хранилищу
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	branch := domain.NormalizeKey(req.Branch)

	resp := &Response{
		Date:   req.Date,
		Branch: branch,
		Slots:  []types.TimeString{},
	}

	if req.Date == nil || branch == "" {
		return resp, nil
	}

	if !uc.clinic.IsKnownBranch(branch) {
		uc.logger.Warn("GetAvailableSlots: unknown branch %q", req.Branch)
		return nil, ErrUnknownBranch
	}

	// Получаем подтвержденные бронирования на дату и филиал
	confirmed, err := uc.bookingRepo.GetByFilter(ctx, domain.BookingsFilter{
		Date:   req.Date,
		Branch: &branch,
		Status: ptr.Ptr(domain.StatusConfirmed),
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	now := uc.clinic.Now(uc.timeProvider.Now())
	resp.Slots = calculateAvailableSlots(*req.Date, uc.clinic.SlotGrid, confirmed, now)

	uc.logger.Info("GetAvailableSlots: branch=%s, date=%s, %d/%d slots free",
		branch, req.Date.Format(domain.DateFormat), len(resp.Slots), len(uc.clinic.SlotGrid))

	return resp, nil
}
