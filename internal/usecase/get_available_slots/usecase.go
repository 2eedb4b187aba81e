package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	catalogRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/catalog"
	masterRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/master"
	"github.com/llbeautybar/salon-booking-service/pkg/types"
)

// Usecase расчёт доступных слотов на дату
type Usecase struct {
	masters  MasterRepository
	services ServiceRepository
	bookings BookingRepository

	// defaultHours подставляются для дней, не настроенных в расписании
	// мастера; nil означает, что такие дни считаются выходными
	defaultHours *domain.DayHours

	logger Logger
}

// NewUsecase создает usecase расчёта слотов
func NewUsecase(
	masters MasterRepository,
	services ServiceRepository,
	bookings BookingRepository,
	defaultHours *domain.DayHours,
	logger Logger,
) *Usecase {
	return &Usecase{
		masters:      masters,
		services:     services,
		bookings:     bookings,
		defaultHours: defaultHours,
		logger:       logger,
	}
}

// Execute возвращает слоты на дату по услуге. Если мастер не указан,
// слоты всех активных мастеров услуги объединяются и сортируются по времени.
func (u *Usecase) Execute(ctx context.Context, req Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	service, err := u.services.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		u.logger.Error("GetAvailableSlots: failed to get service %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: get service: %v", ErrInternal, err)
	}

	if service.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	masters, err := u.resolveMasters(ctx, req)
	if err != nil {
		return nil, err
	}

	occupied, err := u.occupiedByMaster(ctx, req, masters)
	if err != nil {
		return nil, err
	}

	weekday := domain.WeekdayName(req.Date)
	slots := make([]domain.TimeSlot, 0)

	for _, master := range masters {
		hours := master.WorkSchedule.Day(weekday)
		if hours == nil {
			hours = u.defaultHours
		}
		if hours == nil {
			// День не настроен и часы по умолчанию не заданы — выходной
			continue
		}

		masterSlots, err := generateSlots(*hours, service.DurationMinutes, occupied[master.ID], master)
		if err != nil {
			return nil, err
		}
		slots = append(slots, masterSlots...)
	}

	// Слоты разных мастеров на одно время не схлопываются:
	// клиент выбирает не только время, но и мастера
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Time.IsBefore(slots[j].Time)
	})

	return &Response{Date: req.Date, Slots: slots}, nil
}

func validateRequest(req Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: service id must be positive", ErrInvalidInput)
	}
	if req.MasterID != nil && *req.MasterID <= 0 {
		return fmt.Errorf("%w: master id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

// resolveMasters возвращает мастеров, для которых строится сетка:
// указанного явно либо всех активных мастеров услуги
func (u *Usecase) resolveMasters(ctx context.Context, req Request) ([]*domain.Master, error) {
	if req.MasterID != nil {
		master, err := u.masters.GetByID(ctx, *req.MasterID)
		if err != nil {
			if errors.Is(err, masterRepo.ErrMasterNotFound) {
				return nil, ErrMasterNotFound
			}
			u.logger.Error("GetAvailableSlots: failed to get master %d: %v", *req.MasterID, err)
			return nil, fmt.Errorf("%w: get master: %v", ErrInternal, err)
		}
		return []*domain.Master{master}, nil
	}

	masters, err := u.masters.List(ctx, masterRepo.Filter{
		ServiceID:  &req.ServiceID,
		OnlyActive: true,
	})
	if err != nil {
		u.logger.Error("GetAvailableSlots: failed to list masters for service %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: list masters: %v", ErrInternal, err)
	}
	return masters, nil
}

// occupiedByMaster собирает занятые времена на дату, сгруппированные по мастеру
func (u *Usecase) occupiedByMaster(ctx context.Context, req Request, masters []*domain.Master) (map[int64]map[types.TimeString]struct{}, error) {
	occupied := make(map[int64]map[types.TimeString]struct{})

	if req.MasterID != nil {
		times, err := u.bookings.GetOccupiedTimes(ctx, *req.MasterID, req.Date)
		if err != nil {
			u.logger.Error("GetAvailableSlots: failed to get occupied times for master %d: %v", *req.MasterID, err)
			return nil, fmt.Errorf("%w: get occupied times: %v", ErrInternal, err)
		}
		set := make(map[types.TimeString]struct{}, len(times))
		for _, t := range times {
			set[t] = struct{}{}
		}
		occupied[*req.MasterID] = set
		return occupied, nil
	}

	if len(masters) == 0 {
		return occupied, nil
	}

	bookings, err := u.bookings.GetActiveByDate(ctx, req.Date)
	if err != nil {
		u.logger.Error("GetAvailableSlots: failed to get active bookings for %s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: get active bookings: %v", ErrInternal, err)
	}
	for _, b := range bookings {
		set, ok := occupied[b.MasterID]
		if !ok {
			set = make(map[types.TimeString]struct{})
			occupied[b.MasterID] = set
		}
		set[b.BookingTime] = struct{}{}
	}
	return occupied, nil
}
