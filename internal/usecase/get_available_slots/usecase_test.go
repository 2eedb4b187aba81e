package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	catalogRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/catalog"
	masterRepo "github.com/llbeautybar/salon-booking-service/internal/infra/storage/master"
	"github.com/llbeautybar/salon-booking-service/pkg/types"
)

type mockMasterRepo struct {
	byID    map[int64]*domain.Master
	listed  []*domain.Master
	listErr error
}

func (m *mockMasterRepo) GetByID(_ context.Context, id int64) (*domain.Master, error) {
	master, ok := m.byID[id]
	if !ok {
		return nil, masterRepo.ErrMasterNotFound
	}
	return master, nil
}

func (m *mockMasterRepo) List(_ context.Context, _ masterRepo.Filter) ([]*domain.Master, error) {
	return m.listed, m.listErr
}

type mockServiceRepo struct {
	services map[int64]*domain.Service
}

func (m *mockServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	service, ok := m.services[id]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return service, nil
}

type mockBookingRepo struct {
	occupied []types.TimeString
	active   []*domain.Booking
}

func (m *mockBookingRepo) GetOccupiedTimes(_ context.Context, _ int64, _ time.Time) ([]types.TimeString, error) {
	return m.occupied, nil
}

func (m *mockBookingRepo) GetActiveByDate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return m.active, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// monday — понедельник, у всех тестовых мастеров настроен monday
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func workingMaster(id int64, name string, start, end types.TimeString) *domain.Master {
	return &domain.Master{
		ID:   id,
		Name: name,
		WorkSchedule: domain.WorkSchedule{
			domain.Monday: {Start: start, End: end},
		},
		IsActive: true,
	}
}

func newTestUsecase(masters *mockMasterRepo, services *mockServiceRepo, bookings *mockBookingRepo, defaultHours *domain.DayHours) *Usecase {
	return NewUsecase(masters, services, bookings, defaultHours, nopLogger{})
}

func TestUsecase_Execute_SingleMaster(t *testing.T) {
	masterID := int64(1)
	masters := &mockMasterRepo{byID: map[int64]*domain.Master{
		1: workingMaster(1, "Анна", "09:00", "11:00"),
	}}
	services := &mockServiceRepo{services: map[int64]*domain.Service{
		10: {ID: 10, Name: "Маникюр", DurationMinutes: 60, IsActive: true},
	}}
	bookings := &mockBookingRepo{occupied: []types.TimeString{"09:30"}}

	uc := newTestUsecase(masters, services, bookings, nil)

	resp, err := uc.Execute(context.Background(), Request{
		ServiceID: 10,
		MasterID:  &masterID,
		Date:      monday,
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 3)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].Time)
	assert.True(t, resp.Slots[0].Available)
	assert.Equal(t, types.TimeString("09:30"), resp.Slots[1].Time)
	assert.False(t, resp.Slots[1].Available)
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[2].Time)
	assert.True(t, resp.Slots[2].Available)
}

func TestUsecase_Execute_MergesMastersSortedByTime(t *testing.T) {
	masters := &mockMasterRepo{listed: []*domain.Master{
		workingMaster(1, "Анна", "10:00", "11:00"),
		workingMaster(2, "Мария", "09:00", "10:00"),
	}}
	services := &mockServiceRepo{services: map[int64]*domain.Service{
		10: {ID: 10, Name: "Стрижка", DurationMinutes: 30, IsActive: true},
	}}
	bookings := &mockBookingRepo{active: []*domain.Booking{
		{MasterID: 2, BookingTime: "09:30", Status: domain.StatusConfirmed},
	}}

	uc := newTestUsecase(masters, services, bookings, nil)

	resp, err := uc.Execute(context.Background(), Request{ServiceID: 10, Date: monday})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 4)
	// Объединённая сетка отсортирована по времени независимо от мастера
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].Time)
	assert.Equal(t, int64(2), resp.Slots[0].MasterID)
	assert.Equal(t, types.TimeString("09:30"), resp.Slots[1].Time)
	assert.False(t, resp.Slots[1].Available)
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[2].Time)
	assert.Equal(t, int64(1), resp.Slots[2].MasterID)
	assert.Equal(t, types.TimeString("10:30"), resp.Slots[3].Time)
}

func TestUsecase_Execute_OccupiedTimeOfOneMasterDoesNotAffectAnother(t *testing.T) {
	masters := &mockMasterRepo{listed: []*domain.Master{
		workingMaster(1, "Анна", "09:00", "10:00"),
		workingMaster(2, "Мария", "09:00", "10:00"),
	}}
	services := &mockServiceRepo{services: map[int64]*domain.Service{
		10: {ID: 10, Name: "Стрижка", DurationMinutes: 30, IsActive: true},
	}}
	bookings := &mockBookingRepo{active: []*domain.Booking{
		{MasterID: 1, BookingTime: "09:00", Status: domain.StatusPending},
	}}

	uc := newTestUsecase(masters, services, bookings, nil)

	resp, err := uc.Execute(context.Background(), Request{ServiceID: 10, Date: monday})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 4)

	for _, slot := range resp.Slots {
		if slot.MasterID == 1 && slot.Time == "09:00" {
			assert.False(t, slot.Available)
		} else {
			assert.True(t, slot.Available, "slot %s of master %d", slot.Time, slot.MasterID)
		}
	}
}

func TestUsecase_Execute_ClosedDayWithoutDefaults(t *testing.T) {
	masterID := int64(1)
	masters := &mockMasterRepo{byID: map[int64]*domain.Master{
		1: workingMaster(1, "Анна", "09:00", "18:00"),
	}}
	services := &mockServiceRepo{services: map[int64]*domain.Service{
		10: {ID: 10, Name: "Маникюр", DurationMinutes: 60, IsActive: true},
	}}

	uc := newTestUsecase(masters, services, &mockBookingRepo{}, nil)

	// Воскресенье не настроено в расписании, часов по умолчанию нет
	sunday := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), Request{
		ServiceID: 10,
		MasterID:  &masterID,
		Date:      sunday,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestUsecase_Execute_DefaultHoursApplied(t *testing.T) {
	masterID := int64(1)
	masters := &mockMasterRepo{byID: map[int64]*domain.Master{
		1: {ID: 1, Name: "Анна", IsActive: true},
	}}
	services := &mockServiceRepo{services: map[int64]*domain.Service{
		10: {ID: 10, Name: "Маникюр", DurationMinutes: 60, IsActive: true},
	}}

	defaults := &domain.DayHours{Start: "09:00", End: "11:00"}
	uc := newTestUsecase(masters, services, &mockBookingRepo{}, defaults)

	resp, err := uc.Execute(context.Background(), Request{
		ServiceID: 10,
		MasterID:  &masterID,
		Date:      monday,
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].Time)
}

func TestUsecase_Execute_Errors(t *testing.T) {
	masters := &mockMasterRepo{byID: map[int64]*domain.Master{}}
	services := &mockServiceRepo{services: map[int64]*domain.Service{
		10: {ID: 10, Name: "Маникюр", DurationMinutes: 60, IsActive: true},
		11: {ID: 11, Name: "Сломанная", DurationMinutes: 0, IsActive: true},
	}}
	uc := newTestUsecase(masters, services, &mockBookingRepo{}, nil)

	missingMaster := int64(99)
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			name:    "услуга не найдена",
			req:     Request{ServiceID: 404, Date: monday},
			wantErr: ErrServiceNotFound,
		},
		{
			name:    "мастер не найден",
			req:     Request{ServiceID: 10, MasterID: &missingMaster, Date: monday},
			wantErr: ErrMasterNotFound,
		},
		{
			name:    "нулевая длительность услуги",
			req:     Request{ServiceID: 11, Date: monday},
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "некорректный id услуги",
			req:     Request{ServiceID: 0, Date: monday},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "дата не указана",
			req:     Request{ServiceID: 10},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
