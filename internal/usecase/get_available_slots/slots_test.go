package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	"github.com/llbeautybar/salon-booking-service/pkg/types"
)

func TestGenerateSlots(t *testing.T) {
	master := &domain.Master{ID: 1, Name: "Анна"}

	tests := []struct {
		name     string
		hours    domain.DayHours
		duration int
		occupied map[types.TimeString]struct{}
		want     []domain.TimeSlot
	}{
		{
			name:     "часовая услуга в окне 09:00-11:00",
			hours:    domain.DayHours{Start: "09:00", End: "11:00"},
			duration: 60,
			want: []domain.TimeSlot{
				{Time: "09:00", Available: true, MasterID: 1, MasterName: "Анна"},
				{Time: "09:30", Available: true, MasterID: 1, MasterName: "Анна"},
				{Time: "10:00", Available: true, MasterID: 1, MasterName: "Анна"},
			},
		},
		{
			name:     "занятое время помечается, но не исключается",
			hours:    domain.DayHours{Start: "09:00", End: "11:00"},
			duration: 60,
			occupied: map[types.TimeString]struct{}{"09:30": {}},
			want: []domain.TimeSlot{
				{Time: "09:00", Available: true, MasterID: 1, MasterName: "Анна"},
				{Time: "09:30", Available: false, MasterID: 1, MasterName: "Анна"},
				{Time: "10:00", Available: true, MasterID: 1, MasterName: "Анна"},
			},
		},
		{
			name:     "услуга длиннее рабочего окна",
			hours:    domain.DayHours{Start: "09:00", End: "10:00"},
			duration: 90,
			want:     []domain.TimeSlot{},
		},
		{
			name:     "конец раньше начала",
			hours:    domain.DayHours{Start: "18:00", End: "09:00"},
			duration: 30,
			want:     []domain.TimeSlot{},
		},
		{
			name:     "начало равно концу",
			hours:    domain.DayHours{Start: "09:00", End: "09:00"},
			duration: 30,
			want:     []domain.TimeSlot{},
		},
		{
			name:     "услуга ровно до закрытия",
			hours:    domain.DayHours{Start: "17:00", End: "18:00"},
			duration: 60,
			want: []domain.TimeSlot{
				{Time: "17:00", Available: true, MasterID: 1, MasterName: "Анна"},
			},
		},
		{
			name:     "позднее закрытие у границы суток",
			hours:    domain.DayHours{Start: "23:00", End: "23:59"},
			duration: 15,
			want: []domain.TimeSlot{
				{Time: "23:00", Available: true, MasterID: 1, MasterName: "Анна"},
				{Time: "23:30", Available: true, MasterID: 1, MasterName: "Анна"},
			},
		},
		{
			name:     "последний слот упирается в полночь",
			hours:    domain.DayHours{Start: "23:00", End: "23:59"},
			duration: 30,
			want: []domain.TimeSlot{
				{Time: "23:00", Available: true, MasterID: 1, MasterName: "Анна"},
			},
		},
		{
			name:     "слот не кратен длительности услуги",
			hours:    domain.DayHours{Start: "10:00", End: "12:00"},
			duration: 45,
			want: []domain.TimeSlot{
				{Time: "10:00", Available: true, MasterID: 1, MasterName: "Анна"},
				{Time: "10:30", Available: true, MasterID: 1, MasterName: "Анна"},
				{Time: "11:00", Available: true, MasterID: 1, MasterName: "Анна"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := generateSlots(tt.hours, tt.duration, tt.occupied, master)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateSlots_InvalidDuration(t *testing.T) {
	master := &domain.Master{ID: 1, Name: "Анна"}
	hours := domain.DayHours{Start: "09:00", End: "18:00"}

	for _, duration := range []int{0, -30} {
		_, err := generateSlots(hours, duration, nil, master)
		require.ErrorIs(t, err, ErrInvalidDuration)
	}
}

func TestGenerateSlots_FullDay(t *testing.T) {
	master := &domain.Master{ID: 2, Name: "Мария"}
	hours := domain.DayHours{Start: "09:00", End: "18:00"}

	got, err := generateSlots(hours, 30, nil, master)
	require.NoError(t, err)

	// 09:00..17:30 с шагом 30 минут
	require.Len(t, got, 18)
	assert.Equal(t, types.TimeString("09:00"), got[0].Time)
	assert.Equal(t, types.TimeString("17:30"), got[len(got)-1].Time)
}
