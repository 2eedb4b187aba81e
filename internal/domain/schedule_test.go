package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayName(t *testing.T) {
	// 2025-06-02 — понедельник
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, Monday, WeekdayName(monday))
	assert.Equal(t, Tuesday, WeekdayName(monday.AddDate(0, 0, 1)))
	assert.Equal(t, Sunday, WeekdayName(monday.AddDate(0, 0, 6)))
}

func TestWorkSchedule_Day(t *testing.T) {
	schedule := WorkSchedule{
		Monday: {Start: "09:00", End: "18:00"},
		Friday: {Start: "10:00", End: "16:00"},
	}

	t.Run("настроенный день", func(t *testing.T) {
		hours := schedule.Day(Monday)
		require.NotNil(t, hours)
		assert.Equal(t, DayHours{Start: "09:00", End: "18:00"}, *hours)
	})

	t.Run("ненастроенный день считается выходным", func(t *testing.T) {
		assert.Nil(t, schedule.Day(Sunday))
	})

	t.Run("nil-расписание", func(t *testing.T) {
		var empty WorkSchedule
		assert.Nil(t, empty.Day(Monday))
	})

	t.Run("возвращается копия", func(t *testing.T) {
		hours := schedule.Day(Friday)
		require.NotNil(t, hours)
		hours.Start = "00:00"
		assert.Equal(t, DayHours{Start: "10:00", End: "16:00"}, schedule[Friday])
	})
}

func TestWorkSchedule_Scan(t *testing.T) {
	t.Run("корректный JSONB", func(t *testing.T) {
		var s WorkSchedule
		raw := []byte(`{"monday": {"start": "09:00", "end": "18:00"}, "saturday": {"start": "10:00", "end": "15:00"}}`)

		require.NoError(t, s.Scan(raw))
		require.NotNil(t, s.Day(Monday))
		assert.Equal(t, DayHours{Start: "10:00", End: "15:00"}, *s.Day(Saturday))
		assert.Nil(t, s.Day(Sunday))
	})

	t.Run("NULL означает отсутствие расписания", func(t *testing.T) {
		s := WorkSchedule{Monday: {Start: "09:00", End: "18:00"}}
		require.NoError(t, s.Scan(nil))
		assert.Nil(t, s)
	})

	t.Run("неизвестный день недели отклоняется", func(t *testing.T) {
		var s WorkSchedule
		err := s.Scan([]byte(`{"someday": {"start": "09:00", "end": "18:00"}}`))
		assert.ErrorIs(t, err, ErrInvalidSchedule)
	})

	t.Run("некорректное время отклоняется", func(t *testing.T) {
		var s WorkSchedule
		err := s.Scan([]byte(`{"monday": {"start": "9am", "end": "18:00"}}`))
		assert.ErrorIs(t, err, ErrInvalidSchedule)
	})

	t.Run("битый JSON отклоняется", func(t *testing.T) {
		var s WorkSchedule
		err := s.Scan([]byte(`{`))
		assert.ErrorIs(t, err, ErrInvalidSchedule)
	})
}
