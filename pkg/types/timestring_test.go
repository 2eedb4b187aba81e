package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "корректное время", input: "09:30", want: "09:30"},
		{name: "полночь", input: "00:00", want: "00:00"},
		{name: "конец дня", input: "23:59", want: "23:59"},
		{name: "без ведущего нуля нормализуется", input: "9:30", want: "09:30"},
		{name: "мусор", input: "abc", wantErr: true},
		{name: "часы вне диапазона", input: "25:00", wantErr: true},
		{name: "минуты вне диапазона", input: "12:60", wantErr: true},
		{name: "пустая строка", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
		wantErr bool
	}{
		{name: "внутри суток", start: "09:00", minutes: 90, want: "10:30"},
		{name: "шаг сетки", start: "09:30", minutes: 30, want: "10:00"},
		{name: "через границу часа", start: "10:45", minutes: 30, want: "11:15"},
		{name: "ровно до конца суток", start: "23:00", minutes: 60, want: "24:00"},
		{name: "выход за сутки", start: "23:30", minutes: 60, wantErr: true},
		{name: "шаг от конца суток", start: "24:00", minutes: 30, wantErr: true},
		{name: "ноль минут", start: "12:00", minutes: 0, want: "12:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrTimeOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").Minutes())
	assert.Equal(t, 570, TimeString("09:30").Minutes())

	// Конец суток не парсится как время, но в минутах считается полными
	// сутками: иначе шаг сетки от "24:00" заворачивался бы на утро
	assert.Equal(t, 24*60, TimeString("24:00").Minutes())
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.True(t, TimeString("17:30").IsAfter("09:00"))
	assert.False(t, TimeString("12:00").IsBefore("12:00"))
	assert.False(t, TimeString("12:00").IsAfter("12:00"))

	// 24:00 лексикографически позже любого времени суток,
	// поэтому граница "не позже закрытия" работает без особых случаев
	assert.True(t, TimeString("24:00").IsAfter("23:59"))
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("строка", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("14:30"))
		assert.Equal(t, TimeString("14:30"), ts)
	})

	t.Run("байты", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("08:00")))
		assert.Equal(t, TimeString("08:00"), ts)
	})

	t.Run("time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2025, 6, 2, 11, 45, 0, 0, time.UTC)))
		assert.Equal(t, TimeString("11:45"), ts)
	})

	t.Run("некорректная строка", func(t *testing.T) {
		var ts TimeString
		assert.Error(t, ts.Scan("not-a-time"))
	})

	t.Run("неподдерживаемый тип", func(t *testing.T) {
		var ts TimeString
		assert.Error(t, ts.Scan(42))
	})
}
