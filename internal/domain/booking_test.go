package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_StatusPredicates(t *testing.T) {
	tests := []struct {
		status   BookingStatus
		active   bool
		terminal bool
	}{
		{StatusPending, true, false},
		{StatusConfirmed, true, false},
		{StatusCompleted, false, true},
		{StatusCancelled, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.active, b.IsActive())
			assert.Equal(t, tt.terminal, b.IsTerminal())
		})
	}
}

func TestBooking_StartsAt(t *testing.T) {
	b := &Booking{
		BookingDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		BookingTime: "14:30",
	}

	assert.Equal(t, time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC), b.StartsAt())
}

func TestParseBookingStatus(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "completed", "cancelled"} {
		status, ok := ParseBookingStatus(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, BookingStatus(valid), status)
	}

	_, ok := ParseBookingStatus("archived")
	assert.False(t, ok)
}
