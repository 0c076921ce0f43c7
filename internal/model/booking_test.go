package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooking_IsPast(t *testing.T) {
	now := time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)

	assert.True(t, Booking{Date: "2025-01-06", StartTime: "09:30"}.IsPast(now))
	assert.False(t, Booking{Date: "2025-01-06", StartTime: "10:00"}.IsPast(now))
	assert.False(t, Booking{Date: "2025-01-07", StartTime: "08:00"}.IsPast(now))
	assert.True(t, Booking{Date: "2024-12-31", StartTime: "23:30"}.IsPast(now))
	assert.False(t, Booking{Date: "bad", StartTime: "09:00"}.IsPast(now))
}

func TestBooking_StartsAt(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)

	start, err := Booking{Date: "2025-03-01", StartTime: "14:30"}.StartsAt(loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 14, 30, 0, 0, loc), start)
}

func TestSortBookings(t *testing.T) {
	in := []Booking{
		{ID: "c", Date: "2025-01-07", StartTime: "09:00"},
		{ID: "b", Date: "2025-01-06", StartTime: "14:00"},
		{ID: "a", Date: "2025-01-06", StartTime: "09:30"},
	}

	out := SortBookings(in)

	ids := []string{out[0].ID, out[1].ID, out[2].ID}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
	assert.Equal(t, "c", in[0].ID, "input must stay untouched")
}
