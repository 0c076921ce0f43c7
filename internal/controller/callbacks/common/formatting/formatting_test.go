package formatting

import (
	"testing"
	"time"

	"github.com/Freeeeeet/doctor_booking_bot/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFormatSlotRange(t *testing.T) {
	assert.Equal(t, "9:30 AM - 10:00 AM", FormatSlotRange("09:30", "10:00"))
	assert.Equal(t, "11:30 AM - 12:00 PM", FormatSlotRange("11:30", "12:00"))
}

func TestFormatSlotDate(t *testing.T) {
	assert.Equal(t, "Mon, Jan 6", FormatSlotDate("2025-01-06"))
	assert.Equal(t, "not-a-date", FormatSlotDate("not-a-date"))
}

func TestGetWeekdayShort(t *testing.T) {
	assert.Equal(t, "Mon", GetWeekdayShort(time.Monday))
	assert.Equal(t, "Sun", GetWeekdayShort(time.Sunday))
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "1 slot", PluralizeSlots(1))
	assert.Equal(t, "0 slots", PluralizeSlots(0))
	assert.Equal(t, "4 bookings", PluralizeBookings(4))
	assert.Equal(t, "1 doctor", PluralizeDoctors(1))
}

func TestFormatBooking(t *testing.T) {
	b := model.Booking{
		DoctorName:     "Dr. <Smith>",
		DoctorTimezone: "Australia/Sydney",
		Date:           "2025-01-06",
		StartTime:      "09:30",
		EndTime:        "10:00",
	}

	text := FormatBooking(b, false)
	assert.Contains(t, text, "Dr. &lt;Smith&gt;")
	assert.Contains(t, text, "Mon, Jan 6")
	assert.Contains(t, text, "9:30 AM - 10:00 AM")
	assert.Contains(t, text, "Upcoming")
	assert.Contains(t, text, "Australia/Sydney")

	assert.Contains(t, FormatBooking(b, true), "Past")
	assert.NotContains(t, text, "Booked:")

	b.CreatedAt = time.Date(2025, 1, 5, 23, 15, 0, 0, time.FixedZone("AEDT", 11*3600))
	assert.Contains(t, FormatBooking(b, false), "🗓 Booked: Jan 5, 2025 12:15 UTC")
}
