package common

import (
	"testing"

	"github.com/Freeeeeet/doctor_booking_bot/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotRefRoundTrip(t *testing.T) {
	ref := SlotRef{DoctorKey: service.Key("dr--john-smith"), Date: "2025-01-06", StartTime: "09:30"}

	tests := []struct {
		prefix string
		build  func(SlotRef) string
	}{
		{BookSlot, BookData},
		{ConfirmBook, ConfirmBookData},
	}

	for _, tt := range tests {
		data := tt.build(ref)
		assert.LessOrEqual(t, len(data), MaxCallbackDataLen)

		parsed, err := ParseSlotRef(data, tt.prefix)
		require.NoError(t, err)
		assert.Equal(t, ref, parsed)
	}
}

func TestParseSlotRef_Invalid(t *testing.T) {
	for _, data := range []string{
		"book:",
		"book:abc",
		"book:abc:2025-01-06",
		"book:abc:2025-01-06:9:30",
		"book:abc:2025-01-06:93x0",
		"book::2025-01-06:0930",
		"confirm_book:abc:2025-01-06:0930",
	} {
		_, err := ParseSlotRef(data, BookSlot)
		assert.ErrorIs(t, err, ErrInvalidFormat, data)
	}
}

func TestParseDay(t *testing.T) {
	key, date, err := ParseDay(DayData("abcdef0123456789", "2025-01-08"))
	require.NoError(t, err)
	assert.Equal(t, "abcdef0123456789", key)
	assert.Equal(t, "2025-01-08", date)

	_, _, err = ParseDay("day:abc")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestParseArgAndPage(t *testing.T) {
	id, err := ParseArg(CancelBookingData("booking-0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b"), CancelBooking)
	require.NoError(t, err)
	assert.Equal(t, "booking-0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b", id)
	assert.LessOrEqual(t, len(ConfirmCancelData(id)), MaxCallbackDataLen)

	_, err = ParseArg("doctor:", ViewDoctor)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	page, err := ParsePage(DoctorsPageData(3))
	require.NoError(t, err)
	assert.Equal(t, 3, page)

	_, err = ParsePage("doctors_page:-1")
	assert.ErrorIs(t, err, ErrInvalidFormat)
	_, err = ParsePage("doctors_page:x")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
