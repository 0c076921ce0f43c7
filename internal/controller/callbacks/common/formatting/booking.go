package formatting

import (
	"fmt"
	"html"

	"github.com/Freeeeeet/doctor_booking_bot/internal/model"
)

// FormatBooking карточка записи в HTML-разметке
func FormatBooking(b model.Booking, isPast bool) string {
	display := GetBookingStatusDisplay(isPast)

	text := fmt.Sprintf(
		"%s <b>%s</b>\n"+
			"📅 %s\n"+
			"🕐 %s\n"+
			"📊 Status: %s",
		display.Emoji,
		html.EscapeString(b.DoctorName),
		FormatSlotDate(b.Date),
		FormatSlotRange(b.StartTime, b.EndTime),
		display.Text,
	)

	if b.DoctorTimezone != "" {
		text += fmt.Sprintf("\n🌐 Doctor's timezone: %s", html.EscapeString(b.DoctorTimezone))
	}

	if !b.CreatedAt.IsZero() {
		text += fmt.Sprintf("\n🗓 Booked: %s", FormatDateTime(b.CreatedAt))
	}

	return text
}
