package formatting

import (
	"fmt"
	"time"

	"github.com/Freeeeeet/doctor_booking_bot/internal/scheduling"
)

// FormatDateTime дата и время для текстов бота, всегда в UTC
func FormatDateTime(t time.Time) string {
	return t.UTC().Format("Jan 2, 2006 15:04") + " UTC"
}

// FormatSlotRange "9:30 AM - 10:00 AM" из пары HH:MM
func FormatSlotRange(start, end string) string {
	return fmt.Sprintf("%s - %s", scheduling.FormatTimeDisplay(start), scheduling.FormatTimeDisplay(end))
}

// FormatSlotDate "Mon, Jan 6" из YYYY-MM-DD
func FormatSlotDate(date string) string {
	return scheduling.FormatDateDisplay(date)
}

// GetWeekdayShort короткое название дня недели
func GetWeekdayShort(weekday time.Weekday) string {
	return weekday.String()[:3]
}
