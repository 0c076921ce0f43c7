package formatting

// BookingStatusDisplay emoji и текст статуса записи
type BookingStatusDisplay struct {
	Emoji string
	Text  string
}

// GetBookingStatusDisplay статус записи относительно текущего момента
func GetBookingStatusDisplay(isPast bool) BookingStatusDisplay {
	if isPast {
		return BookingStatusDisplay{Emoji: "⌛", Text: "Past"}
	}
	return BookingStatusDisplay{Emoji: "✅", Text: "Upcoming"}
}
