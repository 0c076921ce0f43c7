package formatting

import "fmt"

// Pluralize "1 slot", "3 slots"
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

func PluralizeSlots(count int) string {
	return Pluralize(count, "slot", "slots")
}

func PluralizeBookings(count int) string {
	return Pluralize(count, "booking", "bookings")
}

func PluralizeDoctors(count int) string {
	return Pluralize(count, "doctor", "doctors")
}
