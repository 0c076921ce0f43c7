package scheduling

import "github.com/Freeeeeet/doctor_booking_bot/internal/model"

// IsSlotTaken проверяет, есть ли запись на (doctorID, date, startTime). Сравнение строгое, без нормализации.
func IsSlotTaken(bookings []model.Booking, doctorID, date, startTime string) bool {
	for _, b := range bookings {
		if b.DoctorID == doctorID && b.Date == date && b.StartTime == startTime {
			return true
		}
	}
	return false
}
