package model

import (
	"sort"
	"time"
)

// Booking подтверждённая запись к врачу. Хранится в BookingStore целиком списком.
type Booking struct {
	ID             string    `json:"id"`
	DoctorID       string    `json:"doctorId"`
	DoctorName     string    `json:"doctorName"`
	DoctorTimezone string    `json:"doctorTimezone"` // снимок на момент записи
	Date           string    `json:"date"`           // YYYY-MM-DD
	DayOfWeek      string    `json:"day_of_week"`
	StartTime      string    `json:"startTime"` // HH:MM
	EndTime        string    `json:"endTime"`   // HH:MM
	CreatedAt      time.Time `json:"createdAt"`

	// Telegram ID пользователя, сделавшего запись (0 для старых записей)
	UserID int64 `json:"userId,omitempty"`
}

const bookingStartLayout = "2006-01-02 15:04"

// StartsAt возвращает момент начала записи в указанной зоне
func (b Booking) StartsAt(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(bookingStartLayout, b.Date+" "+b.StartTime, loc)
}

// IsPast сообщает, началась ли запись раньше now. Запись с битой датой прошедшей не считается.
func (b Booking) IsPast(now time.Time) bool {
	start, err := b.StartsAt(now.Location())
	if err != nil {
		return false
	}
	return start.Before(now)
}

// SortBookings возвращает копию списка, отсортированную по (date, startTime)
func SortBookings(bookings []Booking) []Booking {
	sorted := make([]Booking, len(bookings))
	copy(sorted, bookings)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].StartTime < sorted[j].StartTime
	})

	return sorted
}
