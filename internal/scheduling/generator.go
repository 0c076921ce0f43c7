package scheduling

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Freeeeeet/doctor_booking_bot/internal/model"
)

// SlotDuration фиксированная длительность приёма
const SlotDuration = 30 * time.Minute

var slotMinutes = int(SlotDuration / time.Minute)

// DaySlots слоты врача по датам "YYYY-MM-DD". Даты без слотов не попадают в карту.
type DaySlots map[string][]model.TimeSlot

// Dates возвращает даты по возрастанию
func (d DaySlots) Dates() []string {
	dates := make([]string, 0, len(d))
	for date := range d {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// Total общее количество слотов
func (d DaySlots) Total() int {
	total := 0
	for _, slots := range d {
		total += len(slots)
	}
	return total
}

// GenerateSlotsForSchedule режет одно недельное окно на 30-минутные слоты для конкретной даты.
// Слот выпускается только если целиком помещается в окно; хвост короче 30 минут отбрасывается.
func GenerateSlotsForSchedule(doctor model.Doctor, schedule model.WeeklySchedule, date time.Time, bookings []model.Booking) ([]model.TimeSlot, error) {
	start, err := ParseTime(schedule.AvailableAt)
	if err != nil {
		return nil, fmt.Errorf("parse available_at: %w", err)
	}

	end, err := ParseTime(schedule.AvailableUntil)
	if err != nil {
		return nil, fmt.Errorf("parse available_until: %w", err)
	}

	dateStr := FormatDate(date)
	endMinutes := end.TotalMinutes()

	var slots []model.TimeSlot
	for cursor := start.TotalMinutes(); cursor+slotMinutes <= endMinutes; cursor += slotMinutes {
		slotEnd := cursor + slotMinutes
		startTime := FormatTime(cursor/60, cursor%60)

		slots = append(slots, model.TimeSlot{
			ID:         SlotID(doctor.ID, dateStr, startTime),
			DoctorID:   doctor.ID,
			DoctorName: doctor.Name,
			Date:       dateStr,
			DayOfWeek:  schedule.DayOfWeek,
			StartTime:  startTime,
			EndTime:    FormatTime(slotEnd/60, slotEnd%60),
			IsBooked:   IsSlotTaken(bookings, doctor.ID, dateStr, startTime),
		})
	}

	return slots, nil
}

// GenerateDoctorSlots строит слоты врача на days дней вперёд начиная с now (сегодня - день 0).
// Все окна, совпавшие по дню недели, обрабатываются независимо; пересекающиеся окна дают
// пересекающиеся слоты. Ошибка разбора любого окна прерывает генерацию целиком.
func GenerateDoctorSlots(doctor model.Doctor, now time.Time, days int, bookings []model.Booking) (DaySlots, error) {
	result := make(DaySlots)

	for _, date := range NextDays(now, days) {
		weekday := DayOfWeek(date)

		var daySlots []model.TimeSlot
		for _, schedule := range doctor.Schedules {
			if strings.ToLower(schedule.DayOfWeek) != weekday {
				continue
			}

			slots, err := GenerateSlotsForSchedule(doctor, schedule, date, bookings)
			if err != nil {
				return nil, fmt.Errorf("generate slots for %s %s: %w", doctor.ID, FormatDate(date), err)
			}
			daySlots = append(daySlots, slots...)
		}

		if len(daySlots) == 0 {
			continue
		}

		sort.SliceStable(daySlots, func(i, j int) bool {
			return daySlots[i].StartTime < daySlots[j].StartTime
		})
		result[FormatDate(date)] = daySlots
	}

	return result, nil
}

// SlotID детерминированный идентификатор слота
func SlotID(doctorID, date, startTime string) string {
	return doctorID + "-" + date + "-" + startTime
}
