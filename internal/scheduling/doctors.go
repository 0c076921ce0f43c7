package scheduling

import (
	"strings"

	"github.com/Freeeeeet/doctor_booking_bot/internal/model"
)

// CreateDoctorID строит идентификатор врача из имени: нижний регистр,
// каждый символ вне [a-z0-9] заменяется одним дефисом (подряд идущие не схлопываются).
func CreateDoctorID(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('-')
		}
	}
	return sb.String()
}

// GroupDoctors собирает врачей из плоского списка записей справочника.
// Порядок врачей - порядок первого появления; имя и зона берутся из первой записи,
// окна добавляются в порядке входа. Разные имена с одинаковым ID сливаются в одного врача.
func GroupDoctors(records []model.DoctorScheduleRecord) []model.Doctor {
	index := make(map[string]int, len(records))
	doctors := make([]model.Doctor, 0)

	for _, rec := range records {
		id := CreateDoctorID(rec.Name)

		i, ok := index[id]
		if !ok {
			i = len(doctors)
			index[id] = i
			doctors = append(doctors, model.Doctor{
				ID:        id,
				Name:      rec.Name,
				Timezone:  rec.Timezone,
				Schedules: []model.WeeklySchedule{},
			})
		}

		doctors[i].Schedules = append(doctors[i].Schedules, model.WeeklySchedule{
			DayOfWeek:      rec.DayOfWeek,
			AvailableAt:    rec.AvailableAt,
			AvailableUntil: rec.AvailableUntil,
		})
	}

	return doctors
}
