package model

// WeeklySchedule еженедельное окно доступности врача, например monday 9:00AM-5:00PM
type WeeklySchedule struct {
	DayOfWeek      string `json:"day_of_week"`     // sunday ... saturday
	AvailableAt    string `json:"available_at"`    // 12-часовой формат, "9:00AM"
	AvailableUntil string `json:"available_until"` // 12-часовой формат, "5:30PM"
}

// Doctor врач, собранный из записей справочника
type Doctor struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Timezone  string           `json:"timezone"` // не валидируется и не конвертируется
	Schedules []WeeklySchedule `json:"schedules"`
}

// DoctorScheduleRecord одна строка справочника врачей (врач + один день недели)
type DoctorScheduleRecord struct {
	Name           string `json:"name"`
	Timezone       string `json:"timezone"`
	DayOfWeek      string `json:"day_of_week"`
	AvailableAt    string `json:"available_at"`
	AvailableUntil string `json:"available_until"`
}
