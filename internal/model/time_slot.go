package model

// TimeSlot конкретный слот на дату. Не сохраняется, пересчитывается при каждом чтении.
type TimeSlot struct {
	ID         string `json:"id"` // {doctorId}-{date}-{startTime}
	DoctorID   string `json:"doctorId"`
	DoctorName string `json:"doctorName"`
	Date       string `json:"date"`
	DayOfWeek  string `json:"day_of_week"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	IsBooked   bool   `json:"isBooked"`
}
