package scheduling

import (
	"testing"
	"time"

	"github.com/Freeeeeet/doctor_booking_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testDoctor = model.Doctor{ID: "test-doctor", Name: "Test Doctor", Timezone: "Australia/Sydney"}
	monday     = time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
)

func window(day, from, until string) model.WeeklySchedule {
	return model.WeeklySchedule{DayOfWeek: day, AvailableAt: from, AvailableUntil: until}
}

func booking(doctorID, date, start string) model.Booking {
	return model.Booking{ID: "booking-1", DoctorID: doctorID, Date: date, StartTime: start}
}

func TestGenerateSlotsForSchedule_TwoHourWindow(t *testing.T) {
	slots, err := GenerateSlotsForSchedule(testDoctor, window("monday", "9:00AM", "11:00AM"), monday, nil)
	require.NoError(t, err)
	require.Len(t, slots, 4)

	want := [][2]string{{"09:00", "09:30"}, {"09:30", "10:00"}, {"10:00", "10:30"}, {"10:30", "11:00"}}
	for i, w := range want {
		assert.Equal(t, w[0], slots[i].StartTime)
		assert.Equal(t, w[1], slots[i].EndTime)
		assert.False(t, slots[i].IsBooked)
		assert.Equal(t, "2025-01-06", slots[i].Date)
		assert.Equal(t, "monday", slots[i].DayOfWeek)
		assert.Equal(t, "Test Doctor", slots[i].DoctorName)
	}
	assert.Equal(t, "test-doctor-2025-01-06-09:00", slots[0].ID)
}

func TestGenerateSlotsForSchedule_WindowEdges(t *testing.T) {
	cases := []struct {
		until string
		count int
	}{
		{"9:45AM", 1},
		{"9:29AM", 0},
		{"9:30AM", 1},
		{"9:00AM", 0},
		{"8:00AM", 0},
	}

	for _, tc := range cases {
		slots, err := GenerateSlotsForSchedule(testDoctor, window("monday", "9:00AM", tc.until), monday, nil)
		require.NoError(t, err)
		assert.Len(t, slots, tc.count, "until %s", tc.until)
	}
}

func TestGenerateSlotsForSchedule_PM(t *testing.T) {
	slots, err := GenerateSlotsForSchedule(testDoctor, window("monday", "1:00PM", "2:00PM"), monday, nil)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "13:00", slots[0].StartTime)
	assert.Equal(t, "13:30", slots[1].StartTime)
}

func TestGenerateSlotsForSchedule_LateEvening(t *testing.T) {
	slots, err := GenerateSlotsForSchedule(testDoctor, window("monday", "11:00PM", "11:59PM"), monday, nil)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "23:30", slots[0].EndTime)
}

func TestGenerateSlotsForSchedule_Booked(t *testing.T) {
	bookings := []model.Booking{booking("test-doctor", "2025-01-06", "09:30")}

	slots, err := GenerateSlotsForSchedule(testDoctor, window("monday", "9:00AM", "11:00AM"), monday, bookings)
	require.NoError(t, err)

	assert.False(t, slots[0].IsBooked)
	assert.True(t, slots[1].IsBooked)
	assert.False(t, slots[2].IsBooked)
	assert.False(t, slots[3].IsBooked)
}

func TestGenerateSlotsForSchedule_OtherDoctorOrDate(t *testing.T) {
	bookings := []model.Booking{
		booking("different-doctor", "2025-01-06", "09:00"),
		booking("test-doctor", "2025-01-13", "09:00"),
	}

	slots, err := GenerateSlotsForSchedule(testDoctor, window("monday", "9:00AM", "10:00AM"), monday, bookings)
	require.NoError(t, err)
	for _, s := range slots {
		assert.False(t, s.IsBooked, s.ID)
	}
}

func TestGenerateSlotsForSchedule_InvalidTime(t *testing.T) {
	_, err := GenerateSlotsForSchedule(testDoctor, window("monday", "9AM", "10:00AM"), monday, nil)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = GenerateSlotsForSchedule(testDoctor, window("monday", "9:00AM", "ten"), monday, nil)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestGenerateSlotsForSchedule_Idempotent(t *testing.T) {
	w := window("monday", "9:00AM", "12:00PM")

	first, err := GenerateSlotsForSchedule(testDoctor, w, monday, nil)
	require.NoError(t, err)
	second, err := GenerateSlotsForSchedule(testDoctor, w, monday, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateDoctorSlots_OnlyAvailableWeekdays(t *testing.T) {
	doctor := testDoctor
	doctor.Schedules = []model.WeeklySchedule{
		window("monday", "9:00AM", "10:00AM"),
		window("wednesday", "2:00PM", "3:00PM"),
	}

	result, err := GenerateDoctorSlots(doctor, monday.Add(15*time.Hour), 14, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-01-06", "2025-01-08", "2025-01-13", "2025-01-15"}, result.Dates())
	assert.Equal(t, 8, result.Total())

	for _, date := range result.Dates() {
		d, err := ParseDate(date, time.UTC)
		require.NoError(t, err)
		assert.Contains(t, []string{"monday", "wednesday"}, DayOfWeek(d))
	}
}

func TestGenerateDoctorSlots_SortsMultipleWindows(t *testing.T) {
	doctor := testDoctor
	doctor.Schedules = []model.WeeklySchedule{
		window("Monday", "2:00PM", "3:00PM"),
		window("monday", "9:00AM", "10:00AM"),
	}

	result, err := GenerateDoctorSlots(doctor, monday, 7, nil)
	require.NoError(t, err)

	slots := result["2025-01-06"]
	require.Len(t, slots, 4)
	for i := 1; i < len(slots); i++ {
		assert.LessOrEqual(t, slots[i-1].StartTime, slots[i].StartTime)
	}
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "14:30", slots[3].StartTime)
}

func TestGenerateDoctorSlots_OverlappingWindowsKeepDuplicates(t *testing.T) {
	doctor := testDoctor
	doctor.Schedules = []model.WeeklySchedule{
		window("monday", "9:00AM", "10:00AM"),
		window("monday", "9:30AM", "10:30AM"),
	}

	result, err := GenerateDoctorSlots(doctor, monday, 1, nil)
	require.NoError(t, err)

	starts := make([]string, 0)
	for _, s := range result["2025-01-06"] {
		starts = append(starts, s.StartTime)
	}
	assert.Equal(t, []string{"09:00", "09:30", "09:30", "10:00"}, starts)
}

func TestGenerateDoctorSlots_OmitsEmptyDates(t *testing.T) {
	doctor := testDoctor
	doctor.Schedules = []model.WeeklySchedule{window("monday", "9:00AM", "9:15AM")}

	result, err := GenerateDoctorSlots(doctor, monday, 14, nil)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestGenerateDoctorSlots_InvalidWindowAborts(t *testing.T) {
	doctor := testDoctor
	doctor.Schedules = []model.WeeklySchedule{
		window("monday", "9:00AM", "10:00AM"),
		window("tuesday", "nine", "10:00AM"),
	}

	result, err := GenerateDoctorSlots(doctor, monday, 7, nil)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
	assert.Nil(t, result)
}
