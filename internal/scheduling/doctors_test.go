package scheduling

import (
	"testing"

	"github.com/Freeeeeet/doctor_booking_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDoctorID(t *testing.T) {
	cases := map[string]string{
		"Dr. John Smith":    "dr--john-smith",
		"Jane O'Connor":     "jane-o-connor",
		"Simple Name":       "simple-name",
		"Dr. Test Name Jr.": "dr--test-name-jr-",
		"":                  "",
		"...":               "---",
		"Doctor 123":        "doctor-123",
		"José":              "jos-",
	}

	for in, want := range cases {
		assert.Equal(t, want, CreateDoctorID(in), "input %q", in)
	}
}

func TestGroupDoctors(t *testing.T) {
	records := []model.DoctorScheduleRecord{
		{Name: "Dr. Ann Lee", Timezone: "Australia/Sydney", DayOfWeek: "monday", AvailableAt: "9:00AM", AvailableUntil: "5:00PM"},
		{Name: "Bob Stone", Timezone: "America/Chicago", DayOfWeek: "friday", AvailableAt: "10:00AM", AvailableUntil: "2:00PM"},
		{Name: "Dr. Ann Lee", Timezone: "Australia/Perth", DayOfWeek: "thursday", AvailableAt: "1:00PM", AvailableUntil: "4:00PM"},
	}

	doctors := GroupDoctors(records)
	require.Len(t, doctors, 2)

	ann := doctors[0]
	assert.Equal(t, "dr--ann-lee", ann.ID)
	assert.Equal(t, "Dr. Ann Lee", ann.Name)
	assert.Equal(t, "Australia/Sydney", ann.Timezone)
	require.Len(t, ann.Schedules, 2)
	assert.Equal(t, "monday", ann.Schedules[0].DayOfWeek)
	assert.Equal(t, "thursday", ann.Schedules[1].DayOfWeek)

	assert.Equal(t, "bob-stone", doctors[1].ID)
	assert.Len(t, doctors[1].Schedules, 1)
}

func TestGroupDoctors_MergesCollidingNames(t *testing.T) {
	records := []model.DoctorScheduleRecord{
		{Name: "Dr. A", Timezone: "UTC", DayOfWeek: "monday", AvailableAt: "9:00AM", AvailableUntil: "10:00AM"},
		{Name: "Dr-_A", Timezone: "Europe/Berlin", DayOfWeek: "tuesday", AvailableAt: "9:00AM", AvailableUntil: "10:00AM"},
	}

	doctors := GroupDoctors(records)
	require.Len(t, doctors, 1)
	assert.Equal(t, "dr--a", doctors[0].ID)
	assert.Equal(t, "Dr. A", doctors[0].Name)
	assert.Equal(t, "UTC", doctors[0].Timezone)
	assert.Len(t, doctors[0].Schedules, 2)
}

func TestGroupDoctors_Empty(t *testing.T) {
	assert.Empty(t, GroupDoctors(nil))
}
