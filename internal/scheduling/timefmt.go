package scheduling

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Дни недели в порядке time.Weekday (0 = воскресенье)
var daysOfWeek = [7]string{
	"sunday",
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
}

var timePattern = regexp.MustCompile(`(?i)^\s*(\d{1,2}):(\d{2})(AM|PM)\s*$`)

const (
	dateLayout        = "2006-01-02"
	dateDisplayLayout = "Mon, Jan 2"
)

// Clock время суток в 24-часовом формате
type Clock struct {
	Hours   int
	Minutes int
}

// TotalMinutes минуты от полуночи
func (c Clock) TotalMinutes() int {
	return c.Hours*60 + c.Minutes
}

// ParseTime разбирает время вида "9:00AM" / " 10:30pm"
func ParseTime(text string) (Clock, error) {
	match := timePattern.FindStringSubmatch(text)
	if match == nil {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
	}

	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	period := strings.ToUpper(match[3])

	switch {
	case period == "PM" && hours != 12:
		hours += 12
	case period == "AM" && hours == 12:
		hours = 0
	}

	return Clock{Hours: hours, Minutes: minutes}, nil
}

// FormatTime возвращает "HH:MM" с ведущими нулями. Диапазон не проверяется.
func FormatTime(hours, minutes int) string {
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// FormatTimeDisplay переводит "HH:MM" в "h:mm AM/PM" для показа пользователю
func FormatTimeDisplay(hhmm string) string {
	parts := strings.Split(hhmm, ":")
	if len(parts) != 2 {
		return hhmm
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return hhmm
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return hhmm
	}

	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	displayHours := hours % 12
	if displayHours == 0 {
		displayHours = 12
	}

	return fmt.Sprintf("%d:%02d %s", displayHours, minutes, period)
}

// FormatDateDisplay переводит "YYYY-MM-DD" в "Wed, Jan 15". Нераспознанная строка возвращается как есть.
func FormatDateDisplay(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(dateDisplayLayout)
}

// FormatDate возвращает каноническую дату "YYYY-MM-DD" в зоне самой даты
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDate разбирает "YYYY-MM-DD" в полночь указанной зоны
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(dateLayout, date, loc)
}

// DayOfWeek возвращает название дня недели в нижнем регистре
func DayOfWeek(t time.Time) string {
	return daysOfWeek[t.Weekday()]
}

// NextDays возвращает count календарных дат начиная с сегодняшней (день 0)
func NextDays(now time.Time, count int) []time.Time {
	if count <= 0 {
		return nil
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := make([]time.Time, 0, count)
	for i := 0; i < count; i++ {
		days = append(days, today.AddDate(0, 0, i))
	}

	return days
}
