package common

import (
	"fmt"
	"html"
	"strings"

	"github.com/Freeeeeet/doctor_booking_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/doctor_booking_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/doctor_booking_bot/internal/model"
	"github.com/Freeeeeet/doctor_booking_bot/internal/scheduling"
	"github.com/Freeeeeet/doctor_booking_bot/internal/service"
	"github.com/go-telegram/bot/models"
)

const (
	doctorsPerPage = 8
	daysPerRow     = 2
	slotsPerRow    = 3
)

// SlotPastFunc сообщает, начался ли слот
type SlotPastFunc func(model.TimeSlot) bool

// BuildMainMenuScreen главное меню
func BuildMainMenuScreen() (string, *models.InlineKeyboardMarkup) {
	text := "🏥 <b>Doctor booking</b>\n\n" +
		"/doctors - Browse doctors and free slots\n" +
		"/mybookings - Your bookings\n" +
		"/help - Help"

	kb := keyboard.NewBuilder().
		Row(keyboard.Button("👩‍⚕️ Doctors", DoctorsPageData(0))).
		Row(keyboard.Button("📅 My bookings", MyBookings))

	return text, kb.Build()
}

// BuildDoctorsListScreen список врачей с пагинацией
func BuildDoctorsListScreen(doctors []model.Doctor, page int) (string, *models.InlineKeyboardMarkup) {
	kb := keyboard.NewBuilder()

	if len(doctors) == 0 {
		kb.AddBackToMainButton()
		return "👩‍⚕️ No doctors are available right now. Please try again later.", kb.Build()
	}

	p := keyboard.Paginate(len(doctors), page, doctorsPerPage)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("👩‍⚕️ <b>Doctors</b> (%s)\n\n", formatting.PluralizeDoctors(len(doctors))))
	for i := p.Start; i < p.End; i++ {
		d := doctors[i]
		sb.WriteString(fmt.Sprintf("%d. <b>%s</b>\n", i+1, html.EscapeString(d.Name)))
		if d.Timezone != "" {
			sb.WriteString(fmt.Sprintf("   🌐 %s\n", html.EscapeString(d.Timezone)))
		}
		kb.Row(keyboard.Button("👤 "+d.Name, DoctorData(service.Key(d.ID))))
	}
	sb.WriteString("\nPick a doctor to see free slots.")

	kb.AddPagination(DoctorsPage, p.Number, p.TotalPages)
	kb.AddBackToMainButton()

	return sb.String(), kb.Build()
}

// countFree свободные и ещё не начавшиеся слоты
func countFree(slots []model.TimeSlot, isPast SlotPastFunc) int {
	free := 0
	for _, s := range slots {
		if !s.IsBooked && !isPast(s) {
			free++
		}
	}
	return free
}

// BuildDoctorScreen дни с приёмом на горизонте
func BuildDoctorScreen(doctor model.Doctor, slots scheduling.DaySlots, horizonDays int, isPast SlotPastFunc) (string, *models.InlineKeyboardMarkup) {
	key := service.Key(doctor.ID)
	kb := keyboard.NewBuilder()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("👤 <b>%s</b>\n", html.EscapeString(doctor.Name)))
	if doctor.Timezone != "" {
		sb.WriteString(fmt.Sprintf("🌐 %s\n", html.EscapeString(doctor.Timezone)))
	}
	sb.WriteString("\n")

	dates := slots.Dates()
	if len(dates) == 0 {
		sb.WriteString(fmt.Sprintf("No appointments in the next %d days.", horizonDays))
		kb.AddBackToDoctorsButton()
		return sb.String(), kb.Build()
	}

	sb.WriteString(fmt.Sprintf("Free slots in the next %d days:\n", horizonDays))

	dayButtons := make([]models.InlineKeyboardButton, 0, len(dates))
	for _, date := range dates {
		free := countFree(slots[date], isPast)
		label := formatting.FormatSlotDate(date)
		sb.WriteString(fmt.Sprintf("• %s: %s free\n", label, formatting.PluralizeSlots(free)))

		if free == 0 {
			dayButtons = append(dayButtons, keyboard.Button("🔒 "+label, Noop))
			continue
		}
		dayButtons = append(dayButtons, keyboard.Button(fmt.Sprintf("📅 %s (%d)", label, free), DayData(key, date)))
	}

	kb.Grid(dayButtons, daysPerRow)
	kb.Row(keyboard.Button("🗓 Week overview", WeekData(key)))
	kb.AddBackToDoctorsButton()

	return sb.String(), kb.Build()
}

// BuildDayScreen слоты врача на дату
func BuildDayScreen(doctor model.Doctor, date string, slots []model.TimeSlot, isPast SlotPastFunc) (string, *models.InlineKeyboardMarkup) {
	key := service.Key(doctor.ID)
	kb := keyboard.NewBuilder()

	text := fmt.Sprintf("👤 <b>%s</b>\n📅 %s\n\n",
		html.EscapeString(doctor.Name), formatting.FormatSlotDate(date))

	if len(slots) == 0 {
		text += "No appointments on this day."
		kb.AddBackButton(DoctorData(key))
		return text, kb.Build()
	}

	buttons := make([]models.InlineKeyboardButton, 0, len(slots))
	for _, s := range slots {
		label := scheduling.FormatTimeDisplay(s.StartTime)
		switch {
		case s.IsBooked:
			buttons = append(buttons, keyboard.Button("🔒 "+label, Noop))
		case isPast(s):
			buttons = append(buttons, keyboard.Button("⌛ "+label, Noop))
		default:
			buttons = append(buttons, keyboard.Button(label, BookData(SlotRef{
				DoctorKey: key,
				Date:      s.Date,
				StartTime: s.StartTime,
			})))
		}
	}

	free := countFree(slots, isPast)
	if free == 0 {
		text += "All slots on this day are taken."
	} else {
		text += fmt.Sprintf("%s available. Pick a time (%s each):",
			formatting.PluralizeSlots(free), formatting.Pluralize(int(scheduling.SlotDuration.Minutes()), "minute", "minutes"))
	}

	kb.Grid(buttons, slotsPerRow)
	kb.AddBackButton(DoctorData(key))

	return text, kb.Build()
}

// BuildConfirmBookingScreen подтверждение записи на слот
func BuildConfirmBookingScreen(doctor model.Doctor, slot model.TimeSlot) (string, *models.InlineKeyboardMarkup) {
	key := service.Key(doctor.ID)

	text := fmt.Sprintf(
		"📝 <b>Confirm booking</b>\n\n"+
			"👤 %s\n"+
			"📅 %s\n"+
			"🕐 %s\n",
		html.EscapeString(doctor.Name),
		formatting.FormatSlotDate(slot.Date),
		formatting.FormatSlotRange(slot.StartTime, slot.EndTime),
	)
	if doctor.Timezone != "" {
		text += fmt.Sprintf("🌐 %s\n", html.EscapeString(doctor.Timezone))
	}

	ref := SlotRef{DoctorKey: key, Date: slot.Date, StartTime: slot.StartTime}
	kb := keyboard.NewBuilder().
		Row(keyboard.ConfirmCancelButtons(ConfirmBookData(ref), DayData(key, slot.Date))...)

	return text, kb.Build()
}

// BuildBookingSuccessScreen экран после успешной записи
func BuildBookingSuccessScreen(b model.Booking) (string, *models.InlineKeyboardMarkup) {
	text := "✅ <b>You're booked!</b>\n\n" + formatting.FormatBooking(b, false)

	kb := keyboard.NewBuilder().
		Row(keyboard.Button("📅 My bookings", MyBookings)).
		Row(keyboard.Button("➕ Book another", DoctorsPageData(0)))

	return text, kb.Build()
}

// BuildEmptyBookingsScreen экран без записей
func BuildEmptyBookingsScreen() (string, *models.InlineKeyboardMarkup) {
	text := "📅 You have no bookings yet.\n\nUse /doctors to find a free slot."

	kb := keyboard.NewBuilder().
		Row(keyboard.Button("👩‍⚕️ Find a doctor", DoctorsPageData(0)))

	return text, kb.Build()
}

// BuildBookingCard карточка записи для /mybookings; у прошедших нет кнопки отмены
func BuildBookingCard(b model.Booking, isPast bool) (string, *models.InlineKeyboardMarkup) {
	text := formatting.FormatBooking(b, isPast)
	if isPast {
		return text, nil
	}

	kb := keyboard.NewBuilder().
		Row(keyboard.Button("❌ Cancel booking", CancelBookingData(b.ID)))

	return text, kb.Build()
}

// BuildCancelConfirmScreen подтверждение отмены записи
func BuildCancelConfirmScreen(b model.Booking) (string, *models.InlineKeyboardMarkup) {
	text := "⚠️ <b>Cancel this booking?</b>\n\n" + formatting.FormatBooking(b, false)

	kb := keyboard.NewBuilder().
		Row(
			keyboard.Button("✅ Yes, cancel", ConfirmCancelData(b.ID)),
			keyboard.Button("↩️ Keep it", BackToMain),
		)

	return text, kb.Build()
}

// BuildCanceledScreen экран после отмены
func BuildCanceledScreen(b model.Booking) (string, *models.InlineKeyboardMarkup) {
	text := fmt.Sprintf("🗑 Booking with <b>%s</b> on %s at %s was canceled.",
		html.EscapeString(b.DoctorName),
		formatting.FormatSlotDate(b.Date),
		scheduling.FormatTimeDisplay(b.StartTime),
	)

	kb := keyboard.NewBuilder().
		Row(keyboard.Button("➕ Book another", DoctorsPageData(0))).
		AddBackToMainButton()

	return text, kb.Build()
}
