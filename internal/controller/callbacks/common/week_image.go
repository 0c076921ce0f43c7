package common

import (
	"bytes"
	"image/color"
	"time"

	"github.com/Freeeeeet/doctor_booking_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/doctor_booking_bot/internal/model"
	"github.com/Freeeeeet/doctor_booking_bot/internal/scheduling"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Константы размеров и отступов
const (
	imageWidth       = 1120
	imageHeight      = 760
	headerHeight     = 90
	leftLabelsWidth  = 70
	legendWidth      = 140
	dayPaddingX      = 6
	minSlotHeight    = 8.0
	slotBorderRadius = 5.0
	shadowOffset     = 2.0
	totalDaysInWeek  = 7
	hourPaddingTop   = 1
	hourPaddingBot   = 1
	defaultMinHour   = 8
	defaultMaxHour   = 18
)

// Цветовая схема
var (
	bgColor          = color.RGBA{245, 246, 248, 255}
	textColor        = color.RGBA{60, 65, 70, 255}
	hourLabelColor   = color.RGBA{110, 115, 120, 255}
	hourLineColor    = color.NRGBA{150, 150, 150, 255}
	todayBgColor     = color.NRGBA{255, 99, 71, 90}
	evenDayColor     = color.NRGBA{240, 240, 240, 255}
	oddDayColor      = color.NRGBA{228, 228, 228, 255}
	currentTimeColor = color.NRGBA{255, 80, 80, 200}

	slotFreeColor       = color.RGBA{133, 193, 85, 230}
	slotBookedColor     = color.RGBA{255, 182, 193, 255}
	slotPastColor       = color.RGBA{190, 190, 190, 220}
	slotTextColor       = color.RGBA{20, 24, 28, 255}
	slotBookedTextColor = color.RGBA{120, 40, 50, 255}
	slotShadowColor     = color.RGBA{0, 0, 0, 20}

	legendItemColor = color.RGBA{70, 74, 78, 255}
)

// hourRange диапазон часов для отображения
type hourRange struct {
	start int
	end   int
	total int
}

// weekSlot слот, разложенный в минуты от полуночи
type weekSlot struct {
	startMin int
	endMin   int
	label    string
	booked   bool
	past     bool
}

// GenerateWeekImage рисует 7 дней начиная с from: свободные, занятые и прошедшие слоты врача
func GenerateWeekImage(doctor model.Doctor, from time.Time, slots scheduling.DaySlots, isPast SlotPastFunc, now time.Time) ([]byte, error) {
	start := normalizeToDay(from)
	today := normalizeToDay(now.In(from.Location()))

	byDay := collectWeekSlots(start, slots, isPast)
	hours := calculateHourRange(byDay)

	dc := createCanvas()
	dayWidth := (imageWidth - leftLabelsWidth - legendWidth) / totalDaysInWeek
	dayHeight := imageHeight - headerHeight
	cellHeight := float64(dayHeight) / float64(hours.total)

	dc.SetFontFace(basicfont.Face7x13)

	drawHeader(dc, doctor, start)
	drawHourLabels(dc, hours, cellHeight)

	todayIndex := -1
	for dayIndex := 0; dayIndex < totalDaysInWeek; dayIndex++ {
		date := start.AddDate(0, 0, dayIndex)
		x := float64(leftLabelsWidth + dayIndex*dayWidth)
		y := float64(headerHeight)

		isToday := isSameDay(date, today)
		if isToday {
			todayIndex = dayIndex
		}

		drawDayBackground(dc, x, y, dayWidth, dayHeight, dayIndex, isToday)
		drawDayHeader(dc, date, x, y, dayWidth)
		drawHourLines(dc, x, y, dayWidth, hours, cellHeight)
		for _, s := range byDay[dayIndex] {
			drawSlot(dc, s, x, y, dayWidth, hours, cellHeight)
		}
	}

	drawCurrentTimeLine(dc, todayIndex, now.In(from.Location()), hours, cellHeight, dayWidth)
	drawLegend(dc, dayWidth)

	return encodeImage(dc)
}

func normalizeToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func isSameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// collectWeekSlots раскладывает слоты по индексу дня; слоты с битым временем пропускаются
func collectWeekSlots(start time.Time, slots scheduling.DaySlots, isPast SlotPastFunc) [totalDaysInWeek][]weekSlot {
	var byDay [totalDaysInWeek][]weekSlot

	for dayIndex := 0; dayIndex < totalDaysInWeek; dayIndex++ {
		date := scheduling.FormatDate(start.AddDate(0, 0, dayIndex))
		for _, s := range slots[date] {
			startMin, ok := minutesOfDay(s.StartTime)
			if !ok {
				continue
			}
			endMin, ok := minutesOfDay(s.EndTime)
			if !ok || endMin <= startMin {
				continue
			}
			byDay[dayIndex] = append(byDay[dayIndex], weekSlot{
				startMin: startMin,
				endMin:   endMin,
				label:    s.StartTime,
				booked:   s.IsBooked,
				past:     isPast(s),
			})
		}
	}

	return byDay
}

// minutesOfDay "09:30" -> 570
func minutesOfDay(hhmm string) (int, bool) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// calculateHourRange диапазон часов по слотам недели с небольшим запасом
func calculateHourRange(byDay [totalDaysInWeek][]weekSlot) hourRange {
	minHour := 24
	maxHour := 0

	for _, day := range byDay {
		for _, s := range day {
			startH := s.startMin / 60
			endH := (s.endMin + 59) / 60
			if startH < minHour {
				minHour = startH
			}
			if endH > maxHour {
				maxHour = endH
			}
		}
	}

	if minHour == 24 {
		minHour = defaultMinHour
		maxHour = defaultMaxHour
	}

	startHour := minHour - hourPaddingTop
	endHour := maxHour + hourPaddingBot
	if startHour < 0 {
		startHour = 0
	}
	if endHour > 24 {
		endHour = 24
	}

	return hourRange{
		start: startHour,
		end:   endHour,
		total: endHour - startHour,
	}
}

func createCanvas() *gg.Context {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(bgColor)
	dc.Clear()
	return dc
}

// drawHeader имя врача и диапазон дат
func drawHeader(dc *gg.Context, doctor model.Doctor, start time.Time) {
	end := start.AddDate(0, 0, totalDaysInWeek-1)
	title := doctor.Name + "  " + start.Format("Jan 2") + " - " + end.Format("Jan 2, 2006")
	if doctor.Timezone != "" {
		title += "  (" + doctor.Timezone + ")"
	}

	dc.SetColor(textColor)
	dc.DrawStringAnchored(title, 12, float64(headerHeight)/4, 0, 0.5)
}

func drawHourLabels(dc *gg.Context, hours hourRange, cellHeight float64) {
	dc.SetColor(hourLabelColor)

	for hIdx := 0; hIdx <= hours.total; hIdx++ {
		y := float64(headerHeight) + float64(hIdx)*cellHeight
		label := scheduling.FormatTime((hours.start+hIdx)%24, 0)
		dc.DrawStringAnchored(label, float64(leftLabelsWidth)-8, y, 1, 0.5)
	}
}

func drawDayBackground(dc *gg.Context, x, y float64, dayWidth, dayHeight, dayIndex int, isToday bool) {
	switch {
	case isToday:
		dc.SetColor(todayBgColor)
	case dayIndex%2 == 0:
		dc.SetColor(evenDayColor)
	default:
		dc.SetColor(oddDayColor)
	}
	dc.DrawRectangle(x, y, float64(dayWidth), float64(dayHeight))
	dc.Fill()
}

// drawDayHeader день недели и дата над колонкой
func drawDayHeader(dc *gg.Context, date time.Time, x, y float64, dayWidth int) {
	dc.SetColor(textColor)
	cx := x + float64(dayWidth)/2
	dc.DrawStringAnchored(formatting.GetWeekdayShort(date.Weekday()), cx, y-30, 0.5, 0.5)
	dc.DrawStringAnchored(date.Format("Jan 2"), cx, y-14, 0.5, 0.5)
}

func drawHourLines(dc *gg.Context, x, y float64, dayWidth int, hours hourRange, cellHeight float64) {
	dc.SetLineWidth(0.3)
	dc.SetColor(hourLineColor)

	for hIdx := 0; hIdx <= hours.total; hIdx++ {
		hy := y + float64(hIdx)*cellHeight
		dc.DrawLine(x, hy, x+float64(dayWidth), hy)
		dc.Stroke()
	}
}

func drawSlot(dc *gg.Context, s weekSlot, x, y float64, dayWidth int, hours hourRange, cellHeight float64) {
	startHour := float64(s.startMin) / 60.0
	endHour := float64(s.endMin) / 60.0

	slotY := y + (startHour-float64(hours.start))*cellHeight
	slotHeight := (endHour - startHour) * cellHeight
	if slotHeight < minSlotHeight {
		slotHeight = minSlotHeight
	}

	fill := slotColor(s)
	slotX := x + float64(dayPaddingX)
	slotWidth := float64(dayWidth) - float64(dayPaddingX*2)

	dc.SetColor(slotShadowColor)
	dc.DrawRoundedRectangle(slotX+shadowOffset, slotY+1+shadowOffset, slotWidth, slotHeight-2, slotBorderRadius)
	dc.Fill()

	dc.SetColor(fill)
	dc.DrawRoundedRectangle(slotX, slotY+1, slotWidth, slotHeight-2, slotBorderRadius)
	dc.Fill()

	dc.SetColor(darkenColor(fill, 0.8))
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(slotX, slotY+1, slotWidth, slotHeight-2, slotBorderRadius)
	dc.Stroke()

	// basicfont 13px, подпись влезает только в достаточно высокий слот
	if slotHeight < 14 {
		return
	}
	if s.booked {
		dc.SetColor(slotBookedTextColor)
	} else {
		dc.SetColor(slotTextColor)
	}
	dc.DrawStringAnchored(s.label, slotX+6, slotY+slotHeight/2, 0, 0.35)
}

// slotColor занятость важнее прошедшего времени
func slotColor(s weekSlot) color.RGBA {
	switch {
	case s.booked:
		return slotBookedColor
	case s.past:
		return slotPastColor
	default:
		return slotFreeColor
	}
}

func darkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// drawCurrentTimeLine красная линия текущего времени, если сегодня в картинке
func drawCurrentTimeLine(dc *gg.Context, todayIndex int, now time.Time, hours hourRange, cellHeight float64, dayWidth int) {
	if todayIndex < 0 {
		return
	}

	current := float64(now.Hour()) + float64(now.Minute())/60.0
	if current < float64(hours.start) || current > float64(hours.end) {
		return
	}

	lineY := float64(headerHeight) + (current-float64(hours.start))*cellHeight
	x := float64(leftLabelsWidth + todayIndex*dayWidth)

	dc.SetColor(currentTimeColor)
	dc.SetLineWidth(2.0)
	dc.DrawLine(x, lineY, x+float64(dayWidth), lineY)
	dc.Stroke()
}

func drawLegend(dc *gg.Context, dayWidth int) {
	items := []struct {
		label string
		clr   color.Color
	}{
		{"Free", slotFreeColor},
		{"Booked", slotBookedColor},
		{"Past", slotPastColor},
	}

	boxW := 20.0
	boxH := 14.0
	x := float64(leftLabelsWidth+totalDaysInWeek*dayWidth) + 14
	y := float64(imageHeight) - 110

	for _, item := range items {
		dc.SetColor(item.clr)
		dc.DrawRoundedRectangle(x, y, boxW, boxH, 3)
		dc.Fill()

		dc.SetColor(legendItemColor)
		dc.DrawStringAnchored(item.label, x+boxW+8, y+boxH/2, 0, 0.35)
		y += boxH + 14
	}
}

func encodeImage(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
