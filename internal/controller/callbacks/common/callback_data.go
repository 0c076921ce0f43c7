package common

import (
	"fmt"
	"strconv"
	"strings"
)

// Форматы callback data. Врач кодируется коротким ключом service.Key,
// время начала как HHMM, чтобы уложиться в 64 байта Telegram.
const (
	BackToMain    = "back_to_main"
	Noop          = "noop"
	DoctorsPage   = "doctors_page:"   // doctors_page:0
	ViewDoctor    = "doctor:"         // doctor:KEY
	ViewDay       = "day:"            // day:KEY:2025-01-06
	ViewWeek      = "week:"           // week:KEY
	BookSlot      = "book:"           // book:KEY:2025-01-06:0930
	ConfirmBook   = "confirm_book:"   // confirm_book:KEY:2025-01-06:0930
	CancelBooking = "cancel_booking:" // cancel_booking:booking-ID
	ConfirmCancel = "confirm_cancel:" // confirm_cancel:booking-ID
	MyBookings    = "my_bookings"
)

// MaxCallbackDataLen лимит Telegram на callback_data
const MaxCallbackDataLen = 64

// SlotRef адрес слота в callback data
type SlotRef struct {
	DoctorKey string
	Date      string
	StartTime string // HH:MM
}

func DoctorsPageData(page int) string {
	return fmt.Sprintf("%s%d", DoctorsPage, page)
}

func DoctorData(key string) string {
	return ViewDoctor + key
}

func DayData(key, date string) string {
	return ViewDay + key + ":" + date
}

func WeekData(key string) string {
	return ViewWeek + key
}

func BookData(ref SlotRef) string {
	return BookSlot + encodeSlotRef(ref)
}

func ConfirmBookData(ref SlotRef) string {
	return ConfirmBook + encodeSlotRef(ref)
}

func CancelBookingData(bookingID string) string {
	return CancelBooking + bookingID
}

func ConfirmCancelData(bookingID string) string {
	return ConfirmCancel + bookingID
}

func encodeSlotRef(ref SlotRef) string {
	return ref.DoctorKey + ":" + ref.Date + ":" + strings.Replace(ref.StartTime, ":", "", 1)
}

// ParseArg возвращает единственный аргумент после префикса: "doctor:KEY" -> "KEY"
func ParseArg(data, prefix string) (string, error) {
	arg, ok := strings.CutPrefix(data, prefix)
	if !ok || arg == "" || strings.Contains(arg, ":") {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, data)
	}
	return arg, nil
}

// ParsePage "doctors_page:2" -> 2
func ParsePage(data string) (int, error) {
	arg, err := ParseArg(data, DoctorsPage)
	if err != nil {
		return 0, err
	}
	page, err := strconv.Atoi(arg)
	if err != nil || page < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, data)
	}
	return page, nil
}

// ParseDay "day:KEY:2025-01-06" -> KEY, 2025-01-06
func ParseDay(data string) (string, string, error) {
	rest, ok := strings.CutPrefix(data, ViewDay)
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidFormat, data)
	}
	parts := strings.Split(rest, ":")
	if len(parts) != 2 || parts[0] == "" || len(parts[1]) != len("2006-01-02") {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidFormat, data)
	}
	return parts[0], parts[1], nil
}

// ParseSlotRef разбирает book:/confirm_book: callback
func ParseSlotRef(data, prefix string) (SlotRef, error) {
	rest, ok := strings.CutPrefix(data, prefix)
	if !ok {
		return SlotRef{}, fmt.Errorf("%w: %q", ErrInvalidFormat, data)
	}
	parts := strings.Split(rest, ":")
	if len(parts) != 3 || parts[0] == "" || len(parts[1]) != len("2006-01-02") || len(parts[2]) != 4 {
		return SlotRef{}, fmt.Errorf("%w: %q", ErrInvalidFormat, data)
	}
	if _, err := strconv.Atoi(parts[2]); err != nil {
		return SlotRef{}, fmt.Errorf("%w: %q", ErrInvalidFormat, data)
	}

	return SlotRef{
		DoctorKey: parts[0],
		Date:      parts[1],
		StartTime: parts[2][:2] + ":" + parts[2][2:],
	}, nil
}
