package common

import (
	"errors"

	"github.com/Freeeeeet/doctor_booking_bot/internal/directory"
	"github.com/Freeeeeet/doctor_booking_bot/internal/repository"
	"github.com/Freeeeeet/doctor_booking_bot/internal/scheduling"
	"github.com/Freeeeeet/doctor_booking_bot/internal/service"
)

var (
	ErrNoMessage     = errors.New("no message in callback")
	ErrInvalidFormat = errors.New("invalid callback format")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrSlotAlreadyBooked):
		return "❌ This slot was just booked by someone else. Please pick another time."
	case errors.Is(err, service.ErrSlotInPast):
		return "❌ This slot has already started. Please pick another time."
	case errors.Is(err, service.ErrSlotNotFound):
		return "❌ This slot is no longer available."
	case errors.Is(err, service.ErrDoctorNotFound):
		return "❌ Doctor not found. The list may have been updated, open /doctors again."
	case errors.Is(err, service.ErrBookingNotFound):
		return "❌ Booking not found."
	case errors.Is(err, service.ErrNotBookingOwner):
		return "❌ You can only cancel your own bookings."
	case errors.Is(err, scheduling.ErrInvalidTimeFormat):
		return "❌ This doctor's schedule is misconfigured. Please try another doctor."
	case errors.Is(err, directory.ErrSourceUnavailable):
		return "❌ The doctor directory is unavailable right now. Please try again later."
	case errors.Is(err, repository.ErrStoreFailure):
		return "❌ Could not save your booking. Please try again."
	case errors.Is(err, ErrNoMessage):
		return "❌ Message processing error"
	case errors.Is(err, ErrInvalidFormat):
		return "❌ Invalid data format"
	default:
		return "❌ Something went wrong"
	}
}
