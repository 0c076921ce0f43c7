package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Freeeeeet/doctor_booking_bot/internal/directory"
	"github.com/Freeeeeet/doctor_booking_bot/internal/repository"
	"github.com/Freeeeeet/doctor_booking_bot/internal/scheduling"
	"github.com/Freeeeeet/doctor_booking_bot/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{service.ErrSlotAlreadyBooked, "just booked"},
		{fmt.Errorf("save booking: %w", repository.ErrStoreFailure), "Could not save"},
		{fmt.Errorf("generate slots: %w", scheduling.ErrInvalidTimeFormat), "misconfigured"},
		{fmt.Errorf("fetch doctors: %w", directory.ErrSourceUnavailable), "unavailable"},
		{service.ErrNotBookingOwner, "your own bookings"},
		{fmt.Errorf("%w: %q", ErrInvalidFormat, "book:"), "Invalid data format"},
		{errors.New("boom"), "Something went wrong"},
	}

	for _, tt := range tests {
		assert.Contains(t, ErrorMessage(tt.err), tt.want, tt.err.Error())
	}
}
