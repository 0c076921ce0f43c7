package repository

import (
	"context"
	"errors"

	"github.com/Freeeeeet/doctor_booking_bot/internal/model"
)

// ErrStoreFailure ошибка чтения или записи хранилища бронирований
var ErrStoreFailure = errors.New("booking store failure")

// BookingStore хранилище списка бронирований. Каждая запись перезаписывает список целиком.
type BookingStore interface {
	// ReadAll возвращает сохранённый список или пустой, если ничего не сохранено
	ReadAll(ctx context.Context) ([]model.Booking, error)
	// WriteAll заменяет сохранённый список переданным
	WriteAll(ctx context.Context, bookings []model.Booking) error
}

var (
	_ BookingStore = (*FileBookingStore)(nil)
	_ BookingStore = (*BookingRepository)(nil)
)
