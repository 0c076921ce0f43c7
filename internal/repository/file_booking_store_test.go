package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Freeeeeet/doctor_booking_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBookings() []model.Booking {
	return []model.Booking{
		{
			ID:             "booking-1",
			DoctorID:       "dr--john-smith",
			DoctorName:     "Dr. John Smith",
			DoctorTimezone: "Australia/Sydney",
			Date:           "2025-01-06",
			DayOfWeek:      "monday",
			StartTime:      "09:30",
			EndTime:        "10:00",
			CreatedAt:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			UserID:         42,
		},
	}
}

func TestFileBookingStore_ReadMissingFile(t *testing.T) {
	store := NewFileBookingStore(filepath.Join(t.TempDir(), "nested", "bookings.json"))

	bookings, err := store.ReadAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}

func TestFileBookingStore_WriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "bookings.json")
	store := NewFileBookingStore(path)
	ctx := context.Background()

	require.NoError(t, store.WriteAll(ctx, sampleBookings()))

	got, err := store.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleBookings(), got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, store.WriteAll(ctx, nil))
	got, err = store.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileBookingStore_PersistedShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	require.NoError(t, NewFileBookingStore(path).WriteAll(context.Background(), sampleBookings()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, field := range []string{`"doctorId"`, `"doctorTimezone"`, `"day_of_week"`, `"startTime"`, `"createdAt"`} {
		assert.Contains(t, string(data), field)
	}
}

func TestFileBookingStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	_, err := NewFileBookingStore(path).ReadAll(context.Background())
	assert.ErrorIs(t, err, ErrStoreFailure)
}

func TestFileBookingStore_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	// parent "directory" is a regular file
	err := NewFileBookingStore(filepath.Join(blocker, "bookings.json")).WriteAll(context.Background(), sampleBookings())
	assert.ErrorIs(t, err, ErrStoreFailure)
}
