package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Freeeeeet/doctor_booking_bot/internal/model"
	"github.com/Freeeeeet/doctor_booking_bot/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// BookingsKey ключ списка бронирований в kv_store
const BookingsKey = "bookings"

// BookingRepository хранит список бронирований одной JSONB строкой в таблице kv_store
type BookingRepository struct {
	*base.Repository
	key    string
	logger *zap.Logger
}

// NewBookingRepository создаёт Postgres хранилище бронирований
func NewBookingRepository(pool *pgxpool.Pool, logger *zap.Logger) *BookingRepository {
	return &BookingRepository{
		Repository: base.NewRepository(pool),
		key:        BookingsKey,
		logger:     logger,
	}
}

// ReadAll читает список бронирований
func (r *BookingRepository) ReadAll(ctx context.Context) ([]model.Booking, error) {
	query := `SELECT value FROM kv_store WHERE key = $1`

	var raw []byte
	err := r.QueryRow(ctx, query, r.key).Scan(&raw)
	if err != nil {
		if base.IsNotFound(err) {
			return []model.Booking{}, nil
		}
		return nil, fmt.Errorf("%w: read bookings: %v", ErrStoreFailure, err)
	}

	var bookings []model.Booking
	if err := json.Unmarshal(raw, &bookings); err != nil {
		return nil, fmt.Errorf("%w: decode bookings: %v", ErrStoreFailure, err)
	}
	if bookings == nil {
		bookings = []model.Booking{}
	}

	return bookings, nil
}

// WriteAll перезаписывает список бронирований целиком
func (r *BookingRepository) WriteAll(ctx context.Context, bookings []model.Booking) error {
	if bookings == nil {
		bookings = []model.Booking{}
	}

	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("%w: encode bookings: %v", ErrStoreFailure, err)
	}

	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()
	`

	affected, err := r.ExecAffected(ctx, query, r.key, data)
	if err != nil {
		return fmt.Errorf("%w: write bookings: %v", ErrStoreFailure, err)
	}

	r.logger.Debug("Bookings persisted",
		zap.Int("count", len(bookings)),
		zap.Int64("rows_affected", affected),
	)

	return nil
}
