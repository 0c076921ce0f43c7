package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Freeeeeet/doctor_booking_bot/internal/model"
	"github.com/Freeeeeet/doctor_booking_bot/internal/repository"
	"github.com/Freeeeeet/doctor_booking_bot/internal/scheduling"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSlotAlreadyBooked  = errors.New("slot is already booked")
	ErrSlotInPast         = errors.New("slot is in the past")
	ErrSlotDoctorMismatch = errors.New("slot does not belong to doctor")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrNotBookingOwner    = errors.New("no permission to cancel this booking")
)

// BookingService подтверждает и отменяет записи.
// Список бронирований загружается из хранилища при старте и перезаписывается целиком после каждого изменения.
type BookingService struct {
	mu       sync.Mutex
	store    repository.BookingStore
	bookings []model.Booking
	now      func() time.Time
	newID    func() string
	logger   *zap.Logger
}

// BookingOption настройка BookingService
type BookingOption func(*BookingService)

// WithClock подменяет источник текущего времени
func WithClock(now func() time.Time) BookingOption {
	return func(s *BookingService) {
		s.now = now
	}
}

// WithIDGenerator подменяет генератор идентификаторов бронирований
func WithIDGenerator(newID func() string) BookingOption {
	return func(s *BookingService) {
		s.newID = newID
	}
}

func NewBookingService(store repository.BookingStore, logger *zap.Logger, opts ...BookingOption) *BookingService {
	s := &BookingService{
		store:    store,
		bookings: []model.Booking{},
		now:      time.Now,
		newID:    newBookingID,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// newBookingID UUIDv7 упорядочен по времени создания
func newBookingID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return "booking-" + id.String()
}

// Load читает сохранённые бронирования
func (s *BookingService) Load(ctx context.Context) error {
	bookings, err := s.store.ReadAll(ctx)
	if err != nil {
		return fmt.Errorf("load bookings: %w", err)
	}

	s.mu.Lock()
	s.bookings = bookings
	s.mu.Unlock()

	s.logger.Info("Bookings loaded", zap.Int("count", len(bookings)))
	return nil
}

// Bookings возвращает копию текущего списка (для пометки занятых слотов)
func (s *BookingService) Bookings() []model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// List возвращает все бронирования, отсортированные по дате и времени
func (s *BookingService) List() []model.Booking {
	return model.SortBookings(s.Bookings())
}

// ListForUser возвращает бронирования пользователя, отсортированные по дате и времени
func (s *BookingService) ListForUser(userID int64) []model.Booking {
	var own []model.Booking
	for _, b := range s.Bookings() {
		if b.UserID == userID {
			own = append(own, b)
		}
	}
	return model.SortBookings(own)
}

// GetByID возвращает бронирование по ID
func (s *BookingService) GetByID(bookingID string) (model.Booking, error) {
	for _, b := range s.Bookings() {
		if b.ID == bookingID {
			return b, nil
		}
	}
	return model.Booking{}, ErrBookingNotFound
}

// IsPast прошла ли запись на текущий момент
func (s *BookingService) IsPast(b model.Booking) bool {
	return b.IsPast(s.now())
}

// Confirm создаёт запись на слот. Проверка конфликта и запись в хранилище выполняются
// под одним мьютексом; если запись не удалась, список в памяти не меняется.
func (s *BookingService) Confirm(ctx context.Context, userID int64, doctor model.Doctor, slot model.TimeSlot) (model.Booking, error) {
	if slot.DoctorID != doctor.ID {
		return model.Booking{}, ErrSlotDoctorMismatch
	}

	now := s.now()
	day, err := scheduling.ParseDate(slot.Date, now.Location())
	if err != nil {
		return model.Booking{}, fmt.Errorf("parse slot date: %w", err)
	}

	booking := model.Booking{
		DoctorID:       slot.DoctorID,
		DoctorName:     slot.DoctorName,
		DoctorTimezone: doctor.Timezone,
		Date:           slot.Date,
		DayOfWeek:      slot.DayOfWeek,
		StartTime:      slot.StartTime,
		EndTime:        slot.EndTime,
		CreatedAt:      now.UTC(),
		UserID:         userID,
	}
	if booking.DayOfWeek == "" {
		booking.DayOfWeek = scheduling.DayOfWeek(day)
	}
	if booking.IsPast(now) {
		return model.Booking{}, ErrSlotInPast
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if scheduling.IsSlotTaken(s.bookings, slot.DoctorID, slot.Date, slot.StartTime) {
		s.logger.Info("Booking rejected: slot already booked",
			zap.String("doctor_id", slot.DoctorID),
			zap.String("date", slot.Date),
			zap.String("start_time", slot.StartTime),
			zap.Int64("user_id", userID),
		)
		return model.Booking{}, ErrSlotAlreadyBooked
	}

	booking.ID = s.newID()

	updated := make([]model.Booking, 0, len(s.bookings)+1)
	updated = append(updated, s.bookings...)
	updated = append(updated, booking)

	if err := s.store.WriteAll(ctx, updated); err != nil {
		return model.Booking{}, fmt.Errorf("save booking: %w", err)
	}
	s.bookings = updated

	s.logger.Info("Slot booked",
		zap.String("booking_id", booking.ID),
		zap.String("doctor_id", booking.DoctorID),
		zap.String("date", booking.Date),
		zap.String("start_time", booking.StartTime),
		zap.Int64("user_id", userID),
	)

	return booking, nil
}

// Cancel удаляет запись по ID. userID == 0 отключает проверку владельца.
func (s *BookingService) Cancel(ctx context.Context, userID int64, bookingID string) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, b := range s.bookings {
		if b.ID == bookingID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Booking{}, ErrBookingNotFound
	}

	canceled := s.bookings[idx]
	if userID != 0 && canceled.UserID != userID {
		return model.Booking{}, ErrNotBookingOwner
	}

	updated := make([]model.Booking, 0, len(s.bookings)-1)
	updated = append(updated, s.bookings[:idx]...)
	updated = append(updated, s.bookings[idx+1:]...)

	if err := s.store.WriteAll(ctx, updated); err != nil {
		return model.Booking{}, fmt.Errorf("save bookings: %w", err)
	}
	s.bookings = updated

	s.logger.Info("Booking canceled",
		zap.String("booking_id", bookingID),
		zap.Int64("user_id", userID),
	)

	return canceled, nil
}
