package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Freeeeeet/doctor_booking_bot/internal/model"
	"github.com/Freeeeeet/doctor_booking_bot/internal/scheduling"
	"go.uber.org/zap"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrSlotNotFound   = errors.New("slot not found")
)

// DirectorySource источник плоского списка расписаний врачей
type DirectorySource interface {
	Fetch(ctx context.Context) ([]model.DoctorScheduleRecord, error)
}

// DoctorService держит последний успешно загруженный список врачей и строит по нему слоты
type DoctorService struct {
	mu          sync.RWMutex
	doctors     []model.Doctor
	byID        map[string]int
	byKey       map[string]int
	refreshedAt time.Time

	source      DirectorySource
	bookings    *BookingService
	horizonDays int
	loc         *time.Location
	now         func() time.Time
	logger      *zap.Logger
}

func NewDoctorService(
	source DirectorySource,
	bookings *BookingService,
	horizonDays int,
	loc *time.Location,
	logger *zap.Logger,
	opts ...DoctorOption,
) *DoctorService {
	if loc == nil {
		loc = time.Local
	}
	s := &DoctorService{
		byID:        map[string]int{},
		byKey:       map[string]int{},
		source:      source,
		bookings:    bookings,
		horizonDays: horizonDays,
		loc:         loc,
		now:         time.Now,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type DoctorOption func(*DoctorService)

// WithDoctorClock подменяет источник текущего времени
func WithDoctorClock(now func() time.Time) DoctorOption {
	return func(s *DoctorService) { s.now = now }
}

// Key короткий стабильный ключ врача для callback data (лимит Telegram 64 байта)
func Key(doctorID string) string {
	sum := sha256.Sum256([]byte(doctorID))
	return hex.EncodeToString(sum[:8])
}

// Refresh загружает справочник и пересобирает врачей. При ошибке остаётся прежний список.
func (s *DoctorService) Refresh(ctx context.Context) error {
	records, err := s.source.Fetch(ctx)
	if err != nil {
		s.logger.Warn("Failed to refresh doctor directory", zap.Error(err))
		return fmt.Errorf("fetch doctors: %w", err)
	}

	doctors := scheduling.GroupDoctors(records)
	byID := make(map[string]int, len(doctors))
	byKey := make(map[string]int, len(doctors))
	for i, d := range doctors {
		byID[d.ID] = i
		byKey[Key(d.ID)] = i
	}

	s.mu.Lock()
	s.doctors = doctors
	s.byID = byID
	s.byKey = byKey
	s.refreshedAt = s.now()
	s.mu.Unlock()

	s.logger.Info("Doctor directory refreshed",
		zap.Int("records", len(records)),
		zap.Int("doctors", len(doctors)),
	)

	return nil
}

// Loaded был ли справочник загружен хотя бы раз
func (s *DoctorService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.refreshedAt.IsZero()
}

// Doctors возвращает копию списка врачей в порядке справочника
func (s *DoctorService) Doctors() []model.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Doctor, len(s.doctors))
	copy(out, s.doctors)
	return out
}

// DoctorByID ищет врача по ID
func (s *DoctorService) DoctorByID(id string) (model.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return model.Doctor{}, ErrDoctorNotFound
	}
	return s.doctors[i], nil
}

// DoctorByKey ищет врача по короткому ключу из Key
func (s *DoctorService) DoctorByKey(key string) (model.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byKey[key]
	if !ok {
		return model.Doctor{}, ErrDoctorNotFound
	}
	return s.doctors[i], nil
}

// Now текущее время в зоне сервиса
func (s *DoctorService) Now() time.Time {
	return s.now().In(s.loc)
}

// HorizonDays горизонт генерации слотов в днях
func (s *DoctorService) HorizonDays() int {
	return s.horizonDays
}

// Slots строит слоты врача на горизонт с учётом текущих бронирований
func (s *DoctorService) Slots(doctor model.Doctor) (scheduling.DaySlots, error) {
	slots, err := scheduling.GenerateDoctorSlots(doctor, s.Now(), s.horizonDays, s.bookings.Bookings())
	if err != nil {
		s.logger.Error("Failed to generate slots",
			zap.Error(err),
			zap.String("doctor_id", doctor.ID),
		)
		return nil, err
	}
	return slots, nil
}

// SlotAt находит слот врача по дате и времени начала
func (s *DoctorService) SlotAt(doctor model.Doctor, date, startTime string) (model.TimeSlot, error) {
	slots, err := s.Slots(doctor)
	if err != nil {
		return model.TimeSlot{}, err
	}

	for _, slot := range slots[date] {
		if slot.StartTime == startTime {
			return slot, nil
		}
	}
	return model.TimeSlot{}, ErrSlotNotFound
}

// IsSlotPast начался ли слот на текущий момент
func (s *DoctorService) IsSlotPast(slot model.TimeSlot) bool {
	return model.Booking{Date: slot.Date, StartTime: slot.StartTime}.IsPast(s.Now())
}
