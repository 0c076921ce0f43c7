package handlers

import (
	"github.com/Freeeeeet/doctor_booking_bot/internal/service"
	"go.uber.org/zap"
)

// Handlers зависимости для обработки команд
type Handlers struct {
	doctorService  *service.DoctorService
	bookingService *service.BookingService
	logger         *zap.Logger
}

func NewHandlers(
	doctorService *service.DoctorService,
	bookingService *service.BookingService,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		doctorService:  doctorService,
		bookingService: bookingService,
		logger:         logger,
	}
}
