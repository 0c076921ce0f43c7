package callbacktypes

import (
	"context"

	"github.com/Freeeeeet/doctor_booking_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Handler содержит общие зависимости для всех callback handlers
type Handler struct {
	DoctorService  *service.DoctorService
	BookingService *service.BookingService
	Logger         *zap.Logger

	// Функции-хэндлеры из основного контроллера
	HandleMyBookings func(ctx context.Context, b *bot.Bot, update *models.Update)
}
