package callbacks

import (
	"context"

	"github.com/Freeeeeet/doctor_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/doctor_booking_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Handler обертка для callbacktypes.Handler с методами
type Handler struct {
	*callbacktypes.Handler
}

func NewHandler(
	doctorService *service.DoctorService,
	bookingService *service.BookingService,
	logger *zap.Logger,
	handleMyBookings func(ctx context.Context, b *bot.Bot, update *models.Update),
) *Handler {
	inner := &callbacktypes.Handler{
		DoctorService:    doctorService,
		BookingService:   bookingService,
		Logger:           logger,
		HandleMyBookings: handleMyBookings,
	}
	return &Handler{Handler: inner}
}

// HandleCallbackQuery главный обработчик callback queries
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	Route(ctx, b, update.CallbackQuery, h.Handler)
}
