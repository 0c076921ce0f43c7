package callbacks

import (
	"context"
	"strings"

	"github.com/Freeeeeet/doctor_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/doctor_booking_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/doctor_booking_bot/internal/controller/callbacks/patient"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandlerFunc сигнатура обработчика callback
type HandlerFunc func(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler)

// Resolve выбирает обработчик по callback data; nil если формат неизвестен
func Resolve(data string) HandlerFunc {
	switch {
	case data == common.BackToMain:
		return common.HandleBackToMain
	case data == common.MyBookings:
		return common.HandleMyBookingsButton
	case data == common.Noop:
		return handleNoop

	case strings.HasPrefix(data, common.DoctorsPage):
		return patient.HandleDoctorsPage
	case strings.HasPrefix(data, common.ViewDoctor):
		return patient.HandleDoctor
	case strings.HasPrefix(data, common.ViewDay):
		return patient.HandleDay
	case strings.HasPrefix(data, common.ViewWeek):
		return patient.HandleWeek

	case strings.HasPrefix(data, common.ConfirmBook):
		return patient.HandleConfirmBook
	case strings.HasPrefix(data, common.BookSlot):
		return patient.HandleBook
	case strings.HasPrefix(data, common.CancelBooking):
		return patient.HandleCancelBooking
	case strings.HasPrefix(data, common.ConfirmCancel):
		return patient.HandleConfirmCancel
	}

	return nil
}

// Route распределяет callback query по обработчикам
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data

	h.Logger.Info("Routing callback",
		zap.String("data", data),
		zap.Int64("user_id", callback.From.ID),
		zap.String("user_name", callback.From.FirstName))

	handler := Resolve(data)
	if handler == nil {
		h.Logger.Warn("Unknown callback", zap.String("data", data))
		common.AnswerCallback(ctx, b, callback.ID, "❌ Unknown action")
		return
	}

	handler(ctx, b, callback, h)
}

func handleNoop(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, _ *callbacktypes.Handler) {
	common.AnswerCallback(ctx, b, callback.ID, "")
}
