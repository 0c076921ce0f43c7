package common

import (
	"context"

	"github.com/Freeeeeet/doctor_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/doctor_booking_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// WithDoctor создаёт HandlerContext и находит врача по ключу из callback.
// При ошибке сам отвечает пользователю.
func WithDoctor(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
	doctorKey string,
	handler func(*HandlerContext, model.Doctor),
) {
	hc := NewHandlerContext(ctx, b, callback, h)

	doctor, err := h.DoctorService.DoctorByKey(doctorKey)
	if err != nil {
		h.Logger.Warn("Doctor lookup failed",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.String("doctor_key", doctorKey),
			zap.Error(err))
		hc.AnswerAlert(ErrorMessage(err))
		return
	}

	handler(hc, doctor)
}

// HandleError логирует ошибку операции и показывает её пользователю
func HandleError(hc *HandlerContext, err error, operation string) {
	hc.Handler.Logger.Error("Operation failed",
		zap.String("operation", operation),
		zap.Int64("telegram_id", hc.TelegramID),
		zap.Error(err))
	hc.AnswerAlert(ErrorMessage(err))
}
