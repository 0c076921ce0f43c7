package common

import (
	"context"

	"github.com/Freeeeeet/doctor_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleBackToMain заменяет текущий экран главным меню
func HandleBackToMain(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := NewHandlerContext(ctx, b, callback, h)
	if hc.Message == nil {
		hc.Answer("❌ Error")
		return
	}

	// фото недели нельзя отредактировать в текст, поэтому удаляем и шлём заново
	hc.DeleteMessage()

	text, keyboard := BuildMainMenuScreen()
	if err := hc.SendMessage(text, keyboard); err != nil {
		h.Logger.Error("Failed to send main menu", zap.Error(err))
	}

	hc.Answer("")
}

// HandleMyBookingsButton показывает записи пользователя из главного меню
func HandleMyBookingsButton(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	msg := GetMessageFromCallback(callback)
	if msg == nil {
		AnswerCallback(ctx, b, callback.ID, "❌ Error")
		return
	}

	update := &models.Update{
		Message: &models.Message{
			Chat: models.Chat{ID: msg.Chat.ID},
			From: &callback.From,
		},
	}

	h.HandleMyBookings(ctx, b, update)
	AnswerCallback(ctx, b, callback.ID, "")
}
