package patient

import (
	"context"

	"github.com/Freeeeeet/doctor_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/doctor_booking_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/doctor_booking_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleDay показывает слоты врача на выбранную дату
func HandleDay(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	key, date, err := common.ParseDay(callback.Data)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(err))
		return
	}

	common.WithDoctor(ctx, b, callback, h, key, func(hc *common.HandlerContext, doctor model.Doctor) {
		slots, err := h.DoctorService.Slots(doctor)
		if err != nil {
			common.HandleError(hc, err, "generate doctor slots")
			return
		}

		text, kb := common.BuildDayScreen(doctor, date, slots[date], h.DoctorService.IsSlotPast)
		if err := hc.EditMessage(text, kb); err != nil {
			h.Logger.Error("Failed to show day",
				zap.Error(err),
				zap.String("doctor_id", doctor.ID),
				zap.String("date", date),
			)
		}

		hc.Answer("")
	})
}
