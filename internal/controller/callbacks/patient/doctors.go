package patient

import (
	"context"
	"fmt"
	"html"

	"github.com/Freeeeeet/doctor_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/doctor_booking_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/doctor_booking_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/doctor_booking_bot/internal/model"
	"github.com/Freeeeeet/doctor_booking_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleDoctorsPage показывает страницу списка врачей
func HandleDoctorsPage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	page, err := common.ParsePage(callback.Data)
	if err != nil {
		common.HandleError(hc, err, "parse doctors page")
		return
	}

	text, kb := common.BuildDoctorsListScreen(h.DoctorService.Doctors(), page)

	// после фото недели редактировать нечего, шлём новое сообщение
	if hc.Message != nil && len(hc.Message.Photo) > 0 {
		hc.DeleteMessage()
		err = hc.SendMessage(text, kb)
	} else {
		err = hc.EditMessage(text, kb)
	}
	if err != nil {
		h.Logger.Error("Failed to show doctors page", zap.Error(err), zap.Int("page", page))
	}

	hc.Answer("")
}

// HandleDoctor показывает дни приёма врача на горизонте
func HandleDoctor(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	key, err := common.ParseArg(callback.Data, common.ViewDoctor)
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

		text, kb := common.BuildDoctorScreen(doctor, slots, h.DoctorService.HorizonDays(), h.DoctorService.IsSlotPast)

		if hc.Message != nil && len(hc.Message.Photo) > 0 {
			hc.DeleteMessage()
			err = hc.SendMessage(text, kb)
		} else {
			err = hc.EditMessage(text, kb)
		}
		if err != nil {
			h.Logger.Error("Failed to show doctor", zap.Error(err), zap.String("doctor_id", doctor.ID))
		}

		hc.Answer("")
	})
}

// HandleWeek отправляет картинку ближайших 7 дней врача
func HandleWeek(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	key, err := common.ParseArg(callback.Data, common.ViewWeek)
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

		now := h.DoctorService.Now()
		png, err := common.GenerateWeekImage(doctor, now, slots, h.DoctorService.IsSlotPast, now)
		if err != nil {
			common.HandleError(hc, err, "render week image")
			return
		}

		caption := fmt.Sprintf("🗓 <b>%s</b>: next 7 days", html.EscapeString(doctor.Name))
		kb := keyboard.NewBuilder().
			AddBackButton(common.DoctorData(service.Key(doctor.ID))).
			Build()

		if err := hc.SendPhoto(png, caption, kb); err != nil {
			common.HandleError(hc, err, "send week image")
			return
		}

		h.Logger.Info("Week image sent",
			zap.String("doctor_id", doctor.ID),
			zap.Int("bytes", len(png)),
			zap.Int64("telegram_id", hc.TelegramID),
		)
		hc.Answer("")
	})
}
