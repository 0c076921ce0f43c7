package patient

import (
	"context"
	"errors"

	"github.com/Freeeeeet/doctor_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/doctor_booking_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/doctor_booking_bot/internal/model"
	"github.com/Freeeeeet/doctor_booking_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// bookableSlot ищет слот и проверяет, что его ещё можно занять
func bookableSlot(h *callbacktypes.Handler, doctor model.Doctor, ref common.SlotRef) (model.TimeSlot, error) {
	slot, err := h.DoctorService.SlotAt(doctor, ref.Date, ref.StartTime)
	if err != nil {
		return model.TimeSlot{}, err
	}
	if slot.IsBooked {
		return model.TimeSlot{}, service.ErrSlotAlreadyBooked
	}
	if h.DoctorService.IsSlotPast(slot) {
		return model.TimeSlot{}, service.ErrSlotInPast
	}
	return slot, nil
}

// HandleBook показывает подтверждение записи на слот
func HandleBook(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	ref, err := common.ParseSlotRef(callback.Data, common.BookSlot)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(err))
		return
	}

	common.WithDoctor(ctx, b, callback, h, ref.DoctorKey, func(hc *common.HandlerContext, doctor model.Doctor) {
		slot, err := bookableSlot(h, doctor, ref)
		if err != nil {
			h.Logger.Info("Slot is not bookable",
				zap.Error(err),
				zap.String("doctor_id", doctor.ID),
				zap.String("date", ref.Date),
				zap.String("start_time", ref.StartTime),
			)
			hc.AnswerAlert(common.ErrorMessage(err))
			return
		}

		text, kb := common.BuildConfirmBookingScreen(doctor, slot)
		if err := hc.EditMessage(text, kb); err != nil {
			h.Logger.Error("Failed to show booking confirmation", zap.Error(err))
		}
		hc.Answer("")
	})
}

// HandleConfirmBook создаёт запись. Конфликт проверяется заново в BookingService.
func HandleConfirmBook(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	ref, err := common.ParseSlotRef(callback.Data, common.ConfirmBook)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(err))
		return
	}

	common.WithDoctor(ctx, b, callback, h, ref.DoctorKey, func(hc *common.HandlerContext, doctor model.Doctor) {
		slot, err := h.DoctorService.SlotAt(doctor, ref.Date, ref.StartTime)
		if err != nil {
			common.HandleError(hc, err, "find slot")
			return
		}

		booking, err := h.BookingService.Confirm(hc.Ctx, hc.TelegramID, doctor, slot)
		if err != nil {
			if errors.Is(err, service.ErrSlotAlreadyBooked) || errors.Is(err, service.ErrSlotInPast) {
				hc.AnswerAlert(common.ErrorMessage(err))
				// обновляем экран дня, чтобы занятый слот стал неактивным
				if slots, slotsErr := h.DoctorService.Slots(doctor); slotsErr == nil {
					text, kb := common.BuildDayScreen(doctor, ref.Date, slots[ref.Date], h.DoctorService.IsSlotPast)
					hc.EditMessage(text, kb)
				}
				return
			}
			common.HandleError(hc, err, "confirm booking")
			return
		}

		text, kb := common.BuildBookingSuccessScreen(booking)
		if err := hc.EditMessage(text, kb); err != nil {
			h.Logger.Error("Failed to show booking success", zap.Error(err), zap.String("booking_id", booking.ID))
		}
		hc.Answer("✅ Booked")
	})
}

// HandleCancelBooking спрашивает подтверждение отмены
func HandleCancelBooking(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	bookingID, err := common.ParseArg(callback.Data, common.CancelBooking)
	if err != nil {
		common.HandleError(hc, err, "parse booking id")
		return
	}

	booking, err := h.BookingService.GetByID(bookingID)
	if err != nil {
		common.HandleError(hc, err, "get booking")
		return
	}
	if booking.UserID != hc.TelegramID {
		common.HandleError(hc, service.ErrNotBookingOwner, "get booking")
		return
	}

	text, kb := common.BuildCancelConfirmScreen(booking)
	if err := hc.EditMessage(text, kb); err != nil {
		h.Logger.Error("Failed to show cancel confirmation", zap.Error(err))
	}
	hc.Answer("")
}

// HandleConfirmCancel отменяет запись
func HandleConfirmCancel(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	bookingID, err := common.ParseArg(callback.Data, common.ConfirmCancel)
	if err != nil {
		common.HandleError(hc, err, "parse booking id")
		return
	}

	booking, err := h.BookingService.Cancel(hc.Ctx, hc.TelegramID, bookingID)
	if err != nil {
		common.HandleError(hc, err, "cancel booking")
		return
	}

	text, kb := common.BuildCanceledScreen(booking)
	if err := hc.EditMessage(text, kb); err != nil {
		h.Logger.Error("Failed to show cancel result", zap.Error(err))
	}
	hc.Answer("🗑 Canceled")
}
