package handlers

import (
	"context"
	"fmt"
	"html"

	"github.com/Freeeeeet/doctor_booking_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/doctor_booking_bot/internal/controller/callbacks/common/formatting"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const helpText = "📚 <b>Help</b>\n\n" +
	"/start - Main menu\n" +
	"/doctors - Browse doctors and book a free slot\n" +
	"/mybookings - Your bookings, cancel upcoming ones\n" +
	"/help - Show this help\n\n" +
	"Appointments are 30 minutes long. Slots that are already booked or have started " +
	"are shown but cannot be selected."

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	name := ""
	if update.Message.From != nil {
		name = update.Message.From.FirstName
	}

	text, kb := common.BuildMainMenuScreen()
	if name != "" {
		text = fmt.Sprintf("👋 Hi, %s!\n\n", html.EscapeString(name)) + text
	}

	h.sendScreen(ctx, b, update.Message.Chat.ID, text, kb)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	h.sendScreen(ctx, b, update.Message.Chat.ID, helpText, nil)
}

// HandleDoctors обрабатывает команду /doctors
func (h *Handlers) HandleDoctors(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	if !h.doctorService.Loaded() {
		// справочник ещё ни разу не загрузился, пробуем сейчас
		if err := h.doctorService.Refresh(ctx); err != nil {
			h.sendError(ctx, b, update.Message.Chat.ID, common.ErrorMessage(err))
			return
		}
	}

	text, kb := common.BuildDoctorsListScreen(h.doctorService.Doctors(), 0)
	h.sendScreen(ctx, b, update.Message.Chat.ID, text, kb)
}

// HandleMyBookings обрабатывает команду /mybookings: по сообщению на запись
func (h *Handlers) HandleMyBookings(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	bookings := h.bookingService.ListForUser(telegramID)

	h.logger.Info("HandleMyBookings called",
		zap.Int64("telegram_id", telegramID),
		zap.Int("bookings", len(bookings)))

	if len(bookings) == 0 {
		text, kb := common.BuildEmptyBookingsScreen()
		h.sendScreen(ctx, b, chatID, text, kb)
		return
	}

	h.sendScreen(ctx, b, chatID, fmt.Sprintf("📅 <b>Your bookings</b> (%s)", formatting.PluralizeBookings(len(bookings))), nil)

	for _, booking := range bookings {
		text, kb := common.BuildBookingCard(booking, h.bookingService.IsPast(booking))
		h.sendScreen(ctx, b, chatID, text, kb)
	}
}
