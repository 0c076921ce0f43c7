package controller

import (
	"context"

	"github.com/Freeeeeet/doctor_booking_bot/internal/controller/callbacks"
	"github.com/Freeeeeet/doctor_booking_bot/internal/controller/handlers"
	"github.com/Freeeeeet/doctor_booking_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	doctorService *service.DoctorService,
	bookingService *service.BookingService,
	logger *zap.Logger,
) *BotController {
	cmdHandlers := handlers.NewHandlers(doctorService, bookingService, logger)

	callbackHandler := callbacks.NewHandler(
		doctorService,
		bookingService,
		logger,
		cmdHandlers.HandleMyBookings,
	)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд и callback
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/doctors", bot.MatchTypeExact, c.handlers.HandleDoctors)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/mybookings", bot.MatchTypeExact, c.handlers.HandleMyBookings)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	return c.setCommands(ctx)
}

// DefaultHandler отвечает на всё, что не совпало с командами
func (c *BotController) DefaultHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	c.handlers.HandleHelp(ctx, b, update)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Main menu"},
		{Command: "doctors", Description: "👩‍⚕️ Browse doctors and book"},
		{Command: "mybookings", Description: "📅 My bookings"},
		{Command: "help", Description: "❓ Help"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})
	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("Bot commands menu set")
	return nil
}

// Start запускает long polling, блокирует до отмены ctx
func (c *BotController) Start(ctx context.Context) {
	c.logger.Info("Starting bot")
	c.bot.Start(ctx)
}
