package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Freeeeeet/doctor_booking_bot/internal/app"
	"github.com/Freeeeeet/doctor_booking_bot/internal/config"
	"github.com/Freeeeeet/doctor_booking_bot/internal/controller"
	"github.com/Freeeeeet/doctor_booking_bot/internal/directory"
	"github.com/Freeeeeet/doctor_booking_bot/internal/repository"
	"github.com/Freeeeeet/doctor_booking_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.RequireToken(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting doctor booking bot",
		zap.String("environment", cfg.Environment),
		zap.Bool("postgres", cfg.UseDatabase()),
		zap.String("timezone", cfg.Location().String()),
		zap.Int("horizon_days", cfg.HorizonDays),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openBookingStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open booking store", zap.Error(err))
	}
	defer closeStore()

	loc := cfg.Location()
	bookingService := service.NewBookingService(store, logger.Named("bookings"),
		service.WithClock(func() time.Time { return time.Now().In(loc) }),
	)
	if err := bookingService.Load(ctx); err != nil {
		logger.Fatal("Failed to load bookings", zap.Error(err))
	}

	directoryClient := directory.NewClient(cfg.DirectoryURL, cfg.DirectoryTimeout, logger.Named("directory"))
	doctorService := service.NewDoctorService(directoryClient, bookingService, cfg.HorizonDays, loc, logger.Named("doctors"))

	scheduler := app.NewScheduler(doctorService, cfg.RefreshCron, logger.Named("scheduler"))
	if err := scheduler.Start(ctx); err != nil {
		logger.Fatal("Failed to start scheduler", zap.Error(err))
	}
	defer scheduler.Stop()

	var botController *controller.BotController
	b, err := bot.New(cfg.TelegramToken,
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
			botController.DefaultHandler(ctx, b, update)
		}),
		bot.WithErrorsHandler(func(err error) {
			logger.Warn("Telegram API error", zap.Error(err))
		}),
	)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController = controller.NewBotController(b, doctorService, bookingService, logger.Named("bot"))
	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Warn("Failed to register bot commands menu", zap.Error(err))
	}

	botController.Start(ctx)
	logger.Info("Shutting down")
}

// openBookingStore Postgres при заданном DB_DSN, иначе JSON-файл
func openBookingStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.BookingStore, func(), error) {
	if !cfg.UseDatabase() {
		logger.Info("Using file booking store", zap.String("path", cfg.BookingsFile))
		return repository.NewFileBookingStore(cfg.BookingsFile), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping postgres: %w", err)
	}

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger.Named("migrator"))
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	defer migrator.Close()

	if err := migrator.Run(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	logger.Info("Using postgres booking store")
	return repository.NewBookingRepository(pool, logger.Named("repository")), pool.Close, nil
}
