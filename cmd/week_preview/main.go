package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Freeeeeet/doctor_booking_bot/internal/app"
	"github.com/Freeeeeet/doctor_booking_bot/internal/config"
	"github.com/Freeeeeet/doctor_booking_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/doctor_booking_bot/internal/directory"
	"github.com/Freeeeeet/doctor_booking_bot/internal/repository"
	"github.com/Freeeeeet/doctor_booking_bot/internal/service"
	"go.uber.org/zap"
)

// week_preview рисует week.png для одного врача из справочника: удобно проверять картинку без Telegram
func main() {
	doctorID := flag.String("doctor", "", "doctor id (default: first doctor in the directory)")
	out := flag.String("out", "week.png", "output file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DirectoryTimeout+5*time.Second)
	defer cancel()

	bookings := service.NewBookingService(repository.NewFileBookingStore(cfg.BookingsFile), logger)
	if err := bookings.Load(ctx); err != nil {
		logger.Fatal("Failed to load bookings", zap.Error(err))
	}

	doctors := service.NewDoctorService(
		directory.NewClient(cfg.DirectoryURL, cfg.DirectoryTimeout, logger),
		bookings, cfg.HorizonDays, cfg.Location(), logger,
	)
	if err := doctors.Refresh(ctx); err != nil {
		logger.Fatal("Failed to fetch directory", zap.Error(err))
	}

	list := doctors.Doctors()
	if len(list) == 0 {
		logger.Fatal("Directory is empty")
	}

	doctor := list[0]
	if *doctorID != "" {
		if doctor, err = doctors.DoctorByID(*doctorID); err != nil {
			logger.Fatal("Doctor not found", zap.String("doctor_id", *doctorID))
		}
	}

	slots, err := doctors.Slots(doctor)
	if err != nil {
		logger.Fatal("Failed to generate slots", zap.Error(err))
	}

	now := doctors.Now()
	png, err := common.GenerateWeekImage(doctor, now, slots, doctors.IsSlotPast, now)
	if err != nil {
		logger.Fatal("Failed to render week image", zap.Error(err))
	}

	if err := os.WriteFile(*out, png, 0o644); err != nil {
		logger.Fatal("Failed to save image", zap.Error(err))
	}

	fmt.Printf("Saved %s for %s (%d days with slots, %d slots)\n", *out, doctor.Name, len(slots.Dates()), slots.Total())
}
