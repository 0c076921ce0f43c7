package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

var (
	ErrMissingDirectoryURL = errors.New("DIRECTORY_URL is required but not set")
	ErrMissingToken        = errors.New("TELEGRAM_TOKEN is required but not set")
)

const (
	defaultEnvironment      = "development"
	defaultBookingsFile     = "./var/bookings.json"
	defaultDirectoryTimeout = 15 * time.Second
	defaultHorizonDays      = 14
	defaultRefreshCron      = "*/30 * * * *"
	defaultMigrationsPath   = "./migrations"
	defaultTimezone         = "Local"
)

type Config struct {
	TelegramToken    string
	DBDSN            string
	Environment      string
	BookingsFile     string
	DirectoryURL     string
	DirectoryTimeout time.Duration
	HorizonDays      int
	RefreshCron      string
	MigrationsPath   string
	Timezone         string

	location *time.Location
}

func Load() (*Config, error) {
	// .env необязателен
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	} else {
		log.Println("Loaded configuration from .env file")
	}

	return FromEnv()
}

// FromEnv собирает конфиг из переменных окружения и проверяет его
func FromEnv() (*Config, error) {
	cfg := &Config{
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		DBDSN:          os.Getenv("DB_DSN"),
		Environment:    getEnv("ENV", defaultEnvironment),
		BookingsFile:   getEnv("BOOKINGS_FILE", defaultBookingsFile),
		DirectoryURL:   os.Getenv("DIRECTORY_URL"),
		RefreshCron:    getEnv("REFRESH_CRON", defaultRefreshCron),
		MigrationsPath: getEnv("MIGRATIONS_PATH", defaultMigrationsPath),
		Timezone:       getEnv("TIMEZONE", defaultTimezone),
	}

	timeout, err := time.ParseDuration(getEnv("DIRECTORY_TIMEOUT", defaultDirectoryTimeout.String()))
	if err != nil {
		return nil, fmt.Errorf("parse DIRECTORY_TIMEOUT: %w", err)
	}
	cfg.DirectoryTimeout = timeout

	horizon, err := strconv.Atoi(getEnv("HORIZON_DAYS", strconv.Itoa(defaultHorizonDays)))
	if err != nil {
		return nil, fmt.Errorf("parse HORIZON_DAYS: %w", err)
	}
	cfg.HorizonDays = horizon

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения и загружает часовой пояс
func (c *Config) Validate() error {
	if c.DirectoryURL == "" {
		return ErrMissingDirectoryURL
	}
	if c.HorizonDays <= 0 {
		return fmt.Errorf("HORIZON_DAYS must be positive, got %d", c.HorizonDays)
	}
	if c.DirectoryTimeout <= 0 {
		return fmt.Errorf("DIRECTORY_TIMEOUT must be positive, got %s", c.DirectoryTimeout)
	}
	if _, err := cron.ParseStandard(c.RefreshCron); err != nil {
		return fmt.Errorf("parse REFRESH_CRON %q: %w", c.RefreshCron, err)
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("load TIMEZONE %q: %w", c.Timezone, err)
	}
	c.location = loc

	return nil
}

// RequireToken нужен только бинарю бота
func (c *Config) RequireToken() error {
	if c.TelegramToken == "" {
		return ErrMissingToken
	}
	return nil
}

// Location часовой пояс для "сегодня" и проверки прошедших записей
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

// UseDatabase true, если бронирования хранятся в Postgres
func (c *Config) UseDatabase() bool {
	return c.DBDSN != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
