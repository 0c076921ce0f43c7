package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Freeeeeet/doctor_booking_bot/internal/model"
	"go.uber.org/zap"
)

// ErrSourceUnavailable справочник врачей недоступен или вернул некорректные данные
var ErrSourceUnavailable = errors.New("doctor directory unavailable")

const (
	defaultTimeout = 15 * time.Second
	maxBodyBytes   = 8 << 20
)

// Client читает плоский список расписаний врачей из HTTP справочника
type Client struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// NewClient создаёт клиента справочника
func NewClient(url string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Fetch загружает все записи справочника. Любая сетевая ошибка, не-2xx ответ
// или битый JSON возвращаются как ErrSourceUnavailable.
func (c *Client) Fetch(ctx context.Context) ([]model.DoctorScheduleRecord, error) {
	if c.url == "" {
		return nil, fmt.Errorf("%w: directory url is empty", ErrSourceUnavailable)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrSourceUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, fmt.Errorf("%w: unexpected status %d", ErrSourceUnavailable, resp.StatusCode)
	}

	var records []model.DoctorScheduleRecord
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decode payload: %v", ErrSourceUnavailable, err)
	}
	// null вместо списка считаем сбоем, а не пустым справочником
	if records == nil {
		return nil, fmt.Errorf("%w: empty payload", ErrSourceUnavailable)
	}

	valid := records[:0]
	for i, rec := range records {
		if strings.TrimSpace(rec.Name) == "" {
			c.logger.Warn("Skipping directory record without name", zap.Int("index", i))
			continue
		}
		valid = append(valid, rec)
	}

	c.logger.Debug("Doctor directory fetched",
		zap.Int("records", len(valid)),
		zap.Duration("took", time.Since(started)),
	)

	return valid, nil
}
