package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/Freeeeeet/doctor_booking_bot/internal/model"
)

// FileBookingStore хранит бронирования JSON-файлом. Запись атомарная: temp файл + rename.
type FileBookingStore struct {
	mu   sync.Mutex
	path string
}

// NewFileBookingStore создаёт файловое хранилище
func NewFileBookingStore(path string) *FileBookingStore {
	return &FileBookingStore{path: path}
}

// ReadAll читает список бронирований из файла
func (s *FileBookingStore) ReadAll(_ context.Context) ([]model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []model.Booking{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrStoreFailure, s.path, err)
	}

	if len(data) == 0 {
		return []model.Booking{}, nil
	}

	var bookings []model.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrStoreFailure, s.path, err)
	}
	if bookings == nil {
		bookings = []model.Booking{}
	}

	return bookings, nil
}

// WriteAll перезаписывает файл целиком
func (s *FileBookingStore) WriteAll(_ context.Context, bookings []model.Booking) error {
	if bookings == nil {
		bookings = []model.Booking{}
	}

	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("%w: encode bookings: %v", ErrStoreFailure, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrStoreFailure, s.path, err)
	}

	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".bookings-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
