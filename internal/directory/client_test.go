package directory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const payload = `[
  {"name":"Dr. John Smith","timezone":"Australia/Sydney","day_of_week":"monday","available_at":" 9:00AM","available_until":"5:30PM"},
  {"name":"","timezone":"UTC","day_of_week":"monday","available_at":"9:00AM","available_until":"5:30PM"},
  {"name":"Dr. John Smith","timezone":"Australia/Sydney","day_of_week":"tuesday","available_at":"8:00AM","available_until":"4:00PM"}
]`

func TestClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	records, err := NewClient(srv.URL, time.Second, nil).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Dr. John Smith", records[0].Name)
	assert.Equal(t, " 9:00AM", records[0].AvailableAt)
	assert.Equal(t, "tuesday", records[1].DayOfWeek)
}

func TestClient_Fetch_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second, nil).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.Contains(t, err.Error(), "502")
}

func TestClient_Fetch_MalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second, nil).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestClient_Fetch_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, time.Second, nil).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestClient_Fetch_EmptyURL(t *testing.T) {
	_, err := NewClient("", 0, nil).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestClient_Fetch_NullPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`null`))
	}))
	defer srv.Close()

	records, err := NewClient(srv.URL, time.Second, nil).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.Nil(t, records)
}

func TestClient_Fetch_EmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	records, err := NewClient(srv.URL, time.Second, nil).Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}
