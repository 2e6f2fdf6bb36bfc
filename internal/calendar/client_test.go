package calendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"title":"CPI Release","date":"2026-09-01T12:30:00Z","impact":"high","currency":"USD","description":"Monthly inflation print"},
			{"title":"ECB Rate Decision","date":"2026-09-03T11:45:00Z","impact":"high","currency":"EUR"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	events, err := client.FetchEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "CPI Release", events[0].Title)
	assert.Equal(t, "USD", events[0].Currency)
	assert.Equal(t, 2026, events[0].Date.Year())
}

func TestFetchEventsNoAPIKeySkipsHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	events, err := client.FetchEvents(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestFetchEventsNon200Fails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "k")
	_, err := client.FetchEvents(context.Background())
	assert.Error(t, err)
}

func TestFetchEventsBadJSONFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "k")
	_, err := client.FetchEvents(context.Background())
	assert.Error(t, err)
}
