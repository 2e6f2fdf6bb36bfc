package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/NAPONYAHASINE/journal/internal/models"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHubPushFromConcurrentGoroutines pushes to one connection from many
// goroutines at once; every write must be serialized and delivered
func TestHubPushFromConcurrentGoroutines(t *testing.T) {
	hub := NewWSHub()
	registered := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := hub.add(7, conn)
		close(registered)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				hub.remove(7, client)
				conn.Close()
				return
			}
		}
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()
	<-registered

	const writers = 8
	const perWriter = 50
	received := make(chan struct{}, writers*perWriter)
	go func() {
		for {
			var n models.Notification
			if err := conn.ReadJSON(&n); err != nil {
				return
			}
			received <- struct{}{}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				hub.Push(7, &models.Notification{UserID: 7, Message: "goal update"})
			}
		}()
	}
	wg.Wait()

	for i := 0; i < writers*perWriter; i++ {
		select {
		case <-received:
		case <-time.After(5 * time.Second):
			t.Fatalf("received %d of %d pushed notifications", i, writers*perWriter)
		}
	}
}

// TestPushToUserWithoutConnectionsIsNoop checks pushing into the void
func TestPushToUserWithoutConnectionsIsNoop(t *testing.T) {
	hub := NewWSHub()
	hub.Push(42, &models.Notification{UserID: 42, Message: "nobody listening"})
	assert.Empty(t, hub.clients)
}
