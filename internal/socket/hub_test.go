package socket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
)

// dialPair upgrades a connection through an httptest server and returns the
// server side, which is the side the hub writes to.
func dialPair(t *testing.T) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	serverConns := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		serverConns <- conn
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	clientConn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { clientConn.Close() })

	// Drain so server writes never block on a full buffer.
	go func() {
		for {
			if _, _, err := clientConn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	serverConn := <-serverConns
	t.Cleanup(func() { serverConn.Close() })
	return serverConn
}

func TestHubConcurrentBroadcasts(t *testing.T) {
	hub := NewHub()
	hub.Register(1, dialPair(t))
	hub.Register(2, dialPair(t))

	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.Broadcast(map[string]string{"type": "notifications"})
		}()
	}
	wg.Wait()
}

func TestHubConcurrentSendAndBroadcast(t *testing.T) {
	hub := NewHub()
	hub.Register(1, dialPair(t))

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			hub.Broadcast(map[string]string{"type": "notifications"})
		}()
		go func() {
			defer wg.Done()
			if err := hub.Send(1, map[string]string{"type": "notifications"}); err != nil {
				t.Errorf("Send: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestHubSendToOfflineClient(t *testing.T) {
	hub := NewHub()
	if err := hub.Send(99, map[string]string{"type": "notifications"}); err != nil {
		t.Fatalf("Send to offline client: %v", err)
	}
}
