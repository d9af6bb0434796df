package brackets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubBroadcastsToRoom(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil)
	go hub.Run(ctx)

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := &Client{Hub: hub, Conn: conn, Send: make(chan []byte, 4), Room: r.URL.Query().Get("room")}
		hub.Subscribe(client)
		go client.WritePump()
		go client.ReadPump()
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?room=finals"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.RoomSize("finals") == 1 }, time.Second, 10*time.Millisecond)

	hub.BroadcastToRoom("lobby", WebSocketMessage{Type: "IGNORED"})
	hub.BroadcastToRoom("finals", WebSocketMessage{Type: MessageBracketGenerated, Payload: "x", RoomID: "finals"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, body, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg WebSocketMessage
	require.NoError(t, json.Unmarshal(body, &msg))
	assert.Equal(t, MessageBracketGenerated, msg.Type)
	assert.Equal(t, "finals", msg.RoomID)

	conn.Close()
	require.Eventually(t, func() bool { return hub.RoomSize("finals") == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHubStoppedRejectsSubscribers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(nil)
	go hub.Run(ctx)
	cancel()

	select {
	case <-hub.Done():
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}
	assert.False(t, hub.Subscribe(&Client{Hub: hub, Room: "finals"}))
}

func TestReadPumpReturnsAfterHubStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(nil)
	go hub.Run(ctx)

	finished := make(chan struct{})
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := &Client{Hub: hub, Conn: conn, Send: make(chan []byte, 1), Room: "finals"}
		if !hub.Subscribe(client) {
			conn.Close()
			return
		}
		go func() {
			client.ReadPump()
			close(finished)
		}()
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return hub.RoomSize("finals") == 1 }, time.Second, 10*time.Millisecond)

	cancel()
	<-hub.Done()
	conn.Close()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("read pump blocked on a stopped hub")
	}
}
