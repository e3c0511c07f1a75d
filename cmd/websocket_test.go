package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// Run with -race: pings fire while the handler goroutine keeps writing frames.
func TestPingLoopAlongsideWrites(t *testing.T) {
	const frames = 200

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()

		stop := make(chan struct{})
		defer close(stop)
		go pingLoop(conn, time.Millisecond, stop)

		for i := 0; i < frames; i++ {
			resp := askMaxWSResponse{Type: askMaxWSTypeSession, RequestID: "r"}
			if err := writeAskMaxWSResponse(conn, resp); err != nil {
				t.Errorf("write %d: %v", i, err)
				return
			}
			time.Sleep(200 * time.Microsecond)
		}
		_ = writeClose(conn, websocket.CloseNormalClosure, "done")
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	pings := 0
	conn.SetPingHandler(func(data string) error {
		pings++
		return conn.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(writeDeadline))
	})
	conn.SetReadDeadline(time.Now().Add(10 * time.Second))

	got := 0
	for {
		var resp askMaxWSResponse
		if err := conn.ReadJSON(&resp); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				t.Fatalf("read after %d frames: %v", got, err)
			}
			break
		}
		if resp.Type != askMaxWSTypeSession {
			t.Fatalf("unexpected frame %#v", resp)
		}
		got++
	}
	if got != frames {
		t.Fatalf("expected %d frames, got %d", frames, got)
	}
	if pings == 0 {
		t.Fatal("expected pings interleaved with frames")
	}
}
