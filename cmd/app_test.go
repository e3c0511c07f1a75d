package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"maxdata/internal/config"
	"maxdata/internal/models"
	"maxdata/internal/repositories"
	"maxdata/utils"
)

func newTestApp(t *testing.T, auth bool) *application {
	t.Helper()
	cfg := config.Defaults()
	cfg.Auth.Enabled = auth
	cfg.Auth.Secret = "test-secret"
	cfg.Photos.UploadDir = t.TempDir()

	st := &stores{
		listings: repositories.NewMemoryListingStore(),
		orders:   repositories.NewMemoryOrderStore(),
		sessions: repositories.NewMemorySessionStore(),
	}
	storage, err := utils.NewLocalStorage(cfg.Photos.UploadDir, cfg.Photos.UploadURL)
	if err != nil {
		t.Fatal(err)
	}
	logger := log.New(io.Discard, "", 0)
	app, err := initializeApp(cfg, st, storage, logger, logger)
	if err != nil {
		t.Fatalf("initializeApp: %v", err)
	}
	return app
}

func TestRoutesWithoutAuth(t *testing.T) {
	srv := httptest.NewServer(newTestApp(t, false).routes())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/listings", "application/json", strings.NewReader(`{"address":"1 A St, Town FL"}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Frame-Options") != "deny" {
		t.Fatal("expected security headers")
	}

	resp, err = http.Get(srv.URL + "/listings/defaults")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "123 Main St, Miami FL") {
		t.Fatalf("unexpected defaults response %d %s", resp.StatusCode, body)
	}

	resp, err = http.Get(srv.URL + "/listings/unknown-id")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestRoutesWithAuth(t *testing.T) {
	app := newTestApp(t, true)
	srv := httptest.NewServer(app.routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/listings")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}

	agentToken, _ := app.tokens.NewJWT("agent-1", models.RoleAgent, time.Hour)
	adminToken, _ := app.tokens.NewJWT("admin-1", models.RoleAdmin, time.Hour)

	cases := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"agent lists", http.MethodGet, "/listings", agentToken, http.StatusOK},
		{"agent cannot clear", http.MethodDelete, "/listings", agentToken, http.StatusForbidden},
		{"admin clears", http.MethodDelete, "/listings", adminToken, http.StatusNoContent},
		{"garbage token", http.MethodGet, "/listings", "garbage", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest(tc.method, srv.URL+tc.path, nil)
			req.Header.Set("Authorization", "Bearer "+tc.token)
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatal(err)
			}
			resp.Body.Close()
			if resp.StatusCode != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, resp.StatusCode)
			}
		})
	}
}

func TestRecoverPanic(t *testing.T) {
	app := newTestApp(t, false)
	h := app.recoverPanic(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError || rec.Header().Get("Connection") != "close" {
		t.Fatalf("unexpected response %d %v", rec.Code, rec.Header())
	}
}

func TestAskMaxWebSocket(t *testing.T) {
	srv := httptest.NewServer(newTestApp(t, false).routes())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ask-max/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	send := func(msg askMaxWSMessage) askMaxWSResponse {
		t.Helper()
		if err := conn.WriteJSON(msg); err != nil {
			t.Fatalf("write: %v", err)
		}
		var resp askMaxWSResponse
		conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		if err := conn.ReadJSON(&resp); err != nil {
			t.Fatalf("read: %v", err)
		}
		return resp
	}

	resp := send(askMaxWSMessage{Type: "start", RequestID: "1", Prompt: "  "})
	if resp.Type != askMaxWSTypeError || resp.RequestID != "1" {
		t.Fatalf("expected error for blank prompt, got %#v", resp)
	}

	resp = send(askMaxWSMessage{Type: "start", Prompt: "Create a listing for 8 Dune Ct"})
	if resp.Type != askMaxWSTypeSession || resp.Session == nil || resp.Session.CurrentField != models.FieldPrice {
		t.Fatalf("unexpected start response %#v", resp)
	}

	for _, answer := range []string{"$410,000", "today", "yes"} {
		resp = send(askMaxWSMessage{Type: "reply", Answer: answer})
		if resp.Type != askMaxWSTypeSession {
			t.Fatalf("reply %q failed: %#v", answer, resp)
		}
	}
	if !resp.Session.ShowContinue {
		t.Fatalf("expected continue to be shown, got %#v", resp.Session)
	}

	resp = send(askMaxWSMessage{Type: "continue"})
	if resp.Type != askMaxWSTypeSession || resp.Session.Listing.Address != "8 Dune Ct" {
		t.Fatalf("unexpected continue response %#v", resp)
	}

	resp = send(askMaxWSMessage{Type: "dance"})
	if resp.Type != askMaxWSTypeError || resp.Error != errUnknownWSMessage.Error() {
		t.Fatalf("expected unknown type error, got %#v", resp)
	}
}

func TestBoostCleanerStopsWithContext(t *testing.T) {
	app := newTestApp(t, false)
	ctx, cancel := context.WithCancel(context.Background())
	startBoostCleaner(ctx, app.checkoutService, time.Millisecond, time.Second, nil, nil)
	time.Sleep(5 * time.Millisecond)
	cancel()
}
