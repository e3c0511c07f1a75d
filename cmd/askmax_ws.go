package main

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"maxdata/internal/askmax"
	"maxdata/internal/repositories"
	"maxdata/internal/services"
)

const (
	askMaxWSTypeStart    = "start"
	askMaxWSTypeReply    = "reply"
	askMaxWSTypeContinue = "continue"
	askMaxWSTypeGet      = "get"
	askMaxWSTypeSession  = "session"
	askMaxWSTypeError    = "error"

	askMaxWSCallTimeout = 10 * time.Second
)

type askMaxWSMessage struct {
	Type       string `json:"type"`
	RequestID  string `json:"request_id,omitempty"`
	SessionID  string `json:"session_id,omitempty"`
	Prompt     string `json:"prompt,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
	Answer     string `json:"answer,omitempty"`
}

type askMaxWSResponse struct {
	Type      string                `json:"type"`
	RequestID string                `json:"request_id,omitempty"`
	Error     string                `json:"error,omitempty"`
	Session   *services.SessionView `json:"session,omitempty"`
}

// AskMaxWebSocketHandler drives Ask MAX sessions over one connection. A
// connection may start a session and keep replying to it, or attach to a
// session created over REST by sending its id.
func (app *application) AskMaxWebSocketHandler(w http.ResponseWriter, r *http.Request) {
	if app.askMaxService == nil {
		app.clientError(w, http.StatusServiceUnavailable)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.errorLog.Println("ask max ws upgrade error:", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(readLimit)
	conn.SetReadDeadline(time.Now().Add(readDeadline))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	stop := make(chan struct{})
	defer close(stop)
	go pingLoop(conn, pingInterval, stop)

	var current string
	for {
		var msg askMaxWSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				app.errorLog.Println("ask max ws read error:", err)
			}
			_ = writeClose(conn, websocket.CloseNormalClosure, "read error")
			return
		}
		conn.SetReadDeadline(time.Now().Add(readDeadline))

		sessionID := strings.TrimSpace(msg.SessionID)
		if sessionID == "" {
			sessionID = current
		}

		ctx, cancel := context.WithTimeout(r.Context(), askMaxWSCallTimeout)
		view, err := app.dispatchAskMax(ctx, msg, sessionID)
		cancel()
		if err != nil {
			app.sendAskMaxWSError(conn, msg.RequestID, err)
			continue
		}
		current = view.ID

		resp := askMaxWSResponse{Type: askMaxWSTypeSession, RequestID: msg.RequestID, Session: &view}
		if err := writeAskMaxWSResponse(conn, resp); err != nil {
			app.errorLog.Println("ask max ws write error:", err)
			return
		}
	}
}

var errUnknownWSMessage = errors.New("unknown message type")

func (app *application) dispatchAskMax(ctx context.Context, msg askMaxWSMessage, sessionID string) (services.SessionView, error) {
	switch strings.TrimSpace(msg.Type) {
	case askMaxWSTypeStart:
		return app.askMaxService.Start(ctx, msg.Prompt, msg.Suggestion)
	case askMaxWSTypeReply:
		return app.askMaxService.Reply(ctx, sessionID, msg.Answer)
	case askMaxWSTypeContinue:
		return app.askMaxService.Continue(ctx, sessionID)
	case askMaxWSTypeGet:
		return app.askMaxService.Get(ctx, sessionID)
	}
	return services.SessionView{}, errUnknownWSMessage
}

func (app *application) sendAskMaxWSError(conn *websocket.Conn, requestID string, err error) {
	message := err.Error()
	if !isAskMaxClientError(err) {
		app.errorLog.Println("ask max ws error:", err)
		message = "internal error"
	}
	resp := askMaxWSResponse{Type: askMaxWSTypeError, RequestID: requestID, Error: message}
	if err := writeAskMaxWSResponse(conn, resp); err != nil {
		app.errorLog.Println("ask max ws send error failed:", err)
	}
}

func isAskMaxClientError(err error) bool {
	for _, target := range []error{
		errUnknownWSMessage,
		askmax.ErrEmptyPrompt,
		askmax.ErrEmptyReply,
		askmax.ErrNoPendingField,
		askmax.ErrNotReady,
		askmax.ErrInvalidStep,
		repositories.ErrSessionNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func writeAskMaxWSResponse(conn *websocket.Conn, resp askMaxWSResponse) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	return conn.WriteJSON(resp)
}
