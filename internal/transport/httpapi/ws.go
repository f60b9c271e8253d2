package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"video_tagger/internal/domain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Envelope pairs a websocket request with its reply.
type Envelope struct {
	ID      string          `json:"id"`
	Message *domain.Message `json:"message,omitempty"`
	Reply   *domain.Reply   `json:"reply,omitempty"`
}

func (a *api) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		a.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	var (
		writeMu sync.Mutex
		wg      sync.WaitGroup
	)
	defer wg.Wait()

	// In-flight handlers are cancelled once the socket stops reading.
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	a.logger.Debug("websocket connected", "remote", r.RemoteAddr)

	reply := func(id string, rep domain.Reply) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteJSON(Envelope{ID: id, Reply: &rep}); err != nil {
			a.logger.Warn("websocket write failed", "id", id, "error", err)
		}
	}

	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				a.logger.Warn("websocket read failed", "error", err)
			}
			return
		}

		var env Envelope
		if err := json.Unmarshal(frame, &env); err != nil {
			// Answer what can be answered; the socket stays open.
			var head struct {
				ID string `json:"id"`
			}
			_ = json.Unmarshal(frame, &head)
			a.logger.Warn("undecodable websocket frame", "id", head.ID, "error", err)
			reply(head.ID, domain.ErrorReply(&domain.ParseError{Op: "decode envelope", Err: err}))
			continue
		}

		wg.Add(1)
		go func(env Envelope) {
			defer wg.Done()

			if env.Message == nil {
				reply(env.ID, domain.ErrorReply(&domain.ParseError{Op: "decode envelope", Err: errNoMessage}))
				return
			}
			reply(env.ID, a.handler.Handle(ctx, *env.Message))
		}(env)
	}
}

var errNoMessage = errors.New("envelope has no message")
