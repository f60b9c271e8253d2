package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"video_tagger/internal/domain"
	"video_tagger/internal/messaging"
)

const maxMessageBytes = 1 << 20

type api struct {
	handler messaging.Handler
	logger  *slog.Logger
}

// NewRouter exposes the message handler over HTTP and websocket.
func NewRouter(handler messaging.Handler, logger *slog.Logger) http.Handler {
	a := &api{
		handler: handler,
		logger:  logger.With("component", "http_api"),
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(a.logger))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/messages", a.postMessage)
	r.Get("/ws", a.serveWS)

	return r
}

func (a *api) postMessage(w http.ResponseWriter, r *http.Request) {
	var msg domain.Message
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMessageBytes)).Decode(&msg); err != nil {
		writeJSON(w, http.StatusBadRequest, domain.ErrorReply(&domain.ParseError{Op: "decode message", Err: err}))
		return
	}

	// Failed syncs are still answered with 200; the outcome is in the body.
	writeJSON(w, http.StatusOK, a.handler.Handle(r.Context(), msg))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", chimiddleware.GetReqID(r.Context()),
			)
		})
	}
}
