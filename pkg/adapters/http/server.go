package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/molcanvas/pkg/domain"
	"github.com/aretw0/molcanvas/pkg/host"
	"github.com/aretw0/molcanvas/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Host is the part of host.Host the HTTP harness drives.
type Host interface {
	View() host.View
	Engine() ports.Engine
}

// Server exposes a mounted host over HTTP.
type Server struct {
	Host     Host
	Streams  *StreamManager
	Gatherer prometheus.Gatherer
	Version  string
	Logger   *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithStreams publishes events from sm on GET /events.
// Register sm.Hooks() on the host so there is something to stream.
func WithStreams(sm *StreamManager) Option {
	return func(s *Server) { s.Streams = sm }
}

// WithGatherer serves g on GET /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) { s.Gatherer = g }
}

// WithVersion sets the version reported by GET /info.
func WithVersion(v string) Option {
	return func(s *Server) { s.Version = v }
}

// WithLogger configures the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.Logger = l }
}

// NewHandler creates a new HTTP handler for h.
func NewHandler(h Host, opts ...Option) http.Handler {
	server := &Server{Host: h, Version: "dev"}
	for _, opt := range opts {
		opt(server)
	}
	if server.Logger == nil {
		server.Logger = slog.Default()
	}
	if server.Streams == nil {
		server.Streams = NewStreamManager()
	}

	r := chi.NewRouter()
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Get("/state", server.GetState)
	r.Post("/cursor", server.PostCursor)
	r.Post("/message", server.PostMessage)
	r.Get("/events", server.SubscribeEvents)
	if server.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(server.Gatherer, promhttp.HandlerOpts{}))
	}
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Logger, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Logger, map[string]string{
		"app":     "molcanvas-http",
		"version": strings.TrimSpace(s.Version),
	})
}

// GetState handles the GET /state request.
func (s *Server) GetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Logger, s.Host.View())
}

// PostCursor handles the POST /cursor request by dispatching the event on the
// engine's cursor channel.
func (s *Server) PostCursor(w http.ResponseWriter, r *http.Request) {
	var evt domain.CursorEvent
	if err := json.NewDecoder(r.Body).Decode(&evt); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("PostCursor: Invalid request body", "error", err)
		return
	}
	s.dispatch(w, domain.ChannelCursor, evt)
}

// PostMessage handles the POST /message request by dispatching the payload on
// the engine's message channel.
func (s *Server) PostMessage(w http.ResponseWriter, r *http.Request) {
	var msg domain.MessagePayload
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("PostMessage: Invalid request body", "error", err)
		return
	}
	s.dispatch(w, domain.ChannelMessage, msg)
}

func (s *Server) dispatch(w http.ResponseWriter, name domain.ChannelName, payload domain.Payload) {
	eng := s.Host.Engine()
	if eng == nil {
		http.Error(w, domain.ErrNotAttached.Error(), http.StatusConflict)
		return
	}
	ch := eng.Channel(name)
	if ch == nil {
		http.Error(w, fmt.Sprintf("%v: %s", domain.ErrUnknownChannel, name), http.StatusNotFound)
		return
	}
	ch.Dispatch(payload)
	s.Logger.Debug("dispatched", "channel", name)
	writeJSON(w, s.Logger, s.Host.View())
}

// SubscribeEvents handles the GET /events request (SSE).
// The optional "watch" query parameter filters by event type (comma separated).
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.Logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	var watch []domain.EventType
	if v := r.URL.Query().Get("watch"); v != "" {
		for _, t := range strings.Split(v, ",") {
			watch = append(watch, domain.EventType(strings.TrimSpace(t)))
		}
	}

	ch, cancel := s.Streams.Subscribe(watch...)
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.Logger.Info("SSE Client Disconnected")
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, ev.Data)
			flusher.Flush()
		}
	}
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "error", err)
	}
}
