package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sitepulse/visit-notifier/internal/config"
	"github.com/sitepulse/visit-notifier/internal/notification"
)

// Server holds all dependencies for the notification endpoint.
type Server struct {
	smtp     config.SMTPConfig
	provider notification.Provider
	logger   *slog.Logger
	metrics  *Metrics
}

// New creates a new API Server. provider may be nil when the SMTP
// configuration is incomplete; the handler then fails closed per request.
func New(smtp config.SMTPConfig, provider notification.Provider, logger *slog.Logger, metrics *Metrics) *Server {
	return &Server{
		smtp:     smtp,
		provider: provider,
		logger:   logger,
		metrics:  metrics,
	}
}

// Mount registers the notification endpoint under the given router. The
// endpoint answers at /notify and at the root path for platforms that route
// the whole host to this service.
func (s *Server) Mount(r chi.Router) {
	r.HandleFunc("/notify", s.handleNotify)
	r.HandleFunc("/", s.handleNotify)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
