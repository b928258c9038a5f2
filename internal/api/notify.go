package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sitepulse/visit-notifier/internal/notification"
)

// sendTimeout bounds the SMTP delivery for one request.
const sendTimeout = 30 * time.Second

// Caller-facing messages are deliberately generic; failure detail goes to
// the operator log only.
const (
	msgMethodNotAllowed = "Method not allowed"
	msgConfigError      = "Server configuration error"
	msgSendFailure      = "Failed to send notification"
	msgSent             = "Notification sent successfully"
)

// response is the JSON body shape every non-preflight response uses.
type response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// handleNotify relays one website event as an email notification.
// OPTIONS answers the CORS preflight with no content; any method other than
// POST is rejected. The SMTP configuration is checked before the body is
// parsed so that a misconfigured deployment never half-processes a payload.
func (s *Server) handleNotify(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusNoContent)
		return
	case http.MethodPost:
	default:
		s.metrics.Rejected.WithLabelValues("method").Inc()
		writeJSON(w, http.StatusMethodNotAllowed, response{Status: "error", Message: msgMethodNotAllowed})
		return
	}

	if err := s.smtp.Validate(); err != nil || s.provider == nil {
		s.logger.Error("request rejected: incomplete SMTP configuration",
			slog.Any("error", err),
		)
		s.metrics.Rejected.WithLabelValues("config").Inc()
		writeJSON(w, http.StatusInternalServerError, response{Status: "error", Message: msgConfigError})
		return
	}

	var ev notification.Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		s.logger.Error("failed to decode event payload", slog.Any("error", err))
		s.metrics.Rejected.WithLabelValues("payload").Inc()
		writeJSON(w, http.StatusInternalServerError, response{Status: "error", Message: msgSendFailure})
		return
	}

	deliveryID := uuid.NewString()
	s.logger.Info("event received",
		slog.String("delivery_id", deliveryID),
		slog.String("event_type", ev.EventType),
		slog.String("event", ev.Event),
		slog.String("page", ev.Page),
		slog.String("user_id", ev.UserID),
		slog.String("client_ip", ev.ClientIP),
	)

	msg := notification.Render(ev)

	ctx, cancel := context.WithTimeout(r.Context(), sendTimeout)
	defer cancel()

	if err := s.provider.Send(ctx, msg); err != nil {
		s.logger.Error("failed to send notification",
			slog.String("delivery_id", deliveryID),
			slog.String("provider", s.provider.Name()),
			slog.Any("error", err),
		)
		s.metrics.Deliveries.WithLabelValues("failed").Inc()
		writeJSON(w, http.StatusInternalServerError, response{Status: "error", Message: msgSendFailure})
		return
	}

	s.logger.Info("notification sent",
		slog.String("delivery_id", deliveryID),
		slog.String("subject", msg.Subject),
	)
	s.metrics.Deliveries.WithLabelValues("sent").Inc()
	writeJSON(w, http.StatusOK, response{Status: "success", Message: msgSent})
}
