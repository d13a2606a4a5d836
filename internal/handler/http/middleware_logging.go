package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access line per request. Server errors are logged
// at error level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		var event *zerolog.Event
		if lw.status >= http.StatusInternalServerError {
			event = log.Error()
		} else {
			event = log.Info()
		}

		event.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
