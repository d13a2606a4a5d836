package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/internal/service"
	"github.com/MKhiriev/go-meet/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrAuthentication: http.StatusUnauthorized,
	service.ErrValidation:     http.StatusBadRequest,
	service.ErrNotFound:       http.StatusNotFound,
	service.ErrConflict:       http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError answers with the status of err's category. Categorized
// errors expose their reason; anything else becomes a bare 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := http.StatusText(status)

	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		message = svcErr.Reason
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}

// writeBadRequest answers 400 with err's message.
func writeBadRequest(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Debug().Err(err).Msg("bad request")
	utils.WriteError(w, err.Error(), http.StatusBadRequest)
}
