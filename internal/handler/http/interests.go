package http

import (
	"net/http"

	"github.com/MKhiriev/go-meet/internal/utils"
)

func (h *Handler) listInterests(w http.ResponseWriter, r *http.Request) {
	interests, err := h.services.InterestService.ListInterests(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, interests, http.StatusOK)
}
