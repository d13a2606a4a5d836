package http

import (
	"net/http"

	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/internal/utils"
	"github.com/go-chi/chi/v5"
)

// listUsers answers with every account and its profile in creation order.
// Development only.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

// verifyUser marks an account VERIFIED. Development only.
func (h *Handler) verifyUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	user, err := h.services.UserService.VerifyUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", user.ID).Msg("user verified via dev route")
	utils.WriteJSON(w, user, http.StatusOK)
}
