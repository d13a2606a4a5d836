package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/internal/utils"
	"github.com/MKhiriev/go-meet/models"
)

// loginTelegram verifies the init data of the request body and answers with
// the account and its profile. A token for the account is returned in the
// "Authorization" header.
func (h *Handler) loginTelegram(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeBadRequest(w, r, errInvalidJSON)
		return
	}

	result, err := h.services.AuthService.Login(ctx, request.InitData)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Debug().Str("user_id", result.User.ID).Bool("has_profile", result.Profile != nil).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, result.User.ID)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, "", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, result, http.StatusOK)
}
