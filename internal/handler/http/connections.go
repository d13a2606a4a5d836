package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/internal/utils"
	"github.com/MKhiriev/go-meet/models"
	"github.com/go-chi/chi/v5"
)

const connectionCreatedMessage = "connection request sent"

func (h *Handler) createConnection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.CreateConnectionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeBadRequest(w, r, errInvalidJSON)
		return
	}

	if !actingUserMatches(r, request.RequesterID) {
		utils.WriteError(w, ErrIdentityMismatch.Error(), http.StatusUnauthorized)
		return
	}

	connection, err := h.services.ConnectionService.Create(ctx, request)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ConnectionCreatedResponse{
		Message:    connectionCreatedMessage,
		Connection: connection,
	}, http.StatusCreated)
}

func (h *Handler) respondToConnection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	connectionID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeBadRequest(w, r, errInvalidConnectionID)
		return
	}

	var request models.RespondConnectionRequest
	if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeBadRequest(w, r, errInvalidJSON)
		return
	}

	if !actingUserMatches(r, request.CurrentUserID) {
		utils.WriteError(w, ErrIdentityMismatch.Error(), http.StatusUnauthorized)
		return
	}

	connection, err := h.services.ConnectionService.Respond(ctx, connectionID, request)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, connection, http.StatusOK)
}

// listIncomingConnections answers with the requests addressed to ?userId,
// newest first.
func (h *Handler) listIncomingConnections(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeBadRequest(w, r, missingParam("userId"))
		return
	}

	if !actingUserMatches(r, userID) {
		utils.WriteError(w, ErrIdentityMismatch.Error(), http.StatusUnauthorized)
		return
	}

	incoming, err := h.services.ConnectionService.ListIncoming(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, incoming, http.StatusOK)
}
