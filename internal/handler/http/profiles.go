// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/internal/service"
	"github.com/MKhiriev/go-meet/internal/utils"
	"github.com/MKhiriev/go-meet/models"
	"github.com/go-chi/chi/v5"
)

// multipartMemory is the part of a multipart form kept in memory; the rest
// spills to temporary files.
const multipartMemory = 1 << 20

// getFeed answers with the discovery feed of ?currentUserId.
func (h *Handler) getFeed(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFeedFilter(r.URL.Query())
	if err != nil {
		writeBadRequest(w, r, err)
		return
	}

	if !actingUserMatches(r, filter.ViewerID) {
		utils.WriteError(w, ErrIdentityMismatch.Error(), http.StatusUnauthorized)
		return
	}

	profiles, err := h.services.ProfileService.Feed(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, profiles, http.StatusOK)
}

// createProfile creates or replaces the profile described by a multipart
// form. An optional "photo" file replaces the stored photo.
func (h *Handler) createProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			utils.WriteError(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		log.Err(err).Msg("multipart form was not parsed")
		writeBadRequest(w, r, errInvalidForm)
		return
	}
	defer r.MultipartForm.RemoveAll()

	data := models.ProfileData{
		UserID:    r.FormValue("userId"),
		Name:      r.FormValue("name"),
		BirthDate: r.FormValue("birthDate"),
		City:      r.FormValue("city"),
		About:     r.FormValue("about"),
	}

	interestIDs, err := parseInterestIDsField(r.FormValue("interestIds"))
	if err != nil {
		writeBadRequest(w, r, err)
		return
	}
	data.InterestIDs = interestIDs

	if !actingUserMatches(r, data.UserID) {
		utils.WriteError(w, ErrIdentityMismatch.Error(), http.StatusUnauthorized)
		return
	}

	var photo *models.Photo
	file, header, err := r.FormFile("photo")
	switch {
	case err == nil:
		defer file.Close()
		photo = &models.Photo{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Content:     file,
		}
	case errors.Is(err, http.ErrMissingFile):
	default:
		log.Err(err).Msg("photo part was not read")
		writeBadRequest(w, r, errInvalidForm)
		return
	}

	profile, err := h.services.ProfileService.SaveProfile(ctx, data, photo)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusCreated)
}

func (h *Handler) getOwnProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeBadRequest(w, r, missingParam("userId"))
		return
	}

	if !actingUserMatches(r, userID) {
		utils.WriteError(w, ErrIdentityMismatch.Error(), http.StatusUnauthorized)
		return
	}

	profile, err := h.services.ProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

// updateOwnProfile saves the JSON profile of the body and answers with the
// full stored profile.
func (h *Handler) updateOwnProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var data models.ProfileData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeBadRequest(w, r, errInvalidJSON)
		return
	}

	if data.UserID == "" {
		writeBadRequest(w, r, missingParam("userId"))
		return
	}

	if !actingUserMatches(r, data.UserID) {
		utils.WriteError(w, ErrIdentityMismatch.Error(), http.StatusUnauthorized)
		return
	}

	if _, err := h.services.ProfileService.SaveProfile(ctx, data, nil); err != nil {
		writeServiceError(w, r, err)
		return
	}

	profile, err := h.services.ProfileService.GetProfile(ctx, data.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if !utils.IsUUID(userID) {
		writeServiceError(w, r, service.ErrProfileNotFound)
		return
	}

	profile, err := h.services.ProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

// parseFeedFilter reads the feed query. Malformed values are rejected
// rather than ignored.
func parseFeedFilter(query url.Values) (models.FeedFilter, error) {
	filter := models.FeedFilter{
		ViewerID: strings.TrimSpace(query.Get("currentUserId")),
		City:     query.Get("city"),
	}
	if filter.ViewerID == "" {
		return models.FeedFilter{}, missingParam("currentUserId")
	}

	var err error
	if filter.AgeFrom, err = parseOptionalInt(query, "ageFrom"); err != nil {
		return models.FeedFilter{}, err
	}
	if filter.AgeTo, err = parseOptionalInt(query, "ageTo"); err != nil {
		return models.FeedFilter{}, err
	}

	values := query["interests"]
	if len(values) == 0 {
		values = query["interestIds"]
	}
	if filter.InterestIDs, err = parseIDList(values); err != nil {
		return models.FeedFilter{}, err
	}

	return filter, nil
}

func parseOptionalInt(query url.Values, key string) (*int, error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", errInvalidQuery, key)
	}
	return &v, nil
}

// parseIDList accepts comma-separated ids spread over any number of values.
func parseIDList(values []string) ([]int64, error) {
	var ids []int64
	for _, value := range values {
		for part := range strings.SplitSeq(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}

			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil || id <= 0 {
				return nil, fmt.Errorf("%w: interests must be positive integers", errInvalidQuery)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// parseInterestIDsField decodes the JSON array form field. A missing field
// clears the interest set.
func parseInterestIDsField(raw string) ([]int64, error) {
	ids := []int64{}
	if strings.TrimSpace(raw) == "" {
		return ids, nil
	}

	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("%w: interestIds must be a JSON array of integers", errInvalidForm)
	}
	return ids, nil
}
