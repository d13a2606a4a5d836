// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/internal/store"
	"github.com/MKhiriev/go-meet/models"
)

type profileService struct {
	profileRepository store.ProfileRepository
	photoStorage      store.PhotoStorage

	// now is the clock the feed computes ages against.
	now func() time.Time

	logger *logger.Logger
}

func NewProfileService(profiles store.ProfileRepository, photos store.PhotoStorage, now func() time.Time, logger *logger.Logger) ProfileService {
	if now == nil {
		now = time.Now
	}
	return &profileService{
		profileRepository: profiles,
		photoStorage:      photos,
		now:               now,
		logger:            logger,
	}
}

func (s *profileService) SaveProfile(ctx context.Context, data models.ProfileData, photo *models.Photo) (models.Profile, error) {
	log := logger.FromContext(ctx)

	birthDate, err := models.ParseDate(strings.TrimSpace(data.BirthDate))
	if err != nil {
		return models.Profile{}, validationError(err)
	}

	// without an upload the stored photo is kept
	var photoURL string
	if photo != nil {
		photoURL, err = s.photoStorage.SavePhoto(ctx, *photo)
		if err != nil {
			log.Err(err).Str("func", "*profileService.SaveProfile").Str("user_id", data.UserID).Msg("photo upload failed")
			return models.Profile{}, fmt.Errorf("photo upload failed: %w", fromStoreError(err))
		}
	}

	profile := models.Profile{
		UserID:    data.UserID,
		Name:      strings.TrimSpace(data.Name),
		BirthDate: birthDate,
		City:      strings.TrimSpace(data.City),
		About:     strings.TrimSpace(data.About),
		PhotoURL:  photoURL,
	}

	saved, err := s.profileRepository.UpsertProfile(ctx, profile, uniqueIDs(data.InterestIDs))
	if err != nil {
		log.Err(err).Str("func", "*profileService.SaveProfile").Str("user_id", data.UserID).Msg("profile upsert failed")
		if photo != nil {
			// the request context may be the reason the upsert failed
			if delErr := s.photoStorage.DeletePhoto(context.WithoutCancel(ctx), photoURL); delErr != nil {
				log.Err(delErr).Str("func", "*profileService.SaveProfile").Str("photo_url", photoURL).Msg("orphaned photo left behind")
			}
		}
		return models.Profile{}, fmt.Errorf("profile upsert failed: %w", fromStoreError(err))
	}

	log.Info().Str("user_id", saved.UserID).Int64("profile_id", saved.ID).Msg("profile saved")
	return saved, nil
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	profile, err := s.profileRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		return models.Profile{}, fromStoreError(err)
	}
	return profile, nil
}

// Feed returns verified profiles matching filter, newest first.
func (s *profileService) Feed(ctx context.Context, filter models.FeedFilter) ([]models.Profile, error) {
	log := logger.FromContext(ctx)

	filter.City = strings.TrimSpace(filter.City)
	filter.InterestIDs = uniqueIDs(filter.InterestIDs)

	profiles, err := s.profileRepository.FindProfiles(ctx, filter, s.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*profileService.Feed").Str("viewer_id", filter.ViewerID).Msg("feed query failed")
		return nil, fmt.Errorf("feed query failed: %w", fromStoreError(err))
	}

	return profiles, nil
}

// uniqueIDs drops duplicates and keeps nil distinct from empty.
func uniqueIDs(ids []int64) []int64 {
	if ids == nil {
		return nil
	}

	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
