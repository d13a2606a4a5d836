package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/internal/mock"
	"github.com/MKhiriev/go-meet/internal/store"
	"github.com/MKhiriev/go-meet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func intPtr(v int) *int { return &v }

func newTestProfileSvc(ctrl *gomock.Controller) (ProfileService, *mock.MockProfileRepository, *mock.MockPhotoStorage) {
	profiles := mock.NewMockProfileRepository(ctrl)
	photos := mock.NewMockPhotoStorage(ctrl)

	svc := NewProfileValidationService(clock).
		Wrap(NewProfileService(profiles, photos, clock, logger.Nop()))
	return svc, profiles, photos
}

func validProfileData() models.ProfileData {
	return models.ProfileData{
		UserID:      userA,
		Name:        "  Анна ",
		BirthDate:   "1998-03-14",
		City:        "Москва ",
		About:       "Люблю йогу",
		InterestIDs: []int64{3, 1, 3},
	}
}

// ── SaveProfile ──────────────────────────────────────────────────────────────

func TestProfileService_SaveProfile_TrimsAndDeduplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, profiles, _ := newTestProfileSvc(ctrl)
	ctx := context.Background()

	profiles.EXPECT().UpsertProfile(ctx, gomock.Any(), []int64{3, 1}).DoAndReturn(
		func(_ context.Context, p models.Profile, _ []int64) (models.Profile, error) {
			assert.Equal(t, "Анна", p.Name)
			assert.Equal(t, "Москва", p.City)
			assert.Equal(t, "1998-03-14", p.BirthDate.String())
			assert.Empty(t, p.PhotoURL)
			p.ID = 11
			return p, nil
		},
	)

	saved, err := svc.SaveProfile(ctx, validProfileData(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(11), saved.ID)
}

func TestProfileService_SaveProfile_StoresPhotoFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, profiles, photos := newTestProfileSvc(ctrl)
	ctx := context.Background()
	photo := &models.Photo{Filename: "me.png", Content: strings.NewReader("png")}

	gomock.InOrder(
		photos.EXPECT().SavePhoto(ctx, *photo).Return("http://localhost:8080/uploads/profiles/x.png", nil),
		profiles.EXPECT().UpsertProfile(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p models.Profile, _ []int64) (models.Profile, error) {
				assert.Equal(t, "http://localhost:8080/uploads/profiles/x.png", p.PhotoURL)
				return p, nil
			},
		),
	)

	_, err := svc.SaveProfile(ctx, validProfileData(), photo)
	require.NoError(t, err)
}

func TestProfileService_SaveProfile_RemovesPhotoWhenUpsertFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, profiles, photos := newTestProfileSvc(ctrl)
	ctx := context.Background()
	photo := &models.Photo{Filename: "me.png", Content: strings.NewReader("png")}
	const url = "http://localhost:8080/uploads/profiles/x.png"

	gomock.InOrder(
		photos.EXPECT().SavePhoto(ctx, *photo).Return(url, nil),
		profiles.EXPECT().UpsertProfile(ctx, gomock.Any(), gomock.Any()).Return(models.Profile{}, errors.New("connection reset")),
		photos.EXPECT().DeletePhoto(gomock.Any(), url).Return(errors.New("disk busy")),
	)

	_, err := svc.SaveProfile(ctx, validProfileData(), photo)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.NotContains(t, err.Error(), "disk busy")
}

func TestProfileService_SaveProfile_UpsertFailureWithoutPhoto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, profiles, _ := newTestProfileSvc(ctrl)
	profiles.EXPECT().UpsertProfile(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Profile{}, errors.New("connection reset"))

	_, err := svc.SaveProfile(context.Background(), validProfileData(), nil)
	require.Error(t, err)
}

func TestProfileService_SaveProfile_UnsupportedPhoto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, photos := newTestProfileSvc(ctrl)
	photos.EXPECT().SavePhoto(gomock.Any(), gomock.Any()).Return("", store.ErrUnsupportedPhoto)

	_, err := svc.SaveProfile(context.Background(), validProfileData(), &models.Photo{Filename: "a.exe"})
	require.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, store.ErrUnsupportedPhoto)
}

func TestProfileService_SaveProfile_NilInterestsKeepsSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, profiles, _ := newTestProfileSvc(ctrl)
	data := validProfileData()
	data.InterestIDs = nil

	profiles.EXPECT().UpsertProfile(gomock.Any(), gomock.Any(), gomock.Nil()).Return(models.Profile{}, nil)

	_, err := svc.SaveProfile(context.Background(), data, nil)
	require.NoError(t, err)
}

func TestProfileService_SaveProfile_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.ProfileData)
	}{
		{name: "bad user id", mutate: func(d *models.ProfileData) { d.UserID = "42" }},
		{name: "blank name", mutate: func(d *models.ProfileData) { d.Name = "   " }},
		{name: "bad birth date", mutate: func(d *models.ProfileData) { d.BirthDate = "14.03.1998" }},
		{name: "future birth date", mutate: func(d *models.ProfileData) { d.BirthDate = "2030-01-01" }},
		{name: "blank city", mutate: func(d *models.ProfileData) { d.City = "" }},
		{name: "about too long", mutate: func(d *models.ProfileData) { d.About = strings.Repeat("я", 2001) }},
		{name: "non-positive interest", mutate: func(d *models.ProfileData) { d.InterestIDs = []int64{0} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, _, _ := newTestProfileSvc(ctrl)
			data := validProfileData()
			tt.mutate(&data)

			_, err := svc.SaveProfile(context.Background(), data, nil)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestProfileService_SaveProfile_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, profiles, _ := newTestProfileSvc(ctrl)
	profiles.EXPECT().UpsertProfile(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Profile{}, store.ErrUserNotFound)

	_, err := svc.SaveProfile(context.Background(), validProfileData(), nil)
	require.ErrorIs(t, err, ErrUnknownUser)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── GetProfile ───────────────────────────────────────────────────────────────

func TestProfileService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, profiles, _ := newTestProfileSvc(ctrl)

	profiles.EXPECT().GetProfileByUserID(gomock.Any(), userA).Return(models.Profile{ID: 1, UserID: userA}, nil)
	profiles.EXPECT().GetProfileByUserID(gomock.Any(), userB).Return(models.Profile{}, store.ErrProfileNotFound)

	p, err := svc.GetProfile(context.Background(), userA)
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)

	_, err = svc.GetProfile(context.Background(), userB)
	require.ErrorIs(t, err, ErrProfileNotFound)

	_, err = svc.GetProfile(context.Background(), "not-a-uuid")
	require.ErrorIs(t, err, ErrValidation)
}

// ── Feed ─────────────────────────────────────────────────────────────────────

func TestProfileService_Feed_PassesNormalisedFilterAndClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, profiles, _ := newTestProfileSvc(ctrl)

	want := models.FeedFilter{
		ViewerID:    userA,
		City:        "Казань",
		AgeFrom:     intPtr(20),
		AgeTo:       intPtr(30),
		InterestIDs: []int64{2, 5},
	}
	profiles.EXPECT().FindProfiles(gomock.Any(), want, fixedNow).Return([]models.Profile{{ID: 9}}, nil)

	got, err := svc.Feed(context.Background(), models.FeedFilter{
		ViewerID:    userA,
		City:        " Казань ",
		AgeFrom:     intPtr(20),
		AgeTo:       intPtr(30),
		InterestIDs: []int64{2, 5, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, []models.Profile{{ID: 9}}, got)
}

func TestProfileService_Feed_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		filter models.FeedFilter
	}{
		{name: "no viewer", filter: models.FeedFilter{}},
		{name: "negative age", filter: models.FeedFilter{ViewerID: userA, AgeFrom: intPtr(-1)}},
		{name: "inverted range", filter: models.FeedFilter{ViewerID: userA, AgeFrom: intPtr(30), AgeTo: intPtr(20)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, _, _ := newTestProfileSvc(ctrl)
			_, err := svc.Feed(context.Background(), tt.filter)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestProfileService_Feed_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, profiles, _ := newTestProfileSvc(ctrl)
	storeErr := errors.New("timeout")
	profiles.EXPECT().FindProfiles(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, storeErr)

	_, err := svc.Feed(context.Background(), models.FeedFilter{ViewerID: userA})
	require.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrValidation)
}
