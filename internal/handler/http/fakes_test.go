package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-meet/internal/config"
	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/internal/service"
	"github.com/MKhiriev/go-meet/models"
)

const (
	userA = "0199f3a4-6f6e-7a51-9c1b-4a3e2d1c0b01"
	userB = "0199f3a4-6f6e-7a51-9c1b-4a3e2d1c0b02"
)

// ─────────────────────────────────────────────
// service fakes
// ─────────────────────────────────────────────

type fakeAuthService struct {
	loginFn       func(ctx context.Context, initData string) (models.LoginResult, error)
	createTokenFn func(ctx context.Context, userID string) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeAuthService) Login(ctx context.Context, initData string) (models.LoginResult, error) {
	return f.loginFn(ctx, initData)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, userID string) (models.Token, error) {
	return f.createTokenFn(ctx, userID)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return f.parseTokenFn(ctx, tokenString)
}

type fakeProfileService struct {
	saveProfileFn func(ctx context.Context, data models.ProfileData, photo *models.Photo) (models.Profile, error)
	getProfileFn  func(ctx context.Context, userID string) (models.Profile, error)
	feedFn        func(ctx context.Context, filter models.FeedFilter) ([]models.Profile, error)
}

func (f *fakeProfileService) SaveProfile(ctx context.Context, data models.ProfileData, photo *models.Photo) (models.Profile, error) {
	return f.saveProfileFn(ctx, data, photo)
}

func (f *fakeProfileService) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	return f.getProfileFn(ctx, userID)
}

func (f *fakeProfileService) Feed(ctx context.Context, filter models.FeedFilter) ([]models.Profile, error) {
	return f.feedFn(ctx, filter)
}

type fakeConnectionService struct {
	createFn       func(ctx context.Context, request models.CreateConnectionRequest) (models.Connection, error)
	respondFn      func(ctx context.Context, id int64, request models.RespondConnectionRequest) (models.Connection, error)
	listIncomingFn func(ctx context.Context, userID string) ([]models.IncomingConnection, error)
}

func (f *fakeConnectionService) Create(ctx context.Context, request models.CreateConnectionRequest) (models.Connection, error) {
	return f.createFn(ctx, request)
}

func (f *fakeConnectionService) Respond(ctx context.Context, id int64, request models.RespondConnectionRequest) (models.Connection, error) {
	return f.respondFn(ctx, id, request)
}

func (f *fakeConnectionService) ListIncoming(ctx context.Context, userID string) ([]models.IncomingConnection, error) {
	return f.listIncomingFn(ctx, userID)
}

type fakeInterestService struct {
	interests []models.Interest
	err       error
}

func (f *fakeInterestService) ListInterests(context.Context) ([]models.Interest, error) {
	return f.interests, f.err
}

type fakeUserService struct {
	listUsersFn  func(ctx context.Context) ([]models.UserWithProfile, error)
	verifyUserFn func(ctx context.Context, userID string) (models.User, error)
}

func (f *fakeUserService) ListUsers(ctx context.Context) ([]models.UserWithProfile, error) {
	return f.listUsersFn(ctx)
}

func (f *fakeUserService) VerifyUser(ctx context.Context, userID string) (models.User, error) {
	return f.verifyUserFn(ctx, userID)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string {
	return f.version
}

// ─────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over svcs. Unset services are replaced
// with fakes that fail the test when called.
func newTestHandler(t *testing.T, svcs *service.Services, cfg config.App) *Handler {
	t.Helper()

	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &fakeAppInfoService{version: "test-version"}
	}
	if svcs.InterestService == nil {
		svcs.InterestService = &fakeInterestService{}
	}
	if svcs.AuthService == nil {
		svcs.AuthService = &fakeAuthService{
			parseTokenFn: func(context.Context, string) (models.Token, error) {
				t.Fatal("unexpected ParseToken call")
				return models.Token{}, nil
			},
		}
	}

	return NewHandler(svcs, cfg, "", logger.Nop())
}

func doRequest(t *testing.T, h http.Handler, method, target string, body io.Reader, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}
