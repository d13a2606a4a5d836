package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-meet/internal/config"
	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/internal/mock"
	"github.com/MKhiriev/go-meet/internal/service"
	"github.com/MKhiriev/go-meet/internal/utils"
	"github.com/MKhiriev/go-meet/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// identity
// ─────────────────────────────────────────────

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		header    string
		wantToken string
		wantErr   error
	}{
		{header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		token, err := getTokenFromAuthHeader(tt.header)
		assert.ErrorIs(t, err, tt.wantErr, tt.header)
		assert.Equal(t, tt.wantToken, token, tt.header)
	}
}

func executeIdentity(t *testing.T, h *Handler, authHeader string) (*httptest.ResponseRecorder, string, bool) {
	t.Helper()

	var (
		gotUserID string
		called    bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		gotUserID, _ = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/connections", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	h.identity(next).ServeHTTP(rec, req)

	return rec, gotUserID, called
}

func TestIdentity(t *testing.T) {
	tests := []struct {
		name         string
		requireToken bool
		header       string
		setup        func(auth *mock.MockAuthService)
		wantStatus   int
		wantUserID   string
	}{
		{name: "no header passes", header: "", wantStatus: http.StatusNoContent},
		{name: "no header with required token", requireToken: true, wantStatus: http.StatusUnauthorized},
		{name: "malformed header", header: "Bearer", wantStatus: http.StatusUnauthorized},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(auth *mock.MockAuthService) {
				auth.EXPECT().ParseToken(gomock.Any(), "good").Return(models.Token{UserID: userA}, nil)
			},
			wantStatus: http.StatusNoContent,
			wantUserID: userA,
		},
		{
			name:   "rejected token",
			header: "Bearer bad",
			setup: func(auth *mock.MockAuthService) {
				auth.EXPECT().ParseToken(gomock.Any(), "bad").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			auth := mock.NewMockAuthService(ctrl)
			if tt.setup != nil {
				tt.setup(auth)
			}

			h := &Handler{
				services:     &service.Services{AuthService: auth},
				requireToken: tt.requireToken,
				logger:       logger.Nop(),
			}

			rec, userID, called := executeIdentity(t, h, tt.header)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusNoContent, called)
			assert.Equal(t, tt.wantUserID, userID)
		})
	}
}

func TestIdentity_ActingUserMustMatchToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := mock.NewMockAuthService(ctrl)
	auth.EXPECT().ParseToken(gomock.Any(), "token-of-a").Return(models.Token{UserID: userA}, nil).Times(2)

	connections := &fakeConnectionService{
		listIncomingFn: func(_ context.Context, userID string) ([]models.IncomingConnection, error) {
			return []models.IncomingConnection{}, nil
		},
	}
	router := newTestHandler(t, &service.Services{AuthService: auth, ConnectionService: connections}, config.App{}).Init()

	rec := doRequest(t, router, http.MethodGet, "/api/connections?userId="+userA, nil, "Authorization", "Bearer token-of-a")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/connections?userId="+userB, nil, "Authorization", "Bearer token-of-a")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"token does not belong to the acting user"}`, rec.Body.String())
}

func TestIdentity_PublicRoutesIgnoreRequiredToken(t *testing.T) {
	router := newTestHandler(t, &service.Services{}, config.App{RequireToken: true}).Init()

	assert.Equal(t, http.StatusOK, doRequest(t, router, http.MethodGet, "/api/version", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(t, router, http.MethodGet, "/api/connections?userId="+userA, nil).Code)
}

// ─────────────────────────────────────────────
// withTraceID & withLogging
// ─────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-1")
	h.withTraceID(next).ServeHTTP(rec, req)

	assert.Equal(t, "trace-1", rec.Header().Get(traceIDHeader))
	assert.Contains(t, buf.String(), `"trace_id":"trace-1"`)

	rec = httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(rec.Header().Get(traceIDHeader))
	assert.NoError(t, err, "generated trace id must be a UUID")
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		status    int
		wantLevel string
	}{
		{status: http.StatusOK, wantLevel: "info"},
		{status: http.StatusNotFound, wantLevel: "info"},
		{status: http.StatusInternalServerError, wantLevel: "error"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			w.Write([]byte("hello"))
		})

		rec := httptest.NewRecorder()
		h.withTraceID(h.withLogging(next)).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/x?y=1", nil))

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, tt.wantLevel, line["level"])
		assert.Equal(t, "/api/x?y=1", line["uri"])
		assert.Equal(t, "POST", line["method"])
		assert.EqualValues(t, tt.status, line["status"])
		assert.EqualValues(t, 5, line["size"])
	}
}

func TestResponseWriter_FirstHeaderWins(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusTeapot)
	rw.Write([]byte("ab"))
	rw.Write([]byte("cde"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, http.StatusCreated, rw.status)
	assert.Equal(t, 5, rw.size)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}
	rw.Write([]byte("x"))
	assert.Equal(t, http.StatusOK, rw.status)
}

// ─────────────────────────────────────────────
// withGZip
// ─────────────────────────────────────────────

func TestWithGZip_CompressesResponse(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, map[string]string{"hello": "world"}, http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/interests", nil)
	req.Header.Set("Accept-Encoding", "deflate, gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))

	gr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(gr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hello":"world"}`, string(plain))
}

func TestWithGZip_DecompressesRequest(t *testing.T) {
	var compressed bytes.Buffer
	gw := gzip.NewWriter(&compressed)
	gw.Write([]byte(`{"initData":"x"}`))
	gw.Close()

	var got string
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got = string(b)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/telegram", &compressed)
	req.Header.Set("Content-Encoding", "gzip")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, `{"initData":"x"}`, got)
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not be called")
	}))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWithGZip_UntouchedResponseStaysEmpty(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Zero(t, rec.Body.Len())
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
}

// ─────────────────────────────────────────────
// CheckHTTPMethod
// ─────────────────────────────────────────────

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/items", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	router.MethodNotAllowed(CheckHTTPMethod(router))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/items", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}
