package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-meet/internal/config"
	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/internal/utils"
	"github.com/MKhiriev/go-meet/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// The base URL comes from cfg.HTTPAddress; a missing scheme defaults to
// http. Returns an error if the address is empty or cannot be parsed.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login posts the init data to POST /api/auth/telegram and keeps the
// bearer token from the Authorization response header.
func (h *httpServerAdapter) Login(ctx context.Context, initData string) (models.LoginResult, error) {
	var result models.LoginResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{InitData: initData}).
		SetResult(&result).
		Post("/api/auth/telegram")
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResult{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	h.logger.Debug().Str("user_id", result.User.ID).Msg("signed in")
	return result, nil
}

func (h *httpServerAdapter) Feed(ctx context.Context, filter models.FeedFilter) ([]models.Profile, error) {
	var profiles []models.Profile

	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(feedQuery(filter)).
		SetResult(&profiles).
		Get("/api/profiles")
	if err != nil {
		return nil, fmt.Errorf("feed request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return profiles, nil
}

func feedQuery(filter models.FeedFilter) url.Values {
	query := url.Values{}
	query.Set("currentUserId", filter.ViewerID)
	if filter.City != "" {
		query.Set("city", filter.City)
	}
	if filter.AgeFrom != nil {
		query.Set("ageFrom", strconv.Itoa(*filter.AgeFrom))
	}
	if filter.AgeTo != nil {
		query.Set("ageTo", strconv.Itoa(*filter.AgeTo))
	}
	if len(filter.InterestIDs) > 0 {
		ids := make([]string, 0, len(filter.InterestIDs))
		for _, id := range filter.InterestIDs {
			ids = append(ids, strconv.FormatInt(id, 10))
		}
		query.Set("interests", strings.Join(ids, ","))
	}
	return query
}

func (h *httpServerAdapter) Profile(ctx context.Context, userID string) (models.Profile, error) {
	var profile models.Profile

	resp, err := h.authedRequest(ctx).
		SetPathParam("userId", userID).
		SetResult(&profile).
		Get("/api/profiles/{userId}")
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

func (h *httpServerAdapter) Connect(ctx context.Context, req models.CreateConnectionRequest) (models.Connection, error) {
	var created models.ConnectionCreatedResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&created).
		Post("/api/connections")
	if err != nil {
		return models.Connection{}, fmt.Errorf("connect request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Connection{}, err
	}

	return created.Connection, nil
}

func (h *httpServerAdapter) Incoming(ctx context.Context, userID string) ([]models.IncomingConnection, error) {
	var incoming []models.IncomingConnection

	resp, err := h.authedRequest(ctx).
		SetQueryParam("userId", userID).
		SetResult(&incoming).
		Get("/api/connections")
	if err != nil {
		return nil, fmt.Errorf("incoming request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return incoming, nil
}

func (h *httpServerAdapter) Respond(ctx context.Context, connectionID int64, req models.RespondConnectionRequest) (models.Connection, error) {
	var connection models.Connection

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(connectionID, 10)).
		SetBody(req).
		SetResult(&connection).
		Put("/api/connections/{id}")
	if err != nil {
		return models.Connection{}, fmt.Errorf("respond request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Connection{}, err
	}

	return connection, nil
}

func (h *httpServerAdapter) Interests(ctx context.Context) ([]models.Interest, error) {
	var interests []models.Interest

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&interests).
		Get("/api/interests")
	if err != nil {
		return nil, fmt.Errorf("interests request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return interests, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) Users(ctx context.Context) ([]models.UserWithProfile, error) {
	var users []models.UserWithProfile

	resp, err := h.authedRequest(ctx).
		SetResult(&users).
		Get("/api/dev/users")
	if err != nil {
		return nil, fmt.Errorf("users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

func (h *httpServerAdapter) VerifyUser(ctx context.Context, userID string) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", userID).
		SetResult(&user).
		Put("/api/dev/users/{id}/verify")
	if err != nil {
		return models.User{}, fmt.Errorf("verify user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
