package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-meet/internal/config"
	"github.com/MKhiriev/go-meet/internal/initdata"
	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/internal/store"
	"github.com/MKhiriev/go-meet/internal/utils"
	"github.com/MKhiriev/go-meet/models"
)

// authService is the concrete implementation of AuthService.
// It turns verified init data into an account and issues JWT tokens for it.
type authService struct {
	// verifier authenticates the raw init data string.
	verifier InitDataVerifier

	userRepository    store.UserRepository
	profileRepository store.ProfileRepository

	// ids generates the id of an account created on first sign-in.
	ids utils.IDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. The returned service is safe for
// concurrent use; all state is read-only after construction.
func NewAuthService(verifier InitDataVerifier, users store.UserRepository, profiles store.ProfileRepository, ids utils.IDGenerator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		verifier:          verifier,
		userRepository:    users,
		profileRepository: profiles,
		ids:               ids,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// NewInitDataVerifier builds the verifier described by cfg.
func NewInitDataVerifier(cfg config.App) (InitDataVerifier, error) {
	if cfg.BotToken == "" && !cfg.SkipSignature {
		return nil, ErrNoBotToken
	}

	return initdata.NewVerifier(cfg.BotToken,
		initdata.WithSkipSignature(cfg.SkipSignature && cfg.IsDevelopment()),
		initdata.WithMaxAge(cfg.InitDataMaxAge),
	), nil
}

// Login verifies initData, upserts the account of its identity and returns
// it together with the profile, if one exists.
//
// Returns:
//   - ErrEmptyInitData or a validation error for malformed payloads.
//   - an authentication error for a missing hash, bad signature or stale payload.
func (a *authService) Login(ctx context.Context, initData string) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(initData) == "" {
		return models.LoginResult{}, ErrEmptyInitData
	}

	claim, err := a.verifier.Verify(initData)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("init data rejected")
		return models.LoginResult{}, fromInitDataError(err)
	}

	user, err := a.userRepository.UpsertUser(ctx, models.User{
		ID:         a.ids.Generate(),
		TelegramID: claim.ID,
		Username:   claim.Username,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("telegram_id", claim.ID.String()).Msg("user upsert failed")
		return models.LoginResult{}, fmt.Errorf("user upsert failed: %w", fromStoreError(err))
	}

	result := models.LoginResult{
		User: models.LoginUser{
			ID:         user.ID,
			Status:     user.Status,
			TelegramID: user.TelegramID,
		},
	}

	profile, err := a.profileRepository.GetProfileByUserID(ctx, user.ID)
	switch {
	case err == nil:
		result.Profile = &profile
	case errors.Is(err, store.ErrProfileNotFound):
		log.Debug().Str("user_id", user.ID).Msg("user has no profile yet")
	default:
		log.Err(err).Str("func", "*authService.Login").Str("user_id", user.ID).Msg("profile lookup failed")
		return models.LoginResult{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return result, nil
}

// CreateToken issues a signed JWT whose subject is userID.
func (a *authService) CreateToken(ctx context.Context, userID string) (models.Token, error) {
	if userID == "" {
		return models.Token{}, fmt.Errorf("%w: empty user id", ErrTokenCreationFailed)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT. Any failure (expired, wrong issuer,
// malformed) is reported as ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, withCause(ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}

func fromInitDataError(err error) error {
	switch {
	case errors.Is(err, initdata.ErrMalformed):
		return newError(ErrValidation, "malformed init data", err)
	case errors.Is(err, initdata.ErrMissingHash):
		return newError(ErrAuthentication, initdata.ErrMissingHash.Error(), err)
	case errors.Is(err, initdata.ErrInvalidSignature):
		return newError(ErrAuthentication, initdata.ErrInvalidSignature.Error(), err)
	case errors.Is(err, initdata.ErrExpired):
		return newError(ErrAuthentication, initdata.ErrExpired.Error(), err)
	default:
		return newError(ErrAuthentication, "init data rejected", err)
	}
}
