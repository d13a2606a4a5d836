package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/internal/utils"
)

// identity is an HTTP middleware for the optional bearer identity.
//
// Without an "Authorization" header the request passes through unchanged,
// unless the handler was built with requireToken. A present header must
// carry a token accepted by [service.AuthService.ParseToken]; its user id is
// stored in the request context under [utils.UserIDCtxKey] and later checked
// against the acting user by [actingUserMatches].
//
// Rejections are answered with 401 Unauthorized.
func (h *Handler) identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			if h.requireToken {
				log.Err(ErrEmptyAuthorizationHeader).Send()
				utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeServiceError(w, r, err)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// actingUserMatches reports whether the request may act as userID: either
// no token was presented or the token belongs to userID.
func actingUserMatches(r *http.Request, userID string) bool {
	tokenUserID, ok := utils.GetUserIDFromContext(r.Context())
	return !ok || strings.EqualFold(tokenUserID, userID)
}

// getTokenFromAuthHeader extracts the token from an "Authorization" header
// value of the form "<scheme> <token>".
//
// It returns [ErrInvalidAuthorizationHeader] when there is no second part
// and [ErrEmptyToken] when the second part is empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
