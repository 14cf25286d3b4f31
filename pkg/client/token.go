package client

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpiry reads the exp claim without verifying the signature.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}

func warnIfExpired(token string, now time.Time) bool {
	exp, ok := tokenExpiry(token)
	if !ok || now.Before(exp) {
		return false
	}

	slog.Warn("bearer token has expired", "exp", exp)
	return true
}
