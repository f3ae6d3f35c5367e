package lib

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// The session cookie value is an HS256 JWT wrapping the Redis session ID, so
// a tampered cookie is rejected before any store lookup. The token itself
// carries no expiry; the inactivity window is enforced by the store's TTL.

// SignSessionID wraps a session ID in a signed token.
func SignSessionID(sessionID, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sessionID,
		"iat": time.Now().Unix(),
	})
	return token.SignedString([]byte(secret))
}

// ParseSessionToken validates the signature and returns the session ID.
func ParseSessionToken(tokenStr, secret string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidSession
	}

	sidStr, ok := claims["sid"].(string)
	if !ok {
		return "", fmt.Errorf("invalid sid claim: %w", ErrInvalidSession)
	}

	// Session IDs are UUIDs; reject anything else early.
	sid, err := uuid.Parse(sidStr)
	if err != nil {
		return "", fmt.Errorf("invalid session id: %w", ErrInvalidSession)
	}

	return sid.String(), nil
}
