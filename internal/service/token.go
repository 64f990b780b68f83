// File: internal/service/token.go
package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token decode failures. Callers outside this package should not
// surface these to clients; ResolveUser collapses them all into
// ErrUnauthenticated.
var (
	ErrTokenMalformed    = errors.New("malformed token")
	ErrTokenBadSignature = errors.New("invalid token signature")
	ErrTokenExpired      = errors.New("token expired")
)

// DefaultAccessTokenTTL is the validity window of an access token.
const DefaultAccessTokenTTL = 7 * 24 * time.Hour

// TokenCodec mints and verifies HS256 access tokens. The signing
// secret is fixed at construction; rotating it invalidates every
// outstanding token.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenCodec builds a codec with the given secret and validity
// window. ttl <= 0 falls back to DefaultAccessTokenTTL.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}
	return &TokenCodec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Encode issues a signed token whose subject is the user ID.
func (tc *TokenCodec) Encode(userID int) (string, error) {
	if len(tc.secret) == 0 {
		return "", fmt.Errorf("token codec: empty secret")
	}

	now := tc.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(userID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tc.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tc.secret)
}

// Decode verifies the signature and expiry of a token and returns its
// subject user ID. The signature is checked before expiry, so a
// tampered token never reports ErrTokenExpired.
func (tc *TokenCodec) Decode(tokenString string) (int, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tc.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return tc.now() }))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, ErrTokenBadSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrTokenExpired
		default:
			return 0, ErrTokenMalformed
		}
	}
	if !token.Valid {
		return 0, ErrTokenMalformed
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0, ErrTokenMalformed
	}
	return userID, nil
}
