// File: internal/service/auth.go
package service

import (
	"context"
	"errors"
	"strings"

	"artigos-api/internal/database"
	"artigos-api/internal/model"
	"artigos-api/internal/store"
)

// Errors surfaced to transport. Lookup misses, wrong passwords and
// every token failure collapse into these two so responses never
// reveal which sub-case occurred.
var (
	ErrInvalidCredentials = errors.New("incorrect credentials")
	ErrUnauthenticated    = errors.New("could not validate credentials")
)

var (
	getUserByEmail = store.GetUserByEmail
	getUserByID    = store.GetUserByID
)

// AuthenticateUser verifies an email/password pair against storage.
// A missing user and a wrong password are indistinguishable to the
// caller: both return ErrInvalidCredentials.
func AuthenticateUser(ctx context.Context, db database.DB, email, password string) (*model.User, error) {
	user, err := getUserByEmail(ctx, db, strings.ToLower(email))
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// ResolveUser decodes an access token and loads the user it refers to.
// This is the single gate protected requests pass through; any failure
// (malformed, forged or expired token, or a user deleted since the
// token was issued) returns ErrUnauthenticated with no further detail.
func ResolveUser(ctx context.Context, db database.DB, codec *TokenCodec, tokenString string) (*model.User, error) {
	userID, err := codec.Decode(tokenString)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	user, err := getUserByID(ctx, db, userID)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	return user, nil
}
