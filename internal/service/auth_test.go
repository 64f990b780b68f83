package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"artigos-api/internal/database"
	"artigos-api/internal/model"
	"artigos-api/internal/store"

	"github.com/stretchr/testify/require"
)

func restoreAuthGlobals() {
	getUserByEmail = store.GetUserByEmail
	getUserByID = store.GetUserByID
}

func TestAuthenticateUser(t *testing.T) {
	t.Cleanup(restoreAuthGlobals)
	hash, err := HashPassword("pw")
	require.NoError(t, err)
	stored := model.User{ID: 9, Email: "a@x.com", PasswordHash: hash}

	getUserByEmail = func(_ context.Context, _ database.DB, email string) (*model.User, error) {
		if email == stored.Email {
			u := stored
			return &u, nil
		}
		return nil, errors.New("no rows")
	}

	t.Run("success", func(t *testing.T) {
		u, err := AuthenticateUser(context.Background(), nil, "a@x.com", "pw")
		require.NoError(t, err)
		require.Equal(t, 9, u.ID)
	})

	t.Run("lookup is lowercased", func(t *testing.T) {
		u, err := AuthenticateUser(context.Background(), nil, "A@X.COM", "pw")
		require.NoError(t, err)
		require.Equal(t, 9, u.ID)
	})

	t.Run("unknown email and wrong password collapse", func(t *testing.T) {
		_, errMissing := AuthenticateUser(context.Background(), nil, "nonexistent@x.com", "anything")
		_, errWrongPw := AuthenticateUser(context.Background(), nil, "a@x.com", "wrongpass")
		require.ErrorIs(t, errMissing, ErrInvalidCredentials)
		require.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
		require.Equal(t, errMissing, errWrongPw)
	})
}

func TestResolveUser(t *testing.T) {
	t.Cleanup(restoreAuthGlobals)
	codec := NewTokenCodec("testsecret", time.Hour)
	stored := model.User{ID: 5, Email: "a@x.com"}

	getUserByID = func(_ context.Context, _ database.DB, id int) (*model.User, error) {
		if id == stored.ID {
			u := stored
			return &u, nil
		}
		return nil, errors.New("no rows")
	}

	t.Run("success", func(t *testing.T) {
		tok, err := codec.Encode(5)
		require.NoError(t, err)
		u, err := ResolveUser(context.Background(), nil, codec, tok)
		require.NoError(t, err)
		require.Equal(t, 5, u.ID)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := ResolveUser(context.Background(), nil, codec, "garbage")
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("forged token", func(t *testing.T) {
		tok, err := NewTokenCodec("other-secret", time.Hour).Encode(5)
		require.NoError(t, err)
		_, err = ResolveUser(context.Background(), nil, codec, tok)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("user deleted after issuance", func(t *testing.T) {
		tok, err := codec.Encode(404)
		require.NoError(t, err)
		_, err = ResolveUser(context.Background(), nil, codec, tok)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})
}
