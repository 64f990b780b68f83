package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func restorePasswordGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
}

func TestHashPassword(t *testing.T) {
	t.Cleanup(restorePasswordGlobals)
	pwd := "secret123"
	hash, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, pwd, hash)
	require.NoError(t, ComparePassword(hash, pwd))

	bcryptGenerateFromPassword = func(_ []byte, _ int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err = HashPassword(pwd)
	require.Error(t, err)
}

func TestHashPasswordSalted(t *testing.T) {
	// Two hashes of the same input must differ: the salt is random.
	h1, err := HashPassword("same")
	require.NoError(t, err)
	h2, err := HashPassword("same")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
	require.NoError(t, ComparePassword(h1, "same"))
	require.NoError(t, ComparePassword(h2, "same"))
}

func TestComparePassword(t *testing.T) {
	hash, err := HashPassword("right")
	require.NoError(t, err)
	require.Error(t, ComparePassword(hash, "wrong"))
	// A malformed digest is an error, not a panic.
	require.Error(t, ComparePassword("not-a-bcrypt-digest", "right"))
}
