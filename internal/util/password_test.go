package util

import (
	"testing"

	"github.com/RoyceAzure/rj/util/random"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPassword(t *testing.T) {
	password := random.RandomString(12)

	hashed, err := HashPassword(password)
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	require.NotEqual(t, password, hashed)

	err = CheckPassword(password, hashed)
	require.NoError(t, err)

	wrongPassword := random.RandomString(12)
	err = CheckPassword(wrongPassword, hashed)
	require.EqualError(t, err, bcrypt.ErrMismatchedHashAndPassword.Error())
}

func TestPasswordHashNotDeterministic(t *testing.T) {
	password := random.RandomString(12)

	hashed1, err := HashPassword(password)
	require.NoError(t, err)
	hashed2, err := HashPassword(password)
	require.NoError(t, err)

	// bcrypt每次都帶不同的鹽
	require.NotEqual(t, hashed1, hashed2)
}
