package integration

import (
	"context"
	"testing"

	"gotodo/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Integration(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("RegisterAndAuthenticate", func(t *testing.T) {
		created, err := env.userService.Register(ctx, "alice", "secret1")
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)
		assert.Equal(t, "alice", created.Username)
		assert.NotEmpty(t, created.PasswordHash)
		assert.NotContains(t, created.PasswordHash, "secret1")

		u, err := env.userService.Authenticate(ctx, "alice", "secret1")
		require.NoError(t, err)
		assert.Equal(t, created.ID, u.ID)
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		_, err := env.userService.Register(ctx, "bobby", "secret1")
		require.NoError(t, err)

		_, err = env.userService.Register(ctx, "bobby", "othersecret")
		assert.ErrorIs(t, err, user.ErrDuplicateUsername)

		// The original registration is untouched
		u, err := env.userService.Authenticate(ctx, "bobby", "secret1")
		require.NoError(t, err)
		assert.Equal(t, "bobby", u.Username)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := env.userService.Register(ctx, "carol", "secret1")
		require.NoError(t, err)

		// Changing a single character flips the result
		_, err = env.userService.Authenticate(ctx, "carol", "secret2")
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("UnknownUsernameSameFailure", func(t *testing.T) {
		_, err := env.userService.Authenticate(ctx, "nobody-here", "secret1")
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("UsernameIsCaseSensitive", func(t *testing.T) {
		_, err := env.userService.Register(ctx, "Dave", "secret1")
		require.NoError(t, err)

		_, err = env.userService.Authenticate(ctx, "dave", "secret1")
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("ValidationRules", func(t *testing.T) {
		_, err := env.userService.Register(ctx, "abc", "secret1")
		assert.ErrorIs(t, err, user.ErrInvalidUsername)

		_, err = env.userService.Register(ctx, "validname", "short")
		assert.ErrorIs(t, err, user.ErrInvalidPassword)
	})
}
