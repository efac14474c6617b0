package service

import (
	"testing"

	"github.com/openclinic/hms/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerCommand(username string) *domain.CreateUserCommand {
	return &domain.CreateUserCommand{
		Username: username,
		Password: "s3cret-pw",
		Name:     "Dr. Smith",
		Email:    "smith@clinic.example",
		Role:     domain.RoleDoctor,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	svc := env.authService(false)

	u, err := svc.Register(registerCommand("drsmith"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.NotEqual(t, "s3cret-pw", u.PasswordHash)

	pair, logged, err := svc.Login("drsmith", "s3cret-pw")
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)

	claims, err := env.jwt.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, domain.RoleDoctor, claims.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	svc := env.authService(false)

	_, err := svc.Register(registerCommand("drsmith"))
	require.NoError(t, err)

	_, _, err = svc.Login("drsmith", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody", "s3cret-pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := env.authService(false)

	_, err := svc.Register(&domain.CreateUserCommand{
		Username: "",
		Password: "abc",
		Role:     domain.Role("janitor"),
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "username is required")
	assert.Contains(t, vErr.Fields, "password must be at least 6 characters")
	assert.Contains(t, vErr.Fields, "name is required")
	assert.Contains(t, vErr.Fields, "role is invalid")
}

func TestDuplicateUsernamePermissiveByDefault(t *testing.T) {
	env := newTestEnv(t)
	svc := env.authService(false)

	first, err := svc.Register(registerCommand("drsmith"))
	require.NoError(t, err)
	second, err := svc.Register(registerCommand("drsmith"))
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	// Login resolves to the earliest account.
	_, logged, err := svc.Login("drsmith", "s3cret-pw")
	require.NoError(t, err)
	assert.Equal(t, first.ID, logged.ID)
}

func TestDuplicateUsernameRejectedInStrictMode(t *testing.T) {
	env := newTestEnv(t)
	svc := env.authService(true)

	_, err := svc.Register(registerCommand("drsmith"))
	require.NoError(t, err)

	_, err = svc.Register(registerCommand("drsmith"))
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestRefreshIssuesNewPair(t *testing.T) {
	env := newTestEnv(t)
	svc := env.authService(false)

	_, err := svc.Register(registerCommand("drsmith"))
	require.NoError(t, err)
	pair, _, err := svc.Login("drsmith", "s3cret-pw")
	require.NoError(t, err)

	fresh, err := svc.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)

	// An access token is not accepted where a refresh token is expected.
	_, err = svc.Refresh(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	svc := env.authService(false)

	u, err := svc.Register(registerCommand("drsmith"))
	require.NoError(t, err)

	err = svc.ChangePassword(u.ID, "wrong", "new-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = svc.ChangePassword(u.ID, "s3cret-pw", "short")
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)

	require.NoError(t, svc.ChangePassword(u.ID, "s3cret-pw", "new-password"))

	_, _, err = svc.Login("drsmith", "s3cret-pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login("drsmith", "new-password")
	assert.NoError(t, err)
}

func TestRegisterRecordsActivity(t *testing.T) {
	env := newTestEnv(t)
	svc := env.authService(false)

	u, err := svc.Register(registerCommand("drsmith"))
	require.NoError(t, err)
	env.drain()

	logs := env.store.ListActivityLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, "registration", logs[0].ActivityType)
	require.NotNil(t, logs[0].UserID)
	assert.Equal(t, u.ID, *logs[0].UserID)
}
