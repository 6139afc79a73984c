package usecase

import (
	"context"
	"testing"

	"airnova-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuth(secret string) *AuthService {
	return NewAuthService(&fakeUserRepo{}, secret, 24, logger.NewNopLogger())
}

func TestRegisterAndLoginRoundTrip(t *testing.T) {
	auth := newTestAuth("test-secret")
	ctx := context.Background()

	user, err := auth.Register(ctx, "Asha", "Asha@Example.com", "s3cret-pw", "+91-90000-00001")
	require.NoError(t, err)
	assert.NotZero(t, user.UserID)
	assert.Equal(t, "asha@example.com", user.Email, "email is normalized on registration")
	assert.NotEqual(t, "s3cret-pw", user.PasswordHash)

	token, logged, err := auth.Login(ctx, "asha@example.com", "s3cret-pw")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.UserID, logged.UserID)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, claims.UserID)
	assert.Equal(t, "asha@example.com", claims.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth := newTestAuth("test-secret")
	ctx := context.Background()

	_, err := auth.Register(ctx, "Asha", "asha@example.com", "pw-one", "")
	require.NoError(t, err)

	_, err = auth.Register(ctx, "Impostor", "ASHA@example.com", "pw-two", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	auth := newTestAuth("test-secret")
	ctx := context.Background()

	_, err := auth.Register(ctx, "Asha", "asha@example.com", "right-pw", "")
	require.NoError(t, err)

	_, _, err = auth.Login(ctx, "asha@example.com", "wrong-pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = auth.Login(ctx, "nobody@example.com", "right-pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := newTestAuth("secret-a")
	verifier := newTestAuth("secret-b")
	ctx := context.Background()

	_, err := issuer.Register(ctx, "Asha", "asha@example.com", "pw", "")
	require.NoError(t, err)
	token, _, err := issuer.Login(ctx, "asha@example.com", "pw")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	auth := newTestAuth("test-secret")

	_, err := auth.ValidateToken("not.a.token")
	assert.Error(t, err)
}
