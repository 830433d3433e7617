package auth_test

import (
	"testing"
	"time"

	"issue-tracker/internal/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", time.Hour)

	token, err := manager.Issue("alice", 1)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := manager.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, int64(1), claims.UserID)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", time.Hour)

	token, err := manager.Issue("alice", 1)
	assert.NoError(t, err)

	other := auth.NewJWTManager("other-secret", time.Hour)
	claims, err := other.Verify(token)

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestJWTManager_TamperedToken(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", time.Hour)

	token, err := manager.Issue("alice", 1)
	assert.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	claims, err := manager.Verify(tampered)

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", -time.Minute)

	token, err := manager.Issue("alice", 1)
	assert.NoError(t, err)

	claims, err := manager.Verify(token)

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestJWTManager_Garbage(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", time.Hour)

	claims, err := manager.Verify("not-a-token")

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

// A token without a usable user_id claim must not resolve, even when
// correctly signed.
func TestJWTManager_MissingUserID(t *testing.T) {
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := raw.SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	manager := auth.NewJWTManager("test-secret", time.Hour)
	claims, err := manager.Verify(token)

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
