package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezbooks/ezbooks/internal/common"
)

var testCfg = common.AuthConfig{
	JWTSecret: "test-secret-key",
	TokenTTL:  24 * time.Hour,
}

func TestGenerateAndParseToken(t *testing.T) {
	userID := uuid.New()
	token, expiresAt, err := GenerateToken(userID, "sam@example.com", testCfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	expected := time.Now().Add(24 * time.Hour)
	assert.WithinDuration(t, expected, expiresAt, time.Minute)

	claims, err := ParseToken(token, testCfg)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "sam@example.com", claims.Email)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := GenerateToken(uuid.New(), "sam@example.com", testCfg)
	require.NoError(t, err)

	_, err = ParseToken(token, common.AuthConfig{JWTSecret: "other-secret"})
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token", testCfg)
	assert.Error(t, err)
}
