package jwtutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	util := NewJWTUtil("test-secret")

	token, err := util.GenerateToken("hr@example.com", 7, time.Hour)
	require.NoError(t, err)

	claims, err := util.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "hr@example.com", claims.Email)
	assert.Equal(t, uint(7), claims.UserID)
}

func TestValidateRejectsOtherKey(t *testing.T) {
	token, err := NewJWTUtil("one").GenerateToken("a@example.com", 1, time.Hour)
	require.NoError(t, err)

	_, err = NewJWTUtil("two").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpired(t *testing.T) {
	util := NewJWTUtil("test-secret")
	token, err := util.GenerateToken("a@example.com", 1, -time.Minute)
	require.NoError(t, err)

	_, err = util.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateRejectsMissingExpiry(t *testing.T) {
	claims := UserClaims{Email: "a@example.com", UserID: 1}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewJWTUtil("test-secret").ValidateToken(token)
	assert.Error(t, err)
}

func TestEmptyKey(t *testing.T) {
	util := NewJWTUtil("")

	_, err := util.GenerateToken("a@example.com", 1, time.Hour)
	assert.Error(t, err)

	_, err = util.ValidateToken("anything")
	assert.Error(t, err)
}
