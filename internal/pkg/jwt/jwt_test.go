//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"cleanspace/internal/pkg/clock"
	"cleanspace/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2030, 1, 7, 9, 0, 0, 0, time.UTC))
	svc := jwt.NewService("test-secret-key-that-is-long-enough", time.Hour, clk)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, "jane@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
}

func TestService_Expired(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2030, 1, 7, 9, 0, 0, 0, time.UTC))
	svc := jwt.NewService("test-secret-key-that-is-long-enough", time.Hour, clk)

	token, err := svc.GenerateToken(uuid.New(), "jane@example.com")
	require.NoError(t, err)

	clk.Add(2 * time.Hour)
	_, err = svc.ValidateToken(token)
	require.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestService_WrongSecret(t *testing.T) {
	clk := clock.NewMockClock(time.Now())
	token, err := jwt.NewService("secret-one-secret-one-secret-one", time.Hour, clk).GenerateToken(uuid.New(), "a@example.com")
	require.NoError(t, err)

	_, err = jwt.NewService("secret-two-secret-two-secret-two", time.Hour, clk).ValidateToken(token)
	require.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = jwt.NewService("secret-two-secret-two-secret-two", time.Hour, clk).ValidateToken("garbage")
	require.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestService_RejectsForeignIssuerAndAlgorithm(t *testing.T) {
	secret := "test-secret-key-that-is-long-enough"
	clk := clock.NewMockClock(time.Date(2030, 1, 7, 9, 0, 0, 0, time.UTC))
	svc := jwt.NewService(secret, time.Hour, clk)

	userID := uuid.New()
	claims := jwt.Claims{
		UserID: userID,
		Email:  "jane@example.com",
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    "someone-else",
			Subject:   userID.String(),
			IssuedAt:  gojwt.NewNumericDate(clk.Now()),
			ExpiresAt: gojwt.NewNumericDate(clk.Now().Add(time.Hour)),
		},
	}

	foreign, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	_, err = svc.ValidateToken(foreign)
	require.ErrorIs(t, err, jwt.ErrInvalidToken)

	claims.Issuer = "cleanspace"
	hs512, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	_, err = svc.ValidateToken(hs512)
	require.ErrorIs(t, err, jwt.ErrInvalidToken)
}
