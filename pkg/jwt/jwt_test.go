package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/salon-finance-api/pkg/jwt"
)

func newSigner(t *testing.T, secret, issuer string, ttl time.Duration) *jwt.Signer {
	t.Helper()
	s, err := jwt.NewSigner(secret, issuer, ttl)
	require.NoError(t, err)
	return s
}

func TestSignVerify_IdaYVuelta(t *testing.T) {
	s := newSigner(t, "secreto", "salon-finance", 5*time.Minute)
	token, err := s.Sign("user-1", "salon-1", "owner")
	require.NoError(t, err)

	claims, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "salon-1", claims.SalonID)
	assert.Equal(t, "owner", claims.Role)
}

func TestVerify_FirmaIncorrecta(t *testing.T) {
	token, err := newSigner(t, "secreto", "salon-finance", 5*time.Minute).Sign("user-1", "salon-1", "staff")
	require.NoError(t, err)

	_, err = newSigner(t, "otro-secreto", "salon-finance", 5*time.Minute).Verify(token)
	assert.Error(t, err)
}

func TestVerify_TokenExpirado(t *testing.T) {
	s := newSigner(t, "secreto", "salon-finance", -time.Minute)
	token, err := s.Sign("user-1", "salon-1", "staff")
	require.NoError(t, err)

	_, err = s.Verify(token)
	assert.ErrorIs(t, err, gojwt.ErrTokenExpired)
}

func TestVerify_OtroEmisor(t *testing.T) {
	token, err := newSigner(t, "secreto", "otra-app", 5*time.Minute).Sign("user-1", "salon-1", "staff")
	require.NoError(t, err)

	_, err = newSigner(t, "secreto", "salon-finance", 5*time.Minute).Verify(token)
	assert.ErrorIs(t, err, gojwt.ErrTokenInvalidIssuer)
}

func TestVerify_SinSalon(t *testing.T) {
	s := newSigner(t, "secreto", "salon-finance", 5*time.Minute)
	token, err := s.Sign("user-1", "", "staff")
	require.NoError(t, err)

	_, err = s.Verify(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidClaims)
}

func TestVerify_AlgoritmoNoPermitido(t *testing.T) {
	claims := jwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    "salon-finance",
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
		UserID: "user-1", SalonID: "salon-1", Role: "owner",
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, claims).SignedString([]byte("secreto"))
	require.NoError(t, err)

	_, err = newSigner(t, "secreto", "salon-finance", time.Minute).Verify(token)
	assert.Error(t, err)
}

func TestNewSigner_SecretVacio(t *testing.T) {
	_, err := jwt.NewSigner("", "salon-finance", time.Minute)
	assert.ErrorIs(t, err, jwt.ErrEmptySecret)
}
