package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mccmmj/cafe-inventory/internal/dto"
)

type stubVerifier struct {
	email string
	name  string
	err   error
}

func (v *stubVerifier) Verify(_ context.Context, _ string) (string, string, error) {
	return v.email, v.name, v.err
}

func newAuthFixture(verifier IdentityVerifier) *authService {
	return &authService{
		verifier: verifier,
		secret:   "test-secret",
		ttl:      24 * time.Hour,
		allowed:  map[string]bool{"jess@cafe.test": true},
		now:      fixedNow,
	}
}

func TestLoginIssuesSessionToken(t *testing.T) {
	svc := newAuthFixture(&stubVerifier{email: "jess@cafe.test", name: "Jess"})

	resp, err := svc.Login(context.Background(), dto.LoginRequest{AccessToken: "idp-token"})

	require.NoError(t, err)
	assert.Equal(t, "jess@cafe.test", resp.Email)
	assert.Equal(t, "Jess", resp.Name)
	assert.Equal(t, fixedNow().Add(24*time.Hour).Format(time.RFC3339), resp.ExpiresAt)

	claims := &SessionClaims{}
	_, err = jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	}, jwt.WithTimeFunc(fixedNow))
	require.NoError(t, err)
	assert.Equal(t, "jess@cafe.test", claims.Email)
	assert.Equal(t, "Jess", claims.Name)
	assert.Equal(t, "jess@cafe.test", claims.Subject)
}

func TestLoginRejectsUnlistedEmail(t *testing.T) {
	svc := newAuthFixture(&stubVerifier{email: "stranger@example.com", name: "Stranger"})

	_, err := svc.Login(context.Background(), dto.LoginRequest{AccessToken: "idp-token"})
	assert.ErrorIs(t, err, ErrNotAllowed)
}

func TestLoginPropagatesVerifierFailure(t *testing.T) {
	svc := newAuthFixture(&stubVerifier{err: errors.New("userinfo: 401")})

	_, err := svc.Login(context.Background(), dto.LoginRequest{AccessToken: "expired"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotAllowed)
}
