package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/mccmmj/cafe-inventory/internal/config"
	"github.com/mccmmj/cafe-inventory/internal/dto"
)

var ErrNotAllowed = errors.New("email is not on the allow list")

// IdentityVerifier resolves an identity-provider access token into the
// holder's email and display name.
type IdentityVerifier interface {
	Verify(ctx context.Context, accessToken string) (email, name string, err error)
}

// userinfoVerifier calls the provider's OIDC userinfo endpoint.
type userinfoVerifier struct {
	http *resty.Client
	url  string
}

func NewUserinfoVerifier(userinfoURL string) IdentityVerifier {
	return &userinfoVerifier{
		http: resty.New().SetTimeout(10 * time.Second),
		url:  userinfoURL,
	}
}

func (v *userinfoVerifier) Verify(ctx context.Context, accessToken string) (string, string, error) {
	var info struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	resp, err := v.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&info).
		Get(v.url)
	if err != nil {
		return "", "", fmt.Errorf("userinfo: %w", err)
	}
	if resp.IsError() {
		return "", "", fmt.Errorf("userinfo: status %d", resp.StatusCode())
	}
	if info.Email == "" {
		return "", "", errors.New("userinfo: no email in response")
	}
	return info.Email, info.Name, nil
}

// SessionClaims are embedded in every session token.
type SessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// AuthService exchanges identity-provider tokens for session JWTs, gated by
// the static email allow list.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	verifier IdentityVerifier
	secret   string
	ttl      time.Duration
	allowed  map[string]bool
	now      func() time.Time
}

func NewAuthService(verifier IdentityVerifier, cfg *config.Config) AuthService {
	allowed := make(map[string]bool)
	for _, e := range cfg.AllowedEmailList() {
		allowed[e] = true
	}
	return &authService{
		verifier: verifier,
		secret:   cfg.JWTSecret,
		ttl:      time.Duration(cfg.JWTExpirationHours) * time.Hour,
		allowed:  allowed,
		now:      time.Now,
	}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email, name, err := s.verifier.Verify(ctx, req.AccessToken)
	if err != nil {
		return nil, err
	}
	if !s.allowed[email] {
		return nil, ErrNotAllowed
	}

	now := s.now()
	expires := now.Add(s.ttl)
	claims := SessionClaims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
			Subject:   email,
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	return &dto.LoginResponse{
		Token:     token,
		Email:     email,
		Name:      name,
		ExpiresAt: expires.UTC().Format(time.RFC3339),
	}, nil
}
