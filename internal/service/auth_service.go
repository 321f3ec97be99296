package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/guide-directory-api/internal/config"
	"github.com/guide-directory-api/internal/repository"
	"github.com/rs/zerolog"
)

const tokenIssuer = "guide-directory-api"

// Session is an issued admin session
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// authService is the concrete implementation of AuthService. Credentials
// are read fresh from the ADMIN tab on every login attempt; a backend
// failure is surfaced as such, never as "incorrect credentials".
type authService struct {
	creds  repository.CredentialRepository
	secret []byte
	ttl    time.Duration
	log    zerolog.Logger
}

func newAuthService(creds repository.CredentialRepository, cfg *config.AuthConfig, log zerolog.Logger) AuthService {
	return &authService{
		creds:  creds,
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.SessionTTL,
		log:    log.With().Str("service", "auth").Logger(),
	}
}

// Login checks the pair against every ADMIN row by exact, case-sensitive
// equality and issues a session token on the first match.
func (s *authService) Login(ctx context.Context, username, password string) (Session, error) {
	rows, err := s.creds.LoadAll(ctx)
	if err != nil {
		return Session{}, err
	}

	for _, cred := range rows {
		if cred.Matches(username, password) {
			return s.issue(username)
		}
	}

	s.log.Warn().Str("username", username).Msg("Login rejected")
	return Session{}, ErrInvalidCredentials
}

// Verify validates a session token and returns the admin username
func (s *authService) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("%w: invalid session token", ErrInvalidCredentials)
	}
	return claims.Subject, nil
}

func (s *authService) issue(username string) (Session, error) {
	now := time.Now()
	expires := now.Add(s.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
		ID:        uuid.NewString(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return Session{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	s.log.Info().Str("username", username).Time("expires_at", expires).Msg("Admin logged in")
	return Session{Token: signed, Username: username, ExpiresAt: expires}, nil
}
