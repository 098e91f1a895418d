// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"cityportal/config"
	"cityportal/internal/domain/service"
)

// devFallbackSecret signs tokens when no secret is configured. Carried over
// from the original deployment model as a documented weakness; boot logs a
// warning whenever it is in effect.
const devFallbackSecret = "cityportal-development-secret"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config, logger *slog.Logger) service.TokenService {
	secret := cfg.Auth.Secret
	if secret == "" {
		logger.Warn("auth.secret is not configured, using the development fallback secret")
		secret = devFallbackSecret
	}

	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = config.DefaultTokenTTL
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue creates a signed HS256 token for the given user.
func (s *jwtService) Issue(userID uuid.UUID) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub": userID.String(),       // Subject (who the token is for)
		"iat": now.Unix(),            // Issued At
		"exp": now.Add(s.ttl).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and extracts the subject identity.
// Every failure collapses into service.ErrInvalidToken.
func (s *jwtService) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return uuid.Nil, service.ErrInvalidToken
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, service.ErrInvalidToken
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, service.ErrInvalidToken
	}

	return userID, nil
}
