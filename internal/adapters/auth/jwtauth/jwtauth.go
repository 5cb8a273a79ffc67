// Package jwtauth implementa los ports de auth con JWT HS256 firmados
// localmente. El service es a la vez emisor (login/register) y
// verificador (middleware).
package jwtauth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"animal-shelter-api/internal/apperrors"
	"animal-shelter-api/internal/ports/auth"
)

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	signingKey []byte
	issuer     string
	ttl        time.Duration
	now        func() time.Time
}

func New(signingKey, issuer string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		ttl:        ttl,
		now:        time.Now,
	}
}

func (s *Service) Issue(ctx context.Context, claims auth.Claims) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Role: claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			ID:        uuid.NewString(),
		},
	})

	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindInternal, "sign token", err)
	}
	return signed, nil
}

func (s *Service) Verify(ctx context.Context, token string) (auth.Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return auth.Claims{}, apperrors.New(apperrors.KindUnauthenticated, "token has expired")
		}
		return auth.Claims{}, apperrors.New(apperrors.KindUnauthenticated, "invalid token")
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return auth.Claims{}, apperrors.New(apperrors.KindUnauthenticated, "invalid token claims")
	}

	return auth.Claims{
		UserID: claims.Subject,
		Role:   claims.Role,
	}, nil
}
