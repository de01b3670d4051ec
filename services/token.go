package services

import (
	"errors"
	"fmt"
	"time"

	"quicknotes/model"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenMissing means no token was presented at all.
	ErrTokenMissing = errors.New("access token missing")
	// ErrTokenInvalid covers malformed, unsigned, wrongly signed and expired tokens.
	ErrTokenInvalid = errors.New("access token invalid")
)

// Claims carries the user snapshot taken at issuance.
type Claims struct {
	User model.TokenUser `json:"user"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 access tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token secret is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// TTL returns the validity window of issued tokens.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token embedding the user's identity, valid for the TTL.
func (s *TokenService) Issue(user *model.User) (string, error) {
	now := s.now()
	claims := Claims{
		User: user.Identity(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the identity embedded at
// issuance. The store is not consulted, so profile changes made after the
// token was issued are not visible here.
func (s *TokenService) Verify(tokenString string) (*model.TokenUser, error) {
	if tokenString == "" {
		return nil, ErrTokenMissing
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !token.Valid || claims.User.ID == "" {
		return nil, ErrTokenInvalid
	}

	user := claims.User
	return &user, nil
}
