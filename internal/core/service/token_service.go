package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// TokenService mints and verifies HS256-signed identity tokens. The signing
// secret is the sole root of trust: anyone holding it can forge identities.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token carrying the user id and a fixed expiry.
func (s *TokenService) Issue(userID string) (string, error) {
	claims := jwt.MapClaims{
		"id":  userID,
		"exp": time.Now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify validates signature and expiry and returns the bound user id.
// The signing method is pinned to HS256 so a token forged with "none" or an
// asymmetric algorithm is rejected outright.
func (s *TokenService) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidToken
	}

	userID, _ := claims["id"].(string)
	if userID == "" {
		return "", domain.ErrInvalidToken
	}
	return userID, nil
}
