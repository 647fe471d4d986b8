package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService signs and verifies the access tokens used to gate routes.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs the given user document as the token's claims. Tokens expire
// after one hour. The claims shape is whatever the client posted.
func (s *TokenService) Issue(user map[string]interface{}) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("ACCESS_TOKEN_SECRET is not configured")
	}

	claims := jwt.MapClaims{}
	for k, v := range user {
		claims[k] = v
	}
	claims["exp"] = time.Now().Add(1 * time.Hour).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token string, returning the decoded claims.
func (s *TokenService) Verify(tokenStr string) (jwt.MapClaims, error) {
	if len(s.secret) == 0 {
		return nil, errors.New("ACCESS_TOKEN_SECRET is not configured")
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
