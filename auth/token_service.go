package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	config "github.com/sportsmania/sports_mania_server/configs"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingEmail = errors.New("identity payload must include an email")
)

// TokenService mints and verifies the HS256 session tokens used as bearer
// credentials. Issued tokens carry the whole identity payload as claims plus a
// fixed expiry.
type TokenService struct {
	Secret []byte
	TTL    time.Duration
}

func NewTokenService() *TokenService {
	return &TokenService{
		Secret: []byte(config.Config("ACCESS_TOKEN_SECRET")),
		TTL:    time.Hour,
	}
}

func (s *TokenService) Issue(identity map[string]interface{}) (string, error) {
	email, _ := identity["email"].(string)
	if email == "" {
		return "", ErrMissingEmail
	}

	claims := jwt.MapClaims{}
	for k, v := range identity {
		claims[k] = v
	}
	claims["exp"] = time.Now().Add(s.TTL).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

// Verify returns the decoded claims, or ErrInvalidToken on a bad signature,
// wrong signing method, or expired token.
func (s *TokenService) Verify(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
