package auth

import (
	"crypto/rand"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// TokenService issues and verifies HS256 signed tokens identifying a user.
type TokenService struct {
	secretKey []byte
	expiresIn time.Duration
}

// NewTokenService returns a token service. With an empty secret, a
// random one is generated and tokens do not survive restarts.
func NewTokenService(secret string, expiresIn time.Duration) *TokenService {
	key := []byte(secret)
	if len(key) == 0 {
		key = randomKey()
		log.Warn().Msg("JWT_SECRET is not set, using a random secret")
	}

	if expiresIn <= 0 {
		expiresIn = 24 * time.Hour
	}

	return &TokenService{secretKey: key, expiresIn: expiresIn}
}

// Tokens is the token service used by the API.
var Tokens = &TokenService{secretKey: randomKey(), expiresIn: 24 * time.Hour}

func randomKey() []byte {
	key := make([]byte, 32)
	_, _ = rand.Read(key)
	return key
}

// GenerateToken returns a token for the user.
func (s *TokenService) GenerateToken(userID string) (string, error) {
	expTime := time.Now().Add(s.expiresIn)
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     expTime.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ParseToken verifies the token and returns the ID of its user.
func (s *TokenService) ParseToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secretKey, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}

	return userID, nil
}
