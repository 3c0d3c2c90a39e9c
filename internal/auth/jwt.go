package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"internhub_backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by every issued token. Kind distinguishes the two account
// families ("company" / "student"); DisplayName is denormalized so clients
// can render the header without an extra profile fetch.
type Claims struct {
	AccountID   uint   `json:"account_id"`
	Kind        string `json:"kind"`
	DisplayName string `json:"name"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid token")

// GenerateToken signs a token for the given account.
func GenerateToken(accountID uint, kind, displayName string) (string, error) {
	cfg := config.GetConfig()

	now := time.Now()
	claims := &Claims{
		AccountID:   accountID,
		Kind:        kind,
		DisplayName: displayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(accountID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.JWT.TTL) * time.Minute)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ParseToken verifies a token string and returns its claims.
func ParseToken(tokenStr string) (*Claims, error) {
	cfg := config.GetConfig()

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
