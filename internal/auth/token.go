// Package auth mints and checks the device identity token. Every device
// generates a stable uuid on first run; the token derived from it is what the
// remote store sees as the user identity (broadcasterId, userId).
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mindful-ai-dude/multilingo/internal/common"
)

type deviceClaims struct {
	DeviceID string `json:"device_id"`
	jwt.RegisteredClaims
}

// GenerateToken mints a signed device identity token.
func GenerateToken(deviceID, secret string, ttl time.Duration) (string, error) {
	if deviceID == "" {
		return "", fmt.Errorf("device id is required")
	}

	now := time.Now()
	claims := deviceClaims{
		DeviceID: deviceID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// DeviceIDFromToken validates a token and returns the device id it carries.
func DeviceIDFromToken(tokenString, secret string) (string, error) {
	claims := &deviceClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", common.ErrInvalidToken
	}
	if claims.DeviceID == "" {
		return "", common.ErrInvalidToken
	}
	return claims.DeviceID, nil
}
