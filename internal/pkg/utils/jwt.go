package utils

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

// ParseAdminJWT verifies an HS256 token and returns its subject. Tokens
// without the admin scope are rejected even when the signature checks out.
func ParseAdminJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token claims")
	}

	scope, _ := claims["scope"].(string)
	if scope != "admin" {
		return "", fmt.Errorf("token missing admin scope")
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return "", fmt.Errorf("token missing subject")
	}
	return subject, nil
}
