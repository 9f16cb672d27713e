package utils

import (
	"crypto/rand"
	"fmt"
	"kurabi-service/internal/pkg/constvars"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateReservationID mints the token recorded in the reservation log:
// the local date followed by a short random suffix, e.g. R20260828-X7K2P9.
func GenerateReservationID(now time.Time, loc *time.Location) (string, error) {
	const suffixChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	const suffixLength = 6

	max := big.NewInt(int64(len(suffixChars)))
	suffix := make([]byte, suffixLength)
	for i := range suffix {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		suffix[i] = suffixChars[num.Int64()]
	}

	return fmt.Sprintf("R%s-%s", now.In(loc).Format("20060102"), string(suffix)), nil
}

func GenerateAdminJWT(subject, secret string, jwtExpiryTime int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   subject,
		"scope": "admin",
		"exp":   time.Now().Add(time.Duration(jwtExpiryTime) * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
