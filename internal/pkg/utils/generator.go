package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"mycare-service/internal/pkg/constvars"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// Entity ids keep the prefixes the frontend already expects.
func GenerateConsultationID() string {
	return "cons-" + uuid.NewString()
}

func GenerateMedicalRecordID() string {
	return "rec-" + uuid.NewString()
}

func GenerateWorkflowSessionID() string {
	return uuid.NewString()
}

func GenerateSessionJWT(sessionID, secret string, jwtExpiryTime int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().Add(time.Duration(jwtExpiryTime) * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseSessionJWT returns the session_id claim of a signed workflow token.
func ParseSessionJWT(tokenString, secret string) (string, error) {
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
	sessionID, ok := claims["session_id"].(string)
	if !ok || sessionID == "" {
		return "", fmt.Errorf("session_id claim missing")
	}
	return sessionID, nil
}

const meetingIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateMeetingID produces the short random id used in mock meeting links.
func GenerateMeetingID(length int) (string, error) {
	max := big.NewInt(int64(len(meetingIDAlphabet)))
	id := make([]byte, length)
	for i := range id {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		id[i] = meetingIDAlphabet[num.Int64()]
	}
	return string(id), nil
}

func GenerateObjectName(prefix, fileName string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s_%s_%s", prefix, timestamp, fileName)
}
