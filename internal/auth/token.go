package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity carried by a session token.
type Claims struct {
	Subject string
	UserID  int64
}

// JWTManager issues and verifies HS256 session tokens with
// {sub, user_id, exp} claims.
type JWTManager struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewJWTManager(secret string, tokenTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

func (m *JWTManager) Issue(username string, userID int64) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     username,
		"user_id": userID,
		"exp":     time.Now().Add(m.tokenTTL).Unix(),
	})

	return t.SignedString(m.secret)
}

func (m *JWTManager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	// encoding/json decodes numbers into float64
	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return nil, ErrInvalidToken
	}

	subject, _ := claims["sub"].(string)

	return &Claims{
		Subject: subject,
		UserID:  int64(userID),
	}, nil
}
