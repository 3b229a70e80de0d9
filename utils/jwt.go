package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type StaffClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(secret, role string) (string, error) {
	claims := &StaffClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "foodtruck-order-app",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(secret, tokenString string) (*StaffClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &StaffClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(*StaffClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
