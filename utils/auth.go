package utils

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

// JWT Secret Key, loaded from config at startup.
var JwtKey = []byte("dev-fallback-secret-change-me")

// Claims identifies the acting account: a customer or a seller.
type Claims struct {
	ID   string `json:"id"`
	Role string `json:"role"` // "customer" or "seller"
	jwt.StandardClaims
}

// GenerateJWT mints a bearer token for the given account id and role,
// valid for one day.
func GenerateJWT(id, role string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &Claims{
		ID:   id,
		Role: role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(JwtKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}
