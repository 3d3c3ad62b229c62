package authentication

import (
	"errors"
	"os"
	"time"

	"github.com/AdityaTidake/MedPlus/models"

	"github.com/golang-jwt/jwt/v5"
)

func jwtKey() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("secretKey")
}

// GenerateToken issues a signed token carrying the user's id and role.
func GenerateToken(userID int, role string) (string, error) {
	claims := &models.UserClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

// ParseToken validates the signed token and returns its claims.
func ParseToken(signedToken string) (*models.UserClaims, error) {
	var claims models.UserClaims
	token, err := jwt.ParseWithClaims(signedToken, &claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	return &claims, nil
}
