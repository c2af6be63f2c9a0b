package services

import (
	"errors"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/volunteerhub/volunteerhub-api/models"
)

// AuthTokensService mints and verifies the signed tokens that carry the
// authenticated actor's identity. The rest of the system trusts the user ID
// recovered here and performs no further credential checks.
type AuthTokensService struct {
	SigningPepper string
}

// CreateToken creates a signed token for the user
func (s *AuthTokensService) CreateToken(
	user *models.User,
	issued time.Time,
	expires time.Time,
) (string, error) {

	if user == nil {
		return "", errors.New("user is required")
	}

	claims := jwt.StandardClaims{
		Subject:   user.ID,
		IssuedAt:  issued.Unix(),
		ExpiresAt: expires.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.SigningPepper))

}

// VerifyToken verifies a token's signature and expiry and returns the user
// ID it was minted for
func (s *AuthTokensService) VerifyToken(tokenString string) (string, error) {

	claims := jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(s.SigningPepper), nil
		},
	)
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("invalid token")
	}
	if claims.Subject == "" {
		return "", errors.New("token has no subject")
	}
	return claims.Subject, nil

}
