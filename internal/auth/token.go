package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"nourishlab/internal/models"
)

const (
	accessTokenTTL  = time.Hour * 24
	refreshTokenTTL = time.Hour * 24 * 7
)

var ErrInvalidToken = errors.New("invalid or expired token")

// TokenPair is the response shape of login, refresh and OAuth login.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func secret() []byte {
	return []byte(os.Getenv("JWT_SECRET_KEY"))
}

// GenerateTokenPair issues a short-lived access token and a refresh token
// for the given user. Both carry user_id and username claims; the refresh
// token is marked with typ=refresh.
func GenerateTokenPair(user *models.User) (*TokenPair, error) {
	now := time.Now()

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"typ":      "access",
		"exp":      now.Add(accessTokenTTL).Unix(),
	})
	accessString, err := access.SignedString(secret())
	if err != nil {
		return nil, err
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"typ":      "refresh",
		"exp":      now.Add(refreshTokenTTL).Unix(),
	})
	refreshString, err := refresh.SignedString(secret())
	if err != nil {
		return nil, err
	}

	return &TokenPair{Access: accessString, Refresh: refreshString}, nil
}

// ParseRefreshToken validates a refresh token and returns the user id it was
// issued for.
func ParseRefreshToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret(), nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return 0, ErrInvalidToken
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, ErrInvalidToken
	}
	return uint(userID), nil
}
