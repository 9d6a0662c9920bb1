package mock

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	accessType  = "access"
	refreshType = "refresh"
)

// createJWT creates a signed token for userID with the given type and expiry
func (s *Service) createJWT(userID int64, tokenType string, generation int64, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     now.Add(expiry).Unix(),
		"iat":     now.Unix(),
		"typ":     tokenType,
		"gen":     generation,
		"jti":     fmt.Sprintf("%d-%d", userID, now.UnixNano()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

func (s *Service) issue(userID int64) (string, string, error) {
	accessGen, refreshGen := s.generations()
	access, err := s.createJWT(userID, accessType, accessGen, s.AccessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.createJWT(userID, refreshType, refreshGen, s.RefreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// verify returns user id of a valid token of the expected type and generation
func (s *Service) verify(tokenString, tokenType string, generation int64) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil {
		return 0, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, errors.New("invalid token")
	}
	if typ, _ := claims["typ"].(string); typ != tokenType {
		return 0, errors.New("unexpected token type")
	}
	if gen, _ := claims["gen"].(float64); int64(gen) != generation {
		return 0, errors.New("token revoked")
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, errors.New("missing user_id")
	}
	return int64(userID), nil
}
