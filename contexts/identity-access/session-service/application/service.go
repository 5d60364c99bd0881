package application

import (
	stderrors "errors"
	"strings"
	"time"

	"admarket/contexts/identity-access/session-service/domain/entities"
	domainerrors "admarket/contexts/identity-access/session-service/domain/errors"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService signs and verifies session tokens. Tokens are HS256 JWTs with
// user_id and role claims; any other signing method is rejected outright.
type TokenService struct {
	Secret []byte
	TTL    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) TokenService {
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return TokenService{
		Secret: []byte(secret),
		TTL:    ttl,
	}
}

func (s TokenService) Issue(session entities.Session, now time.Time) (string, error) {
	if !session.Valid() {
		return "", domainerrors.ErrInvalidToken
	}
	claims := jwt.MapClaims{
		"user_id": session.UserID,
		"role":    string(session.Role),
		"iat":     now.Unix(),
		"exp":     now.Add(s.TTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

func (s TokenService) Verify(tokenString string) (entities.Session, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return entities.Session{}, domainerrors.ErrMissingToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domainerrors.ErrInvalidToken
		}
		return s.Secret, nil
	})
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return entities.Session{}, domainerrors.ErrExpiredToken
		}
		return entities.Session{}, domainerrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return entities.Session{}, domainerrors.ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	session := entities.Session{
		UserID: userID,
		Role:   entities.Role(role),
	}
	if !session.Valid() {
		return entities.Session{}, domainerrors.ErrInvalidToken
	}
	return session, nil
}
