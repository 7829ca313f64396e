package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid couvre indifféremment un jeton expiré, mal formé ou signé
// avec un autre secret: l'appelant ne doit pas pouvoir distinguer les cas.
var ErrTokenInvalid = errors.New("token invalide")

// TokenManager émet et vérifie le jeton JWT admin. Il n'y a qu'une seule
// identité admin: le jeton ne porte que la revendication admin et l'expiration.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager crée le gestionnaire de jetons.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// TTL retourne la durée de vie configurée des jetons.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// GenerateAdmin émet un jeton admin signé, valable m.ttl.
func (m *TokenManager) GenerateAdmin() (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"admin": true,
		"iat":   now.Unix(),
		"exp":   now.Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseAdmin vérifie la signature, l'expiration et la revendication admin.
// Toute anomalie retourne ErrTokenInvalid, jamais de revendications partielles.
func (m *TokenManager) ParseAdmin(token string) error {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return ErrTokenInvalid
	}

	if admin, ok := claims["admin"].(bool); !ok || !admin {
		return ErrTokenInvalid
	}

	return nil
}
