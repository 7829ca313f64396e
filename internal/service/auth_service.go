package service

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidPassword est le seul signal d'échec d'authentification: il n'y a
// qu'un admin, donc rien de plus précis à révéler.
var ErrInvalidPassword = errors.New("mot de passe incorrect")

// AuthService valide le mot de passe admin et émet le jeton correspondant.
// Le secret est injecté à la construction, jamais lu depuis un état global.
type AuthService struct {
	password     string
	passwordHash string
	tokens       *TokenManager
}

// NewAuthService crée le service. passwordHash (bcrypt) prime sur password
// quand les deux sont configurés.
func NewAuthService(password, passwordHash string, tokens *TokenManager) *AuthService {
	return &AuthService{
		password:     password,
		passwordHash: passwordHash,
		tokens:       tokens,
	}
}

// ValidatePassword compare le mot de passe fourni au secret configuré et
// retourne un jeton admin en cas de succès. La comparaison du secret en
// clair est en temps constant.
func (s *AuthService) ValidatePassword(password string) (string, error) {
	if !s.matches(password) {
		return "", ErrInvalidPassword
	}

	token, err := s.tokens.GenerateAdmin()
	if err != nil {
		return "", err
	}
	return token, nil
}

// TokenTTLSeconds retourne la durée de vie du jeton en secondes, renvoyée au
// client dans expiresIn.
func (s *AuthService) TokenTTLSeconds() int64 {
	return int64(s.tokens.TTL().Seconds())
}

func (s *AuthService) matches(password string) bool {
	if s.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)) == nil
	}
	if s.password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s.password), []byte(password)) == 1
}
