package common

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mondedelice/bakery-backend/internal/dto"
	"github.com/mondedelice/bakery-backend/internal/validation"
)

// ErrInvalidUUID signale un identifiant d'URL mal formé.
var ErrInvalidUUID = errors.New("identifiant invalide")

// ParseUUIDParam lit et parse un paramètre UUID de l'URL.
func ParseUUIDParam(c *gin.Context, paramName string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(c.Param(paramName))
	if err != nil {
		return uuid.Nil, ErrInvalidUUID
	}
	return parsed, nil
}

// ClientIP résout l'identité approximative du visiteur pour le moteur de
// likes: premier élément de X-Forwarded-For, sinon X-Real-IP, sinon la
// boucle locale. Volontairement grossier et falsifiable: ce n'est pas une
// frontière de sécurité, juste une clé de déduplication.
func ClientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}
	if realIP := c.GetHeader("X-Real-IP"); realIP != "" {
		return realIP
	}
	return "127.0.0.1"
}

// RespondData envoie l'enveloppe de succès {success, message?, data?}.
func RespondData(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, dto.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// RespondList envoie une liste avec son compte d'éléments.
func RespondList(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, dto.ListResponse{
		Success: true,
		Data:    data,
		Count:   count,
	})
}

// RespondError envoie l'enveloppe d'échec {success: false, message}.
func RespondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.Response{
		Success: false,
		Message: message,
	})
}

// RespondViolations envoie un 400 énumérant toutes les violations de champs.
func RespondViolations(c *gin.Context, violations validation.Violations) {
	c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
		Success: false,
		Message: "Données invalides",
		Errors:  violations,
	})
}

// RespondServerError masque l'erreur interne derrière un message générique.
func RespondServerError(c *gin.Context) {
	RespondError(c, http.StatusInternalServerError, "Erreur serveur")
}
