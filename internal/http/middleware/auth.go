package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mondedelice/bakery-backend/internal/service"
)

// AdminMiddleware protège les routes de mutation: il exige un jeton admin
// valide dans l'en-tête Authorization et coupe court avant toute logique
// métier. Jeton expiré, altéré ou absent: même refus.
func AdminMiddleware(tokens *service.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Token d'authentification requis",
			})
			return
		}

		raw := strings.TrimPrefix(auth, "Bearer ")
		if err := tokens.ParseAdmin(raw); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Token invalide",
			})
			return
		}

		c.Next()
	}
}
