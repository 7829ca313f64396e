package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mondedelice/bakery-backend/internal/logger"
)

// ErrorHandler est le filet de sécurité des erreurs déposées via c.Error et
// jamais traduites en réponse: tout est journalisé puis masqué derrière un
// 500 générique. Les erreurs métier sont traduites dans les handlers, jamais
// ici: le message d'une erreur inconnue n'atteint pas le client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		if logger.Log != nil {
			logger.Log.WithFields(logrus.Fields{
				"error":  err.Error(),
				"path":   c.Request.URL.Path,
				"method": c.Request.Method,
			}).Error("erreur de requête non traitée")
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Erreur serveur",
		})
	}
}
