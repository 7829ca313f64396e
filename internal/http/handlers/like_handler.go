package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mondedelice/bakery-backend/internal/http/handlers/common"
	"github.com/mondedelice/bakery-backend/internal/logger"
	"github.com/mondedelice/bakery-backend/internal/repository"
	"github.com/mondedelice/bakery-backend/internal/service"
)

// LikeHandler expose le moteur de likes. Aucune authentification: le
// visiteur est identifié par son adresse IP (voir common.ClientIP).
type LikeHandler struct {
	likes *service.LikeService
}

// NewLikeHandler crée un handler.
func NewLikeHandler(likes *service.LikeService) *LikeHandler {
	return &LikeHandler{likes: likes}
}

// AddLike gère POST /api/blogs/:id/like.
func (h *LikeHandler) AddLike(c *gin.Context) {
	blogID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var userAgent *string
	if ua := c.GetHeader("User-Agent"); ua != "" {
		userAgent = &ua
	}

	total, err := h.likes.Like(c.Request.Context(), blogID, common.ClientIP(c), userAgent)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBlogNotFound):
			common.RespondError(c, http.StatusNotFound, "Blog non trouvé")
		case errors.Is(err, repository.ErrAlreadyLiked):
			common.RespondError(c, http.StatusBadRequest, "Vous avez déjà liké ce blog")
		default:
			logger.Log.WithError(err).Error("ajout du like impossible")
			common.RespondServerError(c)
		}
		return
	}

	common.RespondData(c, http.StatusOK, "Like ajouté avec succès", gin.H{"likes": total})
}

// RemoveLike gère DELETE /api/blogs/:id/like.
func (h *LikeHandler) RemoveLike(c *gin.Context) {
	blogID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	total, err := h.likes.Unlike(c.Request.Context(), blogID, common.ClientIP(c))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBlogNotFound):
			common.RespondError(c, http.StatusNotFound, "Blog non trouvé")
		case errors.Is(err, repository.ErrLikeNotFound):
			common.RespondError(c, http.StatusNotFound, "Like non trouvé")
		default:
			logger.Log.WithError(err).Error("retrait du like impossible")
			common.RespondServerError(c)
		}
		return
	}

	common.RespondData(c, http.StatusOK, "Like retiré avec succès", gin.H{"likes": total})
}

// LikeStatus gère GET /api/blogs/:id/like-status. Lecture pure.
func (h *LikeHandler) LikeStatus(c *gin.Context) {
	blogID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	status, err := h.likes.Status(c.Request.Context(), blogID, common.ClientIP(c))
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			common.RespondError(c, http.StatusNotFound, "Blog non trouvé")
			return
		}
		logger.Log.WithError(err).Error("lecture du statut de like impossible")
		common.RespondServerError(c)
		return
	}

	common.RespondData(c, http.StatusOK, "", status)
}
