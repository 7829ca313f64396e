package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mondedelice/bakery-backend/internal/dto"
	"github.com/mondedelice/bakery-backend/internal/http/handlers/common"
	"github.com/mondedelice/bakery-backend/internal/logger"
	"github.com/mondedelice/bakery-backend/internal/repository"
	"github.com/mondedelice/bakery-backend/internal/service"
)

// AdminHandler gère l'authentification admin et les statistiques du tableau
// de bord.
type AdminHandler struct {
	auth     *service.AuthService
	products *repository.ProductRepository
	blogs    *repository.BlogRepository
	images   *repository.ImageRepository
}

// NewAdminHandler crée un handler.
func NewAdminHandler(
	auth *service.AuthService,
	products *repository.ProductRepository,
	blogs *repository.BlogRepository,
	images *repository.ImageRepository,
) *AdminHandler {
	return &AdminHandler{
		auth:     auth,
		products: products,
		blogs:    blogs,
		images:   images,
	}
}

// ValidatePassword gère POST /api/admin/validate. Mot de passe incorrect ou
// inconnu: même message générique, rien de plus à révéler.
func (h *AdminHandler) ValidatePassword(c *gin.Context) {
	var req dto.ValidatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		common.RespondError(c, http.StatusBadRequest, "Mot de passe requis")
		return
	}

	token, err := h.auth.ValidatePassword(req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPassword) {
			common.RespondError(c, http.StatusUnauthorized, "Mot de passe incorrect")
			return
		}
		logger.Log.WithError(err).Error("émission du jeton impossible")
		common.RespondServerError(c)
		return
	}

	common.RespondData(c, http.StatusOK, "Authentification réussie", dto.TokenData{
		Token:     token,
		ExpiresIn: h.auth.TokenTTLSeconds(),
	})
}

// Stats gère GET /api/admin/stats (admin).
func (h *AdminHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	totalProducts, err := h.products.Count(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("comptage des produits impossible")
		common.RespondServerError(c)
		return
	}

	totalBlogs, err := h.blogs.Count(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("comptage des blogs impossible")
		common.RespondServerError(c)
		return
	}

	totalImages, err := h.images.Count(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("comptage des images impossible")
		common.RespondServerError(c)
		return
	}

	featuredBlogs, err := h.blogs.CountFeatured(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("comptage des blogs mis en avant impossible")
		common.RespondServerError(c)
		return
	}

	common.RespondData(c, http.StatusOK, "", dto.StatsData{
		TotalProducts: totalProducts,
		TotalBlogs:    totalBlogs,
		TotalImages:   totalImages,
		FeaturedBlogs: featuredBlogs,
	})
}
