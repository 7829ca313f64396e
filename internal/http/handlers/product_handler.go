package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mondedelice/bakery-backend/internal/dto"
	"github.com/mondedelice/bakery-backend/internal/http/handlers/common"
	"github.com/mondedelice/bakery-backend/internal/logger"
	"github.com/mondedelice/bakery-backend/internal/repository"
	"github.com/mondedelice/bakery-backend/internal/validation"
)

// ProductHandler gère le CRUD du catalogue de produits. Lecture publique,
// mutations réservées à l'admin (middleware en amont).
type ProductHandler struct {
	products *repository.ProductRepository
}

// NewProductHandler crée un handler.
func NewProductHandler(products *repository.ProductRepository) *ProductHandler {
	return &ProductHandler{products: products}
}

// ListProducts gère GET /api/products?search=&category=.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	search := c.Query("search")
	category := c.Query("category")

	products, err := h.products.List(c.Request.Context(), search, category)
	if err != nil {
		logger.Log.WithError(err).Error("listing des produits impossible")
		common.RespondServerError(c)
		return
	}

	common.RespondList(c, products, len(products))
}

// GetProduct gère GET /api/products/:id.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.products.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			common.RespondError(c, http.StatusNotFound, "Produit non trouvé")
			return
		}
		logger.Log.WithError(err).Error("lecture du produit impossible")
		common.RespondServerError(c)
		return
	}

	common.RespondData(c, http.StatusOK, "", product)
}

// CreateProduct gère POST /api/products (admin).
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondError(c, http.StatusBadRequest, "Données invalides")
		return
	}

	product := req.ToModel()
	product.Normalize()

	if violations := validation.ValidateProduct(product); !violations.OK() {
		common.RespondViolations(c, violations)
		return
	}

	if err := h.products.Create(c.Request.Context(), product); err != nil {
		logger.Log.WithError(err).Error("création du produit impossible")
		common.RespondServerError(c)
		return
	}

	common.RespondData(c, http.StatusCreated, "Produit créé avec succès", product)
}

// UpdateProduct gère PUT /api/products/:id (admin). Les champs fournis sont
// fusionnés sur l'entité existante et l'ensemble est revalidé.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.products.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			common.RespondError(c, http.StatusNotFound, "Produit non trouvé")
			return
		}
		logger.Log.WithError(err).Error("lecture du produit impossible")
		common.RespondServerError(c)
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondError(c, http.StatusBadRequest, "Données invalides")
		return
	}

	req.ApplyTo(product)
	product.Normalize()

	if violations := validation.ValidateProduct(product); !violations.OK() {
		common.RespondViolations(c, violations)
		return
	}

	if err := h.products.Update(c.Request.Context(), product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			common.RespondError(c, http.StatusNotFound, "Produit non trouvé")
			return
		}
		logger.Log.WithError(err).Error("mise à jour du produit impossible")
		common.RespondServerError(c)
		return
	}

	common.RespondData(c, http.StatusOK, "Produit mis à jour avec succès", product)
}

// DeleteProduct gère DELETE /api/products/:id (admin). Suppression
// définitive, sans corbeille.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			common.RespondError(c, http.StatusNotFound, "Produit non trouvé")
			return
		}
		logger.Log.WithError(err).Error("suppression du produit impossible")
		common.RespondServerError(c)
		return
	}

	common.RespondData(c, http.StatusOK, "Produit supprimé avec succès", nil)
}
