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

// BlogHandler gère le CRUD des réalisations. Lecture publique, mutations
// réservées à l'admin. Le compteur de likes n'est jamais modifié ici.
type BlogHandler struct {
	blogs *repository.BlogRepository
}

// NewBlogHandler crée un handler.
func NewBlogHandler(blogs *repository.BlogRepository) *BlogHandler {
	return &BlogHandler{blogs: blogs}
}

// ListBlogs gère GET /api/blogs?search=&featured=&tag=.
func (h *BlogHandler) ListBlogs(c *gin.Context) {
	filter := repository.BlogFilter{
		Search:   c.Query("search"),
		Tag:      c.Query("tag"),
		Featured: c.Query("featured") == "true",
	}

	blogs, err := h.blogs.List(c.Request.Context(), filter)
	if err != nil {
		logger.Log.WithError(err).Error("listing des blogs impossible")
		common.RespondServerError(c)
		return
	}

	common.RespondList(c, blogs, len(blogs))
}

// GetBlog gère GET /api/blogs/:id.
func (h *BlogHandler) GetBlog(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	blog, err := h.blogs.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			common.RespondError(c, http.StatusNotFound, "Blog non trouvé")
			return
		}
		logger.Log.WithError(err).Error("lecture du blog impossible")
		common.RespondServerError(c)
		return
	}

	common.RespondData(c, http.StatusOK, "", blog)
}

// CreateBlog gère POST /api/blogs (admin). Le slug est dérivé du titre
// quand il n'est pas fourni; un slug déjà pris répond 409.
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	var req dto.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondError(c, http.StatusBadRequest, "Données invalides")
		return
	}

	blog, err := req.ToModel()
	if err != nil {
		common.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	blog.Normalize()

	if violations := validation.ValidateBlog(blog); !violations.OK() {
		common.RespondViolations(c, violations)
		return
	}

	if err := h.blogs.Create(c.Request.Context(), blog); err != nil {
		if errors.Is(err, repository.ErrSlugTaken) {
			common.RespondError(c, http.StatusConflict, "Ce slug est déjà utilisé")
			return
		}
		logger.Log.WithError(err).Error("création du blog impossible")
		common.RespondServerError(c)
		return
	}

	common.RespondData(c, http.StatusCreated, "Blog créé avec succès", blog)
}

// UpdateBlog gère PUT /api/blogs/:id (admin). Fusion partielle puis
// revalidation de l'entité complète.
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	blog, err := h.blogs.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			common.RespondError(c, http.StatusNotFound, "Blog non trouvé")
			return
		}
		logger.Log.WithError(err).Error("lecture du blog impossible")
		common.RespondServerError(c)
		return
	}

	var req dto.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondError(c, http.StatusBadRequest, "Données invalides")
		return
	}

	if err := req.ApplyTo(blog); err != nil {
		common.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	blog.Normalize()

	if violations := validation.ValidateBlog(blog); !violations.OK() {
		common.RespondViolations(c, violations)
		return
	}

	if err := h.blogs.Update(c.Request.Context(), blog); err != nil {
		switch {
		case errors.Is(err, repository.ErrBlogNotFound):
			common.RespondError(c, http.StatusNotFound, "Blog non trouvé")
		case errors.Is(err, repository.ErrSlugTaken):
			common.RespondError(c, http.StatusConflict, "Ce slug est déjà utilisé")
		default:
			logger.Log.WithError(err).Error("mise à jour du blog impossible")
			common.RespondServerError(c)
		}
		return
	}

	common.RespondData(c, http.StatusOK, "Blog mis à jour avec succès", blog)
}

// DeleteBlog gère DELETE /api/blogs/:id (admin). Les likes associés partent
// en cascade côté base.
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.blogs.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			common.RespondError(c, http.StatusNotFound, "Blog non trouvé")
			return
		}
		logger.Log.WithError(err).Error("suppression du blog impossible")
		common.RespondServerError(c)
		return
	}

	common.RespondData(c, http.StatusOK, "Blog supprimé avec succès", nil)
}
