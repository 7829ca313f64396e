package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/h2non/filetype"

	"github.com/mondedelice/bakery-backend/internal/dto"
	"github.com/mondedelice/bakery-backend/internal/http/handlers/common"
	"github.com/mondedelice/bakery-backend/internal/logger"
	"github.com/mondedelice/bakery-backend/internal/models"
	"github.com/mondedelice/bakery-backend/internal/storage"
)

// Types MIME autorisés au téléversement.
var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// ImageRecorder enregistre les fiches de métadonnées d'images.
type ImageRecorder interface {
	Create(ctx context.Context, img *models.Image) error
}

// ImageHandler gère le téléversement d'images (admin) et l'enregistrement
// de métadonnées d'images déjà hébergées (public).
type ImageHandler struct {
	images        ImageRecorder
	storage       *storage.ImageStorage
	publicBaseURL string
}

// NewImageHandler crée un handler.
func NewImageHandler(images ImageRecorder, store *storage.ImageStorage, publicBaseURL string) *ImageHandler {
	return &ImageHandler{
		images:        images,
		storage:       store,
		publicBaseURL: publicBaseURL,
	}
}

// Upload gère POST /api/images/upload (admin, multipart, champ "image").
// Politique: type déclaré dans la liste blanche, taille sous le plafond,
// octets magiques cohérents. Les métadonnées ne sont écrites qu'une fois le
// fichier réellement stocké.
func (h *ImageHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		common.RespondError(c, http.StatusBadRequest, "Aucun fichier fourni")
		return
	}

	if file.Size == 0 {
		common.RespondError(c, http.StatusBadRequest, "Le fichier ne peut pas être vide")
		return
	}

	maxBytes := h.storage.MaxUploadBytes()
	if file.Size > maxBytes {
		common.RespondError(c, http.StatusBadRequest,
			fmt.Sprintf("Fichier trop volumineux (max %d MB)", maxBytes/(1024*1024)))
		return
	}

	// Le type déclaré doit être autorisé, même si le contenu est une image
	// valide d'un autre format.
	declaredType := file.Header.Get("Content-Type")
	if !allowedMimeTypes[declaredType] {
		common.RespondError(c, http.StatusBadRequest, "Type de fichier non autorisé")
		return
	}

	src, err := file.Open()
	if err != nil {
		logger.Log.WithError(err).Error("ouverture du fichier téléversé impossible")
		common.RespondServerError(c)
		return
	}
	defer src.Close()

	// Vérification des octets magiques: le contenu réel doit lui aussi être
	// une image d'un format autorisé.
	buffer := make([]byte, 512)
	n, err := src.Read(buffer)
	if err != nil && err != io.EOF {
		common.RespondError(c, http.StatusBadRequest, "Lecture du fichier impossible")
		return
	}

	kind, err := filetype.Match(buffer[:n])
	if err != nil || kind == filetype.Unknown || !allowedMimeTypes[kind.MIME.Value] {
		common.RespondError(c, http.StatusBadRequest, "Type de fichier non autorisé")
		return
	}

	if seeker, ok := src.(io.Seeker); ok {
		if _, err := seeker.Seek(0, io.SeekStart); err != nil {
			logger.Log.WithError(err).Error("repositionnement du fichier impossible")
			common.RespondServerError(c)
			return
		}
	}

	fileName, size, err := h.storage.Save(c.Request.Context(), file.Filename, src)
	if err != nil {
		logger.Log.WithError(err).Error("stockage du fichier impossible")
		common.RespondServerError(c)
		return
	}

	url := h.publicBaseURL + "/media/" + fileName

	img := &models.Image{
		Filename:     fileName,
		OriginalName: file.Filename,
		URL:          url,
		Size:         size,
		Mimetype:     declaredType,
		UploadedBy:   "admin",
	}

	if err := h.images.Create(c.Request.Context(), img); err != nil {
		// Pas de fiche sans fichier, pas de fichier sans fiche.
		_ = h.storage.Delete(c.Request.Context(), fileName)
		logger.Log.WithError(err).Error("enregistrement des métadonnées impossible")
		common.RespondServerError(c)
		return
	}

	common.RespondData(c, http.StatusOK, "Image uploadée avec succès", dto.UploadData{
		URL:          url,
		Filename:     fileName,
		OriginalName: file.Filename,
		Size:         size,
		Mimetype:     declaredType,
	})
}

// Save gère POST /api/images/save (public): enregistrement des métadonnées
// d'une image déjà téléversée côté client. Aucun octet n'est accepté ici.
func (h *ImageHandler) Save(c *gin.Context) {
	var req dto.SaveImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondError(c, http.StatusBadRequest, "Données invalides")
		return
	}

	if req.URL == "" || req.Filename == "" {
		common.RespondError(c, http.StatusBadRequest, "URL et nom de fichier requis")
		return
	}

	mimetype := req.Mimetype
	if mimetype == "" {
		mimetype = "image/jpeg"
	}

	img := &models.Image{
		Filename:     req.Filename,
		OriginalName: req.Filename,
		URL:          req.URL,
		Size:         req.Size,
		Mimetype:     mimetype,
		UploadedBy:   "client",
	}

	if err := h.images.Create(c.Request.Context(), img); err != nil {
		logger.Log.WithError(err).Error("enregistrement des métadonnées impossible")
		common.RespondServerError(c)
		return
	}

	common.RespondData(c, http.StatusOK, "Image sauvegardée avec succès", gin.H{
		"id":       img.ID,
		"url":      img.URL,
		"filename": img.Filename,
	})
}
