package dto

import (
	"github.com/mondedelice/bakery-backend/internal/validation"
)

// Response est l'enveloppe commune de l'API: {success, message?, data?}.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ListResponse ajoute le nombre d'éléments retournés aux listes.
type ListResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Count   int         `json:"count"`
}

// ValidationErrorResponse énumère toutes les violations de champs.
type ValidationErrorResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Errors  validation.Violations `json:"errors"`
}

// TokenData est le corps de la réponse d'authentification admin.
type TokenData struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

// StatsData est le corps de la réponse GET /api/admin/stats.
type StatsData struct {
	TotalProducts int `json:"totalProducts"`
	TotalBlogs    int `json:"totalBlogs"`
	TotalImages   int `json:"totalImages"`
	FeaturedBlogs int `json:"featuredBlogs"`
}

// UploadData est le corps de la réponse POST /api/images/upload.
type UploadData struct {
	URL          string `json:"url"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	Mimetype     string `json:"mimetype"`
}
