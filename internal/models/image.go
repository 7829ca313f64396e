package models

import (
	"time"

	"github.com/google/uuid"
)

// Image est la fiche de métadonnées d'un fichier téléversé. Les fiches ne
// sont jamais modifiées ni supprimées par l'API.
type Image struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Filename     string    `db:"filename" json:"filename"`
	OriginalName string    `db:"original_name" json:"originalName"`
	URL          string    `db:"url" json:"url"`
	Size         int64     `db:"size" json:"size"`
	Mimetype     string    `db:"mimetype" json:"mimetype"`
	UploadedBy   string    `db:"uploaded_by" json:"uploadedBy"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
