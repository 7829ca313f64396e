package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mondedelice/bakery-backend/internal/models"
)

// ImageRepository travaille avec la table images. Les fiches sont en
// écriture seule: aucune opération de mise à jour ni de suppression n'est
// exposée, les fichiers orphelins sont assumés.
type ImageRepository struct {
	db *sqlx.DB
}

// NewImageRepository crée une instance.
func NewImageRepository(db *sqlx.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

// Create enregistre la fiche de métadonnées d'une image.
func (r *ImageRepository) Create(ctx context.Context, img *models.Image) error {
	query := `
		INSERT INTO images (filename, original_name, url, size, mimetype, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	if err := r.db.QueryRowxContext(ctx, query,
		img.Filename, img.OriginalName, img.URL, img.Size, img.Mimetype, img.UploadedBy,
	).Scan(&img.ID, &img.CreatedAt); err != nil {
		return fmt.Errorf("image repository: create: %w", err)
	}

	return nil
}

// Count retourne le nombre total d'images enregistrées.
func (r *ImageRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM images`); err != nil {
		return 0, fmt.Errorf("image repository: count: %w", err)
	}
	return count, nil
}
