package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/mondedelice/bakery-backend/internal/models"
)

var (
	// ErrAlreadyLiked signale que le couple (blog, adresse IP) existe déjà.
	// C'est aussi l'issue d'une double soumission concurrente: le perdant de
	// la course tombe sur la contrainte UNIQUE, jamais sur une erreur 500.
	ErrAlreadyLiked = errors.New("vous avez déjà liké ce blog")
	// ErrLikeNotFound signale qu'il n'y a pas de like à retirer.
	ErrLikeNotFound = errors.New("like non trouvé")
)

// LikeRepository travaille avec la table likes et le compteur dénormalisé
// blogs.likes. L'insertion du like et l'incrément du compteur partagent la
// même transaction pour que les deux ne puissent pas diverger.
type LikeRepository struct {
	db *sqlx.DB
}

// NewLikeRepository crée une instance.
func NewLikeRepository(db *sqlx.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// Like enregistre un like et incrémente le compteur, atomiquement.
// Retourne le nouveau total de likes de la réalisation.
func (r *LikeRepository) Like(ctx context.Context, blogID uuid.UUID, ipAddress string, userAgent *string) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("like repository: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO likes (blog_id, ip_address, user_agent)
		VALUES ($1, $2, $3)
	`, blogID, ipAddress, userAgent); err != nil {
		if isUniqueViolation(err) {
			return 0, ErrAlreadyLiked
		}
		return 0, fmt.Errorf("like repository: insert: %w", err)
	}

	var total int
	if err := tx.QueryRowxContext(ctx, `
		UPDATE blogs SET likes = likes + 1 WHERE id = $1 RETURNING likes
	`, blogID).Scan(&total); err != nil {
		return 0, fmt.Errorf("like repository: increment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("like repository: commit: %w", err)
	}

	return total, nil
}

// Unlike retire un like et décrémente le compteur, plancher à zéro.
// Retourne le nouveau total de likes de la réalisation.
func (r *LikeRepository) Unlike(ctx context.Context, blogID uuid.UUID, ipAddress string) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("like repository: begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		DELETE FROM likes WHERE blog_id = $1 AND ip_address = $2
	`, blogID, ipAddress)
	if err != nil {
		return 0, fmt.Errorf("like repository: delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return 0, ErrLikeNotFound
	}

	var total int
	if err := tx.QueryRowxContext(ctx, `
		UPDATE blogs SET likes = GREATEST(likes - 1, 0) WHERE id = $1 RETURNING likes
	`, blogID).Scan(&total); err != nil {
		return 0, fmt.Errorf("like repository: decrement: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("like repository: commit: %w", err)
	}

	return total, nil
}

// Exists indique si ce visiteur a déjà liké cette réalisation.
func (r *LikeRepository) Exists(ctx context.Context, blogID uuid.UUID, ipAddress string) (bool, error) {
	var like models.Like
	err := r.db.GetContext(ctx, &like, `
		SELECT * FROM likes WHERE blog_id = $1 AND ip_address = $2
	`, blogID, ipAddress)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("like repository: exists: %w", err)
	}
	return true, nil
}

// isUniqueViolation reconnaît le code 23505 de PostgreSQL.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
