package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/mondedelice/bakery-backend/internal/models"
)

var (
	// ErrBlogNotFound signale qu'aucune réalisation ne correspond.
	ErrBlogNotFound = errors.New("blog non trouvé")
	// ErrSlugTaken signale un conflit sur le slug (contrainte UNIQUE).
	ErrSlugTaken = errors.New("ce slug est déjà utilisé")
)

// BlogFilter porte les filtres de listing des réalisations.
type BlogFilter struct {
	Search   string
	Tag      string
	Featured bool
}

// BlogRepository travaille avec la table blogs.
type BlogRepository struct {
	db *sqlx.DB
}

// NewBlogRepository crée une instance.
func NewBlogRepository(db *sqlx.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

// Create insère une réalisation. Un slug déjà pris remonte ErrSlugTaken.
func (r *BlogRepository) Create(ctx context.Context, b *models.Blog) error {
	query := `
		INSERT INTO blogs (title, slug, excerpt, content, images, featured, tags, author, event_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, likes, created_at, updated_at
	`

	if err := r.db.QueryRowxContext(ctx, query,
		b.Title, b.Slug, b.Excerpt, b.Content, b.Images, b.Featured, b.Tags, b.Author, b.EventDate,
	).Scan(&b.ID, &b.Likes, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if isSlugViolation(err) {
			return ErrSlugTaken
		}
		return fmt.Errorf("blog repository: create: %w", err)
	}

	return nil
}

// GetByID retourne une réalisation par son identifiant.
func (r *BlogRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	var b models.Blog
	if err := r.db.GetContext(ctx, &b, `SELECT * FROM blogs WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("blog repository: get by id: %w", err)
	}
	return &b, nil
}

// List retourne les réalisations filtrées, de la plus récente à la plus
// ancienne. search cherche dans le titre, l'extrait, le contenu et les tags.
func (r *BlogRepository) List(ctx context.Context, filter BlogFilter) ([]models.Blog, error) {
	query := `SELECT * FROM blogs`
	var conds []string
	var args []interface{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			`(title ILIKE $%d OR excerpt ILIKE $%d OR content ILIKE $%d OR array_to_string(tags, ' ') ILIKE $%d)`, n, n, n, n))
	}
	if filter.Featured {
		conds = append(conds, `featured = TRUE`)
	}
	if filter.Tag != "" {
		args = append(args, filter.Tag)
		conds = append(conds, fmt.Sprintf(`$%d = ANY(tags)`, len(args)))
	}

	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, ` AND `)
	}
	query += ` ORDER BY created_at DESC`

	blogs := []models.Blog{}
	if err := r.db.SelectContext(ctx, &blogs, query, args...); err != nil {
		return nil, fmt.Errorf("blog repository: list: %w", err)
	}
	return blogs, nil
}

// Update remplace les champs éditoriaux d'une réalisation. Le compteur de
// likes n'est jamais touché ici: il appartient au moteur de likes.
func (r *BlogRepository) Update(ctx context.Context, b *models.Blog) error {
	query := `
		UPDATE blogs
		SET title = $1, slug = $2, excerpt = $3, content = $4, images = $5,
		    featured = $6, tags = $7, author = $8, event_date = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING likes, updated_at
	`

	if err := r.db.QueryRowxContext(ctx, query,
		b.Title, b.Slug, b.Excerpt, b.Content, b.Images, b.Featured, b.Tags, b.Author, b.EventDate, b.ID,
	).Scan(&b.Likes, &b.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBlogNotFound
		}
		if isSlugViolation(err) {
			return ErrSlugTaken
		}
		return fmt.Errorf("blog repository: update: %w", err)
	}

	return nil
}

// Delete supprime définitivement une réalisation. Les likes associés sont
// supprimés en cascade par la base.
func (r *BlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("blog repository: delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBlogNotFound
	}
	return nil
}

// Count retourne le nombre total de réalisations.
func (r *BlogRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM blogs`); err != nil {
		return 0, fmt.Errorf("blog repository: count: %w", err)
	}
	return count, nil
}

// CountFeatured retourne le nombre de réalisations mises en avant.
func (r *BlogRepository) CountFeatured(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM blogs WHERE featured = TRUE`); err != nil {
		return 0, fmt.Errorf("blog repository: count featured: %w", err)
	}
	return count, nil
}

// isSlugViolation reconnaît la violation de la contrainte UNIQUE sur le slug.
func isSlugViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505" && strings.Contains(pqErr.Constraint, "slug")
}
