package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mondedelice/bakery-backend/internal/models"
)

// ErrProductNotFound signale qu'aucun produit ne correspond à l'identifiant.
var ErrProductNotFound = errors.New("produit non trouvé")

// ProductRepository travaille avec la table products.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository crée une instance.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create insère un produit et renseigne les champs gérés par la base.
func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	query := `
		INSERT INTO products (name, price, description, images, categories)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	if err := r.db.QueryRowxContext(ctx, query,
		p.Name, p.Price, p.Description, p.Images, p.Categories,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return fmt.Errorf("product repository: create: %w", err)
	}

	return nil
}

// GetByID retourne un produit par son identifiant.
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var p models.Product
	if err := r.db.GetContext(ctx, &p, `SELECT * FROM products WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("product repository: get by id: %w", err)
	}
	return &p, nil
}

// List retourne les produits filtrés, du plus récent au plus ancien.
// search cherche dans le nom, la description et les catégories (insensible à
// la casse); category est une correspondance exacte. Pas de pagination.
func (r *ProductRepository) List(ctx context.Context, search, category string) ([]models.Product, error) {
	query := `SELECT * FROM products`
	var conds []string
	var args []interface{}

	if search != "" {
		args = append(args, "%"+search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			`(name ILIKE $%d OR description ILIKE $%d OR array_to_string(categories, ' ') ILIKE $%d)`, n, n, n))
	}
	if category != "" {
		args = append(args, category)
		conds = append(conds, fmt.Sprintf(`$%d = ANY(categories)`, len(args)))
	}

	for i, cond := range conds {
		if i == 0 {
			query += ` WHERE ` + cond
		} else {
			query += ` AND ` + cond
		}
	}
	query += ` ORDER BY created_at DESC`

	products := []models.Product{}
	if err := r.db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("product repository: list: %w", err)
	}
	return products, nil
}

// Update remplace les champs modifiables d'un produit.
func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	query := `
		UPDATE products
		SET name = $1, price = $2, description = $3, images = $4, categories = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	if err := r.db.QueryRowxContext(ctx, query,
		p.Name, p.Price, p.Description, p.Images, p.Categories, p.ID,
	).Scan(&p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrProductNotFound
		}
		return fmt.Errorf("product repository: update: %w", err)
	}

	return nil
}

// Delete supprime définitivement un produit.
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("product repository: delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Count retourne le nombre total de produits.
func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM products`); err != nil {
		return 0, fmt.Errorf("product repository: count: %w", err)
	}
	return count, nil
}
