package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Placeholders utilisés quand l'admin n'a fourni aucune image.
const (
	DefaultProductImage = "/images/default-cake.jpg"
	DefaultCategory     = "Général"
)

// Product représente une offre du catalogue (gâteau, prestation traiteur...).
type Product struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	Price       float64        `db:"price" json:"price"`
	Description string         `db:"description" json:"description"`
	Images      pq.StringArray `db:"images" json:"images"`
	Categories  pq.StringArray `db:"categories" json:"categories"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updatedAt"`
}

// Normalize applique les valeurs par défaut juste avant l'écriture en base:
// catégorie "Général" et image placeholder quand les listes sont vides.
func (p *Product) Normalize() {
	if len(p.Categories) == 0 {
		p.Categories = pq.StringArray{DefaultCategory}
	}
	if len(p.Images) == 0 {
		p.Images = pq.StringArray{DefaultProductImage}
	}
}
