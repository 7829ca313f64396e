package dto

import (
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/mondedelice/bakery-backend/internal/models"
)

// CreateProductRequest est la charge utile de création d'un produit.
type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Images      []string `json:"images"`
	Categories  []string `json:"categories"`
}

// ToModel matérialise le produit à valider puis persister.
func (r *CreateProductRequest) ToModel() *models.Product {
	return &models.Product{
		Name:        r.Name,
		Price:       *r.Price,
		Description: r.Description,
		Images:      pq.StringArray(r.Images),
		Categories:  pq.StringArray(r.Categories),
	}
}

// UpdateProductRequest est une mise à jour partielle: seuls les champs
// présents dans le JSON sont appliqués.
type UpdateProductRequest struct {
	Name        *string   `json:"name"`
	Price       *float64  `json:"price"`
	Description *string   `json:"description"`
	Images      *[]string `json:"images"`
	Categories  *[]string `json:"categories"`
}

// ApplyTo fusionne les champs fournis sur l'entité existante. Le résultat
// fusionné est revalidé par l'appelant avant persistance.
func (r *UpdateProductRequest) ApplyTo(p *models.Product) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Images != nil {
		p.Images = pq.StringArray(*r.Images)
	}
	if r.Categories != nil {
		p.Categories = pq.StringArray(*r.Categories)
	}
}

// CreateBlogMeta porte les métadonnées obligatoires d'une réalisation.
type CreateBlogMeta struct {
	Author    string  `json:"author" binding:"required"`
	EventDate *string `json:"eventDate"`
}

// CreateBlogRequest est la charge utile de création d'une réalisation.
type CreateBlogRequest struct {
	Title    string          `json:"title" binding:"required"`
	Slug     string          `json:"slug"`
	Excerpt  string          `json:"excerpt" binding:"required"`
	Content  string          `json:"content" binding:"required"`
	Images   []string        `json:"images"`
	Featured bool            `json:"featured"`
	Tags     []string        `json:"tags"`
	Meta     *CreateBlogMeta `json:"meta" binding:"required"`
}

// ToModel matérialise la réalisation à valider puis persister.
func (r *CreateBlogRequest) ToModel() (*models.Blog, error) {
	eventDate, err := ParseEventDate(r.Meta.EventDate)
	if err != nil {
		return nil, err
	}

	return &models.Blog{
		Title:     r.Title,
		Slug:      r.Slug,
		Excerpt:   r.Excerpt,
		Content:   r.Content,
		Images:    pq.StringArray(r.Images),
		Featured:  r.Featured,
		Tags:      pq.StringArray(r.Tags),
		Author:    r.Meta.Author,
		EventDate: eventDate,
	}, nil
}

// UpdateBlogMeta est la variante partielle de CreateBlogMeta.
type UpdateBlogMeta struct {
	Author    *string `json:"author"`
	EventDate *string `json:"eventDate"`
}

// UpdateBlogRequest est une mise à jour partielle d'une réalisation.
type UpdateBlogRequest struct {
	Title    *string         `json:"title"`
	Slug     *string         `json:"slug"`
	Excerpt  *string         `json:"excerpt"`
	Content  *string         `json:"content"`
	Images   *[]string       `json:"images"`
	Featured *bool           `json:"featured"`
	Tags     *[]string       `json:"tags"`
	Meta     *UpdateBlogMeta `json:"meta"`
}

// ApplyTo fusionne les champs fournis sur l'entité existante.
func (r *UpdateBlogRequest) ApplyTo(b *models.Blog) error {
	if r.Title != nil {
		b.Title = *r.Title
	}
	if r.Slug != nil {
		b.Slug = *r.Slug
	}
	if r.Excerpt != nil {
		b.Excerpt = *r.Excerpt
	}
	if r.Content != nil {
		b.Content = *r.Content
	}
	if r.Images != nil {
		b.Images = pq.StringArray(*r.Images)
	}
	if r.Featured != nil {
		b.Featured = *r.Featured
	}
	if r.Tags != nil {
		b.Tags = pq.StringArray(*r.Tags)
	}
	if r.Meta != nil {
		if r.Meta.Author != nil {
			b.Author = *r.Meta.Author
		}
		if r.Meta.EventDate != nil {
			eventDate, err := ParseEventDate(r.Meta.EventDate)
			if err != nil {
				return err
			}
			b.EventDate = eventDate
		}
	}
	return nil
}

// ParseEventDate accepte une date RFC 3339 ou au format AAAA-MM-JJ.
func ParseEventDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, *raw); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", *raw); err == nil {
		return &t, nil
	}
	return nil, fmt.Errorf("date de l'événement invalide: %s", *raw)
}

// ValidatePasswordRequest est la charge utile de POST /api/admin/validate.
type ValidatePasswordRequest struct {
	Password string `json:"password"`
}

// SaveImageRequest enregistre les métadonnées d'une image déjà hébergée
// ailleurs (téléversement côté client).
type SaveImageRequest struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Mimetype string `json:"mimetype"`
}
