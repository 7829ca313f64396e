// Package validation vérifie les entités du catalogue avant toute écriture.
// Contrairement aux tags binding de gin, chaque appel retourne la liste
// complète des violations, avec les messages affichés tels quels au client.
package validation

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/mondedelice/bakery-backend/internal/models"
)

// Bornes des champs des entités.
const (
	MinProductNameLength        = 2
	MaxProductNameLength        = 100
	MaxProductPrice             = 100000
	MaxProductDescriptionLength = 1000
	MaxCategoryLength           = 50
	MinBlogTitleLength          = 5
	MaxBlogTitleLength          = 200
	MinBlogExcerptLength        = 20
	MaxBlogExcerptLength        = 300
	MinBlogContentLength        = 50
	MaxTagLength                = 30
	MaxAuthorLength             = 100
)

// FieldError décrit une violation sur un champ précis.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations est la liste des violations d'une entité. Vide = entité valide.
type Violations []FieldError

func (v Violations) OK() bool { return len(v) == 0 }

func (v *Violations) add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}

var (
	// URLs acceptées: lien direct vers un fichier image, hôtes d'hébergement
	// connus (UploadThing), ou chemin local servi par ce backend
	// (placeholders /images/... et fichiers /media/...).
	imageURLPattern   = regexp.MustCompile(`(?i)^https?://.+\.(jpg|jpeg|png|webp|gif|svg)(\?.*)?$`)
	uploadHostPattern = regexp.MustCompile(`(?i)^https?://.*(uploadthing\.com|utfs\.io).*$`)
	localPathPattern  = regexp.MustCompile(`(?i)^/[^\s]+\.(jpg|jpeg|png|webp|gif|svg)$`)

	slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// ValidImageURL indique si une URL d'image est acceptable.
func ValidImageURL(u string) bool {
	return imageURLPattern.MatchString(u) ||
		uploadHostPattern.MatchString(u) ||
		localPathPattern.MatchString(u)
}

// ValidateProduct contrôle un produit entièrement matérialisé (défauts déjà
// appliqués). Toutes les violations sont collectées avant de répondre.
func ValidateProduct(p *models.Product) Violations {
	var v Violations

	switch n := utf8.RuneCountInString(p.Name); {
	case n == 0:
		v.add("name", "Le nom du produit est requis")
	case n < MinProductNameLength:
		v.add("name", fmt.Sprintf("Le nom doit contenir au moins %d caractères", MinProductNameLength))
	case n > MaxProductNameLength:
		v.add("name", fmt.Sprintf("Le nom ne peut pas dépasser %d caractères", MaxProductNameLength))
	}

	if p.Price < 0 {
		v.add("price", "Le prix ne peut pas être négatif")
	} else if p.Price > MaxProductPrice {
		v.add("price", fmt.Sprintf("Le prix ne peut pas dépasser %d€", MaxProductPrice))
	}

	switch n := utf8.RuneCountInString(p.Description); {
	case n == 0:
		v.add("description", "La description est requise")
	case n > MaxProductDescriptionLength:
		v.add("description", fmt.Sprintf("La description ne peut pas dépasser %d caractères", MaxProductDescriptionLength))
	}

	for i, img := range p.Images {
		if !ValidImageURL(img) {
			v.add(fmt.Sprintf("images[%d]", i), "URL d'image invalide")
		}
	}

	for i, cat := range p.Categories {
		if utf8.RuneCountInString(cat) > MaxCategoryLength {
			v.add(fmt.Sprintf("categories[%d]", i), fmt.Sprintf("Le nom de catégorie ne peut pas dépasser %d caractères", MaxCategoryLength))
		}
	}

	return v
}

// ValidateBlog contrôle une réalisation entièrement matérialisée (slug et
// défauts déjà appliqués).
func ValidateBlog(b *models.Blog) Violations {
	var v Violations

	switch n := utf8.RuneCountInString(b.Title); {
	case n == 0:
		v.add("title", "Le titre est requis")
	case n < MinBlogTitleLength:
		v.add("title", fmt.Sprintf("Le titre doit contenir au moins %d caractères", MinBlogTitleLength))
	case n > MaxBlogTitleLength:
		v.add("title", fmt.Sprintf("Le titre ne peut pas dépasser %d caractères", MaxBlogTitleLength))
	}

	if b.Slug == "" {
		v.add("slug", "Le slug est requis")
	} else if !slugPattern.MatchString(b.Slug) {
		v.add("slug", "Le slug ne peut contenir que des lettres minuscules, des chiffres et des tirets")
	}

	switch n := utf8.RuneCountInString(b.Excerpt); {
	case n == 0:
		v.add("excerpt", "L'extrait est requis")
	case n < MinBlogExcerptLength:
		v.add("excerpt", fmt.Sprintf("L'extrait doit contenir au moins %d caractères", MinBlogExcerptLength))
	case n > MaxBlogExcerptLength:
		v.add("excerpt", fmt.Sprintf("L'extrait ne peut pas dépasser %d caractères", MaxBlogExcerptLength))
	}

	switch n := utf8.RuneCountInString(b.Content); {
	case n == 0:
		v.add("content", "Le contenu est requis")
	case n < MinBlogContentLength:
		v.add("content", fmt.Sprintf("Le contenu doit contenir au moins %d caractères", MinBlogContentLength))
	}

	for i, img := range b.Images {
		if !ValidImageURL(img) {
			v.add(fmt.Sprintf("images[%d]", i), "URL d'image invalide")
		}
	}

	if b.Likes < 0 {
		v.add("likes", "Le nombre de likes ne peut pas être négatif")
	}

	for i, tag := range b.Tags {
		if utf8.RuneCountInString(tag) > MaxTagLength {
			v.add(fmt.Sprintf("tags[%d]", i), fmt.Sprintf("Le nom de tag ne peut pas dépasser %d caractères", MaxTagLength))
		}
	}

	switch n := utf8.RuneCountInString(b.Author); {
	case n == 0:
		v.add("meta.author", "L'auteur est requis")
	case n > MaxAuthorLength:
		v.add("meta.author", fmt.Sprintf("Le nom de l'auteur ne peut pas dépasser %d caractères", MaxAuthorLength))
	}

	if b.EventDate != nil && b.EventDate.After(time.Now()) {
		v.add("meta.eventDate", "La date de l'événement ne peut pas être dans le futur")
	}

	return v
}
