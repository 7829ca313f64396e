package models

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// DefaultBlogImage est le placeholder d'une réalisation sans photo.
const DefaultBlogImage = "/images/default-blog.jpg"

// BlogMeta porte les métadonnées éditoriales d'une réalisation.
type BlogMeta struct {
	Author    string     `json:"author"`
	EventDate *time.Time `json:"eventDate,omitempty"`
}

// Blog représente une réalisation publiée (reportage d'un événement).
// Le contenu est restitué tel quel au client: la rédaction étant réservée à
// l'admin authentifié, aucun nettoyage HTML n'est appliqué côté serveur.
type Blog struct {
	ID        uuid.UUID      `db:"id" json:"id"`
	Title     string         `db:"title" json:"title"`
	Slug      string         `db:"slug" json:"slug"`
	Excerpt   string         `db:"excerpt" json:"excerpt"`
	Content   string         `db:"content" json:"content"`
	Images    pq.StringArray `db:"images" json:"images"`
	Featured  bool           `db:"featured" json:"featured"`
	Likes     int            `db:"likes" json:"likes"`
	Tags      pq.StringArray `db:"tags" json:"tags"`
	Author    string         `db:"author" json:"-"`
	EventDate *time.Time     `db:"event_date" json:"-"`
	CreatedAt time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time      `db:"updated_at" json:"updatedAt"`
}

// MarshalJSON regroupe author et eventDate sous la clé meta, comme dans le
// contrat de l'API.
func (b Blog) MarshalJSON() ([]byte, error) {
	type alias Blog
	return json.Marshal(struct {
		alias
		Meta BlogMeta `json:"meta"`
	}{
		alias: alias(b),
		Meta:  BlogMeta{Author: b.Author, EventDate: b.EventDate},
	})
}

// Normalize applique les valeurs par défaut juste avant l'écriture en base:
// slug dérivé du titre, tag "Général" et image placeholder.
func (b *Blog) Normalize() {
	if b.Slug == "" {
		b.Slug = Slugify(b.Title)
	}
	if len(b.Tags) == 0 {
		b.Tags = pq.StringArray{DefaultCategory}
	}
	if len(b.Images) == 0 {
		b.Images = pq.StringArray{DefaultBlogImage}
	}
}

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace   = regexp.MustCompile(`\s+`)
	slugHyphens      = regexp.MustCompile(`-+`)
)

// Slugify dérive un slug stable d'un titre: minuscules, caractères hors
// [a-z0-9 -] supprimés, espaces remplacés par des tirets, tirets dédoublés.
// C'est l'unique implémentation canonique; tout aperçu côté client n'est
// qu'indicatif.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugInvalidChars.ReplaceAllString(s, "")
	s = slugWhitespace.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
