package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/lib/pq"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Mariage de Sophie & Marc", "mariage-de-sophie-marc"},
		{"Gâteau Chocolat", "gteau-chocolat"},
		{"  Plusieurs   espaces  ", "plusieurs-espaces"},
		{"Déjà---des---tirets", "dj-des-tirets"},
		{"100% Bio!", "100-bio"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := Slugify(tc.title); got != tc.want {
			t.Errorf("Slugify(%q) = %q, attendu %q", tc.title, got, tc.want)
		}
	}
}

func TestBlogNormalize(t *testing.T) {
	b := &Blog{Title: "Anniversaire de Léa"}
	b.Normalize()

	if b.Slug != "anniversaire-de-la" {
		t.Errorf("slug dérivé = %q", b.Slug)
	}
	if len(b.Tags) != 1 || b.Tags[0] != DefaultCategory {
		t.Errorf("tags par défaut = %v", b.Tags)
	}
	if len(b.Images) != 1 || b.Images[0] != DefaultBlogImage {
		t.Errorf("images par défaut = %v", b.Images)
	}
}

func TestBlogNormalize_KeepsExplicitValues(t *testing.T) {
	b := &Blog{
		Title:  "Titre",
		Slug:   "slug-fourni",
		Tags:   pq.StringArray{"Mariage"},
		Images: pq.StringArray{"/media/photo.jpg"},
	}
	b.Normalize()

	if b.Slug != "slug-fourni" {
		t.Errorf("le slug fourni ne doit pas être écrasé, obtenu %q", b.Slug)
	}
	if b.Tags[0] != "Mariage" || b.Images[0] != "/media/photo.jpg" {
		t.Errorf("valeurs explicites écrasées: tags=%v images=%v", b.Tags, b.Images)
	}
}

func TestBlogMarshalJSON_NestsMeta(t *testing.T) {
	eventDate := time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC)
	b := Blog{
		Title:     "Mariage champêtre",
		Author:    "Monde Délice",
		EventDate: &eventDate,
	}

	raw, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out map[string]json.RawMessage
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if _, ok := out["author"]; ok {
		t.Errorf("author ne doit pas apparaître à la racine")
	}
	if _, ok := out["eventDate"]; ok {
		t.Errorf("eventDate ne doit pas apparaître à la racine")
	}

	var meta BlogMeta
	if err := json.Unmarshal(out["meta"], &meta); err != nil {
		t.Fatalf("meta manquant ou invalide: %v", err)
	}
	if meta.Author != "Monde Délice" {
		t.Errorf("meta.author = %q", meta.Author)
	}
	if meta.EventDate == nil || !meta.EventDate.Equal(eventDate) {
		t.Errorf("meta.eventDate = %v", meta.EventDate)
	}
}
