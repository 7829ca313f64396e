package dto

import (
	"testing"
	"time"

	"github.com/lib/pq"

	"github.com/mondedelice/bakery-backend/internal/models"
)

func TestParseEventDate(t *testing.T) {
	cases := []struct {
		name    string
		raw     *string
		wantNil bool
		wantErr bool
	}{
		{"nil", nil, true, false},
		{"vide", ptr(""), true, false},
		{"RFC 3339", ptr("2026-06-14T15:00:00Z"), false, false},
		{"date seule", ptr("2026-06-14"), false, false},
		{"invalide", ptr("14/06/2026"), false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseEventDate(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatal("erreur attendue")
				}
				return
			}
			if err != nil {
				t.Fatalf("erreur inattendue: %v", err)
			}
			if (got == nil) != tc.wantNil {
				t.Fatalf("résultat = %v, nil attendu = %v", got, tc.wantNil)
			}
		})
	}
}

func TestParseEventDate_DateOnly(t *testing.T) {
	got, err := ParseEventDate(ptr("2026-06-14"))
	if err != nil {
		t.Fatalf("erreur inattendue: %v", err)
	}
	want := time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("date = %v, attendu %v", got, want)
	}
}

func TestUpdateProductRequest_ApplyTo(t *testing.T) {
	p := &models.Product{
		Name:        "Fraisier",
		Price:       35,
		Description: "Un classique.",
		Images:      pq.StringArray{"/media/fraisier.jpg"},
		Categories:  pq.StringArray{"Gâteaux"},
	}

	newPrice := 42.5
	req := UpdateProductRequest{Price: &newPrice}
	req.ApplyTo(p)

	if p.Price != 42.5 {
		t.Errorf("prix = %v", p.Price)
	}
	// Les champs absents du JSON restent inchangés.
	if p.Name != "Fraisier" || p.Description != "Un classique." {
		t.Errorf("champs non fournis modifiés: %+v", p)
	}
	if len(p.Images) != 1 || len(p.Categories) != 1 {
		t.Errorf("listes non fournies modifiées: %+v", p)
	}
}

func TestUpdateBlogRequest_ApplyTo_MergesMeta(t *testing.T) {
	eventDate := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	b := &models.Blog{
		Title:     "Mariage champêtre",
		Author:    "Monde Délice",
		EventDate: &eventDate,
	}

	req := UpdateBlogRequest{
		Meta: &UpdateBlogMeta{Author: ptr("Claire")},
	}
	if err := req.ApplyTo(b); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if b.Author != "Claire" {
		t.Errorf("auteur = %q", b.Author)
	}
	if b.EventDate == nil || !b.EventDate.Equal(eventDate) {
		t.Errorf("eventDate fourni nulle part mais modifié: %v", b.EventDate)
	}
}

func TestUpdateBlogRequest_ApplyTo_BadEventDate(t *testing.T) {
	b := &models.Blog{Title: "Mariage champêtre"}

	req := UpdateBlogRequest{
		Meta: &UpdateBlogMeta{EventDate: ptr("pas-une-date")},
	}
	if err := req.ApplyTo(b); err == nil {
		t.Fatal("date invalide acceptée")
	}
}

func ptr[T any](v T) *T { return &v }
