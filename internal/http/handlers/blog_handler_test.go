package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestBlogHandler_GetBlog_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &BlogHandler{blogs: nil}
	r.GET("/blogs/:id", handler.GetBlog)

	req, _ := http.NewRequest("GET", "/blogs/pas-un-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBlogHandler_CreateBlog_MissingMeta(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &BlogHandler{blogs: nil}
	r.POST("/blogs", handler.CreateBlog)

	// meta absent: refusé au binding.
	body := `{
		"title": "Mariage de Sophie et Marc",
		"excerpt": "Un mariage champêtre aux couleurs pastel.",
		"content": "Une pièce montée de 120 choux et un buffet de mignardises."
	}`
	req, _ := http.NewRequest("POST", "/blogs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBlogHandler_CreateBlog_BadEventDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &BlogHandler{blogs: nil}
	r.POST("/blogs", handler.CreateBlog)

	body := `{
		"title": "Mariage de Sophie et Marc",
		"excerpt": "Un mariage champêtre aux couleurs pastel.",
		"content": "Une pièce montée de 120 choux et un buffet de mignardises.",
		"meta": {"author": "Monde Délice", "eventDate": "14/06/2026"}
	}`
	req, _ := http.NewRequest("POST", "/blogs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "date de l'événement invalide")
}

func TestBlogHandler_CreateBlog_Violations(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &BlogHandler{blogs: nil}
	r.POST("/blogs", handler.CreateBlog)

	// Titre et extrait trop courts: toutes les violations sont listées.
	body := `{
		"title": "Abc",
		"excerpt": "Court",
		"content": "Une pièce montée de 120 choux et un buffet de mignardises.",
		"meta": {"author": "Monde Délice"}
	}`
	req, _ := http.NewRequest("POST", "/blogs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"title"`)
	assert.Contains(t, w.Body.String(), `"field":"excerpt"`)
}

func TestBlogHandler_UpdateBlog_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &BlogHandler{blogs: nil}
	r.PUT("/blogs/:id", handler.UpdateBlog)

	req, _ := http.NewRequest("PUT", "/blogs/pas-un-uuid", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
