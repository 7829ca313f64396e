package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestProductHandler_GetProduct_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &ProductHandler{products: nil}
	r.GET("/products/:id", handler.GetProduct)

	req, _ := http.NewRequest("GET", "/products/pas-un-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductHandler_CreateProduct_MalformedJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &ProductHandler{products: nil}
	r.POST("/products", handler.CreateProduct)

	req, _ := http.NewRequest("POST", "/products", strings.NewReader("{pas du json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Données invalides")
}

func TestProductHandler_CreateProduct_MissingPrice(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &ProductHandler{products: nil}
	r.POST("/products", handler.CreateProduct)

	// price absent: refusé au binding, avant toute logique métier.
	body := `{"name": "Fraisier", "description": "Un classique."}`
	req, _ := http.NewRequest("POST", "/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductHandler_CreateProduct_Violations(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &ProductHandler{products: nil}
	r.POST("/products", handler.CreateProduct)

	// Nom d'un caractère et prix négatif: les deux violations sont énumérées.
	body := `{"name": "F", "price": -10, "description": "Un classique."}`
	req, _ := http.NewRequest("POST", "/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"name"`)
	assert.Contains(t, w.Body.String(), `"field":"price"`)
}

func TestProductHandler_UpdateProduct_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &ProductHandler{products: nil}
	r.PUT("/products/:id", handler.UpdateProduct)

	req, _ := http.NewRequest("PUT", "/products/pas-un-uuid", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductHandler_DeleteProduct_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &ProductHandler{products: nil}
	r.DELETE("/products/:id", handler.DeleteProduct)

	req, _ := http.NewRequest("DELETE", "/products/pas-un-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
