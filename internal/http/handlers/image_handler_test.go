package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mondedelice/bakery-backend/internal/logger"
	"github.com/mondedelice/bakery-backend/internal/models"
	"github.com/mondedelice/bakery-backend/internal/storage"
)

// mockImageRecorder implémente ImageRecorder en mémoire.
type mockImageRecorder struct {
	created []*models.Image
	err     error
}

func (m *mockImageRecorder) Create(ctx context.Context, img *models.Image) error {
	if m.err != nil {
		return m.err
	}
	img.ID = uuid.New()
	m.created = append(m.created, img)
	return nil
}

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

// pngBytes fabrique un contenu reconnu comme PNG de la taille demandée.
func pngBytes(size int) []byte {
	content := make([]byte, size)
	copy(content, pngHeader)
	return content
}

func uploadRequest(t *testing.T, field, fileName, contentType string, content []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, fileName))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	if err != nil {
		t.Fatalf("création de la partie multipart: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("écriture du contenu multipart: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("fermeture du multipart: %v", err)
	}

	req, _ := http.NewRequest("POST", "/images/upload", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func uploadRouter(t *testing.T, recorder *mockImageRecorder, maxUploadMB int64) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	store, err := storage.NewImageStorage(dir, maxUploadMB)
	if err != nil {
		t.Fatalf("initialisation du stockage: %v", err)
	}

	handler := NewImageHandler(recorder, store, "http://localhost:8080")
	r := gin.New()
	r.POST("/images/upload", handler.Upload)
	r.POST("/images/save", handler.Save)
	return r, dir
}

func TestImageHandler_Upload_MissingFile(t *testing.T) {
	r, _ := uploadRouter(t, &mockImageRecorder{}, 1)

	// Champ "photo" au lieu de "image": aucun fichier exploitable.
	req := uploadRequest(t, "photo", "photo.png", "image/png", pngBytes(64))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Aucun fichier fourni")
}

func TestImageHandler_Upload_EmptyFile(t *testing.T) {
	r, _ := uploadRouter(t, &mockImageRecorder{}, 1)

	req := uploadRequest(t, "image", "vide.png", "image/png", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Le fichier ne peut pas être vide")
}

func TestImageHandler_Upload_DisallowedDeclaredType(t *testing.T) {
	recorder := &mockImageRecorder{}
	r, dir := uploadRouter(t, recorder, 1)

	// Contenu PNG valide mais type déclaré hors liste blanche: refusé.
	req := uploadRequest(t, "image", "photo.png", "application/octet-stream", pngBytes(64))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Type de fichier non autorisé")
	assert.Empty(t, recorder.created)
	assertDirEmpty(t, dir)
}

func TestImageHandler_Upload_MagicBytesMismatch(t *testing.T) {
	recorder := &mockImageRecorder{}
	r, dir := uploadRouter(t, recorder, 1)

	// Type déclaré autorisé mais contenu qui n'est pas une image: refusé.
	req := uploadRequest(t, "image", "photo.png", "image/png", []byte("<script>alert(1)</script>"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Type de fichier non autorisé")
	assert.Empty(t, recorder.created)
	assertDirEmpty(t, dir)
}

func TestImageHandler_Upload_OverCeiling(t *testing.T) {
	recorder := &mockImageRecorder{}
	r, dir := uploadRouter(t, recorder, 1)

	req := uploadRequest(t, "image", "gros.png", "image/png", pngBytes(1024*1024+1))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Fichier trop volumineux (max 1 MB)")
	assert.Empty(t, recorder.created)
	assertDirEmpty(t, dir)
}

func TestImageHandler_Upload_ExactlyAtCeiling(t *testing.T) {
	recorder := &mockImageRecorder{}
	r, dir := uploadRouter(t, recorder, 1)

	// Un fichier exactement au plafond passe.
	req := uploadRequest(t, "image", "limite.png", "image/png", pngBytes(1024*1024))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Image uploadée avec succès")
	assert.Contains(t, w.Body.String(), "http://localhost:8080/media/")

	assert.Len(t, recorder.created, 1)
	img := recorder.created[0]
	assert.Equal(t, int64(1024*1024), img.Size)
	assert.Equal(t, "image/png", img.Mimetype)
	assert.Equal(t, "limite.png", img.OriginalName)
	assert.Equal(t, "admin", img.UploadedBy)

	// Le fichier est réellement sur disque, sous le nom généré.
	if _, err := os.Stat(dir + "/" + img.Filename); err != nil {
		t.Fatalf("fichier stocké introuvable: %v", err)
	}
}

func TestImageHandler_Upload_MetadataFailureCleansFile(t *testing.T) {
	logger.Init("error")
	recorder := &mockImageRecorder{err: errors.New("insertion refusée")}
	r, dir := uploadRouter(t, recorder, 1)

	req := uploadRequest(t, "image", "photo.png", "image/png", pngBytes(64))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// Pas de fiche sans fichier, pas de fichier sans fiche.
	assertDirEmpty(t, dir)
}

func TestImageHandler_Save_MissingFields(t *testing.T) {
	r, _ := uploadRouter(t, &mockImageRecorder{}, 1)

	req, _ := http.NewRequest("POST", "/images/save", strings.NewReader(`{"url": "https://utfs.io/f/abc"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "URL et nom de fichier requis")
}

func TestImageHandler_Save_DefaultsMimetype(t *testing.T) {
	recorder := &mockImageRecorder{}
	r, _ := uploadRouter(t, recorder, 1)

	body := `{"url": "https://utfs.io/f/abc", "filename": "abc.jpg", "size": 1234}`
	req, _ := http.NewRequest("POST", "/images/save", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, recorder.created, 1)
	assert.Equal(t, "image/jpeg", recorder.created[0].Mimetype)
	assert.Equal(t, "client", recorder.created[0].UploadedBy)
}

func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("lecture du répertoire: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("fichiers restants dans le stockage: %d", len(entries))
	}
}
