package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImageStorage écrit les images téléversées sur disque. Les fichiers sont
// servis ensuite en statique sous /media.
type ImageStorage struct {
	rootPath       string
	maxUploadBytes int64
}

// NewImageStorage prépare le répertoire de stockage.
func NewImageStorage(rootPath string, maxUploadMB int64) (*ImageStorage, error) {
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: création du répertoire %s: %w", rootPath, err)
	}

	return &ImageStorage{
		rootPath:       rootPath,
		maxUploadBytes: maxUploadMB * 1024 * 1024,
	}, nil
}

// MaxUploadBytes retourne le plafond de taille configuré.
func (s *ImageStorage) MaxUploadBytes() int64 {
	return s.maxUploadBytes
}

// Save écrit le fichier sous un nom généré (UUID + extension d'origine) et
// retourne ce nom avec la taille écrite. L'écriture passe par un fichier
// temporaire renommé à la fin: un upload interrompu ne laisse pas de fichier
// à moitié écrit visible.
func (s *ImageStorage) Save(ctx context.Context, originalName string, r io.Reader) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	ext := strings.ToLower(filepath.Ext(sanitizeFilename(originalName)))
	fileName := uuid.NewString() + ext

	targetPath := filepath.Join(s.rootPath, fileName)
	tempPath := targetPath + ".tmp"

	f, err := os.Create(tempPath)
	if err != nil {
		return "", 0, fmt.Errorf("storage: création du fichier: %w", err)
	}
	defer f.Close()

	// Un octet de plus que le plafond pour détecter le dépassement.
	limitedReader := io.LimitedReader{R: r, N: s.maxUploadBytes + 1}
	written, err := io.Copy(f, &limitedReader)
	if err != nil {
		_ = os.Remove(tempPath)
		return "", 0, fmt.Errorf("storage: écriture du fichier: %w", err)
	}

	if written > s.maxUploadBytes {
		_ = os.Remove(tempPath)
		return "", 0, fmt.Errorf("storage: le fichier dépasse la limite de %d octets", s.maxUploadBytes)
	}

	if err := f.Close(); err != nil {
		return "", 0, fmt.Errorf("storage: fermeture du fichier: %w", err)
	}

	if err := os.Rename(tempPath, targetPath); err != nil {
		return "", 0, fmt.Errorf("storage: renommage du fichier: %w", err)
	}

	return fileName, written, nil
}

// Delete retire un fichier du stockage (utilisé pour nettoyer après un échec
// d'enregistrement des métadonnées).
func (s *ImageStorage) Delete(ctx context.Context, fileName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := filepath.Join(s.rootPath, filepath.Base(fileName))
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: suppression du fichier: %w", err)
	}
	return nil
}

// sanitizeFilename neutralise les caractères dangereux du nom d'origine.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "..", "")
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	if name == "" {
		name = "image"
	}
	return name
}
