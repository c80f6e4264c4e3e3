package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/invorya/warehouse-api/internal/application/usecase"
)

var _ usecase.FileStore = (*LocalStore)(nil)

// LocalStore guarda archivos subidos bajo un directorio raíz del disco local.
// Cada archivo recibe un prefijo UUID para evitar colisiones de nombre.
type LocalStore struct {
	root string
}

// NewLocalStore crea el directorio raíz si no existe.
func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de subida: %w", err)
	}
	return &LocalStore{root: root}, nil
}

// Save escribe el contenido y devuelve la ruta relativa y el tamaño en bytes.
func (s *LocalStore) Save(ctx context.Context, fileName string, r io.Reader) (string, int64, error) {
	// filepath.Base corta cualquier ruta que venga en el nombre del cliente.
	name := uuid.New().String() + "_" + filepath.Base(fileName)
	full := filepath.Join(s.root, name)

	f, err := os.Create(full)
	if err != nil {
		return "", 0, fmt.Errorf("crear archivo: %w", err)
	}
	defer f.Close()

	size, err := io.Copy(f, r)
	if err != nil {
		_ = os.Remove(full)
		return "", 0, fmt.Errorf("escribir archivo: %w", err)
	}
	return name, size, nil
}

// Open abre un archivo guardado por su ruta relativa.
func (s *LocalStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.root, filepath.Base(path)))
	if err != nil {
		return nil, fmt.Errorf("abrir archivo: %w", err)
	}
	return f, nil
}
