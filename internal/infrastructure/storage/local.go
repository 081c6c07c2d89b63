// Package storage implementa o armazenamento de binários em disco local.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/credenciamento-api/internal/application/usecase"
	"github.com/jhoicas/credenciamento-api/pkg/config"
)

// Garante que LocalStorage implementa o porto da camada de aplicação.
var _ usecase.BinaryStorage = (*LocalStorage)(nil)

// LocalStorage grava binários em disco e devolve URLs públicas montadas
// sobre o prefixo configurado. O servidor HTTP expõe o diretório como
// estático sob o mesmo prefixo.
type LocalStorage struct {
	dir     string
	baseURL string
}

// NewLocalStorage constrói o armazenamento local.
func NewLocalStorage(cfg config.StorageConfig) *LocalStorage {
	return &LocalStorage{dir: cfg.Dir, baseURL: strings.TrimRight(cfg.BaseURL, "/")}
}

// Save grava o binário em dir/folder/key e devolve a URL pública.
func (s *LocalStorage) Save(folder, key string, data []byte) (string, error) {
	destDir := filepath.Join(s.dir, folder)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("storage: criar diretório: %w", err)
	}
	dest := filepath.Join(destDir, key)
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: gravar arquivo: %w", err)
	}
	return s.baseURL + "/" + folder + "/" + key, nil
}

// Dir devolve o diretório raiz, usado pelo servidor para servir os
// arquivos estáticos.
func (s *LocalStorage) Dir() string {
	return s.dir
}
