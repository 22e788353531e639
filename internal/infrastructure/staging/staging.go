// Package staging spools picked files between pick and submit. A failed
// submission keeps its files on disk so the user can retry; a successful
// one discards them.
package staging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/nitinkv/docvault/internal/core/domain"
)

type Store struct {
	basePath string
}

func New(basePath string) (*Store, error) {
	if basePath == "" {
		basePath = "./data/staging"
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create staging dir: %w", err)
	}
	return &Store{basePath: basePath}, nil
}

func (s *Store) Stage(_ context.Context, name, mimeType string, data io.Reader) (domain.PendingFile, error) {
	key := fmt.Sprintf("%s_%s", uuid.NewString(), sanitizeFilename(name))
	path := filepath.Join(s.basePath, key)

	f, err := os.Create(path)
	if err != nil {
		return domain.PendingFile{}, fmt.Errorf("create staged file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		_ = os.Remove(path)
		return domain.PendingFile{}, fmt.Errorf("write staged file: %w", err)
	}

	return domain.PendingFile{
		URI:      path,
		Name:     name,
		MimeType: mimeType,
	}, nil
}

func (s *Store) Open(_ context.Context, file domain.PendingFile) (io.ReadCloser, error) {
	f, err := os.Open(file.URI)
	if err != nil {
		return nil, fmt.Errorf("open staged file: %w", err)
	}
	return f, nil
}

func (s *Store) Discard(_ context.Context, file domain.PendingFile) error {
	err := os.Remove(file.URI)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("discard staged file: %w", err)
	}
	return nil
}

func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	base = strings.ReplaceAll(base, " ", "_")
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r
		case r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	if base == "" || base == "." || base == ".." {
		return "document.bin"
	}
	return base
}
