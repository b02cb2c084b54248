package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"laporan_zakat/internal/usecase/interfaces"
)

// LocalStorage writes attachments below a base directory.
type LocalStorage struct {
	baseDir string
}

var _ interfaces.IAttachmentStorage = (*LocalStorage)(nil)

func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir}
}

func (s *LocalStorage) Save(_ context.Context, key string, data io.Reader, _ string) (string, error) {
	dest := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if rel, err := filepath.Rel(s.baseDir, dest); err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("storage: key %q escapes base dir", key)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("storage: mkdir: %w", err)
	}

	if err := writeFile(dest, data); err != nil {
		return "", err
	}
	return dest, nil
}

func writeFile(dest string, data io.Reader) (err error) {
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("storage: create: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("storage: close: %w", cerr)
		}
	}()

	if _, err := io.Copy(f, data); err != nil {
		return fmt.Errorf("storage: write: %w", err)
	}
	return nil
}
