package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/urban-report-service/internal/config"
)

// BlobStore is the opaque image store: it accepts a file and returns a
// public URL. The rest of the system only ever stores the URLs.
type BlobStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

// LocalDiskStore writes blobs under a local directory served statically
// by the HTTP layer.
type LocalDiskStore struct {
	dir     string
	baseURL string
}

// NewLocalDiskStore creates the directory if needed.
func NewLocalDiskStore(cfg config.UploadConfig) (*LocalDiskStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalDiskStore{dir: cfg.Dir, baseURL: strings.TrimRight(cfg.BaseURL, "/")}, nil
}

// Save stores the blob under a random name, keeping the extension.
func (s *LocalDiskStore) Save(_ context.Context, filename string, r io.Reader) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create blob: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write blob: %w", err)
	}
	return s.baseURL + "/" + name, nil
}
