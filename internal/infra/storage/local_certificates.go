package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalCertificateStore writes registration certificates to disk and hands
// back a URL under the configured public base. Object storage can replace it
// behind the same port.
type LocalCertificateStore struct {
	dir     string
	baseURL string
}

func NewLocalCertificateStore(dir, baseURL string) (*LocalCertificateStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create certificate dir: %w", err)
	}
	return &LocalCertificateStore{dir: dir, baseURL: baseURL}, nil
}

func (s *LocalCertificateStore) Upload(ctx context.Context, filename string, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name := uuid.New().String() + filepath.Ext(filename)
	if err := os.WriteFile(filepath.Join(s.dir, name), content, 0o644); err != nil {
		return "", fmt.Errorf("store certificate: %w", err)
	}
	return s.baseURL + "/" + name, nil
}
