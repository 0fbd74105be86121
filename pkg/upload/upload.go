package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// PublicPrefix is the URL path under which stored files are served.
const PublicPrefix = "/uploads"

// ResumeStore persists uploaded resume files into a directory exposed
// statically by the HTTP server. Stored names are generated, so concurrent
// uploads of identically named files cannot collide.
type ResumeStore struct {
	dir string
}

func NewResumeStore(dir string) (*ResumeStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("upload: create directory %s: %w", dir, err)
	}
	return &ResumeStore{dir: dir}, nil
}

// Dir returns the directory backing the store.
func (s *ResumeStore) Dir() string {
	return s.dir
}

// Save writes the uploaded file under a generated name, keeping the original
// extension, and returns the public URL path it will be served from.
func (s *ResumeStore) Save(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := uuid.NewString() + ext

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("upload: open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("upload: create %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("upload: write %s: %w", name, err)
	}

	return PublicPrefix + "/" + name, nil
}
