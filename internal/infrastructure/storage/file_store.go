package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

var now = time.Now

// FileStore persists uploaded campaign files into a shared static
// directory. Filenames carry an upload-time timestamp prefix; two
// uploads of the same name within the same second would collide, which
// mirrors how the platform has always stored files.
type FileStore struct {
	dir string
}

// NewFileStore creates a file store rooted at dir
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the storage root
func (s *FileStore) Dir() string {
	return s.dir
}

// Save writes the reader's content under
// <prefix>_<timestamp>_<original basename> and returns the full path
// of the stored file.
func (s *FileStore) Save(prefix, originalName string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create storage dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s_%s", prefix, now().Format("20060102150405"), filepath.Base(originalName))
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return path, nil
}

// Exists reports whether a stored file is still present on disk
func (s *FileStore) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
