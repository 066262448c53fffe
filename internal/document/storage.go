package document

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileStore persists uploaded file contents under server-generated names.
type FileStore interface {
	// Save streams r into a new file, failing if the name already exists.
	// It returns the stored path and the number of bytes written.
	Save(name string, r io.Reader) (path string, written int64, err error)
	// Remove deletes a stored file; used to clean up partial writes.
	Remove(name string) error
}

// DiskStore writes files into a single server-controlled directory.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Dir() string {
	return s.dir
}

func (s *DiskStore) Save(name string, r io.Reader) (string, int64, error) {
	// name is server-generated, never client text; Base is belt and braces.
	path := filepath.Join(s.dir, filepath.Base(name))

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", 0, fmt.Errorf("create file: %w", err)
	}

	written, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", written, fmt.Errorf("write file: %w", err)
	}

	return path, written, nil
}

func (s *DiskStore) Remove(name string) error {
	return os.Remove(filepath.Join(s.dir, filepath.Base(name)))
}
