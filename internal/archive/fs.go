package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FSStore writes objects as files below a root directory.
type FSStore struct {
	root string
}

// NewFS creates the root directory if needed and returns a store over it.
func NewFS(dir string) (*FSStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("archive: fs dir required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("archive: create root: %w", err)
	}
	return &FSStore{root: dir}, nil
}

func (s *FSStore) Driver() string { return DriverFS }

// Ping checks that the root still exists and is a directory.
func (s *FSStore) Ping(_ context.Context) error {
	fi, err := os.Stat(s.root)
	if err != nil {
		return fmt.Errorf("archive: stat root: %w", err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("archive: root %s is not a directory", s.root)
	}
	return nil
}

// Put writes data to a temporary file and renames it into place so readers
// never observe a partial report.
func (s *FSStore) Put(_ context.Context, key string, data []byte, _ string) error {
	key, err := cleanKey(key)
	if err != nil {
		return err
	}
	dst := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("archive: create dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".tmp-*")
	if err != nil {
		return fmt.Errorf("archive: create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("archive: write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("archive: close %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return fmt.Errorf("archive: rename %s: %w", key, err)
	}
	return nil
}

func (s *FSStore) Get(_ context.Context, key string) (io.ReadCloser, error) {
	key, err := cleanKey(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(s.root, filepath.FromSlash(key)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("archive: open %s: %w", key, err)
	}
	return f, nil
}
