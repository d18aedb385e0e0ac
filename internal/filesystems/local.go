package filesystems

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// LocalFS implements FileSystem on the host disk. Relative names resolve
// against Root, and names that escape Root are rejected.
type LocalFS struct {
	Root string
}

// NewLocalFS creates a LocalFS rooted at root.
func NewLocalFS(root string) *LocalFS {
	if root == "" {
		root = "."
	}
	return &LocalFS{Root: root}
}

func (lfs *LocalFS) resolve(name string) (string, error) {
	if filepath.IsAbs(name) {
		return name, nil
	}
	full := filepath.Join(lfs.Root, name)
	rel, err := filepath.Rel(lfs.Root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %s escapes %s", name, lfs.Root)
	}
	return full, nil
}

func (lfs *LocalFS) ReadFile(name string) ([]byte, error) {
	full, err := lfs.resolve(name)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(full)
}

func (lfs *LocalFS) WriteFile(name string, data []byte) error {
	full, err := lfs.resolve(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", name, err)
	}
	return os.WriteFile(full, data, 0o644)
}

func (lfs *LocalFS) ReadDir(name string) iter.Seq2[DirEntry, error] {
	return func(yield func(DirEntry, error) bool) {
		full, err := lfs.resolve(name)
		if err != nil {
			yield(nil, err)
			return
		}
		entries, err := os.ReadDir(full)
		if err != nil {
			yield(nil, err)
			return
		}
		for _, entry := range entries {
			if !yield(entry, nil) {
				return
			}
		}
	}
}

// Walk visits the tree under root. Paths handed to fn are relative to Root
// when root is.
func (lfs *LocalFS) Walk(root string, fn WalkFunc) error {
	full, err := lfs.resolve(root)
	if err != nil {
		return err
	}
	return filepath.Walk(full, func(path string, info os.FileInfo, err error) error {
		if !filepath.IsAbs(root) {
			if rel, relErr := filepath.Rel(lfs.Root, path); relErr == nil {
				path = rel
			}
		}
		return fn(path, info, err)
	})
}

func (lfs *LocalFS) Join(elem ...string) string {
	return filepath.Join(elem...)
}

func (lfs *LocalFS) Base(path string) string {
	return filepath.Base(path)
}

func (lfs *LocalFS) Dir(path string) string {
	return filepath.Dir(path)
}

func (lfs *LocalFS) Rel(basepath, targpath string) (string, error) {
	return filepath.Rel(basepath, targpath)
}
