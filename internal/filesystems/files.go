package filesystems

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"golang.org/x/sync/errgroup"
)

// FindFile looks for a file with the given name (case-insensitive) in the provided directory entries.
// Returns the actual path with correct case if found, empty string if not found.
func FindFile(filesystem FileSystem, dir, filename string, entries iter.Seq2[DirEntry, error]) (string, error) {
	for entry, err := range entries {
		if err != nil {
			return "", err
		}
		if !entry.IsDir() && strings.EqualFold(entry.Name(), filename) {
			return filesystem.Join(dir, entry.Name()), nil
		}
	}

	return "", nil
}

// File is one artifact to write.
type File struct {
	Name    string
	Content []byte
}

// WriteAll writes files concurrently and returns the first error. Files that
// were written before the failure stay on the filesystem.
func WriteAll(ctx context.Context, filesystem FileSystem, files []File) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := filesystem.WriteFile(f.Name, f.Content); err != nil {
				return fmt.Errorf("failed to write %s: %w", f.Name, err)
			}
			return nil
		})
	}
	return g.Wait()
}
