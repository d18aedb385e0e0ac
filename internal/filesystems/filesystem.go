// Package filesystems abstracts the disk so that generation and discovery run
// the same way against a real directory and an in-memory tree.
package filesystems

import (
	"io/fs"
	"iter"
)

// FileSystem is where records are found and artifacts are written.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)

	// WriteFile replaces name with data and creates missing parent directories.
	WriteFile(name string, data []byte) error

	// ReadDir yields the entries of name in name order.
	ReadDir(name string) iter.Seq2[DirEntry, error]

	Walk(root string, fn WalkFunc) error

	Join(elem ...string) string
	Base(path string) string
	Dir(path string) string
	Rel(basepath, targpath string) (string, error)
}

type (
	DirEntry = fs.DirEntry
	FileInfo = fs.FileInfo
)

// WalkFunc is called for every path Walk visits. info is nil when err reports
// a path that could not be read.
type WalkFunc func(path string, info FileInfo, err error) error

// SkipDir, returned for a directory, makes Walk skip its contents.
var SkipDir = fs.SkipDir
