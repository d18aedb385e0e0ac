package filesystems

import (
	"io/fs"
	"iter"
	"maps"
	"path"
	"slices"
	"strings"
	"sync"
	"time"
)

// MemoryFS implements FileSystem in memory with slash-separated paths. It
// backs --stdout runs and tests, and is safe for concurrent writers.
type MemoryFS struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]bool
}

func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

// AddFile stores content under name without copying it.
func (mfs *MemoryFS) AddFile(name string, content []byte) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	name = path.Clean(name)
	mfs.files[name] = content
	mfs.addParents(name)
}

func (mfs *MemoryFS) addParents(name string) {
	for dir := path.Dir(name); dir != "." && dir != "/"; dir = path.Dir(dir) {
		mfs.dirs[dir] = true
	}
}

func (mfs *MemoryFS) WriteFile(name string, data []byte) error {
	mfs.AddFile(name, slices.Clone(data))
	return nil
}

// Names returns every file path in sorted order.
func (mfs *MemoryFS) Names() []string {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	return slices.Sorted(maps.Keys(mfs.files))
}

func (mfs *MemoryFS) ReadFile(name string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	content, ok := mfs.files[path.Clean(name)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return content, nil
}

func (mfs *MemoryFS) ReadDir(name string) iter.Seq2[DirEntry, error] {
	return func(yield func(DirEntry, error) bool) {
		dir := path.Clean(name)

		mfs.mu.RLock()
		info, ok := mfs.stat(dir)
		if !ok || !info.IsDir() {
			mfs.mu.RUnlock()
			yield(nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist})
			return
		}
		var entries []DirEntry
		for _, child := range mfs.children(dir) {
			childInfo, _ := mfs.stat(path.Join(dir, child))
			entries = append(entries, fs.FileInfoToDirEntry(childInfo))
		}
		mfs.mu.RUnlock()

		for _, entry := range entries {
			if !yield(entry, nil) {
				return
			}
		}
	}
}

// Walk visits root and everything below it in lexical order.
func (mfs *MemoryFS) Walk(root string, fn WalkFunc) error {
	return mfs.walk(path.Clean(root), fn)
}

func (mfs *MemoryFS) walk(name string, fn WalkFunc) error {
	mfs.mu.RLock()
	info, ok := mfs.stat(name)
	var children []string
	if ok && info.IsDir() {
		children = mfs.children(name)
	}
	mfs.mu.RUnlock()

	if !ok {
		return fn(name, nil, &fs.PathError{Op: "lstat", Path: name, Err: fs.ErrNotExist})
	}
	if err := fn(name, info, nil); err != nil {
		if err == SkipDir && info.IsDir() {
			return nil
		}
		return err
	}
	for _, child := range children {
		if err := mfs.walk(path.Join(name, child), fn); err != nil {
			return err
		}
	}
	return nil
}

// stat and children expect mu to be held.
func (mfs *MemoryFS) stat(name string) (*memoryFileInfo, bool) {
	if name == "." || mfs.dirs[name] {
		return &memoryFileInfo{name: path.Base(name), mode: fs.ModeDir | 0o755}, true
	}
	if content, ok := mfs.files[name]; ok {
		return &memoryFileInfo{name: path.Base(name), size: int64(len(content)), mode: 0o644}, true
	}
	return nil, false
}

func (mfs *MemoryFS) children(dir string) []string {
	seen := make(map[string]bool)
	collect := func(p string) {
		rel := p
		if dir != "." {
			var found bool
			if rel, found = strings.CutPrefix(p, dir+"/"); !found {
				return
			}
		}
		if child, _, _ := strings.Cut(rel, "/"); child != "" {
			seen[child] = true
		}
	}
	for p := range mfs.files {
		collect(p)
	}
	for p := range mfs.dirs {
		collect(p)
	}
	return slices.Sorted(maps.Keys(seen))
}

func (mfs *MemoryFS) Join(elem ...string) string {
	return path.Join(elem...)
}

func (mfs *MemoryFS) Base(p string) string {
	return path.Base(p)
}

func (mfs *MemoryFS) Dir(p string) string {
	return path.Dir(p)
}

// Rel only handles targets under basepath; other targets come back cleaned.
func (mfs *MemoryFS) Rel(basepath, targpath string) (string, error) {
	base, target := path.Clean(basepath), path.Clean(targpath)
	if base == target {
		return ".", nil
	}
	if rel, ok := strings.CutPrefix(target, base+"/"); ok {
		return rel, nil
	}
	return target, nil
}

type memoryFileInfo struct {
	name string
	size int64
	mode fs.FileMode
}

func (fi *memoryFileInfo) Name() string       { return fi.name }
func (fi *memoryFileInfo) Size() int64        { return fi.size }
func (fi *memoryFileInfo) Mode() fs.FileMode  { return fi.mode }
func (fi *memoryFileInfo) ModTime() time.Time { return time.Time{} }
func (fi *memoryFileInfo) IsDir() bool        { return fi.mode.IsDir() }
func (fi *memoryFileInfo) Sys() any           { return nil }
