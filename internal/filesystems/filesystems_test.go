package filesystems_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/protheus-compose/protheus-compose/internal/filesystems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// MemoryFS
// ============================================================================

func TestMemoryFS_AddFile(t *testing.T) {
	mfs := filesystems.NewMemoryFS()
	mfs.AddFile("dir1/dir2/protheus.yaml", []byte("database_type: mssql"))

	content, err := mfs.ReadFile("dir1/dir2/protheus.yaml")
	require.NoError(t, err)
	assert.Equal(t, "database_type: mssql", string(content))

	_, err = mfs.ReadFile("missing.yaml")
	assert.Error(t, err)
}

func TestMemoryFS_WriteFile(t *testing.T) {
	mfs := filesystems.NewMemoryFS()
	data := []byte("NETWORK_NAME=totvs\n")

	require.NoError(t, mfs.WriteFile("out/.env", data))
	data[0] = 'X'

	content, err := mfs.ReadFile("out/.env")
	require.NoError(t, err)
	assert.Equal(t, "NETWORK_NAME=totvs\n", string(content), "written data must be copied")
	assert.Equal(t, []string{"out/.env"}, mfs.Names())
}

func TestMemoryFS_ReadDir(t *testing.T) {
	mfs := filesystems.NewMemoryFS()
	mfs.AddFile("docker-compose-postgres.yaml", []byte("services: {}"))
	mfs.AddFile(".env", []byte("TZ=UTC"))
	mfs.AddFile("deploy/protheus.toml", []byte(""))

	tests := []struct {
		dir  string
		want []string
	}{
		{".", []string{".env", "deploy", "docker-compose-postgres.yaml"}},
		{"deploy", []string{"protheus.toml"}},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			var names []string
			for entry, err := range mfs.ReadDir(tt.dir) {
				require.NoError(t, err)
				names = append(names, entry.Name())
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestMemoryFS_Walk(t *testing.T) {
	mfs := filesystems.NewMemoryFS()
	mfs.AddFile("protheus.yaml", []byte("a"))
	mfs.AddFile("stack/docker-compose.yaml", []byte("b"))
	mfs.AddFile("stack/env/.env", []byte("c"))

	var visited []string
	err := mfs.Walk(".", func(path string, info filesystems.FileInfo, err error) error {
		require.NoError(t, err)
		visited = append(visited, path)
		return nil
	})
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]string{".", "protheus.yaml", "stack", "stack/docker-compose.yaml", "stack/env", "stack/env/.env"},
		visited)
}

func TestMemoryFS_WalkSkipDir(t *testing.T) {
	mfs := filesystems.NewMemoryFS()
	mfs.AddFile(".git/config", []byte("x"))
	mfs.AddFile("compose.yaml", []byte("y"))

	var visited []string
	err := mfs.Walk(".", func(path string, info filesystems.FileInfo, err error) error {
		if info.IsDir() && info.Name() == ".git" {
			return filesystems.SkipDir
		}
		visited = append(visited, path)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{".", "compose.yaml"}, visited)
}

func TestMemoryFS_PathOperations(t *testing.T) {
	mfs := filesystems.NewMemoryFS()

	assert.Equal(t, "dir/subdir/file.txt", mfs.Join("dir", "subdir", "file.txt"))
	assert.Equal(t, "file.txt", mfs.Base("dir/subdir/file.txt"))
	assert.Equal(t, "dir/subdir", mfs.Dir("dir/subdir/file.txt"))

	rel, err := mfs.Rel("dir", "dir")
	require.NoError(t, err)
	assert.Equal(t, ".", rel)

	rel, err = mfs.Rel("dir", "dir/subdir/file.txt")
	require.NoError(t, err)
	assert.Equal(t, "subdir/file.txt", rel)
}

func TestMemoryFS_DirEntryInfo(t *testing.T) {
	mfs := filesystems.NewMemoryFS()
	mfs.AddFile("test.txt", []byte("hello world"))
	mfs.AddFile("testdir/protheus.yaml", []byte(""))

	for entry, err := range mfs.ReadDir(".") {
		require.NoError(t, err)
		info, err := entry.Info()
		require.NoError(t, err)

		switch entry.Name() {
		case "test.txt":
			assert.Equal(t, "test.txt", info.Name())
			assert.Equal(t, int64(11), info.Size())
			assert.False(t, info.IsDir())
		case "testdir":
			assert.True(t, entry.IsDir())
			assert.True(t, info.IsDir())
		}
	}
}

// ============================================================================
// LocalFS
// ============================================================================

func TestLocalFS_ReadWrite(t *testing.T) {
	root := t.TempDir()
	lfs := filesystems.NewLocalFS(root)

	require.NoError(t, lfs.WriteFile("stack/.env", []byte("TZ=UTC\n")))

	onDisk, err := os.ReadFile(filepath.Join(root, "stack", ".env"))
	require.NoError(t, err)
	assert.Equal(t, "TZ=UTC\n", string(onDisk))

	content, err := lfs.ReadFile("stack/.env")
	require.NoError(t, err)
	assert.Equal(t, "TZ=UTC\n", string(content))
}

func TestLocalFS_RejectsEscapingPaths(t *testing.T) {
	lfs := filesystems.NewLocalFS(t.TempDir())

	assert.Error(t, lfs.WriteFile("../outside.yaml", []byte("x")))
	_, err := lfs.ReadFile("../../etc/passwd")
	assert.Error(t, err)
}

func TestLocalFS_Walk(t *testing.T) {
	root := t.TempDir()
	lfs := filesystems.NewLocalFS(root)
	require.NoError(t, lfs.WriteFile("protheus.yaml", []byte("a")))
	require.NoError(t, lfs.WriteFile("stack/compose.yaml", []byte("b")))

	var files []string
	err := lfs.Walk(".", func(path string, info filesystems.FileInfo, err error) error {
		require.NoError(t, err)
		if !info.IsDir() {
			files = append(files, filepath.ToSlash(path))
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"protheus.yaml", "stack/compose.yaml"}, files)

	var names []string
	for entry, err := range lfs.ReadDir(".") {
		require.NoError(t, err)
		names = append(names, entry.Name())
	}
	assert.ElementsMatch(t, []string{"protheus.yaml", "stack"}, names)
}

// ============================================================================
// Helpers
// ============================================================================

func TestFindFile(t *testing.T) {
	mfs := filesystems.NewMemoryFS()
	mfs.AddFile("stack/Docker-Compose.yaml", []byte("x"))

	found, err := filesystems.FindFile(mfs, "stack", "docker-compose.yaml", mfs.ReadDir("stack"))
	require.NoError(t, err)
	assert.Equal(t, "stack/Docker-Compose.yaml", found)

	found, err = filesystems.FindFile(mfs, "stack", ".env", mfs.ReadDir("stack"))
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestWriteAll(t *testing.T) {
	mfs := filesystems.NewMemoryFS()
	files := []filesystems.File{
		{Name: "docker-compose-oracle.yaml", Content: []byte("services: {}\n")},
		{Name: ".env", Content: []byte("TZ=UTC\n")},
	}

	require.NoError(t, filesystems.WriteAll(context.Background(), mfs, files))
	assert.Equal(t, []string{".env", "docker-compose-oracle.yaml"}, mfs.Names())
}

func TestWriteAll_ReportsFailure(t *testing.T) {
	lfs := filesystems.NewLocalFS(t.TempDir())
	files := []filesystems.File{
		{Name: "ok.yaml", Content: []byte("x")},
		{Name: "../escape.yaml", Content: []byte("y")},
	}

	err := filesystems.WriteAll(context.Background(), lfs, files)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write ../escape.yaml")
}

func TestWriteAll_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := filesystems.WriteAll(ctx, filesystems.NewMemoryFS(), []filesystems.File{{Name: "a", Content: nil}})
	assert.True(t, errors.Is(err, context.Canceled))
}
