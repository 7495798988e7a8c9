package store

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backends returns a fresh instance of every Store implementation
func backends(t *testing.T) map[string]Store {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "blobs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return map[string]Store{
		"memory": NewMemory(),
		"local":  NewLocal(t.TempDir()),
		"sqlite": db,
	}
}

func TestStoreReadWrite(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Write(ctx, "a.txt", []byte("hello")))
			got, err := s.Read(ctx, "a.txt")
			require.NoError(t, err)
			assert.Equal(t, "hello", string(got))

			// overwrite
			require.NoError(t, s.Write(ctx, "a.txt", []byte("bye")))
			got, err = s.Read(ctx, "a.txt")
			require.NoError(t, err)
			assert.Equal(t, "bye", string(got))

			// empty contents are a real file
			require.NoError(t, s.Write(ctx, "empty", nil))
			got, err = s.Read(ctx, "empty")
			require.NoError(t, err)
			assert.Empty(t, got)

			// binary contents survive untouched
			data := []byte{0, 1, 2, 0xff, 0xfe, '\n', 0}
			require.NoError(t, s.Write(ctx, "bin/data.bin", data))
			got, err = s.Read(ctx, "bin/data.bin")
			require.NoError(t, err)
			assert.Equal(t, data, got)
		})
	}
}

func TestStoreNotExist(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Read(ctx, "missing.txt")
			assert.ErrorIs(t, err, fs.ErrNotExist)

			err = s.Delete(ctx, "missing.txt")
			assert.ErrorIs(t, err, fs.ErrNotExist)
		})
	}
}

func TestStoreListAndDelete(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, n := range []string{"b.txt", "docs/x.md", "docs/sub/y.md", "docsets/z.md"} {
				require.NoError(t, s.Write(ctx, n, []byte(n)))
			}

			names, err := s.List(ctx, "")
			require.NoError(t, err)
			assert.Equal(t, []string{"b.txt", "docs/sub/y.md", "docs/x.md", "docsets/z.md"}, names)

			names, err = s.List(ctx, "docs")
			require.NoError(t, err)
			assert.Equal(t, []string{"docs/sub/y.md", "docs/x.md"}, names)

			names, err = s.List(ctx, "docs/")
			require.NoError(t, err)
			assert.Equal(t, []string{"docs/sub/y.md", "docs/x.md"}, names)

			names, err = s.List(ctx, "nothing-here")
			require.NoError(t, err)
			assert.Empty(t, names)

			require.NoError(t, s.Delete(ctx, "docs/x.md"))
			names, err = s.List(ctx, "docs")
			require.NoError(t, err)
			assert.Equal(t, []string{"docs/sub/y.md"}, names)
		})
	}
}

func TestStoreRejectsEscapingNames(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, bad := range []string{"", "../x", "a/../../x", `..\x`, "/"} {
				err := s.Write(ctx, bad, []byte("x"))
				assert.ErrorIs(t, err, fs.ErrInvalid, "Write(%q)", bad)

				_, err = s.Read(ctx, bad)
				assert.ErrorIs(t, err, fs.ErrInvalid, "Read(%q)", bad)
			}
		})
	}
}

func TestStoreNormalizesNames(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Write(ctx, "/dir//./file.txt", []byte("x")))

			got, err := s.Read(ctx, "dir/file.txt")
			require.NoError(t, err)
			assert.Equal(t, "x", string(got))

			names, err := s.List(ctx, "")
			require.NoError(t, err)
			assert.Equal(t, []string{"dir/file.txt"}, names)
		})
	}
}

func TestLocalWriteCreatesParents(t *testing.T) {
	root := t.TempDir()
	l := NewLocal(root)

	require.NoError(t, l.Write(context.Background(), "a/b/c.txt", []byte("deep")))

	data, err := os.ReadFile(filepath.Join(root, "a", "b", "c.txt"))
	require.NoError(t, err)
	assert.Equal(t, "deep", string(data))
	assert.Equal(t, filepath.Clean(root), l.Root())
}

func TestLocalListSkipsTempFilesAndDirs(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty-dir"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, tempPrefix+"partial"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "kept.txt"), []byte("x"), 0o644))

	names, err := NewLocal(root).List(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"kept.txt"}, names)
}

func TestLocalListMissingRoot(t *testing.T) {
	l := NewLocal(filepath.Join(t.TempDir(), "does-not-exist"))
	names, err := l.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLocalListCanceled(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("x"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewLocal(root).List(ctx, "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryCopiesData(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	data := []byte("abc")
	require.NoError(t, m.Write(ctx, "f", data))
	data[0] = 'X'

	got, err := m.Read(ctx, "f")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	got[1] = 'Y'
	again, err := m.Read(ctx, "f")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestSQLiteInMemory(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Write(ctx, "k", []byte("v")))
	got, err := s.Read(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
}

func TestSQLitePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "persist.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Write(ctx, "kept.bin", []byte{1, 2, 3}))
	require.NoError(t, s.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Read(ctx, "kept.bin")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)
}
