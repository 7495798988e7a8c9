package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Local stores files below a root directory on the OS filesystem
type Local struct {
	root string
}

var _ Store = (*Local)(nil)

// NewLocal returns a store rooted at dir. the directory is created on the
// first write if it does not exist.
func NewLocal(dir string) *Local {
	return &Local{root: filepath.Clean(dir)}
}

// Root returns the directory the store is rooted at
func (l *Local) Root() string {
	return l.root
}

func (l *Local) path(op, name string) (string, error) {
	key, err := cleanName(op, name)
	if err != nil {
		return "", err
	}
	return filepath.Join(l.root, filepath.FromSlash(key)), nil
}

// List walks the tree under prefix and returns the slash-separated names
// of regular files, relative to the root. a missing prefix yields no names.
func (l *Local) List(ctx context.Context, prefix string) ([]string, error) {
	prefix = normalizePrefix(prefix)
	start := l.root
	if prefix != "" {
		p, err := l.path("list", prefix)
		if err != nil {
			return nil, err
		}
		start = p
	}

	var names []string
	err := filepath.WalkDir(start, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && p == start {
				return fs.SkipAll
			}
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !d.Type().IsRegular() || isTempFile(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(l.root, p)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", start, err)
	}
	slices.Sort(names)
	return names, nil
}

// Read returns the contents of name.
func (l *Local) Read(_ context.Context, name string) ([]byte, error) {
	p, err := l.path("read", name)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(p)
}

// Write replaces name with data. parent directories are created and the
// contents are written to a temporary file that is renamed into place, so
// readers never observe a partial file.
func (l *Local) Write(_ context.Context, name string, data []byte) error {
	p, err := l.path("write", name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("create parent of %s: %w", name, err)
	}

	tmp := filepath.Join(filepath.Dir(p), tempPrefix+uuid.NewString())
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, p); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}

// Delete removes name.
func (l *Local) Delete(_ context.Context, name string) error {
	p, err := l.path("delete", name)
	if err != nil {
		return err
	}
	return os.Remove(p)
}

const tempPrefix = ".blockfile-"

func isTempFile(name string) bool {
	return strings.HasPrefix(name, tempPrefix)
}
