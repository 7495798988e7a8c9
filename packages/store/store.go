// Package store provides key/value byte stores that files embedded in
// blocks are read from and decoded into.
//
// every backend treats names as opaque slash-separated keys. Local maps them
// onto a directory tree, Memory keeps them in a map for testing and SQLite
// keeps them in a single table.
package store

import (
	"context"
	"io/fs"
	"path"
	"strings"
)

// Store abstracts the list/read/write/delete operations shared by all
// backends. missing names are reported with an error wrapping
// fs.ErrNotExist.
type Store interface {
	// List returns the names under prefix, sorted. an empty prefix lists
	// everything.
	List(ctx context.Context, prefix string) ([]string, error)

	// Read returns the contents stored under name.
	Read(ctx context.Context, name string) ([]byte, error)

	// Write stores data under name, replacing any previous contents.
	Write(ctx context.Context, name string, data []byte) error

	// Delete removes name.
	Delete(ctx context.Context, name string) error
}

// cleanName normalizes a key and rejects names that are empty or contain a
// ".." segment
func cleanName(op, name string) (string, error) {
	slashed := strings.ReplaceAll(name, "\\", "/")
	for _, segment := range strings.Split(slashed, "/") {
		if segment == ".." {
			return "", &fs.PathError{Op: op, Path: name, Err: fs.ErrInvalid}
		}
	}
	cleaned := strings.TrimPrefix(path.Clean("/"+slashed), "/")
	if cleaned == "" || !fs.ValidPath(cleaned) {
		return "", &fs.PathError{Op: op, Path: name, Err: fs.ErrInvalid}
	}
	return cleaned, nil
}

// matchesPrefix reports whether name equals prefix or lies in the directory
// named by prefix
func matchesPrefix(name, prefix string) bool {
	if prefix == "" {
		return true
	}
	prefix = strings.TrimSuffix(prefix, "/")
	return name == prefix || strings.HasPrefix(name, prefix+"/")
}

func normalizePrefix(prefix string) string {
	prefix = strings.Trim(strings.ReplaceAll(prefix, "\\", "/"), "/")
	if prefix == "." {
		return ""
	}
	return prefix
}
