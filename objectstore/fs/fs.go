// Package fs implements objectstore.Reader over a local directory tree.
// Buckets are directories under the root; keys are file paths inside a bucket.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/poiesic/carelog/objectstore"
)

// Store reads objects from the local filesystem.
type Store struct {
	root string
}

var _ objectstore.Reader = (*Store)(nil)

// NewStore creates a store rooted at the given directory.
func NewStore(root string) (*Store, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}
	return &Store{root: root}, nil
}

// Get reads the object at root/bucket/key.
func (s *Store) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	path, err := s.objectPath(bucket, key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return nil, fmt.Errorf("%w: %s/%s", objectstore.ErrNotFound, bucket, key)
		case os.IsPermission(err):
			return nil, fmt.Errorf("%w: %s/%s", objectstore.ErrAccessDenied, bucket, key)
		default:
			return nil, err
		}
	}
	return data, nil
}

// objectPath resolves bucket/key under the root, refusing traversal outside it.
func (s *Store) objectPath(bucket, key string) (string, error) {
	path := filepath.Join(s.root, bucket, filepath.FromSlash(key))
	rel, err := filepath.Rel(s.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s/%s", objectstore.ErrAccessDenied, bucket, key)
	}
	return path, nil
}
