package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Local stores files under a root directory, one subdirectory per category.
type Local struct{ root string }

func NewLocal(root string) *Local { return &Local{root: root} }

func (l *Local) Root() string { return l.root }

// Save writes r to <root>/<dir>/<name> and returns the bytes written.
// Existing files are never overwritten. A failed write leaves nothing behind.
func (l *Local) Save(ctx context.Context, dir, name string, r io.Reader) (int64, error) {
	if err := checkSegment(dir); err != nil {
		return 0, err
	}
	if err := checkSegment(name); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	target := filepath.Join(l.root, dir)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return 0, fmt.Errorf("storage: mkdir: %w", err)
	}
	path := filepath.Join(target, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, fmt.Errorf("storage: create: %w", err)
	}

	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return 0, fmt.Errorf("storage: write: %w", err)
	}
	return n, nil
}

func (l *Local) Remove(dir, name string) error {
	if err := checkSegment(dir); err != nil {
		return err
	}
	if err := checkSegment(name); err != nil {
		return err
	}
	err := os.Remove(filepath.Join(l.root, dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func checkSegment(s string) error {
	if s == "" || s == "." || s == ".." || strings.ContainsAny(s, `/\`) {
		return fmt.Errorf("storage: invalid path segment %q", s)
	}
	return nil
}
