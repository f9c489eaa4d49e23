// Package state persists the container tree between command
// invocations. Each CLI run is one session: load, mutate, save.
package state

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tilectl/tilectl/internal/tree"
)

// Load reads the tree from path. A missing file yields a fresh default
// tree (one output, one workspace) rather than an error, so the first
// command of a session works without setup.
func Load(path string) (*tree.Tree, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return tree.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state %s: %w", path, err)
	}
	t, err := tree.DecodeYAML(data)
	if err != nil {
		return nil, fmt.Errorf("state %s: %w", path, err)
	}
	return t, nil
}

// Save writes the tree snapshot atomically: temp file in the same
// directory, then rename. A crash mid-write never truncates the
// previous state.
func Save(path string, t *tree.Tree) error {
	data, err := t.EncodeYAML()
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tilectl-state-*")
	if err != nil {
		return fmt.Errorf("create temp state: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp state: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace state %s: %w", path, err)
	}
	return nil
}
