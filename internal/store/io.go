package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"elevhtn/internal/domain"
)

const fileMode = 0o600

var validName = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// recordPath maps a record name to its file, rejecting names that could
// escape dir.
func recordPath(dir, name string) (string, error) {
	if !validName.MatchString(name) || name == "." || name == ".." {
		return "", fmt.Errorf("store: %w: invalid record name %q", domain.ErrInvalidConfiguration, name)
	}
	return filepath.Join(dir, name+".json"), nil
}

// readJSON reads path into out. A missing file reports ok=false.
func readJSON(path string, out any) (bool, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, fmt.Errorf("store: decode %s: %w", path, err)
	}
	return true, nil
}

// writeJSON writes indented JSON via a temp file, then atomically replaces
// the target.
func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(fileMode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
