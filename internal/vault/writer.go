package vault

import (
	"os"
	"path/filepath"
)

// writeFile replaces the file at path with content in full. The content is
// staged in a temp file next to the target and renamed over it, so the path
// never holds a partial note. The parent directory must already exist.
// Failures are returned as *IOError; there is no retry.
func writeFile(path, content string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".vault-*.tmp")
	if err != nil {
		return &IOError{Operation: "create", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return &IOError{Operation: "write", Path: path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return &IOError{Operation: "sync", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &IOError{Operation: "close", Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return &IOError{Operation: "chmod", Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		return &IOError{Operation: "rename", Path: path, Err: err}
	}
	return nil
}
