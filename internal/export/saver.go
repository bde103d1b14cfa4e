package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrCancelled is returned by savers when the user backs out.
var ErrCancelled = errors.New("export cancelled")

// Saver stores exported bytes and reports where they went.
type Saver interface {
	Save(name string, data []byte) (string, error)
}

// FileSaver writes exports into Dir, or the working directory when Dir is
// empty. An existing file of the same name is replaced.
type FileSaver struct {
	Dir string
}

// Save implements Saver.
func (s FileSaver) Save(name string, data []byte) (string, error) {
	path := name
	if !filepath.IsAbs(path) && s.Dir != "" {
		path = filepath.Join(s.Dir, name)
	}
	if err := WriteFile(path, data); err != nil {
		return "", err
	}
	return path, nil
}

// WriteFile writes through a temporary file in the same directory so a
// failed write never leaves a truncated export behind.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close export: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename export: %w", err)
	}
	return nil
}
