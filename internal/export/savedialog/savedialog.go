// Package savedialog offers exports through the desktop's native save
// dialog.
package savedialog

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sqweek/dialog"

	"github.com/Faultbox/toyscene/internal/export"
)

// Saver asks the user where to put each export.
type Saver struct {
	StartDir string
}

// Save implements export.Saver.
func (s Saver) Save(name string, data []byte) (string, error) {
	ext := filepath.Ext(name)
	b := dialog.File().
		Filter("glTF scene (*"+ext+")", strings.TrimPrefix(ext, ".")).
		Title("Export Scene")
	if s.StartDir != "" {
		b = b.SetStartDir(s.StartDir)
	}

	path, err := b.Save()
	if err != nil {
		if errors.Is(err, dialog.ErrCancelled) {
			return "", export.ErrCancelled
		}
		return "", fmt.Errorf("save dialog: %w", err)
	}
	if !strings.EqualFold(filepath.Ext(path), ext) {
		path += ext
	}

	if err := export.WriteFile(path, data); err != nil {
		return "", err
	}
	return path, nil
}
