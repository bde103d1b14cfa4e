package export

import (
	"fmt"
	"strings"
)

// Format selects the container the document is encoded in.
type Format int

const (
	// FormatGLB is the binary glTF container (.glb).
	FormatGLB Format = iota
	// FormatGLTF is JSON glTF with the geometry buffer embedded as base64.
	FormatGLTF
)

// DefaultFileName is the name offered for a saved export.
const DefaultFileName = "scene.glb"

// ParseFormat parses "glb" or "gltf".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "glb", "":
		return FormatGLB, nil
	case "gltf", "json":
		return FormatGLTF, nil
	default:
		return 0, fmt.Errorf("unknown export format %q", s)
	}
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	if f == FormatGLTF {
		return ".gltf"
	}
	return ".glb"
}

func (f Format) String() string {
	return strings.TrimPrefix(f.Ext(), ".")
}

// FileName returns name with the format's extension.
func (f Format) FileName(name string) string {
	if name == "" {
		name = DefaultFileName
	}
	for _, ext := range []string{".glb", ".gltf"} {
		if strings.HasSuffix(strings.ToLower(name), ext) {
			name = name[:len(name)-len(ext)]
			break
		}
	}
	return name + f.Ext()
}
