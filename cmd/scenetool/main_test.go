package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunUsage(t *testing.T) {
	var out, errOut bytes.Buffer

	if code := run(nil, &out, &errOut); code != 1 {
		t.Errorf("expected exit 1 without command, got %d", code)
	}
	if code := run([]string{"bogus"}, &out, &errOut); code != 1 {
		t.Errorf("expected exit 1 for unknown command, got %d", code)
	}
	if !strings.Contains(errOut.String(), "Unknown command: bogus") {
		t.Errorf("expected unknown command message, got %q", errOut.String())
	}
	if code := run([]string{"stats", "extra"}, &out, &errOut); code != 2 {
		t.Errorf("expected exit 2 for bad arguments, got %d", code)
	}
}

func TestTree(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"tree", "-transforms"}, &out, &errOut); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, errOut.String())
	}

	text := out.String()
	for _, want := range []string{"car", "  wheel-front-left", "light-pole", "traffic-cone", "sky", "@ (1, 0, 1)"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in tree output", want)
		}
	}
}

func TestStats(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"stats"}, &out, &errOut); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, errOut.String())
	}
	if !strings.Contains(out.String(), "Lights:    3") {
		t.Errorf("expected 3 lights, got %q", out.String())
	}
	if !strings.Contains(out.String(), "Top level: 8") {
		t.Errorf("expected 8 top-level nodes, got %q", out.String())
	}
}

func TestExportAndInspect(t *testing.T) {
	for _, name := range []string{"street.glb", "street.gltf"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			var out, errOut bytes.Buffer

			if code := run([]string{"export", "-o", path}, &out, &errOut); code != 0 {
				t.Fatalf("export exit %d: %s", code, errOut.String())
			}
			if _, err := os.Stat(path); err != nil {
				t.Fatalf("expected %s to exist: %v", path, err)
			}

			out.Reset()
			if code := run([]string{"inspect", path}, &out, &errOut); code != 0 {
				t.Fatalf("inspect exit %d: %s", code, errOut.String())
			}
			text := out.String()
			if !strings.Contains(text, "Top level: 6") {
				t.Errorf("expected 6 top-level nodes, got %q", text)
			}
			if strings.Contains(text, "(transient)") {
				t.Errorf("expected no transient top-level nodes, got %q", text)
			}
		})
	}
}

func TestExportFormatFlag(t *testing.T) {
	dir := t.TempDir()
	var out, errOut bytes.Buffer

	if code := run([]string{"export", "-format", "gltf", "-o", filepath.Join(dir, "street")}, &out, &errOut); code != 0 {
		t.Fatalf("export exit %d: %s", code, errOut.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "street.gltf")); err != nil {
		t.Errorf("expected street.gltf: %v", err)
	}

	if code := run([]string{"export", "-format", "obj"}, &out, &errOut); code != 1 {
		t.Errorf("expected exit 1 for unknown format, got %d", code)
	}
}
