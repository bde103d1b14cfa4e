// scenetool is a headless utility for inspecting and exporting the street
// scene.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/qmuntal/gltf"

	"github.com/Faultbox/toyscene/internal/assembly"
	"github.com/Faultbox/toyscene/internal/export"
	"github.com/Faultbox/toyscene/internal/logger"
	"github.com/Faultbox/toyscene/internal/scene"
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	if err := logger.SetOutput(stderr, "warn"); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	command, rest := args[0], args[1:]
	var err error
	switch command {
	case "tree":
		err = cmdTree(rest, stdout)
	case "stats":
		err = cmdStats(rest, stdout)
	case "export", "x":
		err = cmdExport(rest, stdout)
	case "inspect":
		err = cmdInspect(rest, stdout)
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", command)
		printUsage(stderr)
		return 1
	}

	if errors.Is(err, errUsage) {
		printUsage(stderr)
		return 2
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `scenetool - street scene utility

Usage:
  scenetool <command> [options]

Commands:
  tree [-transforms]                   Print the scene graph
  stats                                Count nodes by kind
  export [-o file] [-format glb|gltf]  Export the scene without lights and cameras
  inspect <file>                       List the top-level nodes of an export

Examples:
  scenetool tree
  scenetool export -o street.glb
  scenetool export -format gltf -o street.gltf
  scenetool inspect street.glb`)
}

func cmdTree(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("tree", flag.ContinueOnError)
	transforms := fs.Bool("transforms", false, "Show local positions")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	w := assembly.Assemble()
	w.Walk(func(n *scene.Node, depth int) bool {
		line := strings.Repeat("  ", depth) + n.String()
		if *transforms {
			p := n.Position
			line += fmt.Sprintf(" @ (%g, %g, %g)", p.X, p.Y, p.Z)
		}
		fmt.Fprintln(out, line)
		return true
	})
	return nil
}

func cmdStats(args []string, out io.Writer) error {
	if len(args) > 0 {
		return errUsage
	}

	w := assembly.Assemble()
	s := w.Stats()
	fmt.Fprintf(out, "Top level: %d\n", len(w.TopLevel()))
	fmt.Fprintf(out, "Groups:    %d\n", s.Groups)
	fmt.Fprintf(out, "Meshes:    %d\n", s.Meshes)
	fmt.Fprintf(out, "Lights:    %d\n", s.Lights)
	fmt.Fprintf(out, "Cameras:   %d\n", s.Cameras)
	fmt.Fprintf(out, "Total:     %d\n", s.Total())
	return nil
}

func cmdExport(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	output := fs.String("o", export.DefaultFileName, "Output file")
	formatName := fs.String("format", "", "glb or gltf (default from the file extension)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	name := *formatName
	if name == "" {
		name = strings.TrimPrefix(strings.ToLower(fileExt(*output)), ".")
	}
	format, err := export.ParseFormat(name)
	if err != nil {
		return err
	}

	path, err := export.Offer(assembly.Assemble(), format, export.FileSaver{}, format.FileName(*output))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Exported %s\n", path)
	return nil
}

func cmdInspect(args []string, out io.Writer) error {
	if len(args) != 1 {
		return errUsage
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	var doc gltf.Document
	if err := gltf.NewDecoder(f).Decode(&doc); err != nil {
		return fmt.Errorf("decode %s: %w", args[0], err)
	}
	if len(doc.Scenes) == 0 {
		return fmt.Errorf("%s has no scenes", args[0])
	}

	scn := doc.Scenes[0]
	fmt.Fprintf(out, "Nodes:     %d\n", len(doc.Nodes))
	fmt.Fprintf(out, "Meshes:    %d\n", len(doc.Meshes))
	fmt.Fprintf(out, "Materials: %d\n", len(doc.Materials))
	fmt.Fprintf(out, "Top level: %d\n", len(scn.Nodes))
	for _, idx := range scn.Nodes {
		if idx < 0 || idx >= len(doc.Nodes) {
			return fmt.Errorf("scene references missing node %d", idx)
		}
		n := doc.Nodes[idx]
		mark := ""
		if export.Transient(n) {
			mark = " (transient)"
		}
		fmt.Fprintf(out, "  %s%s\n", n.Name, mark)
	}
	return nil
}

func fileExt(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 && !strings.ContainsAny(path[i:], `/\`) {
		return path[i:]
	}
	return ""
}
