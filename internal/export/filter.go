package export

import (
	"github.com/qmuntal/gltf"

	"github.com/Faultbox/toyscene/internal/scene"
)

// Transient reports whether a glTF node is a light or camera, judged by its
// camera reference, its punctual light extension or the kind recorded in
// its extras.
func Transient(n *gltf.Node) bool {
	if n == nil {
		return false
	}
	if n.Camera != nil {
		return true
	}
	if _, ok := n.Extensions[extLightsPunctual]; ok {
		return true
	}
	extras, ok := n.Extras.(map[string]any)
	if !ok {
		return false
	}
	kind, _ := extras[extrasKind].(string)
	return kind == scene.KindLight.String() || kind == scene.KindCamera.String()
}

// FilterTransient drops light and camera nodes from the top level of every
// scene in doc and returns how many were dropped. Nested lights stay with
// their parent.
func FilterTransient(doc *gltf.Document) int {
	removed := 0
	for _, s := range doc.Scenes {
		kept := s.Nodes[:0]
		for _, idx := range s.Nodes {
			if idx >= 0 && idx < len(doc.Nodes) && Transient(doc.Nodes[idx]) {
				removed++
				continue
			}
			kept = append(kept, idx)
		}
		s.Nodes = kept
	}
	return removed
}
