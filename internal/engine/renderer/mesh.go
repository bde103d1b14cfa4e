package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/toyscene/internal/geometry"
	"github.com/Faultbox/toyscene/internal/scene"
)

// gpuMesh is a tessellated geometry resident on the GPU.
type gpuMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

type meshKey struct {
	geom     *geometry.Geometry
	inverted bool
}

// meshCache uploads each geometry once per facing. Back-side materials
// draw an inverted copy so ordinary back-face culling still applies.
type meshCache struct {
	meshes map[meshKey]*gpuMesh
}

func newMeshCache() *meshCache {
	return &meshCache{meshes: make(map[meshKey]*gpuMesh)}
}

func (c *meshCache) get(geom *geometry.Geometry, side scene.Side) (*gpuMesh, error) {
	key := meshKey{geom: geom, inverted: side == scene.SideBack}
	if m, ok := c.meshes[key]; ok {
		return m, nil
	}

	mesh := geometry.Build(geom)
	if key.inverted {
		mesh = mesh.Inverted()
	}
	if len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("geometry %s tessellated to nothing", geom)
	}

	m := upload(mesh)
	c.meshes[key] = m
	return m, nil
}

func upload(mesh *geometry.Mesh) *gpuMesh {
	m := &gpuMesh{indexCount: int32(len(mesh.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	vertexSize := int(unsafe.Sizeof(geometry.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*vertexSize, unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)
	// Color
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return m
}

func (c *meshCache) release() {
	for key, m := range c.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
		delete(c.meshes, key)
	}
}
