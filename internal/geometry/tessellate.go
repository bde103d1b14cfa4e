package geometry

import "github.com/chewxy/math32"

// Build tessellates the geometry into a mesh with outward-facing,
// counter-clockwise triangles.
func Build(g *Geometry) *Mesh {
	m := &Mesh{}

	switch g.Kind {
	case KindBox:
		buildBox(m, g.Width/2, g.Height/2, g.Depth/2)
	case KindPlane:
		addQuad(m, [3]float32{0, 0, 1}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0},
			[3]float32{}, g.Width/2, g.Height/2)
	case KindCylinder:
		buildCylinder(m, g.RadiusTop, g.RadiusBottom, g.Height, segments(g.RadialSegments, 3))
	case KindCone:
		buildCylinder(m, 0, g.RadiusBottom, g.Height, segments(g.RadialSegments, 3))
	case KindSphere:
		buildSphere(m, g.Radius, segments(g.RadialSegments, 3), segments(g.HeightSegments, 2))
	}

	m.Bounds = computeBounds(m.Vertices)
	if g.Gradient != nil {
		paintGradient(m, g.Gradient)
	}
	return m
}

// Inverted returns a copy of the mesh with reversed winding and flipped
// normals, so the inside of the shape becomes the front face.
func (m *Mesh) Inverted() *Mesh {
	out := &Mesh{
		Vertices:  make([]Vertex, len(m.Vertices)),
		Indices:   make([]uint32, len(m.Indices)),
		Bounds:    m.Bounds,
		HasColors: m.HasColors,
	}
	for i, v := range m.Vertices {
		v.Normal = [3]float32{-v.Normal[0], -v.Normal[1], -v.Normal[2]}
		out.Vertices[i] = v
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		out.Indices[i] = m.Indices[i]
		out.Indices[i+1] = m.Indices[i+2]
		out.Indices[i+2] = m.Indices[i+1]
	}
	return out
}

func segments(n, minimum int) int {
	if n < minimum {
		return minimum
	}
	return n
}

// buildBox emits six quads; each face's u x v equals its normal.
func buildBox(m *Mesh, hx, hy, hz float32) {
	faces := []struct {
		n, u, v [3]float32
		hu, hv  float32
		off     float32
	}{
		{[3]float32{1, 0, 0}, [3]float32{0, 0, -1}, [3]float32{0, 1, 0}, hz, hy, hx},
		{[3]float32{-1, 0, 0}, [3]float32{0, 0, 1}, [3]float32{0, 1, 0}, hz, hy, hx},
		{[3]float32{0, 1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, -1}, hx, hz, hy},
		{[3]float32{0, -1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, 1}, hx, hz, hy},
		{[3]float32{0, 0, 1}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}, hx, hy, hz},
		{[3]float32{0, 0, -1}, [3]float32{-1, 0, 0}, [3]float32{0, 1, 0}, hx, hy, hz},
	}
	for _, f := range faces {
		center := [3]float32{f.n[0] * f.off, f.n[1] * f.off, f.n[2] * f.off}
		addQuad(m, f.n, f.u, f.v, center, f.hu, f.hv)
	}
}

func addQuad(m *Mesh, n, u, v, center [3]float32, hu, hv float32) {
	base := uint32(len(m.Vertices))
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for _, c := range corners {
		var p [3]float32
		for i := 0; i < 3; i++ {
			p[i] = center[i] + u[i]*hu*c[0] + v[i]*hv*c[1]
		}
		m.Vertices = append(m.Vertices, Vertex{Position: p, Normal: n})
	}
	m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
}

// buildCylinder emits the side wall plus a cap at each end with non-zero
// radius. Angle 0 points along +Z and increases towards +X.
func buildCylinder(m *Mesh, radiusTop, radiusBottom, height float32, segs int) {
	half := height / 2
	slope := (radiusBottom - radiusTop) / height

	base := uint32(len(m.Vertices))
	for i := 0; i <= segs; i++ {
		s, c := math32.Sincos(float32(i) / float32(segs) * 2 * math32.Pi)
		normal := Normalize([3]float32{s, slope, c})
		m.Vertices = append(m.Vertices,
			Vertex{Position: [3]float32{radiusBottom * s, -half, radiusBottom * c}, Normal: normal},
			Vertex{Position: [3]float32{radiusTop * s, half, radiusTop * c}, Normal: normal},
		)
	}
	for i := 0; i < segs; i++ {
		b0 := base + uint32(i*2)
		t0 := b0 + 1
		b1 := b0 + 2
		t1 := b0 + 3
		if radiusBottom > 0 {
			m.Indices = append(m.Indices, b0, b1, t1)
		}
		if radiusTop > 0 {
			m.Indices = append(m.Indices, b0, t1, t0)
		}
	}

	if radiusTop > 0 {
		addCap(m, radiusTop, half, segs, true)
	}
	if radiusBottom > 0 {
		addCap(m, radiusBottom, -half, segs, false)
	}
}

func addCap(m *Mesh, radius, y float32, segs int, top bool) {
	normal := [3]float32{0, -1, 0}
	if top {
		normal = [3]float32{0, 1, 0}
	}

	center := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, Vertex{Position: [3]float32{0, y, 0}, Normal: normal})
	for i := 0; i <= segs; i++ {
		s, c := math32.Sincos(float32(i) / float32(segs) * 2 * math32.Pi)
		m.Vertices = append(m.Vertices, Vertex{Position: [3]float32{radius * s, y, radius * c}, Normal: normal})
	}
	for i := 0; i < segs; i++ {
		r0 := center + 1 + uint32(i)
		r1 := r0 + 1
		if top {
			m.Indices = append(m.Indices, center, r0, r1)
		} else {
			m.Indices = append(m.Indices, center, r1, r0)
		}
	}
}

// buildSphere emits a UV sphere from the north pole (row 0) to the south
// pole. Pole rows produce one triangle per segment instead of two.
func buildSphere(m *Mesh, radius float32, widthSegs, heightSegs int) {
	base := uint32(len(m.Vertices))
	for iy := 0; iy <= heightSegs; iy++ {
		st, ct := math32.Sincos(float32(iy) / float32(heightSegs) * math32.Pi)
		for ix := 0; ix <= widthSegs; ix++ {
			sp, cp := math32.Sincos(float32(ix) / float32(widthSegs) * 2 * math32.Pi)
			n := [3]float32{st * sp, ct, st * cp}
			m.Vertices = append(m.Vertices, Vertex{
				Position: [3]float32{radius * n[0], radius * n[1], radius * n[2]},
				Normal:   n,
			})
		}
	}

	row := uint32(widthSegs + 1)
	for iy := 0; iy < heightSegs; iy++ {
		for ix := 0; ix < widthSegs; ix++ {
			a := base + uint32(iy)*row + uint32(ix)
			b := a + 1
			c := a + row
			d := c + 1
			if iy != heightSegs-1 {
				m.Indices = append(m.Indices, c, d, b)
			}
			if iy != 0 {
				m.Indices = append(m.Indices, c, b, a)
			}
		}
	}
}

func computeBounds(vertices []Vertex) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
	for _, v := range vertices {
		for i := 0; i < 3; i++ {
			if v.Position[i] < b.Min[i] {
				b.Min[i] = v.Position[i]
			}
			if v.Position[i] > b.Max[i] {
				b.Max[i] = v.Position[i]
			}
		}
	}
	return b
}

func paintGradient(m *Mesh, g *Gradient) {
	span := m.Bounds.Max[1] - m.Bounds.Min[1]
	for i := range m.Vertices {
		t := float32(0)
		if span > 0 {
			t = (m.Vertices[i].Position[1] - m.Bounds.Min[1]) / span
		}
		m.Vertices[i].Color = lerp3(g.Bottom, g.Top, t)
	}
	m.HasColors = true
}
