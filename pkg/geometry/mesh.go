// Package geometry converts polyhedron records into the flat buffers a
// renderer uploads directly: triangle soups with per-vertex normals and
// colors, and wireframe segment lists. All buffers are fresh allocations;
// nothing here mutates a solid.
package geometry

import (
	"github.com/payneba/polyhedra-viewer/pkg/solid"
)

// MeshBuffer is the triangulated geometry for one solid. All arrays are
// flat: positions has 3 floats per vertex (x,y,z), normals and colors have
// 3 floats per vertex, indices has 3 uint32s per triangle.
//
// Vertices are duplicated per triangle rather than shared, so every
// triangle of a face carries that face's normal and color. That makes the
// indices a trivial 0..n-1 ramp, kept anyway because indexed drawing is the
// path renderers optimize for.
type MeshBuffer struct {
	Positions []float32 `json:"positions"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals   []float32 `json:"normals"`   // [nx0,ny0,nz0, ...]
	Colors    []float32 `json:"colors"`    // [r0,g0,b0, ...]
	Indices   []uint32  `json:"indices"`   // [i0,i1,i2, ...] triangles
}

// VertexCount returns the number of vertices.
func (m *MeshBuffer) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles.
func (m *MeshBuffer) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *MeshBuffer) IsEmpty() bool {
	return len(m.Positions) == 0
}

// ColoredMesh triangulates every face of p into a flat-shaded mesh scaled
// by scale. Each n-gon becomes a fan of n-2 triangles rooted at its first
// vertex, every emitted vertex carries the face normal, and the face color
// is chosen by side count. Buffers come out in face order, so two calls on
// the same record are byte-identical.
func ColoredMesh(p *solid.Polyhedron, scale float64) *MeshBuffer {
	triangles := 0
	for _, f := range p.Faces {
		triangles += len(f) - 2
	}
	verts := triangles * 3

	m := &MeshBuffer{
		Positions: make([]float32, 0, verts*3),
		Normals:   make([]float32, 0, verts*3),
		Colors:    make([]float32, 0, verts*3),
		Indices:   make([]uint32, 0, verts),
	}

	next := uint32(0)
	for _, f := range p.Faces {
		n := p.FaceNormal(f)
		nx, ny, nz := float32(n.X), float32(n.Y), float32(n.Z)
		c := FaceColor(len(f))

		for i := 1; i+1 < len(f); i++ {
			for _, vi := range []int{f[0], f[i], f[i+1]} {
				v := p.Vertices[vi].MulScalar(scale)
				m.Positions = append(m.Positions, float32(v.X), float32(v.Y), float32(v.Z))
				m.Normals = append(m.Normals, nx, ny, nz)
				m.Colors = append(m.Colors, c[0], c[1], c[2])
				m.Indices = append(m.Indices, next)
				next++
			}
		}
	}
	return m
}
