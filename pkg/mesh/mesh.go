// Package mesh provides indexed triangle meshes and the combinatorial
// topology structures (unique edge maps, manifold patches, connected
// components) consumed by the arrangement cell extractor.
//
// A Mesh references vertices by index, three per face, in consistent cyclic
// order. The winding of a face defines its two sides: side 0 is the side its
// normal (right-hand rule over the winding) points into, side 1 the other.
package mesh

import (
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Mesh is an indexed triangle mesh. Faces may touch along non-manifold
// edges; the mesh is expected to be closed (no boundary edges) when used
// as an arrangement.
type Mesh struct {
	Vertices []v3.Vec
	Faces    [][3]int
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of triangles.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Faces) == 0
}

// HalfEdge returns the source and destination vertex indices of half-edge h.
// Half-edges are numbered 3*f+k: half-edge k of face f runs from the face's
// k-th vertex to its (k+1 mod 3)-th.
func (m *Mesh) HalfEdge(h int) (src, dst int) {
	f := m.Faces[h/3]
	k := h % 3
	return f[k], f[(k+1)%3]
}

// HalfEdgeFace returns the face owning half-edge h.
func HalfEdgeFace(h int) int {
	return h / 3
}

// FaceCentroid returns the barycenter of face f.
func (m *Mesh) FaceCentroid(f int) v3.Vec {
	fc := m.Faces[f]
	a := m.Vertices[fc[0]]
	b := m.Vertices[fc[1]]
	c := m.Vertices[fc[2]]
	return a.Add(b).Add(c).DivScalar(3)
}

// FaceNormal returns the unnormalized normal of face f, following the
// right-hand rule over the face winding. Side 0 of a face is the side the
// normal points into.
func (m *Mesh) FaceNormal(f int) v3.Vec {
	fc := m.Faces[f]
	a := m.Vertices[fc[0]]
	b := m.Vertices[fc[1]]
	c := m.Vertices[fc[2]]
	return b.Sub(a).Cross(c.Sub(a))
}

// Bounds returns the axis-aligned bounding box of all vertices. An empty
// mesh yields the zero box.
func (m *Mesh) Bounds() sdf.Box3 {
	if len(m.Vertices) == 0 {
		return sdf.Box3{}
	}
	bb := sdf.Box3{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		bb.Min = bb.Min.Min(v)
		bb.Max = bb.Max.Max(v)
	}
	return bb
}

// Merge concatenates meshes into one, offsetting face indices. The inputs
// keep their own vertex sets; Merge performs no welding, so disjoint inputs
// become distinct connected components of the result.
func Merge(ms ...*Mesh) *Mesh {
	out := &Mesh{}
	for _, m := range ms {
		base := len(out.Vertices)
		out.Vertices = append(out.Vertices, m.Vertices...)
		for _, f := range m.Faces {
			out.Faces = append(out.Faces, [3]int{f[0] + base, f[1] + base, f[2] + base})
		}
	}
	return out
}
