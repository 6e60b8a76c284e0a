package mesh

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// weldRelTol is the welding tolerance as a fraction of the soup's largest
// extent. Marching cubes interpolates each cube independently, so
// coordinates along shared cube edges agree only to rounding error: far
// below this tolerance, while genuine features span about one cube.
const weldRelTol = 1e-9

// weldMinTol floors the tolerance for near-zero-extent soups.
const weldMinTol = 1e-12

// FromTriangles welds a triangle soup (e.g. sdfx marching-cubes output)
// into an indexed mesh. Vertices are merged when every coordinate agrees
// within a tolerance scaled to the soup's extent, which recovers shared
// topology from tessellators whose duplicated vertices coincide only
// approximately. Zero-area sliver triangles whose corners weld to fewer
// than three distinct vertices are dropped.
func FromTriangles(tris []*sdf.Triangle3) *Mesh {
	m := &Mesh{}
	if len(tris) == 0 {
		return m
	}

	bb := sdf.Box3{Min: tris[0][0], Max: tris[0][0]}
	for _, t := range tris {
		for _, v := range t {
			bb.Min = bb.Min.Min(v)
			bb.Max = bb.Max.Max(v)
		}
	}
	ext := bb.Max.Sub(bb.Min)
	tol := math.Max(ext.X, math.Max(ext.Y, ext.Z)) * weldRelTol
	if tol < weldMinTol {
		tol = weldMinTol
	}

	// Vertices are bucketed on quantized coordinates. A match within tol
	// can land in an adjacent bucket, so a miss probes the 26 neighbors.
	index := make(map[[3]int64]int, len(tris))
	quantize := func(v v3.Vec) [3]int64 {
		return [3]int64{
			int64(math.Round(v.X / tol)),
			int64(math.Round(v.Y / tol)),
			int64(math.Round(v.Z / tol)),
		}
	}
	lookup := func(v v3.Vec) int {
		k := quantize(v)
		for dx := int64(-1); dx <= 1; dx++ {
			for dy := int64(-1); dy <= 1; dy++ {
				for dz := int64(-1); dz <= 1; dz++ {
					i, ok := index[[3]int64{k[0] + dx, k[1] + dy, k[2] + dz}]
					if !ok {
						continue
					}
					w := m.Vertices[i]
					if math.Abs(w.X-v.X) <= tol &&
						math.Abs(w.Y-v.Y) <= tol &&
						math.Abs(w.Z-v.Z) <= tol {
						return i
					}
				}
			}
		}
		i := len(m.Vertices)
		index[k] = i
		m.Vertices = append(m.Vertices, v)
		return i
	}

	for _, t := range tris {
		a := lookup(t[0])
		b := lookup(t[1])
		c := lookup(t[2])
		if a == b || b == c || c == a {
			continue
		}
		m.Faces = append(m.Faces, [3]int{a, b, c})
	}
	return m
}

// ComponentBounds computes one axis-aligned bounding box per connected
// component, scanning the vertices of each component's faces.
func ComponentBounds(m *Mesh, comp []int, count int) []sdf.Box3 {
	boxes := make([]sdf.Box3, count)
	init := make([]bool, count)
	for f, fc := range m.Faces {
		c := comp[f]
		for _, vi := range fc {
			v := m.Vertices[vi]
			if !init[c] {
				boxes[c] = sdf.Box3{Min: v, Max: v}
				init[c] = true
				continue
			}
			boxes[c].Min = boxes[c].Min.Min(v)
			boxes[c].Max = boxes[c].Max.Max(v)
		}
	}
	return boxes
}

// BoxesOverlap reports whether two axis-aligned boxes intersect, i.e. none
// of the six separating-axis conditions hold. Touching boxes count as
// overlapping.
func BoxesOverlap(a, b sdf.Box3) bool {
	return !(a.Max.X < b.Min.X ||
		a.Max.Y < b.Min.Y ||
		a.Max.Z < b.Min.Z ||
		b.Max.X < a.Min.X ||
		b.Max.Y < a.Min.Y ||
		b.Max.Z < a.Min.Z)
}
