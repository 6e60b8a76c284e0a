package geom

import (
	"fmt"

	"github.com/chazu/arrangement/pkg/mesh"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// OuterFacet returns a facet of the given face set that lies on its outer
// boundary, and whether that facet is seen flipped (back side first) from
// outside. The facet is found by walking to the extreme vertex along an
// axis and picking the incident face most orthogonal to that axis; an axis
// along which every incident face is parallel is skipped. Ties between
// equally-extreme faces resolve to the lowest face index.
//
// The face set is expected to be a single closed connected component.
func OuterFacet(m *mesh.Mesh, faces []int) (facet int, flipped bool, err error) {
	if len(faces) == 0 {
		return 0, false, fmt.Errorf("geom: outer facet of empty face set")
	}
	for axis := 0; axis < 3; axis++ {
		// Extreme coordinate over the component's vertices.
		best := component(m.Vertices[m.Faces[faces[0]][0]], axis)
		for _, f := range faces {
			for _, vi := range m.Faces[f] {
				if c := component(m.Vertices[vi], axis); c > best {
					best = c
				}
			}
		}
		// Among faces touching the extreme, the one most orthogonal to
		// the axis is on the outer boundary.
		found := -1
		var bestAbs float64
		for _, f := range faces {
			touches := false
			for _, vi := range m.Faces[f] {
				if component(m.Vertices[vi], axis) == best {
					touches = true
					break
				}
			}
			if !touches {
				continue
			}
			n := m.FaceNormal(f)
			l := n.Length()
			if l == 0 {
				continue
			}
			a := component(n, axis) / l
			if abs := absf(a); abs > bestAbs {
				bestAbs = abs
				found = f
				flipped = a < 0
			}
		}
		if found >= 0 && bestAbs > 0 {
			return found, flipped, nil
		}
	}
	return 0, false, fmt.Errorf("geom: no outer facet found (degenerate component)")
}

func component(v v3.Vec, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
