// Package geom implements the floating-point geometric queries behind the
// cell extractor's collaborator interfaces: cyclic ordering of faces around
// a shared edge, outer-facet selection, and closest-facet queries.
//
// These are plain float64 implementations. They are deterministic and
// adequate for arrangements in generic position; they do not attempt the
// exact-predicate disambiguation of truly degenerate input (coincident
// overlapping triangles, zero-area faces), which is reported as an error
// instead of being silently mis-ordered.
package geom

import (
	"fmt"
	"math"
	"sort"

	"github.com/chazu/arrangement/pkg/mesh"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// frameEps rejects opposite vertices that lie (numerically) on the edge's
// supporting line, where the sweep angle is undefined.
const frameEps = 1e-12

// OrderAroundEdge returns the cyclic order of faces around the directed
// edge src->dst, as the permutation of signedFaces encountered when
// sweeping a half-plane counter-clockwise around the edge axis (right-hand
// rule, thumb along dst-src).
//
// signedFaces carries one signed 1-based face id per incident face:
// positive if the face's winding contains the directed edge (src, dst),
// negative if it contains (dst, src). Faces at exactly the same sweep angle
// (coplanar duplicates) are ordered by ascending signed id, which keeps
// repeated queries consistent but does not geometrically resolve them.
func OrderAroundEdge(m *mesh.Mesh, src, dst int, signedFaces []int) ([]int, error) {
	n := len(signedFaces)
	axis := m.Vertices[dst].Sub(m.Vertices[src])
	if axis.Length() < frameEps {
		return nil, fmt.Errorf("geom: zero-length edge (%d,%d)", src, dst)
	}
	w := axis.Normalize()

	angles := make([]float64, n)
	var u, v v3.Vec
	haveFrame := false
	for i, sf := range signedFaces {
		fid := sf
		if fid < 0 {
			fid = -fid
		}
		fid-- // signed ids are 1-based
		o, err := oppositeVertex(m, fid, src, dst)
		if err != nil {
			return nil, err
		}
		p := m.Vertices[o].Sub(m.Vertices[src])
		pp := p.Sub(w.MulScalar(p.Dot(w)))
		if pp.Length() < frameEps {
			return nil, fmt.Errorf("geom: face %d is degenerate against edge (%d,%d)", fid, src, dst)
		}
		if !haveFrame {
			// First face's direction is the zero-angle reference.
			u = pp.Normalize()
			v = w.Cross(u)
			haveFrame = true
		}
		a := math.Atan2(pp.Dot(v), pp.Dot(u))
		if a < 0 {
			a += 2 * math.Pi
		}
		angles[i] = a
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if angles[ia] != angles[ib] {
			return angles[ia] < angles[ib]
		}
		return signedFaces[ia] < signedFaces[ib]
	})
	return order, nil
}

// oppositeVertex returns the vertex of face f that is neither src nor dst,
// verifying the face actually spans the edge.
func oppositeVertex(m *mesh.Mesh, f, src, dst int) (int, error) {
	opp := -1
	hasSrc, hasDst := false, false
	for _, vi := range m.Faces[f] {
		switch vi {
		case src:
			hasSrc = true
		case dst:
			hasDst = true
		default:
			opp = vi
		}
	}
	if !hasSrc || !hasDst || opp < 0 {
		return 0, fmt.Errorf("geom: face %d does not span edge (%d,%d)", f, src, dst)
	}
	return opp, nil
}
