package geom

import (
	"fmt"

	"github.com/chazu/arrangement/pkg/mesh"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// ClosestFacet returns the face of the candidate set closest to the query
// point, and the side of that face the point is approached from (0 for the
// normal side, 1 for the other).
//
// Tie-break rule: when two candidate faces are exactly equidistant from the
// query point, the one with the lowest face index wins; a query point lying
// exactly on the chosen face's plane reports side 0. Both rules are
// deterministic across repeated queries, which the nesting resolver's
// counting argument relies on.
func ClosestFacet(m *mesh.Mesh, faces []int, q v3.Vec) (facet int, side int, err error) {
	if len(faces) == 0 {
		return 0, 0, fmt.Errorf("geom: closest facet of empty face set")
	}
	facet = -1
	var bestD2 float64
	var bestP v3.Vec
	for _, f := range faces {
		fc := m.Faces[f]
		p := closestPointOnTriangle(q, m.Vertices[fc[0]], m.Vertices[fc[1]], m.Vertices[fc[2]])
		d := q.Sub(p)
		d2 := d.Dot(d)
		if facet < 0 || d2 < bestD2 {
			facet = f
			bestD2 = d2
			bestP = p
		}
	}
	if q.Sub(bestP).Dot(m.FaceNormal(facet)) >= 0 {
		side = 0
	} else {
		side = 1
	}
	return facet, side, nil
}

// closestPointOnTriangle returns the point of triangle (a,b,c) closest to p.
// Standard Voronoi-region case analysis.
func closestPointOnTriangle(p, a, b, c v3.Vec) v3.Vec {
	ab := b.Sub(a)
	ac := c.Sub(a)
	ap := p.Sub(a)
	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}

	bp := p.Sub(b)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return a.Add(ab.MulScalar(v))
	}

	cp := p.Sub(c)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return a.Add(ac.MulScalar(w))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return b.Add(c.Sub(b).MulScalar(w))
	}

	denom := 1 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return a.Add(ab.MulScalar(v)).Add(ac.MulScalar(w))
}
