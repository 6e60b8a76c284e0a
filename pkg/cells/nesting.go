package cells

import "github.com/chazu/arrangement/pkg/mesh"

// ambientRef records that another component's region surrounds a
// component's outer cell: comp is the surrounding component, cell the raw
// cell of comp's arrangement the outer cell sits in.
type ambientRef struct {
	comp int
	cell int
}

// resolveNesting determines, for every connected component, which raw cell
// its outer cell is directly embedded in, and rewrites those outer cells in
// raw to the embedding cell (or to the infinite sentinel, numRaw, for
// components bounded by the unbounded region). Containment candidates are
// pruned by bounding-box overlap and decided by closest-facet queries from
// each candidate's outer-facet centroid.
//
// The outer cells of the components form a forest rooted at the infinite
// cell; the immediate parent of a component surrounded by k regions is the
// unique surrounding component that is itself surrounded by k-1. Zero or
// multiple candidates mean the containment structure is cyclic or
// inconsistent, which a valid closed arrangement cannot produce.
func resolveNesting(m *mesh.Mesh, ea *mesh.EdgeAdjacency, patch []int, raw [][2]int, numRaw int, outer OuterFacetFinder, closest ClosestFacetFinder) error {
	comp, numComp := mesh.Components(m, ea)

	compFaces := make([][]int, numComp)
	for f := 0; f < m.FaceCount(); f++ {
		c := comp[f]
		compFaces[c] = append(compFaces[c], f)
	}

	outerFacet := make([]int, numComp)
	outerCell := make([]int, numComp)
	for c := 0; c < numComp; c++ {
		facet, flipped, err := outer.OuterFacet(m, compFaces[c])
		if err != nil {
			return err
		}
		side := 0
		if flipped {
			side = 1
		}
		outerFacet[c] = facet
		outerCell[c] = raw[patch[facet]][side]
	}

	ambient := make([][]ambientRef, numComp)
	if numComp > 1 {
		bounds := mesh.ComponentBounds(m, comp, numComp)
		for i := 0; i < numComp; i++ {
			for j := 0; j < numComp; j++ {
				if i == j || !mesh.BoxesOverlap(bounds[i], bounds[j]) {
					continue
				}
				// Is component j's outermost region buried inside i? Probe
				// with the centroid of j's outer facet against i's faces.
				q := m.FaceCentroid(outerFacet[j])
				facet, side, err := closest.ClosestFacet(m, compFaces[i], q)
				if err != nil {
					return err
				}
				ambientCell := raw[patch[facet]][side]
				if ambientCell != outerCell[i] {
					ambient[j] = append(ambient[j], ambientRef{comp: i, cell: ambientCell})
				}
			}
		}
	}

	// Immediate-parent selection by the counting argument, then rewrite
	// every outer cell to its parent (parent-pointer array, no cell graph).
	const invalid = -1
	infiniteCell := numRaw
	embedded := make([]int, numRaw)
	for i := range embedded {
		embedded[i] = invalid
	}
	for c := 0; c < numComp; c++ {
		refs := ambient[c]
		if len(refs) == 0 {
			embedded[outerCell[c]] = infiniteCell
			continue
		}
		parent := invalid
		matches := 0
		for _, r := range refs {
			if len(ambient[r.comp]) == len(refs)-1 {
				if matches == 0 {
					parent = r.cell
				}
				matches++
			}
		}
		if matches != 1 {
			return NestingError{Component: c, Candidates: matches}
		}
		embedded[outerCell[c]] = parent
	}

	for p := range raw {
		for s := 0; s < 2; s++ {
			if e := embedded[raw[p][s]]; e != invalid {
				raw[p][s] = e
			}
		}
	}
	return nil
}
