// Package cells computes the cell decomposition of space cut by a closed,
// possibly self-intersecting triangulated arrangement.
//
// Given a mesh whose faces may meet along non-manifold edges, Extract
// identifies the connected volumetric regions (cells) the surface divides
// space into and labels, for every face, the cell on each of its two sides.
// Cell ids are dense integers; id 0 is always the unbounded ambient region.
// Downstream consumers use the labeling to classify solid and void regions
// for mesh booleans or winding-number style queries.
//
// The extraction is purely combinatorial once three geometric collaborators
// have answered: the cyclic order of faces around each non-manifold edge,
// the outer facet of each connected component, and closest-facet queries
// for resolving nesting between disjoint components. Each collaborator is
// a small interface with a float64 implementation from pkg/geom wired in by
// default; callers with exact-predicate backends can substitute their own.
package cells

import (
	"github.com/chazu/arrangement/pkg/geom"
	"github.com/chazu/arrangement/pkg/mesh"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// CyclicOrderProvider orders the faces incident to a shared edge into the
// cyclic sequence met when sweeping a half-plane around the edge's
// supporting line.
//
// signedFaces carries one signed 1-based face id per incident face,
// positive if the face's winding contains the directed edge (src, dst) and
// negative if it contains (dst, src); the signs are the only handle an
// exact-predicate implementation has for disambiguating coplanar
// duplicates. The returned permutation indexes signedFaces and must order
// counter-clockwise around the axis dst-src by the right-hand rule.
type CyclicOrderProvider interface {
	OrderAroundEdge(m *mesh.Mesh, src, dst int, signedFaces []int) ([]int, error)
}

// OuterFacetFinder selects, for a set of faces forming one closed connected
// component, a facet guaranteed to lie on the component's outer boundary,
// and whether it is seen flipped (back side first) from outside.
type OuterFacetFinder interface {
	OuterFacet(m *mesh.Mesh, faces []int) (facet int, flipped bool, err error)
}

// ClosestFacetFinder finds the face of a candidate set closest to a query
// point and the side of it the point lies on. Implementations must answer
// deterministically under ties; the nesting resolver depends on consistent
// answers across repeated queries.
type ClosestFacetFinder interface {
	ClosestFacet(m *mesh.Mesh, faces []int, q v3.Vec) (facet int, side int, err error)
}

// floatGeom wires the pkg/geom float64 implementations into the
// collaborator interfaces.
type floatGeom struct{}

var _ CyclicOrderProvider = floatGeom{}
var _ OuterFacetFinder = floatGeom{}
var _ ClosestFacetFinder = floatGeom{}

func (floatGeom) OrderAroundEdge(m *mesh.Mesh, src, dst int, signedFaces []int) ([]int, error) {
	return geom.OrderAroundEdge(m, src, dst, signedFaces)
}

func (floatGeom) OuterFacet(m *mesh.Mesh, faces []int) (int, bool, error) {
	return geom.OuterFacet(m, faces)
}

func (floatGeom) ClosestFacet(m *mesh.Mesh, faces []int, q v3.Vec) (int, int, error) {
	return geom.ClosestFacet(m, faces, q)
}

// Options configures Extract. The zero value computes everything from the
// mesh with the default float64 geometry.
type Options struct {
	// Patches gives precomputed per-face manifold patch ids (dense, starting
	// at 0) for callers that already hold the topology; nil to compute.
	Patches []int
	// NumPatches is the patch count when Patches is non-nil.
	NumPatches int
	// Adjacency gives a precomputed unique edge map; nil to compute.
	Adjacency *mesh.EdgeAdjacency

	// Order, Outer and Closest substitute geometric collaborators.
	// Nil fields fall back to the pkg/geom implementations.
	Order   CyclicOrderProvider
	Outer   OuterFacetFinder
	Closest ClosestFacetFinder
}

// Decomposition is the result of a cell extraction.
type Decomposition struct {
	// PerFace lists, for every face, the final cell id on side 0 (the side
	// the face normal points into) and side 1.
	PerFace [][2]int
	// PerPatch lists the same pair per manifold patch.
	PerPatch [][2]int
	// Patches maps each face to its manifold patch.
	Patches []int
	// NumCells is the total number of cells, counting the unbounded cell 0.
	NumCells int
}

// Extract computes the cell decomposition of an arrangement. The mesh must
// be closed: every unique edge needs at least two incident faces. All state
// is local to the call; the mesh is not mutated.
//
// Failure is total: on any TopologyError, InconsistencyError or
// NestingError no partial result is returned.
func Extract(m *mesh.Mesh, opts *Options) (*Decomposition, error) {
	if opts == nil {
		opts = &Options{}
	}
	order := opts.Order
	if order == nil {
		order = floatGeom{}
	}
	outer := opts.Outer
	if outer == nil {
		outer = floatGeom{}
	}
	closest := opts.Closest
	if closest == nil {
		closest = floatGeom{}
	}

	ea := opts.Adjacency
	if ea == nil {
		ea = mesh.BuildEdgeAdjacency(m)
	}
	if err := requireClosed(ea); err != nil {
		return nil, err
	}

	patch := opts.Patches
	numPatches := opts.NumPatches
	if patch == nil {
		patch, numPatches = mesh.Patches(m, ea)
	}

	eo, err := buildEdgeOrders(m, ea, patch, numPatches, order)
	if err != nil {
		return nil, err
	}

	raw, numRaw, err := peelCells(ea, patch, numPatches, eo)
	if err != nil {
		return nil, err
	}

	if err := resolveNesting(m, ea, patch, raw, numRaw, outer, closest); err != nil {
		return nil, err
	}

	perPatch, numCells := compactLabels(raw, numRaw)

	perFace := make([][2]int, m.FaceCount())
	for f := range perFace {
		perFace[f] = perPatch[patch[f]]
	}
	return &Decomposition{
		PerFace:  perFace,
		PerPatch: perPatch,
		Patches:  patch,
		NumCells: numCells,
	}, nil
}

// requireClosed rejects arrangements with boundary edges.
func requireClosed(ea *mesh.EdgeAdjacency) error {
	for e, inc := range ea.Incident {
		if len(inc) < 2 {
			return TopologyError{
				Face:    mesh.HalfEdgeFace(inc[0]),
				Edge:    e,
				Message: "boundary edge in closed arrangement",
			}
		}
	}
	return nil
}
