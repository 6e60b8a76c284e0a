package cells

import "github.com/chazu/arrangement/pkg/mesh"

// edgeOrders caches, per non-manifold unique edge, the cyclic order of its
// incident half-edges and each entry's orientation-consistency flag, as
// computed once by the CyclicOrderProvider. Manifold edges are skipped:
// their two sides are resolved structurally by patch membership.
type edgeOrders struct {
	// order[e] lists edge e's incident half-edges in cyclic sweep order;
	// nil for manifold edges.
	order [][]int
	// consistent[e][i] reports whether order[e][i]'s face winding contains
	// the edge's canonical (src, dst) direction.
	consistent [][]bool
	// patchEdges[p] lists every non-manifold half-edge owned by a face of
	// patch p; these are the only places a peel can step between patches.
	patchEdges [][]int
}

// buildEdgeOrders precomputes cyclic orders for all non-manifold edges.
func buildEdgeOrders(m *mesh.Mesh, ea *mesh.EdgeAdjacency, patch []int, numPatches int, provider CyclicOrderProvider) (*edgeOrders, error) {
	eo := &edgeOrders{
		order:      make([][]int, ea.EdgeCount()),
		consistent: make([][]bool, ea.EdgeCount()),
		patchEdges: make([][]int, numPatches),
	}
	for e, incident := range ea.Incident {
		if len(incident) <= 2 {
			continue
		}
		src, dst := ea.Edges[e][0], ea.Edges[e][1]

		// Tag each incident half-edge with a signed face id: positive if
		// the face runs the edge as (src, dst), negative for (dst, src).
		// A half-edge matching neither rotation is corrupted topology.
		signed := make([]int, len(incident))
		for i, h := range incident {
			f := mesh.HalfEdgeFace(h)
			hs, hd := m.HalfEdge(h)
			switch {
			case hs == src && hd == dst:
				signed[i] = f + 1
			case hs == dst && hd == src:
				signed[i] = -(f + 1)
			default:
				return nil, TopologyError{
					Face:    f,
					Edge:    e,
					Message: "half-edge endpoints match neither rotation of its unique edge",
				}
			}
		}

		perm, err := provider.OrderAroundEdge(m, src, dst, signed)
		if err != nil {
			return nil, err
		}
		if len(perm) != len(incident) {
			return nil, TopologyError{
				Face:    mesh.HalfEdgeFace(incident[0]),
				Edge:    e,
				Message: "cyclic order provider returned wrong-length permutation",
			}
		}

		eo.order[e] = make([]int, len(perm))
		eo.consistent[e] = make([]bool, len(perm))
		for i, j := range perm {
			if j < 0 || j >= len(incident) {
				return nil, TopologyError{
					Face:    mesh.HalfEdgeFace(incident[0]),
					Edge:    e,
					Message: "cyclic order provider returned out-of-range index",
				}
			}
			eo.order[e][i] = incident[j]
			eo.consistent[e][i] = signed[j] > 0
		}

		for _, h := range incident {
			p := patch[mesh.HalfEdgeFace(h)]
			eo.patchEdges[p] = append(eo.patchEdges[p], h)
		}
	}
	return eo, nil
}
