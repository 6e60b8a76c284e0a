package cells

import "github.com/chazu/arrangement/pkg/mesh"

// unlabeled marks a patch side not yet assigned to a cell.
const unlabeled = -1

// patchSide is one node of the peel's implicit graph.
type patchSide struct {
	patch int
	side  int
}

// peelCells assigns a raw cell id to every (patch, side) pair by
// breadth-first traversal. Whenever a scan finds an unlabeled side it seeds
// a fresh cell and peels its whole boundary; crossing a non-manifold edge
// steps to the cyclic neighbor on the same side of the surface. Returns the
// per-patch raw cell pairs and the raw cell count.
//
// Raw cells of different connected components are unrelated; the nesting
// resolver relates them afterwards.
func peelCells(ea *mesh.EdgeAdjacency, patch []int, numPatches int, eo *edgeOrders) ([][2]int, int, error) {
	raw := make([][2]int, numPatches)
	for p := range raw {
		raw[p] = [2]int{unlabeled, unlabeled}
	}

	count := 0
	for p := 0; p < numPatches; p++ {
		for side := 0; side < 2; side++ {
			if raw[p][side] != unlabeled {
				continue
			}
			if err := peel(ea, patch, eo, raw, p, side, count); err != nil {
				return nil, 0, err
			}
			count++
		}
	}
	return raw, count, nil
}

// peel labels every patch side bounding one cell, starting from a seed.
func peel(ea *mesh.EdgeAdjacency, patch []int, eo *edgeOrders, raw [][2]int, seedPatch, seedSide, cell int) error {
	queue := []patchSide{{seedPatch, seedSide}}
	raw[seedPatch][seedSide] = cell
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, h := range eo.patchEdges[cur.patch] {
			e := ea.EdgeOf[h]
			order := eo.order[e]
			cons := eo.consistent[e]
			valence := len(order)

			// Locate this half-edge in the cyclic order. Linear, but edge
			// valence is small in practice.
			at := -1
			for i, oh := range order {
				if oh == h {
					at = i
					break
				}
			}
			if at < 0 {
				return TopologyError{
					Face:    mesh.HalfEdgeFace(h),
					Edge:    e,
					Message: "half-edge missing from its edge's cyclic order",
				}
			}

			// Step to the next face seen when continuing around the edge on
			// the current side of the surface: counter-clockwise when on
			// side 0 of a consistently oriented face (or side 1 of an
			// inconsistent one), clockwise otherwise.
			var next int
			if (cur.side == 0) == cons[at] {
				next = (at + 1) % valence
			} else {
				next = (at + valence - 1) % valence
			}
			nh := order[next]
			nextPatch := patch[mesh.HalfEdgeFace(nh)]
			// Same side when the two consistency flags differ; crossing to
			// a face wound the same way around the edge flips the side.
			nextSide := cur.side
			if cons[next] == cons[at] {
				nextSide = 1 - cur.side
			}

			switch raw[nextPatch][nextSide] {
			case unlabeled:
				raw[nextPatch][nextSide] = cell
				queue = append(queue, patchSide{nextPatch, nextSide})
			case cell:
				// already labeled by this peel
			default:
				return InconsistencyError{
					Patch:    nextPatch,
					Side:     nextSide,
					Edge:     e,
					Cell:     cell,
					Existing: raw[nextPatch][nextSide],
				}
			}
		}
	}
	return nil
}
