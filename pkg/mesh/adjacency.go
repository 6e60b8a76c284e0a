package mesh

// EdgeAdjacency maps between the half-edges of a mesh and its unique
// undirected edges. It supports non-manifold topology: a unique edge may
// have any number of incident half-edges.
type EdgeAdjacency struct {
	// Edges lists the unique undirected edges as (src, dst) vertex pairs.
	// The canonical direction has src < dst.
	Edges [][2]int
	// EdgeOf maps each half-edge index (3*face+corner) to its unique edge.
	EdgeOf []int
	// Incident lists, per unique edge, every incident half-edge in
	// unspecified order. Manifold edges have exactly two entries.
	Incident [][]int
}

// BuildEdgeAdjacency constructs the unique edge map of a mesh.
func BuildEdgeAdjacency(m *Mesh) *EdgeAdjacency {
	nh := 3 * m.FaceCount()
	ea := &EdgeAdjacency{
		EdgeOf: make([]int, nh),
	}
	seen := make(map[[2]int]int, nh/2)
	for h := 0; h < nh; h++ {
		s, d := m.HalfEdge(h)
		key := [2]int{s, d}
		if d < s {
			key = [2]int{d, s}
		}
		e, ok := seen[key]
		if !ok {
			e = len(ea.Edges)
			seen[key] = e
			ea.Edges = append(ea.Edges, key)
			ea.Incident = append(ea.Incident, nil)
		}
		ea.EdgeOf[h] = e
		ea.Incident[e] = append(ea.Incident[e], h)
	}
	return ea
}

// EdgeCount returns the number of unique edges.
func (ea *EdgeAdjacency) EdgeCount() int {
	return len(ea.Edges)
}

// IsManifold reports whether unique edge e has exactly two incident faces.
func (ea *EdgeAdjacency) IsManifold(e int) bool {
	return len(ea.Incident[e]) == 2
}

// Closed reports whether every unique edge has at least two incident faces,
// i.e. the mesh has no boundary.
func (ea *EdgeAdjacency) Closed() bool {
	for _, inc := range ea.Incident {
		if len(inc) < 2 {
			return false
		}
	}
	return true
}
