package mesh

// Patches partitions the faces of a mesh into maximal manifold patches:
// sets of faces transitively connected across manifold (exactly-2-incident)
// edges. It returns one patch id per face and the number of patches.
// A patch has no interior non-manifold edge, so it locally separates
// exactly two regions of space, one per side.
func Patches(m *Mesh, ea *EdgeAdjacency) (patch []int, count int) {
	nf := m.FaceCount()
	patch = make([]int, nf)
	for i := range patch {
		patch[i] = -1
	}
	var queue []int
	for seed := 0; seed < nf; seed++ {
		if patch[seed] >= 0 {
			continue
		}
		patch[seed] = count
		queue = append(queue[:0], seed)
		for len(queue) > 0 {
			f := queue[0]
			queue = queue[1:]
			for k := 0; k < 3; k++ {
				e := ea.EdgeOf[3*f+k]
				if !ea.IsManifold(e) {
					continue
				}
				for _, h := range ea.Incident[e] {
					g := HalfEdgeFace(h)
					if patch[g] < 0 {
						patch[g] = count
						queue = append(queue, g)
					}
				}
			}
		}
		count++
	}
	return patch, count
}

// Components partitions the faces of a mesh into connected components:
// sets of faces transitively connected across any shared edge, manifold or
// not. It returns one component id per face and the number of components.
func Components(m *Mesh, ea *EdgeAdjacency) (comp []int, count int) {
	nf := m.FaceCount()
	comp = make([]int, nf)
	for i := range comp {
		comp[i] = -1
	}
	var queue []int
	for seed := 0; seed < nf; seed++ {
		if comp[seed] >= 0 {
			continue
		}
		comp[seed] = count
		queue = append(queue[:0], seed)
		for len(queue) > 0 {
			f := queue[0]
			queue = queue[1:]
			for k := 0; k < 3; k++ {
				for _, h := range ea.Incident[ea.EdgeOf[3*f+k]] {
					g := HalfEdgeFace(h)
					if comp[g] < 0 {
						comp[g] = count
						queue = append(queue, g)
					}
				}
			}
		}
		count++
	}
	return comp, count
}
