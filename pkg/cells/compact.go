package cells

// compactLabels remaps raw cell ids (with the infinite sentinel numRaw)
// into a dense zero-based labeling and returns it with the total cell
// count. The infinite cell always maps to 0; remaining ids are assigned in
// first-seen order walking patches ascending, side 0 before side 1, which
// makes the labeling stable for a given patch ordering.
func compactLabels(raw [][2]int, numRaw int) ([][2]int, int) {
	const unmapped = -1
	mapped := make([]int, numRaw+1)
	for i := range mapped {
		mapped[i] = unmapped
	}
	infiniteCell := numRaw
	mapped[infiniteCell] = 0
	count := 1

	out := make([][2]int, len(raw))
	for p, pair := range raw {
		for s, c := range pair {
			if mapped[c] == unmapped {
				mapped[c] = count
				count++
			}
			out[p][s] = mapped[c]
		}
	}
	return out, count
}
