package cells

import "fmt"

// TopologyError reports malformed input topology: a half-edge whose
// endpoints do not match either rotation of its claimed unique edge, an
// open (boundary) edge in a supposedly closed arrangement, or a collaborator
// returning an ill-formed ordering. It aborts the whole extraction.
type TopologyError struct {
	Face    int
	Edge    int
	Message string
}

func (e TopologyError) Error() string {
	return fmt.Sprintf("cells: malformed topology at face %d, edge %d: %s", e.Face, e.Edge, e.Message)
}

// InconsistencyError reports that the peeler reached a patch side already
// labeled with a different cell than the one propagating. This indicates
// geometry violating the arrangement assumptions (e.g. coincident
// overlapping faces that were not pre-resolved). It aborts the whole
// extraction.
type InconsistencyError struct {
	Patch    int
	Side     int
	Edge     int
	Cell     int // cell being propagated
	Existing int // cell already assigned
}

func (e InconsistencyError) Error() string {
	return fmt.Sprintf("cells: cell assignment inconsistency at patch %d side %d (edge %d): propagating cell %d but already labeled %d",
		e.Patch, e.Side, e.Edge, e.Cell, e.Existing)
}

// NestingError reports that the nesting resolver could not pick a unique
// immediate parent for a component's outer cell: the counting argument
// found zero or multiple candidates. It aborts the whole extraction.
type NestingError struct {
	Component  int
	Candidates int
}

func (e NestingError) Error() string {
	return fmt.Sprintf("cells: ambiguous nesting for component %d: %d immediate-parent candidates", e.Component, e.Candidates)
}
