package mesh

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// wallbox returns a closed arrangement of a 2x1x1 box with an internal wall
// at x=1, splitting it into two unit chambers. The four edges around the
// wall are non-manifold with three incident faces each. Faces are listed
// left shell, right shell, then wall, so the three manifold patches come
// out in that order.
func wallbox() *Mesh {
	return &Mesh{
		Vertices: []v3.Vec{
			{X: 0, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 1}, {X: 0, Y: 0, Z: 1}, // x=0
			{X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 0, Z: 1}, // x=1
			{X: 2, Y: 0, Z: 0}, {X: 2, Y: 1, Z: 0}, {X: 2, Y: 1, Z: 1}, {X: 2, Y: 0, Z: 1}, // x=2
		},
		Faces: [][3]int{
			// left shell
			{0, 2, 1}, {0, 3, 2}, // x=0, -X
			{0, 4, 7}, {0, 7, 3}, // y=0 left, -Y
			{1, 6, 5}, {1, 2, 6}, // y=1 left, +Y
			{0, 1, 5}, {0, 5, 4}, // z=0 left, -Z
			{3, 7, 6}, {3, 6, 2}, // z=1 left, +Z
			// right shell
			{8, 9, 10}, {8, 10, 11}, // x=2, +X
			{4, 8, 11}, {4, 11, 7}, // y=0 right, -Y
			{5, 10, 9}, {5, 6, 10}, // y=1 right, +Y
			{4, 5, 9}, {4, 9, 8}, // z=0 right, -Z
			{7, 11, 10}, {7, 10, 6}, // z=1 right, +Z
			// wall at x=1, +X
			{4, 5, 6}, {4, 6, 7},
		},
	}
}

func TestBuildEdgeAdjacencyCube(t *testing.T) {
	m := cube()
	ea := BuildEdgeAdjacency(m)

	// 12 cube edges plus 6 face diagonals.
	if got := ea.EdgeCount(); got != 18 {
		t.Fatalf("EdgeCount() = %d, want 18", got)
	}
	if !ea.Closed() {
		t.Error("Closed() = false for cube, want true")
	}
	for e := 0; e < ea.EdgeCount(); e++ {
		if !ea.IsManifold(e) {
			t.Errorf("edge %d has %d incident half-edges, want 2", e, len(ea.Incident[e]))
		}
		if s, d := ea.Edges[e][0], ea.Edges[e][1]; s >= d {
			t.Errorf("edge %d = (%d,%d), want canonical src < dst", e, s, d)
		}
	}
	// Every half-edge must map to an edge listing it as incident.
	for h := 0; h < 3*m.FaceCount(); h++ {
		e := ea.EdgeOf[h]
		found := false
		for _, ih := range ea.Incident[e] {
			if ih == h {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("half-edge %d missing from Incident[%d]", h, e)
		}
	}
}

func TestBuildEdgeAdjacencyNonManifold(t *testing.T) {
	m := wallbox()
	ea := BuildEdgeAdjacency(m)
	if !ea.Closed() {
		t.Fatal("Closed() = false for wallbox, want true")
	}

	nonManifold := map[[2]int]bool{}
	for e := 0; e < ea.EdgeCount(); e++ {
		switch n := len(ea.Incident[e]); n {
		case 2:
		case 3:
			nonManifold[ea.Edges[e]] = true
		default:
			t.Errorf("edge %v has %d incident half-edges, want 2 or 3", ea.Edges[e], n)
		}
	}
	want := [][2]int{{4, 5}, {5, 6}, {6, 7}, {4, 7}}
	if len(nonManifold) != len(want) {
		t.Fatalf("found %d non-manifold edges %v, want %d", len(nonManifold), nonManifold, len(want))
	}
	for _, e := range want {
		if !nonManifold[e] {
			t.Errorf("edge %v not detected as non-manifold", e)
		}
	}
}

func TestClosedOpenMesh(t *testing.T) {
	// A single triangle has three boundary edges.
	m := &Mesh{
		Vertices: []v3.Vec{{}, {X: 1}, {Y: 1}},
		Faces:    [][3]int{{0, 1, 2}},
	}
	if BuildEdgeAdjacency(m).Closed() {
		t.Error("Closed() = true for a lone triangle, want false")
	}
}
