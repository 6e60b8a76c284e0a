package tessellate

import (
	"fmt"
	"testing"

	"github.com/chazu/arrangement/pkg/kernel"
	"github.com/chazu/arrangement/pkg/mesh"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// stubSolid carries the origin its unit box will be tessellated at.
type stubSolid struct {
	min v3.Vec
}

func (s *stubSolid) BoundingBox() sdf.Box3 {
	return sdf.Box3{Min: s.min, Max: s.min.Add(v3.Vec{X: 1, Y: 1, Z: 1})}
}

// stubKernel tessellates every solid into a unit box and records the
// transform calls it receives.
type stubKernel struct {
	ops  []string
	fail bool
}

var _ kernel.Kernel = (*stubKernel)(nil)

func (k *stubKernel) Box(x, y, z float64) kernel.Solid          { return &stubSolid{} }
func (k *stubKernel) Sphere(radius float64) kernel.Solid        { return &stubSolid{} }
func (k *stubKernel) Cylinder(h, r float64, _ int) kernel.Solid { return &stubSolid{} }

func (k *stubKernel) Union(a, _ kernel.Solid) kernel.Solid        { return a }
func (k *stubKernel) Difference(a, _ kernel.Solid) kernel.Solid   { return a }
func (k *stubKernel) Intersection(a, _ kernel.Solid) kernel.Solid { return a }

func (k *stubKernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	k.ops = append(k.ops, "translate")
	min := s.(*stubSolid).min
	return &stubSolid{min: min.Add(v3.Vec{X: x, Y: y, Z: z})}
}

func (k *stubKernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	k.ops = append(k.ops, "rotate")
	return s
}

func (k *stubKernel) ToMesh(s kernel.Solid) (*mesh.Mesh, error) {
	if k.fail {
		return nil, fmt.Errorf("stub: tessellation disabled")
	}
	min := s.(*stubSolid).min
	max := min.Add(v3.Vec{X: 1, Y: 1, Z: 1})
	return &mesh.Mesh{
		Vertices: []v3.Vec{
			{X: min.X, Y: min.Y, Z: min.Z},
			{X: max.X, Y: min.Y, Z: min.Z},
			{X: max.X, Y: max.Y, Z: min.Z},
			{X: min.X, Y: max.Y, Z: min.Z},
			{X: min.X, Y: min.Y, Z: max.Z},
			{X: max.X, Y: min.Y, Z: max.Z},
			{X: max.X, Y: max.Y, Z: max.Z},
			{X: min.X, Y: max.Y, Z: max.Z},
		},
		Faces: [][3]int{
			{0, 2, 1}, {0, 3, 2},
			{4, 5, 6}, {4, 6, 7},
			{0, 1, 5}, {0, 5, 4},
			{3, 7, 6}, {3, 6, 2},
			{0, 4, 7}, {0, 7, 3},
			{1, 2, 6}, {1, 6, 5},
		},
	}, nil
}

func TestSolidsMergesComponents(t *testing.T) {
	k := &stubKernel{}
	m, err := Solids(k, k.Box(1, 1, 1), k.Box(1, 1, 1))
	if err != nil {
		t.Fatalf("Solids() error = %v", err)
	}
	if got := m.FaceCount(); got != 24 {
		t.Errorf("FaceCount() = %d, want 24", got)
	}
	ea := mesh.BuildEdgeAdjacency(m)
	if _, nc := mesh.Components(m, ea); nc != 2 {
		t.Errorf("Components() count = %d, want 2", nc)
	}
	if len(k.ops) != 0 {
		t.Errorf("Solids() applied transforms %v, want none", k.ops)
	}
}

func TestArrangeAppliesTransforms(t *testing.T) {
	k := &stubKernel{}
	m, err := Arrange(k, []Placement{
		{Solid: k.Box(1, 1, 1)},
		{Solid: k.Box(1, 1, 1), Rotation: v3.Vec{Z: 90}, Translation: v3.Vec{X: 5}},
	})
	if err != nil {
		t.Fatalf("Arrange() error = %v", err)
	}
	// Rotation is applied before translation, and only when non-zero.
	want := []string{"rotate", "translate"}
	if len(k.ops) != len(want) || k.ops[0] != want[0] || k.ops[1] != want[1] {
		t.Errorf("transform calls = %v, want %v", k.ops, want)
	}
	// The second component's faces follow the first's, at the translated
	// position.
	if b := m.Bounds(); b.Max.X != 6 {
		t.Errorf("merged bounds Max.X = %v, want 6", b.Max.X)
	}
	if got := m.FaceCount(); got != 24 {
		t.Errorf("FaceCount() = %d, want 24", got)
	}
}

func TestArrangeTessellationFailure(t *testing.T) {
	k := &stubKernel{fail: true}
	if _, err := Arrange(k, []Placement{{Solid: k.Box(1, 1, 1)}}); err == nil {
		t.Error("Arrange() error = nil, want tessellation failure")
	}
}

func TestArrangeEmpty(t *testing.T) {
	m, err := Arrange(&stubKernel{}, nil)
	if err != nil {
		t.Fatalf("Arrange() error = %v", err)
	}
	if !m.IsEmpty() {
		t.Errorf("Arrange() of no placements = %d faces, want empty", m.FaceCount())
	}
}
