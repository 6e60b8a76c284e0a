package sdfx

import (
	"math"
	"testing"

	"github.com/chazu/arrangement/pkg/mesh"
)

// requireClosed asserts the mesh is a closed 2-manifold, which every
// marching-cubes tessellation must weld into.
func requireClosed(t *testing.T, m *mesh.Mesh) {
	t.Helper()
	ea := mesh.BuildEdgeAdjacency(m)
	if !ea.Closed() {
		t.Fatal("tessellated mesh has boundary edges")
	}
	for e := 0; e < ea.EdgeCount(); e++ {
		if !ea.IsManifold(e) {
			t.Fatalf("edge %d has %d incident half-edges, want 2", e, len(ea.Incident[e]))
		}
	}
}

func testKernel() *SdfxKernel {
	k := New()
	k.MeshCells = 32
	return k
}

func TestBoxMesh(t *testing.T) {
	k := testKernel()
	m, err := k.ToMesh(k.Box(1, 1, 1))
	if err != nil {
		t.Fatalf("ToMesh() error = %v", err)
	}
	if m.IsEmpty() {
		t.Fatal("box mesh is empty")
	}
	requireClosed(t, m)
}

func TestSphereMesh(t *testing.T) {
	k := testKernel()
	m, err := k.ToMesh(k.Sphere(0.5))
	if err != nil {
		t.Fatalf("ToMesh() error = %v", err)
	}
	requireClosed(t, m)
}

func TestCylinderMesh(t *testing.T) {
	k := testKernel()
	m, err := k.ToMesh(k.Cylinder(2, 0.5, 32))
	if err != nil {
		t.Fatalf("ToMesh() error = %v", err)
	}
	requireClosed(t, m)
}

func TestDifference(t *testing.T) {
	k := testKernel()
	box := k.Box(1, 1, 1)
	boxMesh, err := k.ToMesh(box)
	if err != nil {
		t.Fatalf("ToMesh(box) error = %v", err)
	}

	// A box with a cylindrical hole through it has more surface.
	diff := k.Difference(box, k.Cylinder(2, 0.2, 32))
	diffMesh, err := k.ToMesh(diff)
	if err != nil {
		t.Fatalf("ToMesh(diff) error = %v", err)
	}
	requireClosed(t, diffMesh)
	if diffMesh.FaceCount() <= boxMesh.FaceCount() {
		t.Errorf("difference has %d faces, box has %d; want more", diffMesh.FaceCount(), boxMesh.FaceCount())
	}
}

func TestUnion(t *testing.T) {
	k := testKernel()
	u := k.Union(k.Box(1, 1, 1), k.Translate(k.Box(1, 1, 1), 0.6, 0, 0))
	m, err := k.ToMesh(u)
	if err != nil {
		t.Fatalf("ToMesh() error = %v", err)
	}
	requireClosed(t, m)
}

func TestIntersection(t *testing.T) {
	k := testKernel()
	i := k.Intersection(k.Box(1, 1, 1), k.Translate(k.Box(1, 1, 1), 0.5, 0, 0))
	m, err := k.ToMesh(i)
	if err != nil {
		t.Fatalf("ToMesh() error = %v", err)
	}
	if m.IsEmpty() {
		t.Fatal("intersection mesh is empty")
	}
}

func TestBoundingBox(t *testing.T) {
	k := testKernel()
	bb := k.Box(4, 2, 1).BoundingBox()
	const tol = 0.01
	check := func(name string, got, want float64) {
		if math.Abs(got-want) > tol {
			t.Errorf("%s = %f, want %f", name, got, want)
		}
	}
	check("Min.X", bb.Min.X, -2)
	check("Min.Y", bb.Min.Y, -1)
	check("Min.Z", bb.Min.Z, -0.5)
	check("Max.X", bb.Max.X, 2)
	check("Max.Y", bb.Max.Y, 1)
	check("Max.Z", bb.Max.Z, 0.5)
}

func TestTranslateBoundingBox(t *testing.T) {
	k := testKernel()
	bb := k.Translate(k.Box(1, 1, 1), 10, 20, 30).BoundingBox()
	center := bb.Min.Add(bb.Max).MulScalar(0.5)
	const tol = 0.01
	if math.Abs(center.X-10) > tol || math.Abs(center.Y-20) > tol || math.Abs(center.Z-30) > tol {
		t.Errorf("translated center = %v, want (10, 20, 30)", center)
	}
}

func TestRotateBoundingBox(t *testing.T) {
	k := testKernel()
	// A long box along X rotated 90 degrees around Z extends along Y.
	bb := k.Rotate(k.Box(10, 1, 1), 0, 0, 90).BoundingBox()
	xExtent := bb.Max.X - bb.Min.X
	yExtent := bb.Max.Y - bb.Min.Y
	const tol = 0.1
	if math.Abs(xExtent-1) > tol {
		t.Errorf("rotated X extent = %f, want ~1", xExtent)
	}
	if math.Abs(yExtent-10) > tol {
		t.Errorf("rotated Y extent = %f, want ~10", yExtent)
	}
}
