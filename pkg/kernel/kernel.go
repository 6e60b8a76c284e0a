// Package kernel defines the abstract geometry kernel interface.
// Implementations (sdfx, manifold) provide solid modeling behind this
// interface and tessellate solids into the indexed meshes the cell
// extractor consumes. The kernel abstraction allows swapping backends
// without changing the rest of the system.
package kernel

import (
	"github.com/chazu/arrangement/pkg/mesh"
	"github.com/deadsy/sdfx/sdf"
)

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() sdf.Box3
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// Primitives
	Box(x, y, z float64) Solid
	Sphere(radius float64) Solid
	Cylinder(height, radius float64, segments int) Solid

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees

	// ToMesh tessellates the solid into a closed indexed triangle mesh
	// with outward-facing windings, suitable as a cell-extraction
	// arrangement or one component of one.
	ToMesh(s Solid) (*mesh.Mesh, error)
}
