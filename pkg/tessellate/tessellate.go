// Package tessellate converts geometry-kernel solids into indexed triangle
// meshes and assembles them into multi-component arrangements ready for
// cell extraction. One mesh component is produced per solid.
package tessellate

import (
	"fmt"

	"github.com/chazu/arrangement/pkg/kernel"
	"github.com/chazu/arrangement/pkg/mesh"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Placement positions a solid in the arrangement. Rotation is applied
// first, then translation.
type Placement struct {
	Solid       kernel.Solid
	Rotation    v3.Vec // Euler angles in degrees
	Translation v3.Vec
}

// Solids tessellates each solid as placed at the origin and merges the
// results into one arrangement mesh.
func Solids(k kernel.Kernel, solids ...kernel.Solid) (*mesh.Mesh, error) {
	placements := make([]Placement, len(solids))
	for i, s := range solids {
		placements[i] = Placement{Solid: s}
	}
	return Arrange(k, placements)
}

// Arrange applies each placement's transforms, tessellates the solids, and
// merges the resulting meshes into one arrangement. The merged mesh keeps
// the placements' order: faces of placement i precede those of i+1.
func Arrange(k kernel.Kernel, placements []Placement) (*mesh.Mesh, error) {
	meshes := make([]*mesh.Mesh, len(placements))
	for i, p := range placements {
		s := p.Solid
		if r := p.Rotation; r.X != 0 || r.Y != 0 || r.Z != 0 {
			s = k.Rotate(s, r.X, r.Y, r.Z)
		}
		if t := p.Translation; t.X != 0 || t.Y != 0 || t.Z != 0 {
			s = k.Translate(s, t.X, t.Y, t.Z)
		}
		m, err := k.ToMesh(s)
		if err != nil {
			return nil, fmt.Errorf("tessellate: solid %d: %w", i, err)
		}
		meshes[i] = m
	}
	return mesh.Merge(meshes...), nil
}
