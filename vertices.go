package poolphysics

import (
	"github.com/greigoat/Pool-Physics-2D/vect"
)

// Wrapper around []vect.Vect.
type Vertices []vect.Vect

// Signed second moment of the closed polygon about the world origin, for unit density.
// The sign follows the winding of verts.
func (verts Vertices) Inertia() vect.Float {
	const kInv3 = 1 / 3.0
	var I vect.Float

	numVerts := len(verts)
	for i := 0; i < numVerts; i++ {
		p1 := verts[i]
		p2 := verts[(i+1)%numVerts]

		D := vect.Cross(p1, p2)
		intx2 := p1.X*p1.X + p2.X*p1.X + p2.X*p2.X
		inty2 := p1.Y*p1.Y + p2.Y*p1.Y + p2.Y*p2.Y

		I += (0.25 * kInv3 * D) * (intx2 + inty2)
	}

	return I
}
