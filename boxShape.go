package poolphysics

import (
	"fmt"

	"github.com/greigoat/Pool-Physics-2D/transform"
	"github.com/greigoat/Pool-Physics-2D/vect"
)

// Axis aligned box. Boxes never start a narrow phase test; circles test against them.
type BoxShape struct {
	Collider *Collider
	// Local size, scaled by the transform scale.
	Size vect.Vect
}

// Creates a new box collider of the given local size placed by xf.
func NewBox(xf *transform.Transform, size vect.Vect) (*Collider, error) {
	if !(size.X > 0) || !(size.Y > 0) {
		return nil, fmt.Errorf("box size %v: %w", size, ErrInvalidSize)
	}
	collider := newCollider(xf)
	collider.ShapeClass = &BoxShape{
		Collider: collider,
		Size:     size,
	}
	collider.Update()
	return collider, nil
}

// Returns ShapeType_Box. Needed to implement the ShapeClass interface.
func (box *BoxShape) ShapeType() ShapeType {
	return ShapeType_Box
}

func (box *BoxShape) scaledSize(xf *transform.Transform) vect.Vect {
	return xf.ScaleVect(box.Size)
}

// Product of the absolute upper corner coordinates of the current bounds,
// so it changes with where the box sits.
func (box *BoxShape) Volume() vect.Float {
	bb := box.Collider.BB
	return vect.FAbs(bb.Upper.X) * vect.FAbs(bb.Upper.Y)
}

// Polygon inertia of the bounds corners, scaled by density.
func (box *BoxShape) Inertia() vect.Float {
	bb := box.Collider.BB
	return bb.Corners().Inertia() * box.Collider.Material.density()
}

// Returns true if the given point is located inside the box.
func (box *BoxShape) TestPoint(point vect.Vect) bool {
	return box.Collider.BB.ContainsVect(point)
}
