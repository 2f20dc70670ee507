package poolphysics

import (
	"fmt"

	"github.com/greigoat/Pool-Physics-2D/transform"
	"github.com/greigoat/Pool-Physics-2D/vect"
)

type CircleShape struct {
	Collider *Collider
	// Radius of the circle. Must stay positive.
	Radius vect.Float
}

// Creates a new circle collider of the given radius placed by xf.
// A nil xf gets a fresh identity transform.
func NewCircle(xf *transform.Transform, radius vect.Float) (*Collider, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("circle radius %v: %w", radius, ErrInvalidRadius)
	}
	collider := newCollider(xf)
	collider.ShapeClass = &CircleShape{
		Collider: collider,
		Radius:   radius,
	}
	collider.Update()
	return collider, nil
}

// Returns ShapeType_Circle. Needed to implement the ShapeClass interface.
func (circle *CircleShape) ShapeType() ShapeType {
	return ShapeType_Circle
}

func (circle *CircleShape) scaledSize(xf *transform.Transform) vect.Vect {
	d := circle.Radius * 2
	return xf.ScaleVect(vect.Vect{d, d})
}

// Area of the circle weighted by the material density.
// Mass multiplies by density once more.
func (circle *CircleShape) Volume() vect.Float {
	return vect.Pi * circle.Radius * circle.Radius * circle.Collider.Material.density()
}

// Rolling ball tuning: mass * radius * 2.
func (circle *CircleShape) Inertia() vect.Float {
	return circle.Collider.Mass() * circle.Radius * 2
}

// Returns true if the given point is located inside the circle.
func (circle *CircleShape) TestPoint(point vect.Vect) bool {
	d := vect.Sub(point, circle.Collider.Center())

	return vect.Dot(d, d) <= circle.Radius*circle.Radius
}
