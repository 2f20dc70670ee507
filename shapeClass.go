package poolphysics

import (
	"github.com/greigoat/Pool-Physics-2D/transform"
	"github.com/greigoat/Pool-Physics-2D/vect"
)

type ShapeType int

const (
	ShapeType_Circle = 0
	ShapeType_Box    = 1
	numShapes        = iota
)

func (st ShapeType) String() string {
	switch st {
	case ShapeType_Circle:
		return "Circle"
	case ShapeType_Box:
		return "Box"
	default:
		return "Unknown"
	}
}

type ShapeClass interface {
	ShapeType() ShapeType
	// Full size of the bounds for the given transform.
	scaledSize(xf *transform.Transform) vect.Vect
	// Area of the shape; may already include density.
	Volume() vect.Float
	// Moment of inertia used by the impulse solver.
	Inertia() vect.Float
}

// Returns collider.ShapeClass as CircleShape or nil.
func (collider *Collider) GetAsCircle() *CircleShape {
	if circle, ok := collider.ShapeClass.(*CircleShape); ok {
		return circle
	}

	return nil
}

// Returns collider.ShapeClass as BoxShape or nil.
func (collider *Collider) GetAsBox() *BoxShape {
	if box, ok := collider.ShapeClass.(*BoxShape); ok {
		return box
	}

	return nil
}
