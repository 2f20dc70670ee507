package transform

import (
	"github.com/greigoat/Pool-Physics-2D/vect"
)

//host-owned placement of a simulated object.
//the physics core reads Position and Scale, writes Position and Rotation.
type Transform struct {
	Position vect.Vect
	//euler angles in degrees. Only used for display.
	Rotation vect.Vect3
	Scale    vect.Vect
}

func NewTransform(pos vect.Vect) *Transform {
	return &Transform{
		Position: pos,
		Scale:    vect.Vector_One,
	}
}

func NewTransformScaled(pos, scale vect.Vect) *Transform {
	return &Transform{
		Position: pos,
		Scale:    scale,
	}
}

func (xf *Transform) SetIdentity() {
	xf.Position = vect.Vect{}
	xf.Rotation = vect.Vect3{}
	xf.Scale = vect.Vector_One
}

//moves the transform by d.
func (xf *Transform) Translate(d vect.Vect) {
	xf.Position.Add(d)
}

//adds euler angles (degrees) to the rotation, wrapping every axis into [0, 360).
func (xf *Transform) Rotate(euler vect.Vect3) {
	r := vect.Add3(xf.Rotation, euler)
	xf.Rotation = vect.Vect3{wrapDegrees(r.X), wrapDegrees(r.Y), wrapDegrees(r.Z)}
}

//scales a local size by the transform scale.
func (xf *Transform) ScaleVect(v vect.Vect) vect.Vect {
	return vect.Scale(v, xf.Scale)
}

func wrapDegrees(a vect.Float) vect.Float {
	for a >= 360 {
		a -= 360
	}
	for a < 0 {
		a += 360
	}
	return a
}
