package poolphysics

import (
	"github.com/greigoat/Pool-Physics-2D/vect"
)

//axis aligned bounding box.
type AABB struct {
	Lower, //l b
	Upper vect.Vect // r t
}

func NewAABB(l, b, r, t vect.Float) AABB {
	return AABB{vect.Vect{l, b}, vect.Vect{r, t}}
}

//returns the box centered on center with the given full size.
func NewAABBCenterSize(center, size vect.Vect) AABB {
	half := vect.Mult(vect.Vect{vect.FAbs(size.X), vect.FAbs(size.Y)}, 0.5)
	return AABB{vect.Sub(center, half), vect.Add(center, half)}
}

func (aabb *AABB) Valid() bool {
	return aabb.Lower.X <= aabb.Upper.X && aabb.Lower.Y <= aabb.Upper.Y
}

//returns the center of the aabb
func (aabb *AABB) Center() vect.Vect {
	return vect.Mult(vect.Add(aabb.Lower, aabb.Upper), 0.5)
}

//returns the full size of the aabb.
func (aabb *AABB) Size() vect.Vect {
	return vect.Sub(aabb.Upper, aabb.Lower)
}

func (aabb *AABB) Extents() vect.Vect {
	return vect.Mult(vect.Sub(aabb.Upper, aabb.Lower), .5)
}

//returns if other is contained inside this aabb.
func (aabb *AABB) Contains(other AABB) bool {
	return aabb.Lower.X <= other.Lower.X &&
		aabb.Upper.X >= other.Upper.X &&
		aabb.Lower.Y <= other.Lower.Y &&
		aabb.Upper.Y >= other.Upper.Y
}

//returns if v is contained inside this aabb, boundary included.
func (aabb *AABB) ContainsVect(v vect.Vect) bool {
	return aabb.Lower.X <= v.X &&
		aabb.Upper.X >= v.X &&
		aabb.Lower.Y <= v.Y &&
		aabb.Upper.Y >= v.Y
}

//returns if v lies strictly inside this aabb on both axes.
func (aabb *AABB) ContainsVectStrict(v vect.Vect) bool {
	return aabb.Lower.X < v.X &&
		aabb.Upper.X > v.X &&
		aabb.Lower.Y < v.Y &&
		aabb.Upper.Y > v.Y
}

//returns the area of the bounding box.
func (aabb *AABB) Area() vect.Float {
	return (aabb.Upper.X - aabb.Lower.X) * (aabb.Upper.Y - aabb.Lower.Y)
}

//corners in the order top left, top right, bottom right, bottom left.
func (aabb *AABB) Corners() Vertices {
	return Vertices{
		{aabb.Lower.X, aabb.Upper.Y},
		aabb.Upper,
		{aabb.Upper.X, aabb.Lower.Y},
		aabb.Lower,
	}
}

func TestOverlap(a, b AABB) bool {
	return (a.Lower.X <= b.Upper.X && b.Lower.X <= a.Upper.X && a.Lower.Y <= b.Upper.Y && b.Lower.Y <= a.Upper.Y)
}
