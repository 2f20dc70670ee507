package vect

import (
	"math"

	"github.com/chewxy/math32"
)

type Float float32

const Pi = Float(math.Pi)

var (
	Vector_Zero  = Vect{0, 0}
	Vector_One   = Vect{1, 1}
	Vector_Right = Vect{1, 0}
)

func FMin(a, b Float) Float {
	return Float(math32.Min(float32(a), float32(b)))
}

func FMax(a, b Float) Float {
	return Float(math32.Max(float32(a), float32(b)))
}

func FAbs(a Float) Float {
	return Float(math32.Abs(float32(a)))
}

func FSqrt(a Float) Float {
	return Float(math32.Sqrt(float32(a)))
}

func FClamp(val, min, max Float) Float {
	if val < min {
		return min
	} else if val > max {
		return max
	}
	return val
}

//clamps val to [0, 1].
func Clamp01(val Float) Float {
	return FClamp(val, 0, 1)
}

//basic 2d vector.
type Vect struct {
	X, Y Float
}

//adds v2 to the given vector.
func (v1 *Vect) Add(v2 Vect) {
	v1.X += v2.X
	v1.Y += v2.Y
}

//subtracts v2 from the given vector.
func (v1 *Vect) Sub(v2 Vect) {
	v1.X -= v2.X
	v1.Y -= v2.Y
}

//returns the squared length of the vector.
func (v Vect) LengthSqr() Float {
	return DistSqr(v, Vect{})
}

//returns the length of the vector.
func (v Vect) Length() Float {
	return Dist(v, Vect{})
}

//multiplies the vector by the scalar.
func (v *Vect) Mult(s Float) {
	v.X *= s
	v.Y *= s
}

//normalizes the vector to a length of 1.
//the zero vector stays zero.
func (v *Vect) Normalize() {
	*v = Normalize(*v)
}

//adds the input vectors and returns the result.
func Add(v1, v2 Vect) Vect {
	return Vect{v1.X + v2.X, v1.Y + v2.Y}
}

//subtracts the input vectors and returns the result.
func Sub(v1, v2 Vect) Vect {
	return Vect{v1.X - v2.X, v1.Y - v2.Y}
}

//multiplies a vector by a scalar and returns the result.
func Mult(v1 Vect, s Float) Vect {
	return Vect{v1.X * s, v1.Y * s}
}

//component-wise product.
func Scale(v1, v2 Vect) Vect {
	return Vect{v1.X * v2.X, v1.Y * v2.Y}
}

//returns the square distance between two vectors.
func DistSqr(v1, v2 Vect) Float {
	return (v1.X-v2.X)*(v1.X-v2.X) + (v1.Y-v2.Y)*(v1.Y-v2.Y)
}

//returns the distance between two vectors.
func Dist(v1, v2 Vect) Float {
	return FSqrt(DistSqr(v1, v2))
}

//returns the length of the vector.
func Length(v Vect) Float {
	return Dist(v, Vect{})
}

//returns a new vector with its x/y values set to the smaller one from the two input values.
//e.g. Min({2, 10}, {8, 3}) would return {2, 3}
func Min(v1, v2 Vect) Vect {
	return Vect{FMin(v1.X, v2.X), FMin(v1.Y, v2.Y)}
}

//returns a new vector with its x/y values set to the bigger one from the two input values.
//e.g. Max({2, 10}, {8, 3}) would return {8, 10}
func Max(v1, v2 Vect) Vect {
	return Vect{FMax(v1.X, v2.X), FMax(v1.Y, v2.Y)}
}

//returns the normalized input vector, or the zero vector if v has no length.
func Normalize(v Vect) Vect {
	l := Length(v)
	if l == 0 {
		return Vect{}
	}
	f := 1.0 / l
	return Vect{v.X * f, v.Y * f}
}

//dot product between two vectors.
func Dot(v1, v2 Vect) Float {
	return (v1.X * v2.X) + (v1.Y * v2.Y)
}

//same as CrossVV.
func Cross(a, b Vect) Float {
	return CrossVV(a, b)
}

//returns v scaled down to length l if it is longer.
func Clamp(v Vect, l Float) Vect {
	if Dot(v, v) > l*l {
		return Mult(Normalize(v), l)
	}
	return v
}

//cross product of two vectors.
func CrossVV(a, b Vect) Float {
	return (a.X * b.Y) - (a.Y * b.X)
}

//cross product between a vector and a scalar.
//result = {s * a.Y, -s * a.X}
func CrossVF(a Vect, s Float) Vect {
	return Vect{s * a.Y, -s * a.X}
}

//cross product between a scalar and a vector.
//Not the same as CrossVF
//result = {-s * a.Y, s * a.X}
func CrossFV(s Float, a Vect) Vect {
	return Vect{-s * a.Y, s * a.X}
}
