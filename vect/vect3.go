package vect

//3d vector, used for euler rotations and the rolling approximation.
type Vect3 struct {
	X, Y, Z Float
}

//lifts v onto the z = 0 plane.
func Extend(v Vect, z Float) Vect3 {
	return Vect3{v.X, v.Y, z}
}

func Add3(a, b Vect3) Vect3 {
	return Vect3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func Mult3(v Vect3, s Float) Vect3 {
	return Vect3{v.X * s, v.Y * s, v.Z * s}
}

//cross product of two 3d vectors.
func Cross3(a, b Vect3) Vect3 {
	return Vect3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}
