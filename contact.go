package poolphysics

import (
	"github.com/greigoat/Pool-Physics-2D/vect"
)

// ContactPoint describes where and in which direction two colliders touch.
// It is a plain value, built fresh for every detected intersection.
type ContactPoint struct {
	// The collider that ran the test.
	Collider *Collider

	// Unit separating direction, pointing from OtherCollider toward Collider.
	Normal vect.Vect

	OtherCollider *Collider

	// World position of the contact, on the surface of OtherCollider.
	Point vect.Vect
}

func NewContactPoint(collider *Collider, normal vect.Vect, other *Collider, point vect.Vect) ContactPoint {
	return ContactPoint{
		Collider:      collider,
		Normal:        normal,
		OtherCollider: other,
		Point:         point,
	}
}
