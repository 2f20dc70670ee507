package poolphysics

import (
	"github.com/greigoat/Pool-Physics-2D/vect"
)

func k_scalar_collider(c *Collider, r, n vect.Vect) vect.Float {
	rcn := vect.Cross(r, n)
	return c.InvMass() + (rcn*rcn)*c.InvInertia()
}

// effective inverse mass of the pair along n.
func k_scalar(a, b *Collider, r1, r2, n vect.Vect) vect.Float {
	return k_scalar_collider(a, r1, n) + k_scalar_collider(b, r2, n)
}

// relative velocity of b with respect to a. A missing or disabled body does not move.
func relative_velocity(a, b *Body) vect.Vect {
	return vect.Sub(b.activeVelocity(), a.activeVelocity())
}
