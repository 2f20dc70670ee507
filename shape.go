package poolphysics

import (
	"github.com/greigoat/Pool-Physics-2D/transform"
	"github.com/greigoat/Pool-Physics-2D/vect"
)

// Collider is the collision volume of one simulated object.
// Its ShapeClass is either a *CircleShape or a *BoxShape.
type Collider struct {
	DefaultHash
	ShapeClass

	/// Placement owned by the host. Center and bounds are derived from it.
	Transform *transform.Transform

	/// Physical material. nil means density 1 and the partner's elasticity.
	Material *Material

	/// Trigger flag.
	/// Triggers report contacts but never take part in impulse resolution.
	IsTrigger bool

	/// Local displacement of the collision center from Transform.Position.
	Offset vect.Vect

	/// The world bounding box, refreshed by Update once per frame.
	BB AABB

	/// Host marker, e.g. CueTag for the cue ball.
	Tag string

	/// User definable data pointer.
	UserData interface{}

	/// The physical body driving this collider, nil for static obstacles and triggers.
	Body *Body

	space     *Space
	destroyed bool
	handlers  handlerList
}

func newCollider(xf *transform.Transform) *Collider {
	if xf == nil {
		xf = transform.NewTransform(vect.Vector_Zero)
	}
	return &Collider{Transform: xf}
}

// Center of the collision volume in world space.
func (collider *Collider) Center() vect.Vect {
	return vect.Add(collider.Transform.Position, collider.Offset)
}

// Position of the owning transform.
func (collider *Collider) Position() vect.Vect {
	return collider.Transform.Position
}

// Recomputes the bounding box from the current transform.
// Boxes stay axis aligned whatever the transform rotation is.
func (collider *Collider) Update() {
	collider.BB = NewAABBCenterSize(collider.Center(), collider.ShapeClass.scaledSize(collider.Transform))
}

func (collider *Collider) AABB() AABB {
	return collider.BB
}

func (collider *Collider) Mass() vect.Float {
	return collider.Volume() * collider.Material.density()
}

// Zero safe 1/mass. Massless colliders are immovable.
func (collider *Collider) InvMass() vect.Float {
	if m := collider.Mass(); m != 0 {
		return 1 / m
	}
	return 0
}

// Zero safe 1/inertia.
func (collider *Collider) InvInertia() vect.Float {
	if i := collider.Inertia(); i != 0 {
		return 1 / i
	}
	return 0
}

// Destroyed reports whether the collider was removed from its space.
// Destroyed colliders take no part in further tests.
func (collider *Collider) Destroyed() bool {
	return collider.destroyed
}

// Destroy removes the collider, and its body, from the space at the end of the current frame.
func (collider *Collider) Destroy() {
	if collider.space != nil {
		collider.space.RemoveCollider(collider)
		return
	}
	collider.destroyed = true
}

func (collider *Collider) Space() *Space {
	return collider.space
}

// InContact reports whether the collider currently touches anything it tested against.
func (collider *Collider) InContact() bool {
	if collider.space == nil {
		return false
	}
	for _, arb := range collider.space.arbiters {
		if arb.ColliderA == collider && arb.Touching() {
			return true
		}
	}
	return false
}

// Contacts returns the current contacts initiated by this collider, one per partner.
func (collider *Collider) Contacts() []ContactPoint {
	if collider.space == nil {
		return nil
	}
	var contacts []ContactPoint
	for _, arb := range collider.space.orderedArbiters() {
		if arb.ColliderA == collider && arb.Touching() {
			contacts = append(contacts, arb.Contact)
		}
	}
	return contacts
}
