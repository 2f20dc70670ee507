package poolphysics

import (
	"fmt"

	"github.com/greigoat/Pool-Physics-2D/vect"
)

// Body is a rolling ball: one circle collider with velocity, drag and a contact responder.
type Body struct {
	collider *Collider

	/// Velocity of the center.
	v vect.Vect

	/// Display only rolling rotation, in degrees per fixed step.
	w vect.Vect3

	/// Linear drag. Velocity is scaled by clamp01(1 - Drag*dt) every fixed step.
	Drag vect.Float

	/// Disabled bodies neither move nor receive impulses from others.
	Enabled bool

	/// User definable data pointer.
	UserData interface{}
}

// Creates a body driven by the given circle collider.
// Negative drag is clamped to zero.
func NewBody(collider *Collider, drag vect.Float) (*Body, error) {
	if collider == nil {
		return nil, ErrNilCollider
	}
	if collider.GetAsCircle() == nil {
		return nil, fmt.Errorf("%v collider: %w", collider.ShapeType(), ErrNotCircle)
	}

	body := &Body{
		collider: collider,
		Drag:     vect.FMax(drag, 0),
		Enabled:  true,
	}
	collider.Body = body
	return body, nil
}

func (body *Body) Collider() *Collider {
	return body.collider
}

func (body *Body) Radius() vect.Float {
	return body.collider.GetAsCircle().Radius
}

func (body *Body) Velocity() vect.Vect {
	return body.v
}

func (body *Body) SetVelocity(v vect.Vect) {
	body.v = v
}

func (body *Body) Speed() vect.Float {
	return body.v.Length()
}

func (body *Body) AngularVelocity() vect.Vect3 {
	return body.w
}

func (body *Body) Position() vect.Vect {
	return body.collider.Transform.Position
}

func (body *Body) SetPosition(pos vect.Vect) {
	body.collider.Transform.Position = pos
}

// Adds impulse / mass to the velocity.
// Meant for one-off kicks like a cue shot, not for continuous forces.
func (body *Body) ApplyImpulse(impulse vect.Vect) {
	body.v.Add(vect.Mult(impulse, body.collider.InvMass()))
}

// Reset velocity back to zero
func (body *Body) Stop() {
	body.v = vect.Vector_Zero
}

// Sleeping reports whether the body moves slower than threshold.
func (body *Body) Sleeping(threshold vect.Float) bool {
	return body.v.LengthSqr() < threshold*threshold
}

func (body *Body) active() bool {
	return body != nil && body.Enabled
}

func (body *Body) activeVelocity() vect.Vect {
	if !body.active() {
		return vect.Vector_Zero
	}
	return body.v
}

// Responds to one frame of an ongoing contact initiated by this body's collider.
// The body is placed just outside the contact point, then a single restitution impulse
// along the normal is shared with the other body.
// Returns false when the pair has no effective mass and nothing was applied.
func (body *Body) resolveContact(contact ContactPoint, slop vect.Float) bool {
	a := body.collider
	b := contact.OtherCollider
	normal := contact.Normal

	if a.IsTrigger || b.IsTrigger {
		return true
	}

	// Place the body on the contact point.
	body.SetPosition(vect.Add(contact.Point, vect.Mult(normal, body.Radius()+slop)))

	// Offsets from each center to the contact point.
	r1 := vect.Sub(contact.Point, a.Position())
	r2 := vect.Sub(contact.Point, b.Position())

	other := b.Body
	vn := vect.Dot(relative_velocity(body, other), normal)

	k := k_scalar(a, b, r1, r2, normal)
	if k == 0 {
		return false
	}

	e := combinedElasticity(a.Material, b.Material)

	j := -(1.0 + e) * vn / k
	impulse := vect.Mult(normal, j)

	body.ApplyImpulse(vect.Mult(impulse, -1))
	if other.active() {
		other.ApplyImpulse(impulse)
	}
	return true
}

// Integrates one fixed step: rolling rotation, drag, then position.
func (body *Body) UpdatePosition(dt vect.Float) {
	xf := body.collider.Transform

	// Treat the ball as rolling on a table one radius below its center:
	// spin axis = v x (0, 0, radius), flattened onto the table plane.
	lever := vect.Vect3{0, 0, body.Radius()}
	t := vect.Cross3(vect.Extend(body.v, 0), lever)
	t.Z = 0
	body.w = vect.Mult3(t, body.collider.InvInertia())

	body.v.Mult(vect.Clamp01(1 - body.Drag*dt))
	xf.Translate(vect.Mult(body.v, dt))

	xf.Rotate(body.w)
}
