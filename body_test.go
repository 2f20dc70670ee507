package poolphysics

import (
	"math"
	"testing"

	"github.com/greigoat/Pool-Physics-2D/vect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBody(t *testing.T, pos vect.Vect, radius, drag vect.Float) *Body {
	t.Helper()
	body, err := NewBody(newTestCircle(t, pos, radius), drag)
	require.NoError(t, err)
	return body
}

func TestNewBodyErrors(t *testing.T) {
	_, err := NewBody(nil, 0)
	assert.ErrorIs(t, err, ErrNilCollider)

	_, err = NewBody(newTestBox(t, vect.Vect{}, vect.Vect{1, 1}), 0)
	assert.ErrorIs(t, err, ErrNotCircle)
}

func TestNewBody(t *testing.T) {
	body := newTestBody(t, vect.Vect{1, 2}, 0.5, -3)

	assert.Equal(t, vect.Float(0), body.Drag)
	assert.True(t, body.Enabled)
	assert.Same(t, body, body.Collider().Body)
	assert.Equal(t, vect.Float(0.5), body.Radius())
	assert.Equal(t, vect.Vect{1, 2}, body.Position())
}

func TestApplyImpulse(t *testing.T) {
	body := newTestBody(t, vect.Vect{}, 1, 0)

	body.ApplyImpulse(vect.Vect{math.Pi, 0})
	assert.InDelta(t, 1, float64(body.Velocity().X), delta)
	assert.InDelta(t, 1, float64(body.Speed()), delta)

	body.Stop()
	assert.Equal(t, vect.Vector_Zero, body.Velocity())
	assert.True(t, body.Sleeping(0.05))
}

func TestZeroInvMassIgnoresImpulse(t *testing.T) {
	body := newTestBody(t, vect.Vect{}, 1, 0)
	body.Collider().Material = NewMaterial(0, 1)

	body.ApplyImpulse(vect.Vect{100, -50})
	assert.Equal(t, vect.Vector_Zero, body.Velocity())
}

type integrateTest struct {
	drag, dt vect.Float
	v        vect.Vect
	pos      vect.Vect
}

var integrateTests = []integrateTest{
	{0, 0.5, vect.Vect{1, 0}, vect.Vect{0.5, 0}},
	{1, 0.5, vect.Vect{0.5, 0}, vect.Vect{0.25, 0}},
	{0, 0.25, vect.Vect{1, 0}, vect.Vect{0.25, 0}},
	// drag*dt above one stops the body instead of reversing it
	{10, 1, vect.Vect{0, 0}, vect.Vect{0, 0}},
}

func TestUpdatePosition(t *testing.T) {
	for _, it := range integrateTests {
		body := newTestBody(t, vect.Vect{}, 1, it.drag)
		body.SetVelocity(vect.Vect{1, 0})

		body.UpdatePosition(it.dt)

		assert.Equal(t, it.v, body.Velocity(), "drag %v dt %v", it.drag, it.dt)
		assert.Equal(t, it.pos, body.Position(), "drag %v dt %v", it.drag, it.dt)
	}
}

func TestRollingRotation(t *testing.T) {
	body := newTestBody(t, vect.Vect{}, 1, 0)
	body.SetVelocity(vect.Vect{1, 0})

	body.UpdatePosition(0.02)

	w := body.AngularVelocity()
	assert.Equal(t, vect.Float(0), w.X)
	assert.Equal(t, vect.Float(0), w.Z)
	assert.InDelta(t, -1/(2*math.Pi), float64(w.Y), delta)

	rot := body.Collider().Transform.Rotation
	assert.InDelta(t, 360-1/(2*math.Pi), float64(rot.Y), 1e-3)
}

func TestResolveRestitution(t *testing.T) {
	for _, e := range []vect.Float{0, 0.5, 0.8, 1} {
		a := newTestBody(t, vect.Vect{0, 0}, 1, 0)
		b := newTestBody(t, vect.Vect{1.2, 0.5}, 0.5, 0)
		a.Collider().Material = NewMaterial(1, e)
		b.Collider().Material = NewMaterial(2, 1)
		a.SetVelocity(vect.Vect{2, 1})
		b.SetVelocity(vect.Vect{-1, 0})

		contact, touching, err := Collide(a.Collider(), b.Collider())
		require.NoError(t, err)
		require.True(t, touching)

		before := vect.Dot(vect.Sub(b.Velocity(), a.Velocity()), contact.Normal)
		require.True(t, a.resolveContact(contact, DefaultSlop))
		after := vect.Dot(vect.Sub(b.Velocity(), a.Velocity()), contact.Normal)

		assert.InDelta(t, float64(-e*before), float64(after), 1e-3, "elasticity %v", e)

		// a now sits just outside b
		gap := vect.Dist(a.Position(), b.Position()) - 1.5
		assert.InDelta(t, float64(DefaultSlop), float64(gap), 1e-4)
	}
}

func TestResolveAgainstImmovable(t *testing.T) {
	wall := newTestBody(t, vect.Vect{1.5, 0}, 1, 0)
	wall.Collider().Material = NewMaterial(0, 1)

	ball := newTestBody(t, vect.Vect{}, 1, 0)
	ball.Collider().Material = NewMaterial(1, 1)
	ball.SetVelocity(vect.Vect{1, 0})

	contact, touching, err := Collide(ball.Collider(), wall.Collider())
	require.NoError(t, err)
	require.True(t, touching)
	require.True(t, ball.resolveContact(contact, DefaultSlop))

	assert.Equal(t, vect.Vector_Zero, wall.Velocity())
	assert.InDelta(t, -1, float64(ball.Velocity().X), delta)
}

func TestResolveSkipsZeroMassPair(t *testing.T) {
	a := newTestBody(t, vect.Vect{}, 1, 0)
	b := newTestBody(t, vect.Vect{1, 0}, 1, 0)
	a.Collider().Material = NewMaterial(0, 1)
	b.Collider().Material = NewMaterial(0, 1)
	a.SetVelocity(vect.Vect{1, 0})

	contact, touching, err := Collide(a.Collider(), b.Collider())
	require.NoError(t, err)
	require.True(t, touching)

	assert.False(t, a.resolveContact(contact, DefaultSlop))
	assert.Equal(t, vect.Vect{1, 0}, a.Velocity())
}

func TestResolveIgnoresTriggers(t *testing.T) {
	ball := newTestBody(t, vect.Vect{}, 1, 0)
	ball.SetVelocity(vect.Vect{1, 0})

	trigger := newTestCircle(t, vect.Vect{0.5, 0}, 1)
	trigger.IsTrigger = true

	contact, touching, err := Collide(ball.Collider(), trigger)
	require.NoError(t, err)
	require.True(t, touching)

	assert.True(t, ball.resolveContact(contact, DefaultSlop))
	assert.Equal(t, vect.Vect{1, 0}, ball.Velocity())
	assert.Equal(t, vect.Vect{}, ball.Position())
}
