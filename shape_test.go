package poolphysics

import (
	"math"
	"testing"

	"github.com/greigoat/Pool-Physics-2D/transform"
	"github.com/greigoat/Pool-Physics-2D/vect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-4

func newTestCircle(t *testing.T, pos vect.Vect, radius vect.Float) *Collider {
	t.Helper()
	c, err := NewCircle(transform.NewTransform(pos), radius)
	require.NoError(t, err)
	return c
}

func newTestBox(t *testing.T, pos, size vect.Vect) *Collider {
	t.Helper()
	c, err := NewBox(transform.NewTransform(pos), size)
	require.NoError(t, err)
	return c
}

func TestNewCircleRejectsRadius(t *testing.T) {
	for _, r := range []vect.Float{0, -1, vect.Float(math.NaN())} {
		_, err := NewCircle(nil, r)
		assert.ErrorIs(t, err, ErrInvalidRadius, "radius %v", r)
	}
}

func TestNewBoxRejectsSize(t *testing.T) {
	for _, size := range []vect.Vect{{0, 1}, {1, 0}, {-1, 2}} {
		_, err := NewBox(nil, size)
		assert.ErrorIs(t, err, ErrInvalidSize, "size %v", size)
	}
}

func TestNilTransformIsIdentity(t *testing.T) {
	c, err := NewCircle(nil, 0.5)
	require.NoError(t, err)
	require.NotNil(t, c.Transform)
	assert.Equal(t, vect.Vector_Zero, c.Position())
	assert.Equal(t, vect.Vector_One, c.Transform.Scale)
}

func TestCircleMassAndInertia(t *testing.T) {
	c := newTestCircle(t, vect.Vect{}, 1)

	assert.InDelta(t, math.Pi, float64(c.Volume()), delta)
	assert.InDelta(t, math.Pi, float64(c.Mass()), delta)
	assert.InDelta(t, 1/math.Pi, float64(c.InvMass()), delta)
	assert.InDelta(t, 2*math.Pi, float64(c.Inertia()), delta)
	assert.InDelta(t, 1/(2*math.Pi), float64(c.InvInertia()), delta)
}

func TestCircleDensityAppliedTwice(t *testing.T) {
	c := newTestCircle(t, vect.Vect{}, 1)
	c.Material = NewMaterial(2, 0.5)

	assert.InDelta(t, 2*math.Pi, float64(c.Volume()), delta)
	assert.InDelta(t, 4*math.Pi, float64(c.Mass()), delta)
	assert.InDelta(t, 8*math.Pi, float64(c.Inertia()), delta)
}

func TestZeroDensityIsImmovable(t *testing.T) {
	c := newTestCircle(t, vect.Vect{}, 1)
	c.Material = NewMaterial(0, 1)

	assert.Equal(t, vect.Float(0), c.Mass())
	assert.Equal(t, vect.Float(0), c.InvMass())
	assert.Equal(t, vect.Float(0), c.InvInertia())
}

func TestBoxVolumeFollowsPosition(t *testing.T) {
	box := newTestBox(t, vect.Vect{}, vect.Vect{2, 2})
	assert.Equal(t, vect.Float(1), box.Volume())

	box.Transform.Position = vect.Vect{8.5, 0}
	box.Update()
	assert.Equal(t, vect.Float(9), box.Volume())
	assert.Equal(t, vect.Float(9), box.Mass())
}

func TestBoxInertiaIsSigned(t *testing.T) {
	box := newTestBox(t, vect.Vect{}, vect.Vect{2, 2})
	assert.InDelta(t, -8.0/3.0, float64(box.Inertia()), delta)
	assert.InDelta(t, -3.0/8.0, float64(box.InvInertia()), delta)

	box.Material = NewMaterial(2, 0.8)
	assert.InDelta(t, -16.0/3.0, float64(box.Inertia()), delta)
}

func TestScaleOnlyAffectsBounds(t *testing.T) {
	c, err := NewCircle(transform.NewTransformScaled(vect.Vect{}, vect.Vect{2, 3}), 1)
	require.NoError(t, err)

	assert.Equal(t, vect.Vect{4, 6}, c.BB.Size())
	assert.InDelta(t, math.Pi, float64(c.Volume()), delta)
}

func TestOffsetMovesCenter(t *testing.T) {
	c := newTestCircle(t, vect.Vect{1, 1}, 0.5)
	c.Offset = vect.Vect{0, 2}
	c.Update()

	assert.Equal(t, vect.Vect{1, 3}, c.Center())
	assert.Equal(t, vect.Vect{1, 1}, c.Position())
	assert.Equal(t, vect.Vect{1, 3}, c.BB.Center())
}

func TestTestPoint(t *testing.T) {
	c := newTestCircle(t, vect.Vect{}, 1)
	assert.True(t, c.GetAsCircle().TestPoint(vect.Vect{0.5, 0.5}))
	assert.False(t, c.GetAsCircle().TestPoint(vect.Vect{1, 1}))
	assert.Nil(t, c.GetAsBox())

	box := newTestBox(t, vect.Vect{}, vect.Vect{2, 2})
	assert.True(t, box.GetAsBox().TestPoint(vect.Vect{1, 1}))
	assert.False(t, box.GetAsBox().TestPoint(vect.Vect{1.5, 0}))
	assert.Nil(t, box.GetAsCircle())
}

func TestCombinedElasticity(t *testing.T) {
	soft := NewMaterial(1, 0.2)
	hard := NewMaterial(1, 0.9)

	assert.Equal(t, vect.Float(0.2), combinedElasticity(soft, hard))
	assert.Equal(t, vect.Float(0.2), combinedElasticity(hard, soft))
	assert.Equal(t, vect.Float(0.9), combinedElasticity(nil, hard))
	assert.Equal(t, vect.Float(0.2), combinedElasticity(soft, nil))
	assert.Equal(t, DefaultElasticity, combinedElasticity(nil, nil))
}
