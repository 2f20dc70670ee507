package poolphysics

import (
	"testing"

	"github.com/greigoat/Pool-Physics-2D/vect"
	"github.com/stretchr/testify/assert"
)

type overlapTest struct {
	a, b AABB
	out  bool
}

var overlapTests = []overlapTest{
	{NewAABB(0, 0, 1, 1), NewAABB(0.5, 0.5, 2, 2), true},
	{NewAABB(0, 0, 1, 1), NewAABB(1, 0, 2, 1), true},
	{NewAABB(0, 0, 1, 1), NewAABB(1.5, 0, 2, 1), false},
	{NewAABB(0, 0, 1, 1), NewAABB(0, -3, 1, -1), false},
	{NewAABB(-5, -5, 5, 5), NewAABB(-1, -1, 1, 1), true},
}

func TestAABBOverlap(t *testing.T) {
	for _, ot := range overlapTests {
		assert.Equal(t, ot.out, TestOverlap(ot.a, ot.b), "TestOverlap(%v, %v)", ot.a, ot.b)
		assert.Equal(t, ot.out, TestOverlap(ot.b, ot.a), "TestOverlap(%v, %v)", ot.b, ot.a)
	}
}

func TestAABBCenterSize(t *testing.T) {
	bb := NewAABBCenterSize(vect.Vect{8.5, 0}, vect.Vect{1, 2})
	assert.Equal(t, vect.Vect{8, -1}, bb.Lower)
	assert.Equal(t, vect.Vect{9, 1}, bb.Upper)
	assert.Equal(t, vect.Vect{8.5, 0}, bb.Center())
	assert.Equal(t, vect.Vect{1, 2}, bb.Size())
	assert.Equal(t, vect.Vect{0.5, 1}, bb.Extents())
	assert.Equal(t, vect.Float(2), bb.Area())
	assert.True(t, bb.Valid())

	flipped := NewAABBCenterSize(vect.Vect{}, vect.Vect{-2, -2})
	assert.True(t, flipped.Valid())
	assert.Equal(t, vect.Vect{-1, -1}, flipped.Lower)
}

func TestAABBContains(t *testing.T) {
	bb := NewAABB(-1, -1, 1, 1)

	assert.True(t, bb.Contains(NewAABB(-0.5, -0.5, 0.5, 0.5)))
	assert.False(t, bb.Contains(NewAABB(-0.5, -0.5, 1.5, 0.5)))

	assert.True(t, bb.ContainsVect(vect.Vect{1, 0}))
	assert.False(t, bb.ContainsVectStrict(vect.Vect{1, 0}))
	assert.True(t, bb.ContainsVectStrict(vect.Vect{0.5, 0}))
	assert.False(t, bb.ContainsVect(vect.Vect{1.1, 0}))
}

func TestAABBCorners(t *testing.T) {
	bb := NewAABB(8, -1, 9, 1)
	assert.Equal(t, Vertices{{8, 1}, {9, 1}, {9, -1}, {8, -1}}, bb.Corners())
}
