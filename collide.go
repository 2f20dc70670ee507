package poolphysics

import (
	"fmt"

	"github.com/greigoat/Pool-Physics-2D/vect"
)

type collisionHandler func(sA, sB *Collider) (ContactPoint, bool)

// Rows are the testing side. Boxes never test.
var collisionHandlers = [numShapes][numShapes]collisionHandler{
	ShapeType_Circle: {
		ShapeType_Circle: circle2circle,
		ShapeType_Box:    circle2box,
	},
	ShapeType_Box: {
		ShapeType_Circle: nil,
		ShapeType_Box:    nil,
	},
}

// Collide runs the narrow phase test of a against b.
// The returned contact belongs to a: its normal points from b toward a.
// Testing a collider against itself or against a destroyed collider reports no contact.
// Pairs without a test, box initiated and box-box, return ErrUnsupportedPair.
func Collide(a, b *Collider) (ContactPoint, bool, error) {
	if a == nil || b == nil || a == b || a.destroyed || b.destroyed {
		return ContactPoint{}, false, nil
	}

	stA := a.ShapeType()
	stB := b.ShapeType()

	handler := collisionHandlers[stA][stB]
	if handler == nil {
		return ContactPoint{}, false, fmt.Errorf("%v against %v: %w", stA, stB, ErrUnsupportedPair)
	}

	contact, ok := handler(a, b)
	return contact, ok, nil
}

//START COLLISION HANDLERS
func circle2circle(sA, sB *Collider) (ContactPoint, bool) {
	csA := sA.GetAsCircle()
	csB := sB.GetAsCircle()

	return circle2circleQuery(sA, sB, sA.Center(), sB.Center(), csA.Radius, csB.Radius)
}

func circle2box(sA, sB *Collider) (ContactPoint, bool) {
	circle := sA.GetAsCircle()

	return circle2boxQuery(sA, sB, sA.Center(), circle.Radius, sB.BB)
}

//END COLLISION HANDLERS

func circle2circleQuery(a, b *Collider, p1, p2 vect.Vect, r1, r2 vect.Float) (ContactPoint, bool) {
	delta := vect.Sub(p1, p2)
	dist := delta.Length()

	if dist >= r1+r2 {
		return ContactPoint{}, false
	}

	norm := vect.Vector_Right
	if dist != 0.0 {
		norm = vect.Mult(delta, 1.0/dist)
	}

	pos := vect.Add(p2, vect.Mult(norm, r2))

	return NewContactPoint(a, norm, b, pos), true
}

// Finds the point of bb closest to the circle center by sorting the center into one of the
// nine regions around the box. A center strictly inside the box has no such point.
func circle2boxQuery(a, b *Collider, c vect.Vect, r vect.Float, bb AABB) (ContactPoint, bool) {
	closest, ok := closestBoundaryPoint(c, bb)
	if !ok {
		return ContactPoint{}, false
	}

	delta := vect.Sub(c, closest)
	dist := delta.Length()
	if dist > r || dist == 0 {
		return ContactPoint{}, false
	}

	return NewContactPoint(a, vect.Mult(delta, 1.0/dist), b, closest), true
}

func closestBoundaryPoint(c vect.Vect, bb AABB) (vect.Vect, bool) {
	xMin, yMin := bb.Lower.X, bb.Lower.Y
	xMax, yMax := bb.Upper.X, bb.Upper.Y

	inX := c.X >= xMin && c.X <= xMax
	inY := c.Y >= yMin && c.Y <= yMax

	switch {
	// top left corner
	case c.Y >= yMax && c.X <= xMin:
		return vect.Vect{xMin, yMax}, true
	// top right corner
	case c.Y >= yMax && c.X >= xMax:
		return bb.Upper, true
	// bottom left corner
	case c.Y <= yMin && c.X <= xMin:
		return bb.Lower, true
	// bottom right corner
	case c.Y <= yMin && c.X >= xMax:
		return vect.Vect{xMax, yMin}, true
	// right
	case c.X > xMax && inY:
		return vect.Vect{xMax, c.Y}, true
	// left
	case c.X < xMin && inY:
		return vect.Vect{xMin, c.Y}, true
	// top
	case c.Y > yMax && inX:
		return vect.Vect{c.X, yMax}, true
	// bottom
	case c.Y < yMin && inX:
		return vect.Vect{c.X, yMin}, true
	}

	// inside, or on an edge between its corners
	return vect.Vect{}, false
}
