package table

import (
	"fmt"

	poolphysics "github.com/greigoat/Pool-Physics-2D"
	"github.com/greigoat/Pool-Physics-2D/transform"
	"github.com/greigoat/Pool-Physics-2D/vect"
)

// CueTag marks the cue ball. A pocketed cue ball is put back instead of removed.
const CueTag = "cue"

// DefaultCueSpawn is where a pocketed cue ball is put back.
var DefaultCueSpawn = vect.Vect{9.06, 0.07}

// Pocket is a trigger circle that swallows the balls whose center enters it.
type Pocket struct {
	Collider *poolphysics.Collider

	/// Where a pocketed cue ball goes.
	CueSpawn vect.Vect

	/// Called after a ball was consumed, the cue ball included.
	Pocketed func(pocket *Pocket, ball *poolphysics.Collider)

	/// Tags of the consumed balls, in order.
	Tags []string

	handler poolphysics.HandlerID
}

// NewPocket adds a trigger circle of the given radius at pos to space.
func NewPocket(space *poolphysics.Space, pos vect.Vect, radius vect.Float) (*Pocket, error) {
	collider, err := poolphysics.NewCircle(transform.NewTransform(pos), radius)
	if err != nil {
		return nil, fmt.Errorf("pocket at %v: %w", pos, err)
	}
	collider.IsTrigger = true
	collider.Tag = "pocket"

	pocket := &Pocket{
		Collider: collider,
		CueSpawn: DefaultCueSpawn,
	}
	collider.UserData = pocket
	pocket.handler = collider.OnCollisionRemain(pocket.consume)
	space.AddCollider(collider)
	return pocket, nil
}

func (pocket *Pocket) Position() vect.Vect {
	return pocket.Collider.Position()
}

func (pocket *Pocket) Radius() vect.Float {
	return pocket.Collider.GetAsCircle().Radius
}

func (pocket *Pocket) consume(contact poolphysics.ContactPoint) {
	ball := contact.OtherCollider
	if ball.Body == nil || ball.Destroyed() {
		return
	}
	if vect.Dist(pocket.Position(), ball.Position()) >= pocket.Radius() {
		return
	}

	if ball.Tag == CueTag {
		// already put back on a spawn that lies inside this pocket
		if ball.Position() == pocket.CueSpawn && ball.Body.Velocity() == vect.Vector_Zero {
			return
		}
		ball.Transform.Position = pocket.CueSpawn
		ball.Body.Stop()
	} else {
		ball.Destroy()
	}

	pocket.Tags = append(pocket.Tags, ball.Tag)
	if pocket.Pocketed != nil {
		pocket.Pocketed(pocket, ball)
	}
}

// Close stops the pocket from consuming and removes its trigger from the space.
func (pocket *Pocket) Close() {
	pocket.Collider.Unsubscribe(pocket.handler)
	pocket.Collider.Destroy()
}
