package poolphysics

import (
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/greigoat/Pool-Physics-2D/vect"
)

const (
	DefaultFixedDelta    = vect.Float(0.02)
	DefaultMaxFixedSteps = 8
	DefaultSlop          = vect.Float(0.001)
)

// Space owns every live collider and body and runs the frame loop.
// A Space is not safe for concurrent use.
type Space struct {
	/// Length of one integration step, in seconds.
	FixedDelta vect.Float

	/// Upper bound of fixed steps run by a single Update.
	/// Time left over beyond it is dropped.
	MaxFixedSteps int

	/// Gap left between a resolved body and the surface it touched.
	Slop vect.Float

	Logger *log.Logger

	colliders   []*Collider
	bodies      []*Body
	deleteQueue []*Collider
	arbiters    map[HashPair]*Arbiter
	stamp       uint64
	accumulator vect.Float
	elapsed     vect.Float

	StepTime time.Duration
}

func NewSpace() (space *Space) {
	space = &Space{}
	space.FixedDelta = DefaultFixedDelta
	space.MaxFixedSteps = DefaultMaxFixedSteps
	space.Slop = DefaultSlop
	space.Logger = log.Default()

	space.colliders = make([]*Collider, 0)
	space.bodies = make([]*Body, 0)
	space.deleteQueue = make([]*Collider, 0)
	space.arbiters = make(map[HashPair]*Arbiter)
	return
}

// Registers a collider. It takes part in tests from the next Step on.
func (space *Space) AddCollider(collider *Collider) *Collider {
	if collider.space != nil {
		space.Logger.Warn("collider already belongs to a space", "collider", collider.Hash())
		return collider
	}

	collider.space = space
	collider.destroyed = false
	collider.Update()
	space.colliders = append(space.colliders, collider)

	if collider.Body != nil {
		space.addBody(collider.Body)
	}
	return collider
}

// Registers a body together with its collider.
func (space *Space) AddBody(body *Body) *Body {
	if body.collider.space == space {
		space.addBody(body)
		return body
	}
	space.AddCollider(body.collider)
	return body
}

func (space *Space) addBody(body *Body) {
	for _, b := range space.bodies {
		if b == body {
			return
		}
	}
	space.bodies = append(space.bodies, body)
}

// Marks the collider destroyed; it is skipped by every later test.
// Its body and contacts are dropped at the end of the current frame.
func (space *Space) RemoveCollider(collider *Collider) {
	if collider == nil || collider.space != space || collider.destroyed {
		return
	}
	collider.destroyed = true
	space.deleteQueue = append(space.deleteQueue, collider)
}

func (space *Space) RemoveBody(body *Body) {
	if body == nil {
		return
	}
	space.RemoveCollider(body.collider)
}

// Step runs the per frame collision pass: every live circle collider is tested against
// every other live collider and the resulting lifecycle events are delivered.
func (space *Space) Step(dt vect.Float) {
	stepStart := time.Now()

	space.stamp++
	space.elapsed += dt
	space.flushRemovals()

	for _, collider := range space.colliders {
		collider.Update()
	}

	snapshot := make([]*Collider, len(space.colliders))
	copy(snapshot, space.colliders)

	for _, target := range snapshot {
		for _, tester := range snapshot {
			if tester == target || tester.ShapeType() != ShapeType_Circle {
				continue
			}
			space.collidePair(tester, target)
		}
	}

	space.flushRemovals()
	space.StepTime = time.Since(stepStart)
}

// FixedStep integrates every enabled body by dt.
func (space *Space) FixedStep(dt vect.Float) {
	for _, body := range space.bodies {
		if body.Enabled && !body.collider.destroyed {
			body.UpdatePosition(dt)
		}
	}
}

// Update advances the simulation by one rendered frame of length frameDt:
// as many fixed steps as the accumulated time allows, then one collision Step.
func (space *Space) Update(frameDt vect.Float) {
	space.accumulator += frameDt

	steps := 0
	for space.accumulator >= space.FixedDelta && space.FixedDelta > 0 {
		if steps == space.MaxFixedSteps {
			space.accumulator = 0
			break
		}
		space.FixedStep(space.FixedDelta)
		space.accumulator -= space.FixedDelta
		steps++
	}

	space.Step(frameDt)
}

func (space *Space) collidePair(a, b *Collider) {
	if a.destroyed || b.destroyed {
		return
	}

	contact, touching, err := Collide(a, b)
	if err != nil {
		space.Logger.Debug("skipping pair", "err", err)
		return
	}

	key := newPair(a, b)
	arb, exist := space.arbiters[key]
	if !exist {
		if !touching {
			return
		}
		arb = newArbiter(a, b)
		space.arbiters[key] = arb
	}

	for _, event := range arb.update(contact, touching, space.stamp) {
		if event == CollisionEnd {
			a.handlers.fire(CollisionEnd, arb.Contact)
			delete(space.arbiters, key)
			continue
		}
		// a handler removed one side; its end comes from the removal
		if a.destroyed || b.destroyed {
			break
		}
		if event == CollisionRemain && a.Body.active() && !a.destroyed {
			if !a.Body.resolveContact(contact, space.Slop) {
				space.Logger.Warn("unsolvable contact", "a", a.Hash(), "b", b.Hash())
			}
		}
		a.handlers.fire(event, contact)
	}
}

// Drops queued colliders. Contacts whose partner disappears end for the survivor.
func (space *Space) flushRemovals() {
	for len(space.deleteQueue) > 0 {
		queue := space.deleteQueue
		space.deleteQueue = make([]*Collider, 0)

		for _, collider := range queue {
			space.removeCollider(collider)
		}
	}
}

func (space *Space) removeCollider(collider *Collider) {
	for i, c := range space.colliders {
		if c == collider {
			space.colliders = append(space.colliders[:i], space.colliders[i+1:]...)
			break
		}
	}
	if body := collider.Body; body != nil {
		for i, b := range space.bodies {
			if b == body {
				space.bodies = append(space.bodies[:i], space.bodies[i+1:]...)
				break
			}
		}
	}

	for _, arb := range space.orderedArbiters() {
		key := newPair(arb.ColliderA, arb.ColliderB)
		if !key.involves(collider) {
			continue
		}
		delete(space.arbiters, key)
		if arb.ColliderA != collider && arb.Touching() && !arb.ColliderA.destroyed {
			arb.state = arbiterStateSeparated
			arb.ColliderA.handlers.fire(CollisionEnd, arb.Contact)
		}
	}

	collider.space = nil
	space.Logger.Debug("collider removed", "collider", collider.Hash(), "tag", collider.Tag)
}

// arbiters sorted by tester then partner identity, for deterministic iteration.
func (space *Space) orderedArbiters() []*Arbiter {
	arbs := make([]*Arbiter, 0, len(space.arbiters))
	for _, arb := range space.arbiters {
		arbs = append(arbs, arb)
	}
	sort.Slice(arbs, func(i, j int) bool {
		ai, aj := arbs[i].ColliderA.Hash(), arbs[j].ColliderA.Hash()
		if ai != aj {
			return ai < aj
		}
		return arbs[i].ColliderB.Hash() < arbs[j].ColliderB.Hash()
	})
	return arbs
}

// Colliders returns the live colliders in insertion order.
func (space *Space) Colliders() []*Collider {
	out := make([]*Collider, 0, len(space.colliders))
	for _, c := range space.colliders {
		if !c.destroyed {
			out = append(out, c)
		}
	}
	return out
}

// Bodies returns the live bodies in insertion order.
func (space *Space) Bodies() []*Body {
	out := make([]*Body, 0, len(space.bodies))
	for _, b := range space.bodies {
		if !b.collider.destroyed {
			out = append(out, b)
		}
	}
	return out
}

// Contacts returns every touching contact of the last Step.
func (space *Space) Contacts() []ContactPoint {
	var contacts []ContactPoint
	for _, arb := range space.orderedArbiters() {
		if arb.Touching() {
			contacts = append(contacts, arb.Contact)
		}
	}
	return contacts
}

// Query calls fnc for every live collider whose bounds overlap bb.
func (space *Space) Query(bb AABB, fnc func(collider *Collider)) {
	for _, c := range space.Colliders() {
		if TestOverlap(bb, c.AABB()) {
			fnc(c)
		}
	}
}

// Number of Steps run so far.
func (space *Space) Stamp() uint64 {
	return space.stamp
}

// Sum of the dt passed to Step.
func (space *Space) Elapsed() vect.Float {
	return space.elapsed
}

// Sleeping reports whether every live body moves slower than threshold.
func (space *Space) Sleeping(threshold vect.Float) bool {
	for _, body := range space.Bodies() {
		if body.Enabled && !body.Sleeping(threshold) {
			return false
		}
	}
	return true
}

func (space *Space) Destroy() {
	for _, c := range space.colliders {
		c.space = nil
	}
	space.colliders = nil
	space.bodies = nil
	space.deleteQueue = nil
	space.arbiters = nil
}
