package poolphysics

type arbiterState int

const (
	// not touching
	arbiterStateSeparated arbiterState = iota
	// touching since this frame
	arbiterStateEntering
	// touching since an earlier frame
	arbiterStateContinuing
)

func (state arbiterState) String() string {
	switch state {
	case arbiterStateSeparated:
		return "separated"
	case arbiterStateEntering:
		return "entering"
	case arbiterStateContinuing:
		return "continuing"
	default:
		return "unknown"
	}
}

// Arbiter tracks the contact state of one ordered collider pair across frames.
// ColliderA is the side that runs the test and receives the notifications.
type Arbiter struct {
	ColliderA, ColliderB *Collider
	// Most recent contact of this pair.
	Contact ContactPoint

	state arbiterState
	stamp uint64
}

func newArbiter(a, b *Collider) *Arbiter {
	return &Arbiter{ColliderA: a, ColliderB: b}
}

// Touching reports whether the pair touched on the last frame it was tested.
func (arb *Arbiter) Touching() bool {
	return arb.state != arbiterStateSeparated
}

// IsFirstContact reports whether the pair started touching on the last tested frame.
func (arb *Arbiter) IsFirstContact() bool {
	return arb.state == arbiterStateEntering
}

// Moves the state machine with this frame's test result.
// Returns the events to deliver, in order.
func (arb *Arbiter) update(contact ContactPoint, touching bool, stamp uint64) []CollisionEvent {
	arb.stamp = stamp

	if !touching {
		if arb.state == arbiterStateSeparated {
			return nil
		}
		arb.state = arbiterStateSeparated
		return []CollisionEvent{CollisionEnd}
	}

	arb.Contact = contact
	if arb.state == arbiterStateSeparated {
		arb.state = arbiterStateEntering
		return []CollisionEvent{CollisionBegin, CollisionRemain}
	}
	arb.state = arbiterStateContinuing
	return []CollisionEvent{CollisionRemain}
}

// Step stamp of the last frame the pair was tested.
func (arb *Arbiter) Stamp() uint64 {
	return arb.stamp
}
