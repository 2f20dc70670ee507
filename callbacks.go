package poolphysics

// CollisionFunc receives a contact initiated by the collider it is subscribed to.
type CollisionFunc func(contact ContactPoint)

type HandlerID uint64

type CollisionEvent int

const (
	CollisionBegin CollisionEvent = iota
	CollisionRemain
	CollisionEnd
)

func (ev CollisionEvent) String() string {
	switch ev {
	case CollisionBegin:
		return "begin"
	case CollisionRemain:
		return "remain"
	case CollisionEnd:
		return "end"
	default:
		return "unknown"
	}
}

type handlerEntry struct {
	id    HandlerID
	event CollisionEvent
	fnc   CollisionFunc
}

type handlerList struct {
	next    HandlerID
	entries []handlerEntry
}

func (list *handlerList) add(event CollisionEvent, fnc CollisionFunc) HandlerID {
	list.next++
	list.entries = append(list.entries, handlerEntry{list.next, event, fnc})
	return list.next
}

func (list *handlerList) remove(id HandlerID) bool {
	for i, entry := range list.entries {
		if entry.id == id {
			list.entries = append(list.entries[:i:i], list.entries[i+1:]...)
			return true
		}
	}
	return false
}

// calls every handler registered for event, in subscription order.
// Handlers added or removed while firing take effect on the next call.
func (list *handlerList) fire(event CollisionEvent, contact ContactPoint) {
	entries := list.entries
	for _, entry := range entries {
		if entry.event == event {
			entry.fnc(contact)
		}
	}
}

// OnCollisionBegin registers fnc for the first frame of every contact this collider initiates.
func (collider *Collider) OnCollisionBegin(fnc CollisionFunc) HandlerID {
	return collider.handlers.add(CollisionBegin, fnc)
}

// OnCollisionRemain registers fnc for every frame a contact lasts, the first one included.
func (collider *Collider) OnCollisionRemain(fnc CollisionFunc) HandlerID {
	return collider.handlers.add(CollisionRemain, fnc)
}

// OnCollisionEnd registers fnc for the first frame after a contact separates.
func (collider *Collider) OnCollisionEnd(fnc CollisionFunc) HandlerID {
	return collider.handlers.add(CollisionEnd, fnc)
}

// Unsubscribe removes a handler. It returns false if id is unknown.
func (collider *Collider) Unsubscribe(id HandlerID) bool {
	return collider.handlers.remove(id)
}
