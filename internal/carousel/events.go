package carousel

// Control identifies which rendered control triggered a navigation.
type Control int

const (
	ControlPrev Control = iota
	ControlNext
	ControlSlide
)

func (c Control) String() string {
	switch c {
	case ControlPrev:
		return "prev"
	case ControlNext:
		return "next"
	case ControlSlide:
		return "slide"
	default:
		return "unknown"
	}
}

// Event is emitted whenever navigation changes the anchor index.
type Event struct {
	Control Control
	// Origin is the input that caused the move (a key or mouse message).
	Origin any
	// From and To are the raw anchor indexes before and after the move.
	From int
	To   int
}

// UpdateEvent is emitted once a move has been laid out, listing the items
// that ended up fully visible.
type UpdateEvent struct {
	VisibleIndexes []int
}

// Listener receives navigation events.
type Listener func(Event)

// Listeners is a synchronous fan-out of navigation events. It is owned by a
// single carousel and is not safe for concurrent use.
type Listeners struct {
	next int
	subs map[int]Listener
	// order keeps delivery in subscription order.
	order []int
}

// Subscribe registers fn and returns a function that removes it again.
func (l *Listeners) Subscribe(fn Listener) (unsubscribe func()) {
	if l.subs == nil {
		l.subs = make(map[int]Listener)
	}
	id := l.next
	l.next++
	l.subs[id] = fn
	l.order = append(l.order, id)

	return func() {
		if _, ok := l.subs[id]; !ok {
			return
		}
		delete(l.subs, id)
		for i, v := range l.order {
			if v == id {
				l.order = append(l.order[:i], l.order[i+1:]...)
				break
			}
		}
	}
}

// Emit delivers ev to every subscriber.
func (l *Listeners) Emit(ev Event) {
	for _, id := range append([]int(nil), l.order...) {
		if fn, ok := l.subs[id]; ok {
			fn(ev)
		}
	}
}

// Len returns the number of subscribers.
func (l *Listeners) Len() int { return len(l.subs) }
