package voronoi

import "container/heap"

// eventKind discriminates the two sweep event types.
type eventKind int

const (
	// siteEvent inserts the arc of a new site; faceID names the site.
	siteEvent eventKind = iota

	// circleEvent removes a converging arc; arcID names it.
	circleEvent
)

// event is a scheduled sweep step. Events are ordered by descending
// priority (the sweepline moves from high y toward low y) with the
// smaller id winning ties, which makes the pop order total and the
// sweep deterministic.
type event struct {
	id       int
	priority float64
	kind     eventKind
	faceID   int
	arcID    int
}

// eventQueue is a max-heap of events driven through container/heap,
// the same lazy-invalidation priority-queue shape Dijkstra uses: stale
// circle events stay in the heap and are discarded on pop.
type eventQueue []*event

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority > q[j].priority
	}

	return q[i].id < q[j].id
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push appends x; use heap.Push, never call directly.
func (q *eventQueue) Push(x any) { *q = append(*q, x.(*event)) }

// Pop removes the last element; use heap.Pop, never call directly.
func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	ev := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]

	return ev
}

// pushEvent schedules an event and returns its id. Ids increase
// monotonically across the whole build, so they double as insertion
// order for the deterministic tiebreak.
func (b *Builder) pushEvent(ev *event) int {
	ev.id = b.eventSeq
	b.eventSeq++
	heap.Push(&b.events, ev)

	return ev.id
}

// popEvent removes and returns the highest-priority event.
func (b *Builder) popEvent() *event {
	return heap.Pop(&b.events).(*event)
}
