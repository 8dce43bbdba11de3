package sweep

import (
	"fmt"
	"strings"

	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/geoarc/sweep/numeric"
	"github.com/geoarc/sweep/options"
	"github.com/geoarc/sweep/point"
	"github.com/geoarc/sweep/segment"
)

// eventQueue is the monotone priority queue driving the sweep: event points ordered by sweep
// order (increasing x, ties broken by increasing y), each carrying U(p), the normalized
// segments whose first-met endpoint is p. Backed by a red-black tree rather than a binary
// heap so that duplicate pushes of the same point are idempotent merges into U(p) instead of
// separate entries, without a separate membership check.
//
// The comparator treats epsilon-equal coordinates as ties. Endpoints of distinct monotone
// pieces that coincide geometrically can differ in their last bits (an arc endpoint at
// radian 2π computes as sin(2π) rather than an exact 0), and the queue must fold those into
// a single event for the U/L/C accounting to see them together.
type eventQueue struct {
	tree *rbt.Tree
}

func newEventQueue(opts ...options.GeometryOptionsFunc) *eventQueue {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	return &eventQueue{tree: rbt.NewWith(eventQueueComparator(geoOpts.Epsilon))}
}

func eventQueueComparator(epsilon float64) func(a, b interface{}) int {
	return func(a, b interface{}) int {
		p := a.(point.Point)
		q := b.(point.Point)
		if !numeric.FloatEquals(p.X(), q.X(), epsilon) {
			if p.X() < q.X() {
				return -1
			}
			return 1
		}
		if numeric.FloatEquals(p.Y(), q.Y(), epsilon) {
			return 0
		}
		if p.Y() < q.Y() {
			return -1
		}
		return 1
	}
}

func (q *eventQueue) isEmpty() bool {
	return q.tree.Empty()
}

// pop removes and returns the least event point (sweep order) and its U(p) set.
func (q *eventQueue) pop() (point.Point, []segment.Segment) {
	node := q.tree.Left()
	if node == nil {
		panic(fmt.Errorf("sweep: pop from empty event queue"))
	}
	q.tree.Remove(node.Key)
	u, _ := node.Value.([]segment.Segment)
	return node.Key.(point.Point), u
}

// insertPoint ensures p is present with an (possibly empty) U(p), without disturbing an
// existing U(p) if p is already queued.
func (q *eventQueue) insertPoint(p point.Point) {
	if _, exists := q.tree.Get(p); exists {
		return
	}
	q.tree.Put(p, []segment.Segment{})
}

// addToU records that seg's first-met endpoint is p, inserting p if it is not yet queued.
func (q *eventQueue) addToU(p point.Point, seg segment.Segment) {
	if existing, exists := q.tree.Get(p); exists {
		q.tree.Put(p, append(existing.([]segment.Segment), seg))
		return
	}
	q.tree.Put(p, []segment.Segment{seg})
}

func (q *eventQueue) String() string {
	var out strings.Builder
	iter := q.tree.Iterator()
	i := 0
	for iter.Next() {
		out.WriteString(fmt.Sprintf("event %d: %s U(p)=%v\n", i, iter.Key().(point.Point), iter.Value()))
		i++
	}
	return out.String()
}
