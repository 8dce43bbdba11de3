package sweep

import (
	"slices"

	"github.com/geoarc/sweep/options"
	"github.com/geoarc/sweep/point"
	"github.com/geoarc/sweep/segment"
)

// Engine computes the intersection points among a collection of line and arc segments by
// sweeping a conceptual vertical line across the plane. It owns all of its state: the two
// segment lists built up by [Engine.PushSegment], and the event queue, status structure, and
// point index that [Engine.Intersection] rebuilds on every run.
//
// An Engine is not safe for concurrent use, and Intersection must run to completion before
// being invoked again on the same Engine. Independent Engine values share nothing and may
// run in parallel.
type Engine struct {
	opts []options.GeometryOptionsFunc

	// originSegments holds the inputs as pushed (a full circle as its two semicircular
	// halves). Reported points are validated against this list, not against the monotone
	// pieces the sweep runs over.
	originSegments []segment.Segment

	// segments holds the normalized x-monotone pieces consumed by the sweep.
	segments []segment.Segment

	queue  *eventQueue
	status *statusStructure
	index  *pointIndex
}

// New constructs an empty Engine. Options (see [options.WithEpsilon]) are retained and
// threaded through every comparison the engine performs: event ordering, the status-tree
// order function, containment tests, and the pairwise intersection oracles.
func New(opts ...options.GeometryOptionsFunc) *Engine {
	return &Engine{opts: opts}
}

// Intersection runs the sweep over all pushed segments and returns the distinct points
// lying on at least two of the original inputs, ordered by decreasing x with ties broken by
// decreasing y. The engine re-initializes its working state on every call, so Intersection
// may be invoked repeatedly, with more segments pushed in between.
func (e *Engine) Intersection() []point.Point {
	e.queue = newEventQueue(e.opts...)
	e.status = newStatusStructure(point.Origin(), e.opts...)
	e.index = newPointIndex(e.opts...)

	for _, s := range e.segments {
		upper, lower := sweepEndpoints(s)
		e.queue.addToU(upper, s)
		e.queue.insertPoint(lower)
	}
	logDebugf("seeded event queue from %d segments:\n%s", len(e.segments), e.queue)

	for !e.queue.isEmpty() {
		p, uOfP := e.queue.pop()
		e.handleEventPoint(p, uOfP)
	}

	return filterToOriginals(e.index.inOrder(), e.originSegments, e.opts...)
}

// handleEventPoint advances the sweep past p. uOfP is the set of segments whose first-met
// endpoint is p, carried by the event itself; the segments ending at p (L) and those whose
// interior contains p (C) are collected from the status structure. When two or more
// segments meet at p it is recorded as a candidate intersection, then the status structure
// is rebuilt under the ordering at p and the freshly adjacent segments are tested for
// future intersections.
func (e *Engine) handleEventPoint(p point.Point, uOfP []segment.Segment) {
	lOfP := e.activeWithLowerEndpoint(p)
	cOfP := e.activeContaining(p)
	logDebugf("event %s: |U|=%d |L|=%d |C|=%d", p, len(uOfP), len(lOfP), len(cOfP))

	if len(uOfP)+len(lOfP)+len(cOfP) == 0 {
		return
	}
	if len(uOfP)+len(lOfP)+len(cOfP) >= 2 {
		e.index.insert(p)
	}

	// L and C leave the tree under the ordering they were inserted with; identity-based
	// entry equality makes the lookup independent of the stale keys.
	for _, s := range lOfP {
		e.status.remove(s)
	}
	for _, s := range cOfP {
		e.status.remove(s)
	}

	// Rebuild rather than rotate: reinsert the survivors together with U(p) and C(p) under
	// a fresh ordering at p. Curved segments with coincident values at p can invert order
	// beyond the immediate neighborhood of the event, which adjacent-swap updating misses.
	reinsert := e.status.all()
	reinsert = append(reinsert, uOfP...)
	reinsert = append(reinsert, cOfP...)
	e.status.rebuildAt(p, reinsert)
	logDebugf("status rebuilt:\n%s", e.status)

	if len(uOfP)+len(cOfP) == 0 {
		// Only endings at p: the segments flanking the gap p leaves behind become adjacent.
		if left, right := e.status.floorCeiling(p); left != nil && right != nil {
			e.scheduleCandidates(*left, *right, p)
		}
		return
	}

	leftmost, rightmost := leftRightInUC(uOfP, cOfP, p, e.opts...)
	if left, _ := e.status.neighbors(leftmost); left != nil {
		e.scheduleCandidates(leftmost, *left, p)
	}
	if _, right := e.status.neighbors(rightmost); right != nil {
		e.scheduleCandidates(rightmost, *right, p)
	}
}

// activeWithLowerEndpoint returns the status segments whose last-met endpoint is p.
func (e *Engine) activeWithLowerEndpoint(p point.Point) []segment.Segment {
	var out []segment.Segment
	for _, s := range e.status.all() {
		if _, lower := sweepEndpoints(s); lower.Eq(p, e.opts...) {
			out = append(out, s)
		}
	}
	return out
}

// activeContaining returns the status segments whose interior contains p, endpoints
// excluded.
func (e *Engine) activeContaining(p point.Point) []segment.Segment {
	var out []segment.Segment
	for _, s := range e.status.all() {
		upper, lower := sweepEndpoints(s)
		if upper.Eq(p, e.opts...) || lower.Eq(p, e.opts...) {
			continue
		}
		if s.ContainsPoint(p, e.opts...) {
			out = append(out, s)
		}
	}
	return out
}

// leftRightInUC returns the lowest- and highest-ordered segments of U(p) ∪ C(p) under the
// status order at p.
func leftRightInUC(uOfP, cOfP []segment.Segment, p point.Point, opts ...options.GeometryOptionsFunc) (leftmost, rightmost segment.Segment) {
	uc := make([]segment.Segment, 0, len(uOfP)+len(cOfP))
	uc = append(uc, uOfP...)
	uc = append(uc, cOfP...)
	slices.SortStableFunc(uc, func(a, b segment.Segment) int {
		return compareSegments(a, b, p, opts...)
	})
	return uc[0], uc[len(uc)-1]
}

// scheduleCandidates intersects a with b and enqueues every resulting point that lies
// strictly ahead of the current event, so the sweep revisits it as an event of its own.
func (e *Engine) scheduleCandidates(a, b segment.Segment, ev point.Point) {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, e.opts...)
	for _, p := range segment.Intersect(a, b, e.opts...) {
		if !sweepAhead(ev, p, geoOpts.Epsilon) {
			continue
		}
		logDebugf("scheduling candidate %s from %s and %s", p, a, b)
		e.queue.insertPoint(p)
	}
}
