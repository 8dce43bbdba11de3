package sweep

import (
	"cmp"
	"fmt"
	"strings"

	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/geoarc/sweep/options"
	"github.com/geoarc/sweep/point"
	"github.com/geoarc/sweep/segment"
)

// statusEntry is the key type stored in a statusStructure's tree. A regular entry wraps the
// segment it represents; a "find" entry wraps a bare query point and exists only to drive a
// Floor/Ceiling lookup through the same comparator.
type statusEntry struct {
	seg       segment.Segment
	findMode  bool
	findPoint point.Point
}

// statusStructure is the sweep's rebuild-on-reinsert status tree: rather than rotating
// only the affected neighborhood on each event, the entire tree is discarded and every
// surviving segment is reinserted under a comparator probing the new event point. This trades
// a log factor for sidestepping the subtle bugs that arise when curved segments invert order
// outside the immediate neighborhood of an event.
type statusStructure struct {
	tree       *rbt.Tree
	sweepPoint point.Point
	epsilon    float64
}

func newStatusStructure(p point.Point, opts ...options.GeometryOptionsFunc) *statusStructure {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	s := &statusStructure{sweepPoint: p, epsilon: geoOpts.Epsilon}
	s.tree = rbt.NewWith(statusComparator(&s.sweepPoint, &s.epsilon))
	return s
}

// comparePointToSegment orders a bare point p against seg's position on the sweep line: 0 if
// seg contains p, negative if p lies below seg's curve at p.x, positive if above.
func comparePointToSegment(p point.Point, seg segment.Segment, opts ...options.GeometryOptionsFunc) int {
	if seg.ContainsPoint(p, opts...) {
		return 0
	}
	v := segmentValue(seg, p, opts...)
	if p.Y() < v {
		return -1
	}
	return 1
}

// compareIdentity breaks a true geometric tie between two distinct segments (same value,
// slope, and midpoint probe) with a deterministic order based on their static identity, so
// that the tree's comparator remains a strict total order even over osculating curves.
func compareIdentity(a, b segment.Segment) int {
	if a.Kind() != b.Kind() {
		return int(a.Kind()) - int(b.Kind())
	}
	switch a.Kind() {
	case segment.Line:
		if c := comparePoint(a.Source(), b.Source()); c != 0 {
			return c
		}
		return comparePoint(a.Target(), b.Target())
	default:
		ac, bc := a.Center(), b.Center()
		if c := comparePoint(ac, bc); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Radius(), b.Radius()); c != 0 {
			return c
		}
		if c := cmp.Compare(a.SourceRadian(), b.SourceRadian()); c != 0 {
			return c
		}
		return cmp.Compare(a.TargetRadian(), b.TargetRadian())
	}
}

func comparePoint(p, q point.Point) int {
	if c := cmp.Compare(p.X(), q.X()); c != 0 {
		return c
	}
	return cmp.Compare(p.Y(), q.Y())
}

// statusComparator returns the red-black tree comparator for a statusStructure, closing over
// pointers to its mutable sweepPoint and epsilon so that every compare reflects the current
// event abscissa. The comparator is stateful by construction; keys are reconstructed on
// every compare rather than cached.
func statusComparator(sweepPoint *point.Point, epsilon *float64) func(a, b interface{}) int {
	return func(a, b interface{}) int {
		A := a.(statusEntry)
		B := b.(statusEntry)
		e := *sweepPoint
		opts := options.WithEpsilon(*epsilon)

		if A.findMode && B.findMode {
			return comparePoint(A.findPoint, B.findPoint)
		}
		if A.findMode {
			return comparePointToSegment(A.findPoint, B.seg, opts)
		}
		if B.findMode {
			return -comparePointToSegment(B.findPoint, A.seg, opts)
		}

		if A.seg.Eq(B.seg, opts) {
			return 0
		}

		if c := compareSegments(A.seg, B.seg, e, opts); c != 0 {
			return c
		}
		return compareIdentity(A.seg, B.seg)
	}
}

func (s *statusStructure) isEmpty() bool {
	return s.tree.Empty()
}

func (s *statusStructure) insert(seg segment.Segment) {
	s.tree.Put(statusEntry{seg: seg}, nil)
}

func (s *statusStructure) remove(seg segment.Segment) {
	s.tree.Remove(statusEntry{seg: seg})
}

// contains reports whether seg currently occupies an entry in the tree, compared by identity.
func (s *statusStructure) contains(seg segment.Segment) bool {
	_, found := s.tree.Get(statusEntry{seg: seg})
	return found
}

// all returns every segment currently in the tree, in ascending (bottom-to-top) order.
func (s *statusStructure) all() []segment.Segment {
	var out []segment.Segment
	iter := s.tree.Iterator()
	for iter.Next() {
		out = append(out, iter.Key().(statusEntry).seg)
	}
	return out
}

// rebuildAt discards the current tree and reinserts segs freshly ordered at p.
func (s *statusStructure) rebuildAt(p point.Point, segs []segment.Segment) {
	s.sweepPoint = p
	s.tree = rbt.NewWith(statusComparator(&s.sweepPoint, &s.epsilon))
	for _, seg := range segs {
		s.insert(seg)
	}
}

// floorCeiling returns the segments immediately at-or-below and at-or-above p in status order.
func (s *statusStructure) floorCeiling(p point.Point) (floor, ceiling *segment.Segment) {
	key := statusEntry{findMode: true, findPoint: p}
	if node, found := s.tree.Floor(key); found {
		e := node.Key.(statusEntry).seg
		floor = &e
	}
	if node, found := s.tree.Ceiling(key); found {
		e := node.Key.(statusEntry).seg
		ceiling = &e
	}
	return floor, ceiling
}

// neighbors returns seg's immediate predecessor and successor in the tree.
func (s *statusStructure) neighbors(seg segment.Segment) (left, right *segment.Segment) {
	node := s.tree.GetNode(statusEntry{seg: seg})
	if node == nil {
		return nil, nil
	}
	if prevIter := s.tree.IteratorAt(node); prevIter.Prev() {
		l := prevIter.Key().(statusEntry).seg
		left = &l
	}
	if nextIter := s.tree.IteratorAt(node); nextIter.Next() {
		r := nextIter.Key().(statusEntry).seg
		right = &r
	}
	return left, right
}

func (s *statusStructure) String() string {
	var out strings.Builder
	iter := s.tree.Iterator()
	i := 0
	for iter.Next() {
		out.WriteString(fmt.Sprintf("status %d at %s: %s\n", i, s.sweepPoint, iter.Key().(statusEntry).seg))
		i++
	}
	return out.String()
}
