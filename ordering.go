package sweep

import (
	"fmt"
	"math"

	"github.com/geoarc/sweep/geo"
	"github.com/geoarc/sweep/numeric"
	"github.com/geoarc/sweep/options"
	"github.com/geoarc/sweep/point"
	"github.com/geoarc/sweep/segment"
)

// sweepLess reports whether p comes strictly before q in sweep order: increasing x, ties
// broken by increasing y.
func sweepLess(p, q point.Point) bool {
	if p.X() != q.X() {
		return p.X() < q.X()
	}
	return p.Y() < q.Y()
}

// sweepAhead reports whether q lies strictly ahead of e in sweep order, treating
// epsilon-equal coordinates as ties. Candidate intersections are only scheduled when
// strictly ahead of the current event, which keeps the event loop finite even when the
// pairwise oracles return points at or behind the event being handled.
func sweepAhead(e, q point.Point, epsilon float64) bool {
	if !numeric.FloatEquals(q.X(), e.X(), epsilon) {
		return q.X() > e.X()
	}
	return numeric.FloatGreaterThan(q.Y(), e.Y(), epsilon)
}

// segmentValue returns the y-coordinate of s's curve at the probe point's abscissa. A
// vertical line (source and target share an x) has no single y there; it intersects the
// sweep line in a whole interval, so the probe's own y is returned, which places the
// vertical at exactly the height of the event being examined.
func segmentValue(s segment.Segment, probe point.Point, opts ...options.GeometryOptionsFunc) float64 {
	switch s.Kind() {
	case segment.Line:
		src, tgt := s.Source(), s.Target()
		if src.X() == tgt.X() {
			return probe.Y()
		}
		return src.Y() + (probe.X()-src.X())*(tgt.Y()-src.Y())/(tgt.X()-src.X())
	case segment.Arc, segment.Circle:
		return arcValue(s, probe.X(), opts...)
	default:
		panic(fmt.Errorf("sweep: unsupported segment kind in segmentValue: %s", s.Kind()))
	}
}

// arcValue solves y = cy ± sqrt(r²-(x-cx)²) and picks the root lying on the arc.
// When round-off drives the radicand slightly negative it is clamped to zero; when neither
// root is accepted by the containment oracle (a numerical edge case at the arc's own
// boundary), the root matching the arc's IsTop flag is returned.
func arcValue(s segment.Segment, x float64, opts ...options.GeometryOptionsFunc) float64 {
	c := s.Center()
	r := s.Radius()

	radicand := r*r - (x-c.X())*(x-c.X())
	if radicand < 0 {
		radicand = 0
	}
	h := math.Sqrt(radicand)
	upper, lower := c.Y()+h, c.Y()-h

	r0, r1 := s.SourceRadian(), s.TargetRadian()
	if geo.PointOnArc(point.New(x, upper), c, r, r0, r1, opts...) {
		return upper
	}
	if geo.PointOnArc(point.New(x, lower), c, r, r0, r1, opts...) {
		return lower
	}
	if s.IsTop() {
		return upper
	}
	return lower
}

// tangentSlope returns dy/dx of s's curve at p, and whether the tangent there is vertical
// (undefined slope).
func tangentSlope(s segment.Segment, p point.Point) (slope float64, vertical bool) {
	switch s.Kind() {
	case segment.Line:
		src, tgt := s.Source(), s.Target()
		if tgt.X() == src.X() {
			return 0, true
		}
		return (tgt.Y() - src.Y()) / (tgt.X() - src.X()), false
	case segment.Arc, segment.Circle:
		c := s.Center()
		if p.Y() == c.Y() {
			return 0, true
		}
		return -(p.X() - c.X()) / (p.Y() - c.Y()), false
	default:
		panic(fmt.Errorf("sweep: unsupported segment kind in tangentSlope: %s", s.Kind()))
	}
}

// compareSegments implements compare_segments(a, b, e): the status-tree order at event point
// e, resolving ties first by tangent slope and then by a midpoint probe.
func compareSegments(a, b segment.Segment, e point.Point, opts ...options.GeometryOptionsFunc) int {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)

	va := segmentValue(a, e, opts...)
	vb := segmentValue(b, e, opts...)
	if !numeric.FloatEquals(va, vb, geoOpts.Epsilon) {
		if va < vb {
			return -1
		}
		return 1
	}

	slopeA, vertA := tangentSlope(a, e)
	slopeB, vertB := tangentSlope(b, e)
	if vertA != vertB {
		// a defined slope precedes an undefined (vertical) tangent
		if vertB {
			return -1
		}
		return 1
	}
	if !vertA && !numeric.FloatEquals(slopeA, slopeB, geoOpts.Epsilon) {
		if slopeA < slopeB {
			return -1
		}
		return 1
	}

	// midpoint probe: resolve osculating curves by examining behavior just after e. The
	// probe sits halfway between e and the nearest exit point of either curve, so both
	// curves are guaranteed to still be live at the probed abscissa.
	_, aExit := sweepEndpoints(a)
	_, bExit := sweepEndpoints(b)
	nearer := aExit
	if sweepLess(bExit, aExit) {
		nearer = bExit
	}
	m := point.New((e.X()+nearer.X())/2, (e.Y()+nearer.Y())/2)
	ma := segmentValue(a, m, opts...)
	mb := segmentValue(b, m, opts...)
	if numeric.FloatEquals(ma, mb, geoOpts.Epsilon) {
		return 0
	}
	if ma < mb {
		return -1
	}
	return 1
}
