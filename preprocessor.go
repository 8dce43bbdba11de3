package sweep

import (
	"fmt"

	"github.com/geoarc/sweep/point"
	"github.com/geoarc/sweep/segment"
)

// PushSegment adds s to the engine's input. The shape as pushed is retained in
// originSegments, which the post-sweep filter checks reported points against, while the
// sweep itself runs over normalized pieces appended to segments: lines with endpoints
// reordered so the sweep meets the source first, arcs decomposed into x-monotone sub-arcs.
//
// A full circle has no endpoints for the sweep to anchor on, so it contributes its two
// semicircular halves to both lists; the two halves are then ordinary arcs that happen to
// share both endpoints, and those shared endpoints are reported like any other point common
// to two inputs.
//
// Degenerate lines (coincident endpoints) are dropped: they have no extent to sweep.
func (e *Engine) PushSegment(s segment.Segment) {
	switch s.Kind() {
	case segment.Line:
		src, tgt := s.Source(), s.Target()
		if src.Eq(tgt, e.opts...) {
			return
		}
		e.originSegments = append(e.originSegments, s)
		if sweepLess(tgt, src) {
			s = s.Flip()
		}
		e.segments = append(e.segments, s)
	case segment.Circle:
		halves := monotonePieces(s)
		e.originSegments = append(e.originSegments, halves...)
		e.segments = append(e.segments, halves...)
	case segment.Arc:
		e.originSegments = append(e.originSegments, s)
		e.segments = append(e.segments, monotonePieces(s)...)
	default:
		panic(fmt.Errorf("sweep: unsupported segment kind in PushSegment: %s", s.Kind()))
	}
}

// sweepEndpoints returns seg's first-met and last-met endpoints in sweep order. Rather than
// special-casing which accessor (Source/Target) is "upper" for a top-half versus bottom-half
// arc — as the arc's own orientation would suggest — both endpoints are compared directly by
// sweep order. This is equivalent for a CCW-wound monotone piece and, unlike a fixed
// top-half/bottom-half rule, also holds for CW-wound pieces without a second case.
func sweepEndpoints(seg segment.Segment) (upper, lower point.Point) {
	a, b := seg.Source(), seg.Target()
	if sweepLess(a, b) {
		return a, b
	}
	return b, a
}

// monotonePieces decomposes s into the x-monotone pieces the sweep consumes: a Line
// is already monotone; a Circle decomposes into its two semicircular Arc halves; an Arc
// decomposes at whichever of the vertical-tangent radians lie strictly interior to its span.
func monotonePieces(s segment.Segment) []segment.Segment {
	switch s.Kind() {
	case segment.Line:
		return []segment.Segment{s}
	case segment.Circle, segment.Arc:
		return s.Monotone()
	default:
		panic(fmt.Errorf("sweep: unsupported segment kind in monotonePieces: %s", s.Kind()))
	}
}
