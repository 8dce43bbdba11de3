// Package segment defines the Segment type consumed by the sweep engine: a tagged union over
// straight line segments and circular arcs (full circles are accepted as a construction
// convenience and decomposed into two semicircular arcs by [Segment.Monotone]).
//
// Segment is expressed as a single struct carrying a Kind discriminant rather than as an
// interface implemented by two concrete types, so that every dispatch site is a plain switch
// over Kind instead of a virtual call — this keeps the sweep driver's hot path
// branch-predictable. Accessors that only make sense for one Kind panic when called on the
// other, mirroring a programmer error rather than a recoverable condition.
package segment

import (
	"fmt"
	"math"

	"github.com/geoarc/sweep/geo"
	"github.com/geoarc/sweep/options"
	"github.com/geoarc/sweep/point"
)

// Kind discriminates the shape a Segment wraps.
type Kind uint8

const (
	// Line is a straight line segment with two endpoints.
	Line Kind = iota

	// Arc is a circular arc with a center, radius, and radian bounds.
	Arc

	// Circle is a full circle, accepted as input and decomposed into two Arc segments by
	// Monotone. A Circle has no meaningful Source/Target until it is decomposed.
	Circle
)

// String returns a human-readable name for k.
func (k Kind) String() string {
	switch k {
	case Line:
		return "Line"
	case Arc:
		return "Arc"
	case Circle:
		return "Circle"
	default:
		panic(fmt.Errorf("unsupported segment kind: %d", k))
	}
}

// Orientation describes the direction of travel from a Segment's source radian to its target
// radian along its circle.
type Orientation uint8

const (
	// CCW indicates the arc sweeps counterclockwise (increasing radians) from source to target.
	CCW Orientation = iota

	// CW indicates the arc sweeps clockwise (decreasing radians) from source to target.
	CW
)

func (o Orientation) String() string {
	switch o {
	case CCW:
		return "CCW"
	case CW:
		return "CW"
	default:
		panic(fmt.Errorf("unsupported orientation: %d", o))
	}
}

// Segment is a tagged union over a straight line segment and a circular arc (or full circle).
type Segment struct {
	kind Kind

	// valid when kind == Line
	source, target point.Point

	// valid when kind == Arc or kind == Circle
	center                     point.Point
	radius                     float64
	sourceRadian, targetRadian float64

	// isTop is set by Monotone on the pieces it produces: true if the piece lies in the upper
	// half-plane of its center (opens downward), false if it lies in the lower half-plane.
	// It is meaningless prior to decomposition.
	isTop bool
}

// NewLine constructs a Line segment with the given endpoints, in the order given. The sweep
// engine's preprocessor is responsible for reordering endpoints into sweep order; the
// constructor itself does not normalize.
func NewLine(source, target point.Point) Segment {
	return Segment{kind: Line, source: source, target: target}
}

// NewArc constructs an Arc segment from its center, radius, and source/target radians. The
// sweep from sourceRadian to targetRadian determines Orientation: CCW if targetRadian >=
// sourceRadian, CW otherwise.
func NewArc(center point.Point, radius, sourceRadian, targetRadian float64) Segment {
	if radius <= 0 {
		panic(fmt.Errorf("segment: arc radius must be positive, got %v", radius))
	}
	return Segment{
		kind:         Arc,
		center:       center,
		radius:       radius,
		sourceRadian: sourceRadian,
		targetRadian: targetRadian,
	}
}

// NewFullCircle constructs a Circle segment: a full circle with no radian bounds. It must be
// decomposed via Monotone before it can be swept.
func NewFullCircle(center point.Point, radius float64) Segment {
	if radius <= 0 {
		panic(fmt.Errorf("segment: circle radius must be positive, got %v", radius))
	}
	return Segment{
		kind:         Circle,
		center:       center,
		radius:       radius,
		sourceRadian: 0,
		targetRadian: 2 * math.Pi,
	}
}

// Kind returns the discriminant identifying which shape s wraps.
func (s Segment) Kind() Kind {
	return s.kind
}

// Source returns the segment's source endpoint: for a Line, its first endpoint; for an Arc,
// the point at its source radian. Panics if called on a Circle, which has no single source
// until decomposed.
func (s Segment) Source() point.Point {
	switch s.kind {
	case Line:
		return s.source
	case Arc:
		return s.pointAtRadian(s.sourceRadian)
	default:
		panic(fmt.Errorf("segment: Source() is undefined for a %s", s.kind))
	}
}

// Target returns the segment's target endpoint, symmetric to Source.
func (s Segment) Target() point.Point {
	switch s.kind {
	case Line:
		return s.target
	case Arc:
		return s.pointAtRadian(s.targetRadian)
	default:
		panic(fmt.Errorf("segment: Target() is undefined for a %s", s.kind))
	}
}

func (s Segment) pointAtRadian(theta float64) point.Point {
	return point.New(s.center.X()+s.radius*math.Cos(theta), s.center.Y()+s.radius*math.Sin(theta))
}

// Center returns the center of the circle an Arc or Circle lies on. Panics if called on a Line.
func (s Segment) Center() point.Point {
	if s.kind == Line {
		panic(fmt.Errorf("segment: Center() is undefined for a %s", s.kind))
	}
	return s.center
}

// Radius returns the radius of the circle an Arc or Circle lies on. Panics if called on a Line.
func (s Segment) Radius() float64 {
	if s.kind == Line {
		panic(fmt.Errorf("segment: Radius() is undefined for a %s", s.kind))
	}
	return s.radius
}

// SourceRadian returns the radian at which an Arc (or Circle) begins. Panics if called on a Line.
func (s Segment) SourceRadian() float64 {
	if s.kind == Line {
		panic(fmt.Errorf("segment: SourceRadian() is undefined for a %s", s.kind))
	}
	return s.sourceRadian
}

// TargetRadian returns the radian at which an Arc (or Circle) ends. Panics if called on a Line.
func (s Segment) TargetRadian() float64 {
	if s.kind == Line {
		panic(fmt.Errorf("segment: TargetRadian() is undefined for a %s", s.kind))
	}
	return s.targetRadian
}

// Orientation reports whether an Arc (or Circle) sweeps counterclockwise or clockwise from its
// source radian to its target radian. Panics if called on a Line.
func (s Segment) Orientation() Orientation {
	if s.kind == Line {
		panic(fmt.Errorf("segment: Orientation() is undefined for a %s", s.kind))
	}
	if s.targetRadian >= s.sourceRadian {
		return CCW
	}
	return CW
}

// IsTop reports whether a monotone Arc piece lies strictly above its circle's center
// (equivalently, opens downward). Meaningful only for Arc segments produced by Monotone.
func (s Segment) IsTop() bool {
	return s.isTop
}

// AsLine returns s unchanged if it is a Line, and panics otherwise. It exists to make the
// programmer-error nature of a shape-accessor misuse explicit at the call site.
func (s Segment) AsLine() Segment {
	if s.kind != Line {
		panic(fmt.Errorf("segment: AsLine() called on a %s", s.kind))
	}
	return s
}

// AsArc returns s unchanged if it is an Arc, and panics otherwise.
func (s Segment) AsArc() Segment {
	if s.kind != Arc {
		panic(fmt.Errorf("segment: AsArc() called on a %s", s.kind))
	}
	return s
}

// Flip reverses a Line's endpoints or an Arc's source/target radians (and thus its
// Orientation). Circle segments are returned unchanged, since they have no direction.
func (s Segment) Flip() Segment {
	switch s.kind {
	case Line:
		return Segment{kind: Line, source: s.target, target: s.source}
	case Arc:
		flipped := s
		flipped.sourceRadian, flipped.targetRadian = s.targetRadian, s.sourceRadian
		return flipped
	default:
		return s
	}
}

// Eq reports whether s and other describe the same segment identity: for lines, the same pair
// of endpoints (in either order); for arcs, the same center, radius, and radian bounds (in
// either direction). This is the identity used by the sweep engine's status structure to
// locate a previously-inserted entry regardless of which event point it was last rebuilt
// against.
func (s Segment) Eq(other Segment, opts ...options.GeometryOptionsFunc) bool {
	if s.kind != other.kind {
		return false
	}
	switch s.kind {
	case Line:
		return (s.source.Eq(other.source, opts...) && s.target.Eq(other.target, opts...)) ||
			(s.source.Eq(other.target, opts...) && s.target.Eq(other.source, opts...))
	case Arc, Circle:
		if !s.center.Eq(other.center, opts...) {
			return false
		}
		geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
		if math.Abs(s.radius-other.radius) > geoOpts.Epsilon {
			return false
		}
		sameDirection := math.Abs(s.sourceRadian-other.sourceRadian) <= 1e-9 && math.Abs(s.targetRadian-other.targetRadian) <= 1e-9
		reversed := math.Abs(s.sourceRadian-other.targetRadian) <= 1e-9 && math.Abs(s.targetRadian-other.sourceRadian) <= 1e-9
		return sameDirection || reversed
	default:
		return false
	}
}

// String returns a human-readable representation of s.
func (s Segment) String() string {
	switch s.kind {
	case Line:
		return fmt.Sprintf("Line[%s-%s]", s.source, s.target)
	case Arc:
		return fmt.Sprintf("Arc[center=%s r=%v %v..%v]", s.center, s.radius, s.sourceRadian, s.targetRadian)
	case Circle:
		return fmt.Sprintf("Circle[center=%s r=%v]", s.center, s.radius)
	default:
		panic(fmt.Errorf("unsupported segment kind: %d", s.kind))
	}
}

// ContainsPoint reports whether p lies on s (within epsilon tolerance), dispatching to the
// appropriate containment oracle in the geo package for s's Kind. A Circle contains p iff p
// lies anywhere on its circumference.
func (s Segment) ContainsPoint(p point.Point, opts ...options.GeometryOptionsFunc) bool {
	switch s.kind {
	case Line:
		return geo.PointOnLine(p, s.source, s.target, opts...)
	case Arc:
		return geo.PointOnArc(p, s.center, s.radius, s.sourceRadian, s.targetRadian, opts...)
	case Circle:
		return geo.PointOnArc(p, s.center, s.radius, 0, 2*math.Pi, opts...)
	default:
		panic(fmt.Errorf("unsupported segment kind: %d", s.kind))
	}
}

// Intersect returns the 0, 1, or 2 points at which a and b intersect, dispatching to the
// appropriate pairwise oracle in the geo package for the combination of a.Kind() and b.Kind().
// Circle segments are treated as their full angular span [0, 2π).
func Intersect(a, b Segment, opts ...options.GeometryOptionsFunc) []point.Point {
	aRadians := func() (float64, float64) {
		if a.kind == Circle {
			return 0, 2 * math.Pi
		}
		return a.sourceRadian, a.targetRadian
	}
	bRadians := func() (float64, float64) {
		if b.kind == Circle {
			return 0, 2 * math.Pi
		}
		return b.sourceRadian, b.targetRadian
	}

	switch {
	case a.kind == Line && b.kind == Line:
		return geo.LineLineIntersect(a.source, a.target, b.source, b.target, opts...)
	case a.kind == Line && (b.kind == Arc || b.kind == Circle):
		r0, r1 := bRadians()
		return geo.LineArcIntersect(a.source, a.target, b.center, b.radius, r0, r1, opts...)
	case (a.kind == Arc || a.kind == Circle) && b.kind == Line:
		r0, r1 := aRadians()
		return geo.LineArcIntersect(b.source, b.target, a.center, a.radius, r0, r1, opts...)
	default:
		a0, a1 := aRadians()
		b0, b1 := bRadians()
		return geo.ArcArcIntersect(a.center, a.radius, a0, a1, b.center, b.radius, b0, b1, opts...)
	}
}

// Monotone decomposes s into x-monotone pieces. A Line is already monotone under this
// definition and is returned unchanged as a single-element slice. An Arc is split at whichever
// of radians 0 and π lie strictly interior to its span; a Circle is always split into exactly
// two semicircular Arc pieces, [0, π] and [π, 2π]. Every returned Arc piece has IsTop set.
func (s Segment) Monotone(opts ...options.GeometryOptionsFunc) []Segment {
	switch s.kind {
	case Line:
		return []Segment{s}
	case Circle:
		top := Segment{kind: Arc, center: s.center, radius: s.radius, sourceRadian: 0, targetRadian: math.Pi, isTop: true}
		bottom := Segment{kind: Arc, center: s.center, radius: s.radius, sourceRadian: math.Pi, targetRadian: 2 * math.Pi, isTop: false}
		return []Segment{top, bottom}
	case Arc:
		return s.monotoneArcPieces()
	default:
		panic(fmt.Errorf("unsupported segment kind: %d", s.kind))
	}
}

// monotoneArcPieces splits an Arc at the split radians (0 and π, modulo 2π) that lie strictly
// interior to its span, and tags each resulting piece's IsTop flag.
func (s Segment) monotoneArcPieces() []Segment {
	splits := interiorSplitRadians(s.sourceRadian, s.targetRadian)
	if len(splits) == 0 {
		piece := s
		piece.isTop = arcMidpointIsTop(s.sourceRadian, s.targetRadian)
		return []Segment{piece}
	}

	bounds := append([]float64{s.sourceRadian}, splits...)
	bounds = append(bounds, s.targetRadian)

	pieces := make([]Segment, 0, len(bounds)-1)
	for i := 0; i < len(bounds)-1; i++ {
		piece := Segment{
			kind:         Arc,
			center:       s.center,
			radius:       s.radius,
			sourceRadian: bounds[i],
			targetRadian: bounds[i+1],
		}
		piece.isTop = arcMidpointIsTop(piece.sourceRadian, piece.targetRadian)
		pieces = append(pieces, piece)
	}
	return pieces
}

// arcMidpointIsTop reports whether the midpoint (by radian, not by x) of the span from r0 to r1
// lies in the upper half-plane (sin > 0) of the circle's center.
func arcMidpointIsTop(r0, r1 float64) bool {
	mid := (r0 + r1) / 2
	return math.Sin(mid) > 0
}

// interiorSplitRadians returns, in sweep order along the span from r0 to r1, whichever of the
// canonical vertical-tangent radians (0 and π, plus their 2π-periodic equivalents) lie strictly
// between r0 and r1.
func interiorSplitRadians(r0, r1 float64) []float64 {
	lo, hi := r0, r1
	reversed := false
	if lo > hi {
		lo, hi = hi, lo
		reversed = true
	}

	var candidates []float64
	for k := -1; k <= 2; k++ {
		for _, base := range []float64{0, math.Pi} {
			theta := base + float64(k)*2*math.Pi
			if theta > lo+1e-9 && theta < hi-1e-9 {
				candidates = append(candidates, theta)
			}
		}
	}

	sortFloats(candidates)
	if reversed {
		for i, j := 0, len(candidates)-1; i < j; i, j = i+1, j-1 {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		}
	}
	return candidates
}

func sortFloats(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}
