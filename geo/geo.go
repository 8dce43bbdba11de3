// Package geo implements the low-level geometric oracles that the sweep engine and the
// segment package consume through narrow interfaces: point-on-line and point-on-arc
// containment tests, and the pairwise closed-form intersection formulas for lines and arcs.
//
// Every function here operates on raw coordinates ([point.Point], center, radius, radians)
// rather than on [github.com/geoarc/sweep/segment].Segment, so that segment can depend on geo
// without geo needing to know about segment's tagged-union representation.
package geo

import (
	"math"

	"github.com/geoarc/sweep/numeric"
	"github.com/geoarc/sweep/options"
	"github.com/geoarc/sweep/point"
)

// twoPi is used throughout this package to normalize radian values into [0, 2π).
const twoPi = 2 * math.Pi

// normalizeRadian reduces theta into the half-open interval [0, 2π).
func normalizeRadian(theta float64) float64 {
	theta = math.Mod(theta, twoPi)
	if theta < 0 {
		theta += twoPi
	}
	return theta
}

// PointOnLine reports whether p lies on the closed line segment a-b, within epsilon tolerance.
func PointOnLine(p, a, b point.Point, opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)

	cross := (b.Sub(a)).CrossProduct(p.Sub(a))
	segLen := a.DistanceToPoint(b)
	if segLen == 0 {
		return p.Eq(a, opts...)
	}
	// Scale the cross-product tolerance by segment length since cross is an area, not a length.
	if !numeric.FloatEquals(cross/segLen, 0, geoOpts.Epsilon) {
		return false
	}

	minX, maxX := math.Min(a.X(), b.X()), math.Max(a.X(), b.X())
	minY, maxY := math.Min(a.Y(), b.Y()), math.Max(a.Y(), b.Y())

	return numeric.FloatGreaterThanOrEqualTo(p.X(), minX, geoOpts.Epsilon) &&
		numeric.FloatLessThanOrEqualTo(p.X(), maxX, geoOpts.Epsilon) &&
		numeric.FloatGreaterThanOrEqualTo(p.Y(), minY, geoOpts.Epsilon) &&
		numeric.FloatLessThanOrEqualTo(p.Y(), maxY, geoOpts.Epsilon)
}

// angleInArc reports whether radian theta (normalized internally) lies within the arc
// sweeping from r0 to r1. A non-negative span (r1-r0, unwrapped) means the arc sweeps
// counterclockwise (increasing radians); a negative span means it sweeps clockwise.
func angleInArc(theta, r0, r1, epsilon float64) bool {
	span := r1 - r0
	thetaDelta := normalizeRadian(theta - r0)

	if span >= 0 {
		spanNorm := span
		if spanNorm > twoPi {
			spanNorm = twoPi
		}
		return thetaDelta <= spanNorm+epsilon || thetaDelta >= twoPi-epsilon
	}

	reverseDelta := normalizeRadian(r0 - theta)
	spanNorm := -span
	if spanNorm > twoPi {
		spanNorm = twoPi
	}
	return reverseDelta <= spanNorm+epsilon || reverseDelta >= twoPi-epsilon
}

// PointOnArc reports whether p lies on the circle centered at center with the given radius,
// within the angular bounds [sourceRadian, targetRadian] (orientation implicit in whether
// targetRadian is greater than or less than sourceRadian), within epsilon tolerance.
func PointOnArc(p, center point.Point, radius, sourceRadian, targetRadian float64, opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)

	dist := p.DistanceToPoint(center)
	if !numeric.FloatEquals(dist, radius, geoOpts.Epsilon) {
		return false
	}

	theta := math.Atan2(p.Y()-center.Y(), p.X()-center.X())
	return angleInArc(theta, sourceRadian, targetRadian, angleEpsilon(geoOpts.Epsilon, radius))
}

// angleEpsilon converts a linear tolerance into a radian tolerance appropriate for a circle
// of the given radius, so that containment checks on large circles are not unreasonably strict.
func angleEpsilon(epsilon, radius float64) float64 {
	if radius <= 0 {
		return epsilon
	}
	return epsilon / radius
}

// LineLineIntersect returns the 0 or 1 points at which segment p1-p2 intersects segment p3-p4.
// Collinear segments yield a point only when they touch end to end at a single point; a
// collinear overlap of positive length yields no points, matching the convention that this
// package reports points, not overlap regions.
func LineLineIntersect(p1, p2, p3, p4 point.Point, opts ...options.GeometryOptionsFunc) []point.Point {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)

	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)
	denom := d1.CrossProduct(d2)

	if numeric.FloatEquals(denom, 0, geoOpts.Epsilon) {
		return collinearOverlapPoints(p1, p2, p3, p4, opts...)
	}

	diff := p3.Sub(p1)
	t := diff.CrossProduct(d2) / denom
	u := diff.CrossProduct(d1) / denom

	const slack = 1e-9
	if t < -slack || t > 1+slack || u < -slack || u > 1+slack {
		return nil
	}

	return []point.Point{point.New(p1.X()+t*d1.X(), p1.Y()+t*d1.Y())}
}

// collinearOverlapPoints handles the degenerate parallel case of LineLineIntersect: if the two
// segments are collinear and their overlap reduces to a single point (they touch end-to-end),
// that point is returned.
func collinearOverlapPoints(p1, p2, p3, p4 point.Point, opts ...options.GeometryOptionsFunc) []point.Point {
	if point.Orientation(p1, p2, p3, opts...) != point.Collinear {
		return nil
	}

	// project onto the dominant axis of travel to find overlap
	d := p2.Sub(p1)
	project := func(p point.Point) float64 {
		if math.Abs(d.X()) >= math.Abs(d.Y()) {
			return p.X()
		}
		return p.Y()
	}

	a0, a1 := project(p1), project(p2)
	if a0 > a1 {
		a0, a1 = a1, a0
	}
	b0, b1 := project(p3), project(p4)
	if b0 > b1 {
		b0, b1 = b1, b0
	}

	lo := math.Max(a0, b0)
	hi := math.Min(a1, b1)
	if lo > hi {
		return nil
	}
	if lo != hi {
		// genuine overlap region: not a single reportable point
		return nil
	}

	// touching end-to-end at a single coordinate; recover the full point via the parametric line
	if math.Abs(d.X()) >= math.Abs(d.Y()) {
		if d.X() == 0 {
			return nil
		}
		t := (lo - p1.X()) / d.X()
		return []point.Point{point.New(p1.X()+t*d.X(), p1.Y()+t*d.Y())}
	}
	if d.Y() == 0 {
		return nil
	}
	t := (lo - p1.Y()) / d.Y()
	return []point.Point{point.New(p1.X()+t*d.X(), p1.Y()+t*d.Y())}
}

// LineArcIntersect returns the 0, 1, or 2 points at which segment p1-p2 intersects the arc of
// the circle centered at center with the given radius between sourceRadian and targetRadian.
func LineArcIntersect(p1, p2, center point.Point, radius, sourceRadian, targetRadian float64, opts ...options.GeometryOptionsFunc) []point.Point {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)

	d := p2.Sub(p1)
	f := p1.Sub(center)

	a := d.DotProduct(d)
	if a == 0 {
		return nil
	}
	b := 2 * f.DotProduct(d)
	c := f.DotProduct(f) - radius*radius

	disc := b*b - 4*a*c
	if disc < 0 {
		// round-off clamp: treat a tiny negative radicand as a tangent at disc=0
		if numeric.FloatEquals(disc, 0, 1e-9) {
			disc = 0
		} else {
			return nil
		}
	}

	sqrtDisc := math.Sqrt(disc)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	var results []point.Point
	const slack = 1e-9
	for _, t := range dedupeTangent(t1, t2, geoOpts.Epsilon) {
		if t < -slack || t > 1+slack {
			continue
		}
		pt := point.New(p1.X()+t*d.X(), p1.Y()+t*d.Y())
		if PointOnArc(pt, center, radius, sourceRadian, targetRadian, opts...) {
			results = append(results, pt)
		}
	}
	return results
}

// dedupeTangent collapses t1 and t2 into a single value when they are epsilon-equal
// (a tangent line touching the circle at exactly one point).
func dedupeTangent(t1, t2, epsilon float64) []float64 {
	if numeric.FloatEquals(t1, t2, epsilon) {
		return []float64{t1}
	}
	return []float64{t1, t2}
}

// ArcArcIntersect returns the 0, 1, or 2 points at which the arc of circle 1 (center c1, radius
// r1, radians a0..a1) intersects the arc of circle 2 (center c2, radius r2, radians b0..b1).
func ArcArcIntersect(c1 point.Point, r1, a0, a1 float64, c2 point.Point, r2, b0, b1 float64, opts ...options.GeometryOptionsFunc) []point.Point {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)

	d := c1.DistanceToPoint(c2)
	if d == 0 {
		return nil // concentric circles: either coincident (infinite points) or disjoint, neither reportable as discrete points
	}
	if numeric.FloatGreaterThan(d, r1+r2, geoOpts.Epsilon) {
		return nil
	}
	if numeric.FloatLessThan(d, math.Abs(r1-r2), geoOpts.Epsilon) {
		return nil
	}

	aDist := (r1*r1 - r2*r2 + d*d) / (2 * d)
	hSq := r1*r1 - aDist*aDist
	if hSq < 0 {
		if numeric.FloatEquals(hSq, 0, 1e-9) {
			hSq = 0
		} else {
			return nil
		}
	}
	h := math.Sqrt(hSq)

	ux, uy := (c2.X()-c1.X())/d, (c2.Y()-c1.Y())/d
	midX, midY := c1.X()+aDist*ux, c1.Y()+aDist*uy

	candidates := []point.Point{
		point.New(midX-h*uy, midY+h*ux),
	}
	if h != 0 {
		candidates = append(candidates, point.New(midX+h*uy, midY-h*ux))
	}

	var results []point.Point
	for _, p := range candidates {
		if PointOnArc(p, c1, r1, a0, a1, opts...) && PointOnArc(p, c2, r2, b0, b1, opts...) {
			results = append(results, p)
		}
	}
	return results
}
