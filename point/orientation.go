package point

import (
	"fmt"
	"math"

	"github.com/geoarc/sweep/options"
)

// OrientationType represents the orientation relationship between three points in a 2D plane.
type OrientationType uint8

const (
	// Collinear indicates that three points lie on a straight line.
	Collinear OrientationType = iota

	// Counterclockwise indicates that three points form a counterclockwise turn.
	Counterclockwise

	// Clockwise indicates that three points form a clockwise turn.
	Clockwise
)

// String returns a human-readable string representation of the orientation type.
func (o OrientationType) String() string {
	switch o {
	case Collinear:
		return "Collinear"
	case Counterclockwise:
		return "Counterclockwise"
	case Clockwise:
		return "Clockwise"
	default:
		panic(fmt.Errorf("unsupported point orientation: %d", o))
	}
}

// Orientation determines whether p, q, r make a clockwise turn, a counterclockwise turn, or are collinear,
// using the cross product of the vectors (q-p) and (r-p). The epsilon scales with the lengths of those
// vectors so that orientation checks remain stable across wildly different segment lengths.
func Orientation(p, q, r Point, opts ...options.GeometryOptionsFunc) OrientationType {
	val := (q.Sub(p)).CrossProduct(r.Sub(p))

	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	epsilon := geoOpts.Epsilon * (p.DistanceToPoint(q) + p.DistanceToPoint(r))

	if math.Abs(val) <= epsilon {
		return Collinear
	}
	if val > 0 {
		return Counterclockwise
	}
	return Clockwise
}
