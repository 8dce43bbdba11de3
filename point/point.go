// Package point defines the foundational geometric primitive used throughout this module: the Point type.
// Line segments and arcs are built on top of it.
//
// # Overview
//
// Point represents a two-dimensional point with float64 coordinates. It provides
// fundamental geometric operations such as translation, distance measurement, vector arithmetic, and angle
// calculations.
//
// # Precision Control with Epsilon
//
// Comparison and derived methods accept [options.GeometryOptionsFunc] (see [options.WithEpsilon]) rather than
// consulting a package-global tolerance, so that callers running multiple concurrent computations never share
// mutable epsilon state.
package point

import (
	"encoding/json"
	"fmt"
	"image"
	"math"

	"github.com/geoarc/sweep/numeric"
	"github.com/geoarc/sweep/options"
	"github.com/geoarc/sweep/types"
)

var origin = Point{0, 0}

// Origin returns the origin point (0,0) in the 2D coordinate system.
func Origin() Point {
	return origin
}

// Point represents a point in two-dimensional space with x and y coordinates of type float64.
type Point struct {
	x float64
	y float64
}

// New creates a new Point with the specified x and y coordinates.
func New(x, y float64) Point {
	return Point{x: x, y: y}
}

// NewFromImagePoint creates a new Point from an [image.Point].
func NewFromImagePoint(q image.Point) Point {
	return Point{x: float64(q.X), y: float64(q.Y)}
}

// Add returns the sum of two points as if they were vectors: (p.X()+q.X(), p.Y()+q.Y()).
func (p Point) Add(q Point) Point {
	return Point{x: p.x + q.x, y: p.y + q.y}
}

// AngleBetween calculates the angle in radians between two points, a and b, relative to the calling Point
// as the origin. The result lies in [0, π]; it does not distinguish a clockwise from a
// counterclockwise turn between origin->a and origin->b.
//
// Returns math.NaN() if a or b coincides with the origin.
func (p Point) AngleBetween(a, b Point, opts ...options.GeometryOptionsFunc) float64 {
	return math.Acos(p.CosineOfAngleBetween(a, b, opts...))
}

// Coordinates returns the X and Y coordinates of the Point as separate values.
func (p Point) Coordinates() (x, y float64) {
	return p.x, p.y
}

// CosineOfAngleBetween calculates the cosine of the angle between two points, a and b, relative to the
// calling Point as the origin, without the computational overhead of math.Acos.
//
// Returns math.NaN() if either vector origin->a or origin->b has zero length.
func (p Point) CosineOfAngleBetween(a, b Point, opts ...options.GeometryOptionsFunc) float64 {
	vectorOA := a.Sub(p)
	vectorOB := b.Sub(p)

	dot := vectorOA.DotProduct(vectorOB)
	magA := p.DistanceToPoint(a, opts...)
	magB := p.DistanceToPoint(b, opts...)
	if magA == 0 || magB == 0 {
		return math.NaN()
	}

	cosTheta := dot / math.Sqrt(vectorOA.DotProduct(vectorOA)*vectorOB.DotProduct(vectorOB))
	return math.Max(-1, math.Min(1, cosTheta))
}

// CrossProduct returns the 2D cross product (determinant) of two vectors:
//
//	p × q = p.x*q.y - p.y*q.x
//
// A positive result indicates a counterclockwise turn, a negative result a clockwise turn, and zero
// indicates the vectors are collinear.
func (p Point) CrossProduct(q Point) float64 {
	return p.x*q.y - p.y*q.x
}

// DistanceSquaredToPoint calculates the squared Euclidean distance between p and q, avoiding a square root.
func (p Point) DistanceSquaredToPoint(q Point) float64 {
	dx, dy := q.x-p.x, q.y-p.y
	return dx*dx + dy*dy
}

// DistanceToPoint calculates the Euclidean distance between p and q.
func (p Point) DistanceToPoint(q Point, _ ...options.GeometryOptionsFunc) float64 {
	return math.Sqrt(p.DistanceSquaredToPoint(q))
}

// DotProduct calculates the dot product of the vector p with the vector q.
func (p Point) DotProduct(q Point) float64 {
	return p.x*q.x + p.y*q.y
}

// Eq determines whether p and q are equal, optionally within an epsilon tolerance
// (see [options.WithEpsilon]).
func (p Point) Eq(q Point, opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	return numeric.FloatEquals(p.x, q.x, geoOpts.Epsilon) && numeric.FloatEquals(p.y, q.y, geoOpts.Epsilon)
}

// MarshalJSON serializes Point as JSON.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{X: p.x, Y: p.y})
}

// Negate returns a new Point with both x and y coordinates negated.
func (p Point) Negate() Point {
	return New(-p.x, -p.y)
}

// RelationshipToPoint determines the spatial relationship between p and other: either
// [types.RelationshipEqual] or [types.RelationshipDisjoint].
func (p Point) RelationshipToPoint(other Point, opts ...options.GeometryOptionsFunc) types.Relationship {
	if p.Eq(other, opts...) {
		return types.RelationshipEqual
	}
	return types.RelationshipDisjoint
}

// Rotate rotates p counter-clockwise around pivot by the given angle in radians.
func (p Point) Rotate(pivot Point, radians float64, opts ...options.GeometryOptionsFunc) Point {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)

	tx, ty := p.x-pivot.x, p.y-pivot.y
	rx := tx*math.Cos(radians) - ty*math.Sin(radians)
	ry := tx*math.Sin(radians) + ty*math.Cos(radians)

	newX, newY := rx+pivot.x, ry+pivot.y
	if geoOpts.Epsilon > 0 {
		newX = numeric.SnapToEpsilon(newX, geoOpts.Epsilon)
		newY = numeric.SnapToEpsilon(newY, geoOpts.Epsilon)
	}
	return New(newX, newY)
}

// Scale scales p by a factor k relative to a reference point ref.
func (p Point) Scale(ref Point, k float64) Point {
	return New(ref.x+(p.x-ref.x)*k, ref.y+(p.y-ref.y)*k)
}

// String returns a string representation of p in the format "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%v,%v)", p.x, p.y)
}

// Sub returns the vector from q to p (p - q).
func (p Point) Sub(q Point) Point {
	return New(p.x-q.x, p.y-q.y)
}

// Translate moves p by a given displacement vector delta.
func (p Point) Translate(delta Point) Point {
	return New(p.x+delta.x, p.y+delta.y)
}

// UnmarshalJSON deserializes JSON into a Point.
func (p *Point) UnmarshalJSON(data []byte) error {
	var temp struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.x = temp.X
	p.y = temp.Y
	return nil
}

// X returns the x-coordinate of p.
func (p Point) X() float64 {
	return p.x
}

// Y returns the y-coordinate of p.
func (p Point) Y() float64 {
	return p.y
}
