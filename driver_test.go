package sweep_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoarc/sweep"
	"github.com/geoarc/sweep/options"
	"github.com/geoarc/sweep/point"
	"github.com/geoarc/sweep/segment"
)

const testEpsilon = 1e-9

// requirePointsInOrder asserts that got matches expected element-for-element within delta.
func requirePointsInOrder(t *testing.T, expected, got []point.Point) {
	t.Helper()
	require.Len(t, got, len(expected), "got %v", got)
	for i := range expected {
		assert.InDelta(t, expected[i].X(), got[i].X(), 1e-8, "point %d x: expected %s got %s", i, expected[i], got[i])
		assert.InDelta(t, expected[i].Y(), got[i].Y(), 1e-8, "point %d y: expected %s got %s", i, expected[i], got[i])
	}
}

func runEngine(segments []segment.Segment, opts ...options.GeometryOptionsFunc) []point.Point {
	engine := sweep.New(opts...)
	for _, s := range segments {
		engine.PushSegment(s)
	}
	return engine.Intersection()
}

// fiveLines is a mixed configuration exercising crossings, endpoint-on-interior hits, a
// vertical segment, and three segments concurrent at one point.
func fiveLines() []segment.Segment {
	return []segment.Segment{
		segment.NewLine(point.New(10, 10), point.New(0, 10)),
		segment.NewLine(point.New(0, 5), point.New(5, 10)),
		segment.NewLine(point.New(3, 0), point.New(3, 15)),
		segment.NewLine(point.New(3, 8), point.New(10, 10)),
		segment.NewLine(point.New(3, 12), point.New(5, 0)),
	}
}

func TestEngine_Intersection(t *testing.T) {
	tests := map[string]struct {
		segments []segment.Segment
		expected []point.Point
	}{
		"five lines": {
			segments: fiveLines(),
			expected: []point.Point{
				point.New(10, 10),
				point.New(5, 10),
				point.New(3.636363636363636, 8.181818181818182),
				point.New(3.571428571428571, 8.571428571428571),
				point.New(3.3333333333333335, 10),
				point.New(3, 12),
				point.New(3, 10),
				point.New(3, 8),
			},
		},
		"diagonal through circle": {
			segments: []segment.Segment{
				segment.NewLine(point.New(-5, 5), point.New(5, -5)),
				segment.NewFullCircle(point.New(0, 0), 5),
			},
			expected: []point.Point{
				point.New(5, 0),
				point.New(3.5355339059327373, -3.5355339059327373),
				point.New(-3.5355339059327373, 3.5355339059327373),
				point.New(-5, 0),
			},
		},
		"line and two semicircles of different radii": {
			segments: []segment.Segment{
				segment.NewLine(point.New(-5, 5), point.New(5, -5)),
				segment.NewArc(point.New(0, 0), 3, 0, math.Pi),
				segment.NewArc(point.New(0, -3), 5, 0, math.Pi),
			},
			expected: []point.Point{
				point.New(2.7638539919628324, 1.166666666666667),
				point.New(-1.7015621187164243, 1.7015621187164243),
				point.New(-2.1213203435596424, 2.1213203435596424),
				point.New(-2.7638539919628333, 1.1666666666666667),
			},
		},
		"line, small arc tangent to displaced semicircle": {
			segments: []segment.Segment{
				segment.NewLine(point.New(-5, 5), point.New(5, -5)),
				segment.NewArc(point.New(0, 4), 2, 1.5*math.Pi, 3*math.Pi),
				segment.NewArc(point.New(0, -3), 5, 0, math.Pi),
			},
			expected: []point.Point{
				point.New(0, 2),
				point.New(-1.7015621187164243, 1.7015621187164243),
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := runEngine(tc.segments, options.WithEpsilon(testEpsilon))
			requirePointsInOrder(t, tc.expected, got)
		})
	}
}

func TestEngine_Intersection_NoIntersections(t *testing.T) {
	tests := map[string]struct {
		segments []segment.Segment
	}{
		"parallel lines": {
			segments: []segment.Segment{
				segment.NewLine(point.New(0, 0), point.New(5, 5)),
				segment.NewLine(point.New(0, 1), point.New(5, 6)),
			},
		},
		"line far from arc": {
			segments: []segment.Segment{
				segment.NewLine(point.New(10, 10), point.New(20, 10)),
				segment.NewArc(point.New(0, 0), 1, 0, math.Pi),
			},
		},
		"nested arcs": {
			segments: []segment.Segment{
				segment.NewArc(point.New(0, 0), 1, 0, math.Pi),
				segment.NewArc(point.New(0, 0), 3, 0, math.Pi),
			},
		},
		"single segment": {
			segments: []segment.Segment{
				segment.NewLine(point.New(0, 0), point.New(5, 5)),
			},
		},
		"no segments": {
			segments: nil,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := runEngine(tc.segments, options.WithEpsilon(testEpsilon))
			assert.Empty(t, got)
		})
	}
}

func TestEngine_Intersection_SharedEndpoint(t *testing.T) {
	tests := map[string]struct {
		segments []segment.Segment
		expected point.Point
	}{
		"two lines meeting at a vertex": {
			segments: []segment.Segment{
				segment.NewLine(point.New(0, 0), point.New(5, 5)),
				segment.NewLine(point.New(5, 5), point.New(10, 0)),
			},
			expected: point.New(5, 5),
		},
		"line ending on an arc endpoint": {
			segments: []segment.Segment{
				segment.NewLine(point.New(3, 0), point.New(6, 0)),
				segment.NewArc(point.New(0, 0), 3, 0, math.Pi),
			},
			expected: point.New(3, 0),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := runEngine(tc.segments, options.WithEpsilon(testEpsilon))
			requirePointsInOrder(t, []point.Point{tc.expected}, got)
		})
	}
}

func TestEngine_Intersection_Deterministic(t *testing.T) {
	first := runEngine(fiveLines(), options.WithEpsilon(testEpsilon))
	second := runEngine(fiveLines(), options.WithEpsilon(testEpsilon))
	require.Equal(t, first, second)
}

func TestEngine_Intersection_Reusable(t *testing.T) {
	engine := sweep.New(options.WithEpsilon(testEpsilon))
	for _, s := range fiveLines() {
		engine.PushSegment(s)
	}
	first := engine.Intersection()
	second := engine.Intersection()
	require.Equal(t, first, second)
}

// TestEngine_Intersection_InsertionOrderInvariance confirms the output depends only on the
// geometry, never on the order segments were pushed.
func TestEngine_Intersection_InsertionOrderInvariance(t *testing.T) {
	reference := runEngine(fiveLines(), options.WithEpsilon(testEpsilon))
	permutations := [][]int{
		{4, 3, 2, 1, 0},
		{2, 0, 4, 1, 3},
		{1, 4, 0, 3, 2},
	}
	for _, perm := range permutations {
		segments := fiveLines()
		shuffled := make([]segment.Segment, len(segments))
		for i, j := range perm {
			shuffled[i] = segments[j]
		}
		got := runEngine(shuffled, options.WithEpsilon(testEpsilon))
		requirePointsInOrder(t, reference, got)
	}
}

// TestEngine_Intersection_RotationInvariance rotates the whole input by a non-axis-aligned
// angle, runs the sweep, and rotates the results back. The sweep itself is tied to the
// choice of abscissa, so the report order may change, but the point set must survive the
// round trip.
func TestEngine_Intersection_RotationInvariance(t *testing.T) {
	const angle = 0.3
	pivot := point.New(1, 2)

	reference := runEngine(fiveLines(), options.WithEpsilon(testEpsilon))

	var rotated []segment.Segment
	for _, s := range fiveLines() {
		rotated = append(rotated, segment.NewLine(
			s.Source().Rotate(pivot, angle),
			s.Target().Rotate(pivot, angle),
		))
	}
	got := runEngine(rotated, options.WithEpsilon(testEpsilon))
	require.Len(t, got, len(reference))

	var restored []point.Point
	for _, p := range got {
		restored = append(restored, p.Rotate(pivot, -angle))
	}
	for _, want := range reference {
		found := false
		for _, have := range restored {
			if have.Eq(want, options.WithEpsilon(1e-6)) {
				found = true
				break
			}
		}
		assert.True(t, found, "expected %s in rotated-back results %v", want, restored)
	}
}

// TestEngine_Intersection_CrossingArcs covers the arc/arc pair away from any endpoint.
func TestEngine_Intersection_CrossingArcs(t *testing.T) {
	got := runEngine([]segment.Segment{
		segment.NewArc(point.New(-1, 0), 2, 0, math.Pi),
		segment.NewArc(point.New(1, 0), 2, 0, math.Pi),
	}, options.WithEpsilon(testEpsilon))

	// circles |p-(-1,0)|=2 and |p-(1,0)|=2 cross at (0, ±sqrt(3)); only the upper point
	// lies on both upper semicircles.
	requirePointsInOrder(t, []point.Point{point.New(0, math.Sqrt(3))}, got)
}

// TestEngine_Intersection_VerticalThroughCircle pins the vertical-segment handling against
// a curved segment: a vertical chord through a circle. The circle's two semicircular halves
// meet at (±5,0), so those junctions are reported alongside the chord crossings.
func TestEngine_Intersection_VerticalThroughCircle(t *testing.T) {
	got := runEngine([]segment.Segment{
		segment.NewLine(point.New(3, -10), point.New(3, 10)),
		segment.NewFullCircle(point.New(0, 0), 5),
	}, options.WithEpsilon(testEpsilon))

	requirePointsInOrder(t, []point.Point{
		point.New(5, 0),
		point.New(3, 4),
		point.New(3, -4),
		point.New(-5, 0),
	}, got)
}
