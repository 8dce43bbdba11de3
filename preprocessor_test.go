package sweep

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoarc/sweep/options"
	"github.com/geoarc/sweep/point"
	"github.com/geoarc/sweep/segment"
)

func TestPushSegment_LineReordered(t *testing.T) {
	e := New(options.WithEpsilon(1e-9))
	e.PushSegment(segment.NewLine(point.New(10, 10), point.New(0, 10)))

	require.Len(t, e.originSegments, 1)
	require.Len(t, e.segments, 1)

	// the original keeps the caller's endpoint order
	assert.Equal(t, point.New(10, 10), e.originSegments[0].Source())

	// the normalized copy is reordered so the sweep meets the source first
	assert.Equal(t, point.New(0, 10), e.segments[0].Source())
	assert.Equal(t, point.New(10, 10), e.segments[0].Target())
}

func TestPushSegment_LineAlreadyOrdered(t *testing.T) {
	e := New(options.WithEpsilon(1e-9))
	e.PushSegment(segment.NewLine(point.New(0, 10), point.New(10, 10)))

	assert.Equal(t, point.New(0, 10), e.segments[0].Source())
}

func TestPushSegment_DegenerateLineDropped(t *testing.T) {
	e := New(options.WithEpsilon(1e-9))
	e.PushSegment(segment.NewLine(point.New(3, 3), point.New(3, 3)))

	assert.Empty(t, e.originSegments)
	assert.Empty(t, e.segments)
}

func TestPushSegment_FullCircleSplitsIntoHalves(t *testing.T) {
	e := New(options.WithEpsilon(1e-9))
	e.PushSegment(segment.NewFullCircle(point.New(0, 0), 5))

	// both lists carry the two semicircular halves: the sweep runs over them, and the
	// filter validates against them
	require.Len(t, e.originSegments, 2)
	require.Len(t, e.segments, 2)

	top, bottom := e.segments[0], e.segments[1]
	assert.Equal(t, segment.Arc, top.Kind())
	assert.True(t, top.IsTop())
	assert.InDelta(t, 0, top.SourceRadian(), 1e-12)
	assert.InDelta(t, math.Pi, top.TargetRadian(), 1e-12)

	assert.Equal(t, segment.Arc, bottom.Kind())
	assert.False(t, bottom.IsTop())
	assert.InDelta(t, math.Pi, bottom.SourceRadian(), 1e-12)
	assert.InDelta(t, 2*math.Pi, bottom.TargetRadian(), 1e-12)
}

func TestPushSegment_ArcDecomposed(t *testing.T) {
	e := New(options.WithEpsilon(1e-9))

	// spans the vertical tangent at 2π, so it splits into a bottom and a top piece
	e.PushSegment(segment.NewArc(point.New(0, 4), 2, 1.5*math.Pi, 3*math.Pi))

	// the original arc is kept whole
	require.Len(t, e.originSegments, 1)
	assert.InDelta(t, 1.5*math.Pi, e.originSegments[0].SourceRadian(), 1e-12)
	assert.InDelta(t, 3*math.Pi, e.originSegments[0].TargetRadian(), 1e-12)

	require.Len(t, e.segments, 2)
	assert.False(t, e.segments[0].IsTop())
	assert.True(t, e.segments[1].IsTop())
}

func TestPushSegment_MonotoneArcKeptWhole(t *testing.T) {
	e := New(options.WithEpsilon(1e-9))
	e.PushSegment(segment.NewArc(point.New(0, 0), 3, 0, math.Pi))

	require.Len(t, e.segments, 1)
	assert.True(t, e.segments[0].IsTop())
}

func TestSweepEndpoints(t *testing.T) {
	tests := map[string]struct {
		seg          segment.Segment
		upper, lower point.Point
	}{
		"line already in sweep order": {
			seg:   segment.NewLine(point.New(0, 10), point.New(10, 10)),
			upper: point.New(0, 10), lower: point.New(10, 10),
		},
		"line against sweep order": {
			seg:   segment.NewLine(point.New(10, 10), point.New(0, 10)),
			upper: point.New(0, 10), lower: point.New(10, 10),
		},
		"vertical line": {
			seg:   segment.NewLine(point.New(3, 15), point.New(3, 0)),
			upper: point.New(3, 0), lower: point.New(3, 15),
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			upper, lower := sweepEndpoints(tc.seg)
			assert.Equal(t, tc.upper, upper)
			assert.Equal(t, tc.lower, lower)
		})
	}

	t.Run("top arc is met at its target first", func(t *testing.T) {
		top := segment.NewArc(point.New(0, 0), 5, 0, math.Pi)
		upper, lower := sweepEndpoints(top)
		assert.InDelta(t, -5, upper.X(), 1e-9)
		assert.InDelta(t, 5, lower.X(), 1e-9)
	})

	t.Run("bottom arc is met at its source first", func(t *testing.T) {
		bottom := segment.NewArc(point.New(0, 0), 5, math.Pi, 2*math.Pi)
		upper, lower := sweepEndpoints(bottom)
		assert.InDelta(t, -5, upper.X(), 1e-9)
		assert.InDelta(t, 5, lower.X(), 1e-9)
	})
}
