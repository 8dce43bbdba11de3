package segment_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoarc/sweep/point"
	"github.com/geoarc/sweep/segment"
)

func TestSegment_JSONRoundTrip(t *testing.T) {
	tests := map[string]segment.Segment{
		"line":   segment.NewLine(point.New(1.5, -2), point.New(3, 4.25)),
		"arc":    segment.NewArc(point.New(0, 4), 2, 1.5*math.Pi, 3*math.Pi),
		"circle": segment.NewFullCircle(point.New(-1, 2), 5),
	}
	for name, original := range tests {
		t.Run(name, func(t *testing.T) {
			data, err := json.Marshal(original)
			require.NoError(t, err)

			var decoded segment.Segment
			require.NoError(t, json.Unmarshal(data, &decoded))

			assert.Equal(t, original.Kind(), decoded.Kind())
			assert.True(t, decoded.Eq(original))
		})
	}
}

func TestSegment_MarshalJSON_Shape(t *testing.T) {
	data, err := json.Marshal(segment.NewLine(point.New(0, 1), point.New(2, 3)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"line","source":{"x":0,"y":1},"target":{"x":2,"y":3}}`, string(data))
}

func TestSegment_UnmarshalJSON_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknown kind":         `{"kind":"bezier"}`,
		"line without target":  `{"kind":"line","source":{"x":0,"y":0}}`,
		"arc without center":   `{"kind":"arc","radius":2}`,
		"arc with zero radius": `{"kind":"arc","center":{"x":0,"y":0},"radius":0,"source_radian":0,"target_radian":1}`,
		"arc negative radius":  `{"kind":"arc","center":{"x":0,"y":0},"radius":-3,"source_radian":0,"target_radian":1}`,
		"arc span over a turn": `{"kind":"arc","center":{"x":0,"y":0},"radius":2,"source_radian":0,"target_radian":7}`,
		"circle zero radius":   `{"kind":"circle","center":{"x":0,"y":0},"radius":0}`,
		"not json":             `{`,
	}
	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			var s segment.Segment
			assert.Error(t, json.Unmarshal([]byte(payload), &s))
		})
	}
}
