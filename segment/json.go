package segment

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/geoarc/sweep/point"
)

// segmentJSON is the wire form shared by MarshalJSON and UnmarshalJSON. Fields irrelevant
// to the encoded Kind are omitted.
type segmentJSON struct {
	Kind         string       `json:"kind"`
	Source       *point.Point `json:"source,omitempty"`
	Target       *point.Point `json:"target,omitempty"`
	Center       *point.Point `json:"center,omitempty"`
	Radius       float64      `json:"radius,omitempty"`
	SourceRadian float64      `json:"source_radian,omitempty"`
	TargetRadian float64      `json:"target_radian,omitempty"`
}

// MarshalJSON serializes the Segment as JSON, emitting only the fields meaningful for its
// Kind.
func (s Segment) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case Line:
		src, tgt := s.source, s.target
		return json.Marshal(segmentJSON{Kind: "line", Source: &src, Target: &tgt})
	case Arc:
		c := s.center
		return json.Marshal(segmentJSON{
			Kind:         "arc",
			Center:       &c,
			Radius:       s.radius,
			SourceRadian: s.sourceRadian,
			TargetRadian: s.targetRadian,
		})
	case Circle:
		c := s.center
		return json.Marshal(segmentJSON{Kind: "circle", Center: &c, Radius: s.radius})
	default:
		return nil, fmt.Errorf("unsupported segment kind: %d", s.kind)
	}
}

// UnmarshalJSON deserializes JSON into a Segment, validating the kind tag and, for arcs and
// circles, that the radius is positive.
func (s *Segment) UnmarshalJSON(data []byte) error {
	var temp segmentJSON
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	switch temp.Kind {
	case "line":
		if temp.Source == nil || temp.Target == nil {
			return fmt.Errorf("line segment requires source and target")
		}
		*s = NewLine(*temp.Source, *temp.Target)
	case "arc":
		if temp.Center == nil {
			return fmt.Errorf("arc segment requires a center")
		}
		if temp.Radius <= 0 {
			return fmt.Errorf("invalid radius: must be positive, got %v", temp.Radius)
		}
		// An arc spanning more than a full turn doubles back on its circle and has no
		// meaningful monotone decomposition.
		if math.Abs(temp.TargetRadian-temp.SourceRadian) > 2*math.Pi {
			return fmt.Errorf("invalid arc: radian span exceeds a full turn")
		}
		*s = NewArc(*temp.Center, temp.Radius, temp.SourceRadian, temp.TargetRadian)
	case "circle":
		if temp.Center == nil {
			return fmt.Errorf("circle segment requires a center")
		}
		if temp.Radius <= 0 {
			return fmt.Errorf("invalid radius: must be positive, got %v", temp.Radius)
		}
		*s = NewFullCircle(*temp.Center, temp.Radius)
	default:
		return fmt.Errorf("unsupported segment kind: %q", temp.Kind)
	}
	return nil
}
