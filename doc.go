// Package sweep implements a Bentley–Ottmann-style sweep-line engine that reports every
// intersection point among a collection of planar segments, where each segment is either a
// straight line segment or a circular arc.
//
// # Overview
//
// An [Engine] owns three pieces of mutable state: an event queue ordered by sweep order
// (increasing x, then increasing y), a status structure holding the segments currently
// crossing the sweep line, and a de-duplicating index of reported points. [Engine.PushSegment]
// accepts [segment.Segment] values (lines, arcs, or full circles); [Engine.Intersection] runs
// the sweep to completion and returns every point lying on at least two of the original input
// segments. An arc counts as one input however many monotone pieces it is split into; a full
// circle counts as its two semicircular halves, so the points where those halves meet are
// reported.
//
// # Precision Control with Epsilon
//
// Like the rest of this module, the engine takes floating-point tolerance as an
// [options.GeometryOptionsFunc] supplied to [New], rather than a global. This lets
// independent [Engine] instances run concurrently with different tolerances.
//
// # Acknowledgments
//
// This library builds on techniques described in the standard reference on sweep-line
// algorithms for computing all segment intersections, extended here to handle circular
// arcs by decomposing them into x-monotone pieces before sweeping.
package sweep

func init() {
	logDebugf("debug logging enabled")
}
