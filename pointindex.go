package sweep

import (
	"github.com/google/btree"

	"github.com/geoarc/sweep/numeric"
	"github.com/geoarc/sweep/options"
	"github.com/geoarc/sweep/point"
	"github.com/geoarc/sweep/segment"
)

// pointIndex accumulates the points at which the sweep saw two or more segments meet,
// de-duplicated within epsilon and held in report order. Two discoveries of the same
// geometric point can differ in their last bits depending on which pair of curves produced
// them, so membership is decided by the same tolerant comparison used everywhere else; the
// first discovery wins.
type pointIndex struct {
	tree *btree.BTreeG[point.Point]
}

func newPointIndex(opts ...options.GeometryOptionsFunc) *pointIndex {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	return &pointIndex{tree: btree.NewG[point.Point](2, pointLessFunc(geoOpts.Epsilon))}
}

// pointLessFunc orders points for reporting: decreasing x, ties broken by decreasing y,
// with epsilon-equal coordinates treated as equal so near-duplicate discoveries collapse
// into a single entry.
func pointLessFunc(epsilon float64) btree.LessFunc[point.Point] {
	return func(a, b point.Point) bool {
		if !numeric.FloatEquals(a.X(), b.X(), epsilon) {
			return a.X() > b.X()
		}
		if numeric.FloatEquals(a.Y(), b.Y(), epsilon) {
			return false
		}
		return a.Y() > b.Y()
	}
}

func (ix *pointIndex) insert(p point.Point) {
	if _, found := ix.tree.Get(p); found {
		return
	}
	ix.tree.ReplaceOrInsert(p)
}

func (ix *pointIndex) inOrder() []point.Point {
	out := make([]point.Point, 0, ix.tree.Len())
	ix.tree.Ascend(func(p point.Point) bool {
		out = append(out, p)
		return true
	})
	return out
}

// filterToOriginals keeps only the candidate points lying on at least two of the original
// input segments. The sweep runs over monotone pieces, and some of its candidates are
// artefacts of that decomposition: the point where two sub-arcs of the same parent meet is
// an event with two segments on it, but not an intersection of distinct inputs. Checking
// containment against the originals reverses exactly those artefacts.
func filterToOriginals(candidates []point.Point, originals []segment.Segment, opts ...options.GeometryOptionsFunc) []point.Point {
	out := make([]point.Point, 0, len(candidates))
	for _, p := range candidates {
		count := 0
		for _, s := range originals {
			if s.ContainsPoint(p, opts...) {
				count++
				if count == 2 {
					break
				}
			}
		}
		if count >= 2 {
			out = append(out, p)
		}
	}
	return out
}
