package core

import "math"

// ClampF bounds v to [lo, hi]
func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Ease moves cur a fixed fraction of the way toward target
func Ease(cur, target, factor float64) float64 {
	return cur + (target-cur)*factor
}

// Distance returns the euclidean distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Overlap reports a strict AABB overlap between two centre-anchored boxes
func Overlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return math.Abs(ax-bx) < (aw+bw)/2 && math.Abs(ay-by) < (ah+bh)/2
}
