package geometry

// InsideBox reports whether both corners of other lie inside b. For a
// non-empty other this is subset containment; empty or inverted boxes are
// only tested by their stored corners.
func InsideBox(b, other BBox2D) bool {
	return b.Inside(other.Min) && b.Inside(other.Max)
}
