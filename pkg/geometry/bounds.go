package geometry

import (
	"fmt"
	"io"
	"math"
)

// Point is the vector constraint a Bounds is built over. Vector2 and
// Vector3 implement it.
type Point[V any] interface {
	comparable
	fmt.Stringer
	Dims() int
	Axis(i int) float64
	Fill(s float64) V
	Add(other V) V
	Sub(other V) V
	Mul(scalar float64) V
	AddScalar(scalar float64) V
	MulElem(other V) V
	DivElem(other V) V
	Min(other V) V
	Max(other V) V
}

// Bounds is an axis-aligned bounding box spanning Min to Max on every axis.
//
// The zero value is the degenerate box at the origin. Use Empty, NewBBox or
// NewBBox2D for a box that contains nothing; it stores +MaxFloat64 in Min and
// -MaxFloat64 in Max so that any Union yields exactly the other operand.
type Bounds[V Point[V]] struct {
	Min V
	Max V
}

// BBox is a 3D axis-aligned bounding box
type BBox = Bounds[Vector3]

// BBox2D is a 2D axis-aligned bounding box
type BBox2D = Bounds[Vector2]

// Empty returns the empty box, the identity of Union
func Empty[V Point[V]]() Bounds[V] {
	var zero V
	return Bounds[V]{
		Min: zero.Fill(math.MaxFloat64),
		Max: zero.Fill(-math.MaxFloat64),
	}
}

// NewBBox creates an empty 3D bounding box
func NewBBox() BBox {
	return Empty[Vector3]()
}

// NewBBox2D creates an empty 2D bounding box
func NewBBox2D() BBox2D {
	return Empty[Vector2]()
}

// FromPoint creates a degenerate box containing only p
func FromPoint[V Point[V]](p V) Bounds[V] {
	return Bounds[V]{Min: p, Max: p}
}

// FromCenter creates a box reaching r from c along every axis.
// A negative r produces an inverted box.
func FromCenter[V Point[V]](c V, r float64) Bounds[V] {
	return Bounds[V]{Min: c.AddScalar(-r), Max: c.AddScalar(r)}
}

// FromCorners creates the box spanned by two opposite corners given in any order
func FromCorners[V Point[V]](p1, p2 V) Bounds[V] {
	return Bounds[V]{Min: p1.Min(p2), Max: p1.Max(p2)}
}

// BoundsOf returns the smallest box containing all points, or the empty box
// when none are given.
func BoundsOf[V Point[V]](points ...V) Bounds[V] {
	b := Empty[V]()
	for _, p := range points {
		b.Extend(p)
	}
	return b
}

// Union returns the smallest box containing b and p
func (b Bounds[V]) Union(p V) Bounds[V] {
	return Bounds[V]{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// UnionBox returns the smallest box containing b and other
func (b Bounds[V]) UnionBox(other Bounds[V]) Bounds[V] {
	return Bounds[V]{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Extend grows the box in place to include p
func (b *Bounds[V]) Extend(p V) {
	*b = b.Union(p)
}

// ExtendBox grows the box in place to include other
func (b *Bounds[V]) ExtendBox(other Bounds[V]) {
	*b = b.UnionBox(other)
}

// Overlap reports whether the boxes intersect. Touching boundaries count.
func (b Bounds[V]) Overlap(other Bounds[V]) bool {
	for i := 0; i < b.Min.Dims(); i++ {
		if b.Max.Axis(i) < other.Min.Axis(i) || b.Min.Axis(i) > other.Max.Axis(i) {
			return false
		}
	}
	return true
}

// OverlapTolerance reports whether the boxes intersect by more than tol on
// every axis. The comparisons are strict, so boxes that only touch do not
// overlap even with tol == 0.
func (b Bounds[V]) OverlapTolerance(other Bounds[V], tol float64) bool {
	for i := 0; i < b.Min.Dims(); i++ {
		if !(b.Max.Axis(i)-other.Min.Axis(i) > tol && tol < other.Max.Axis(i)-b.Min.Axis(i)) {
			return false
		}
	}
	return true
}

// OverlapPoint reports whether p lies within the closed box
func (b Bounds[V]) OverlapPoint(p V) bool {
	for i := 0; i < b.Min.Dims(); i++ {
		v := p.Axis(i)
		if v < b.Min.Axis(i) || v > b.Max.Axis(i) {
			return false
		}
	}
	return true
}

// Inside reports whether p lies within the closed box
func (b Bounds[V]) Inside(p V) bool {
	return b.OverlapPoint(p)
}

// IsEmpty reports whether Min exceeds Max on any axis
func (b Bounds[V]) IsEmpty() bool {
	for i := 0; i < b.Min.Dims(); i++ {
		if b.Min.Axis(i) > b.Max.Axis(i) {
			return true
		}
	}
	return false
}

// Dimension returns the extent along every axis. Meaningless for an empty box.
func (b Bounds[V]) Dimension() V {
	return b.Max.Sub(b.Min)
}

// SurfaceArea returns the total face area of a 3D box, or the area of a 2D box
func (b Bounds[V]) SurfaceArea() float64 {
	d := b.Dimension()
	if d.Dims() == 2 {
		return d.Axis(0) * d.Axis(1)
	}
	dx, dy, dz := d.Axis(0), d.Axis(1), d.Axis(2)
	return 2 * (dx*dy + dx*dz + dy*dz)
}

// MaximumExtent returns the index of the longest axis (0=x, 1=y, 2=z).
// In 3D x wins ties against y and z wins ties against either; in 2D y wins ties.
func (b Bounds[V]) MaximumExtent() int {
	d := b.Dimension()
	if d.Dims() == 2 {
		if d.Axis(0) > d.Axis(1) {
			return 0
		}
		return 1
	}
	dx, dy, dz := d.Axis(0), d.Axis(1), d.Axis(2)
	switch {
	case dx >= dy && dx > dz:
		return 0
	case dy > dz:
		return 1
	default:
		return 2
	}
}

// MaximumExtentValue returns the length of the longest axis
func (b Bounds[V]) MaximumExtentValue() float64 {
	d := b.Dimension()
	extent := d.Axis(0)
	for i := 1; i < d.Dims(); i++ {
		extent = math.Max(extent, d.Axis(i))
	}
	return extent
}

// LerpPt interpolates between Min and Max using one parameter per axis.
// Parameters outside [0, 1] extrapolate.
func (b Bounds[V]) LerpPt(t V) V {
	return b.Min.MulElem(t.Fill(1).Sub(t)).Add(b.Max.MulElem(t))
}

// Offset returns the position of p relative to the box, the inverse of
// LerpPt. Axes with zero extent yield Inf or NaN.
func (b Bounds[V]) Offset(p V) V {
	return p.Sub(b.Min).DivElem(b.Dimension())
}

// Center returns the midpoint of the box
func (b Bounds[V]) Center() V {
	return b.Min.Add(b.Max).Mul(0.5)
}

// BoxRadius returns half the longest extent, treating the box as a cube
func (b Bounds[V]) BoxRadius() float64 {
	return 0.5 * b.MaximumExtentValue()
}

// SphericalRadius returns the radius of the sphere circumscribing the cube
// of BoxRadius
func (b Bounds[V]) SphericalRadius() float64 {
	return b.BoxRadius() * math.Sqrt(float64(b.Min.Dims()))
}

// Expand grows the box by delta on every side. A negative delta shrinks it
// and may invert it.
func (b *Bounds[V]) Expand(delta float64) {
	b.Max = b.Max.AddScalar(delta)
	b.Min = b.Min.AddScalar(-delta)
}

func (b Bounds[V]) String() string {
	return fmt.Sprintf("[%v, %v]", b.Min, b.Max)
}

// WriteTo writes the diagnostic form of the box followed by a newline
func (b Bounds[V]) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintln(w, b.String())
	return int64(n), err
}
