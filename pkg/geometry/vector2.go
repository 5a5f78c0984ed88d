package geometry

import (
	"fmt"
	"math"
)

// Vector2 represents a 2D point or vector
type Vector2 struct {
	X, Y float64
}

// NewVector2 creates a new 2D vector
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Dims returns the number of components
func (Vector2) Dims() int {
	return 2
}

// Axis returns the component along axis i (0=x, 1=y)
func (v Vector2) Axis(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(fmt.Sprintf("geometry: axis %d out of range for Vector2", i))
}

// Fill returns a vector with every component set to s
func (Vector2) Fill(s float64) Vector2 {
	return Vector2{X: s, Y: s}
}

// Add returns the sum of two vectors
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference between two vectors
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul multiplies the vector by a scalar
func (v Vector2) Mul(scalar float64) Vector2 {
	return Vector2{X: v.X * scalar, Y: v.Y * scalar}
}

// AddScalar adds a scalar to every component
func (v Vector2) AddScalar(scalar float64) Vector2 {
	return Vector2{X: v.X + scalar, Y: v.Y + scalar}
}

// MulElem multiplies two vectors component-wise
func (v Vector2) MulElem(other Vector2) Vector2 {
	return Vector2{X: v.X * other.X, Y: v.Y * other.Y}
}

// DivElem divides two vectors component-wise
func (v Vector2) DivElem(other Vector2) Vector2 {
	return Vector2{X: v.X / other.X, Y: v.Y / other.Y}
}

// Dot returns the dot product of two vectors
func (v Vector2) Dot(other Vector2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the magnitude of the vector
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance between two points
func (v Vector2) Distance(other Vector2) float64 {
	return v.Sub(other).Length()
}

// Normalize returns a unit vector in the same direction
func (v Vector2) Normalize() Vector2 {
	length := v.Length()
	if length == 0 {
		return Vector2{}
	}
	return v.Mul(1.0 / length)
}

// Min returns a vector with the minimum components of two vectors
func (v Vector2) Min(other Vector2) Vector2 {
	return Vector2{X: math.Min(v.X, other.X), Y: math.Min(v.Y, other.Y)}
}

// Max returns a vector with the maximum components of two vectors
func (v Vector2) Max(other Vector2) Vector2 {
	return Vector2{X: math.Max(v.X, other.X), Y: math.Max(v.Y, other.Y)}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
