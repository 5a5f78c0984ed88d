package stl

import (
	"github.com/philipparndt/gobbox/pkg/geometry"
	"github.com/samber/lo"
)

// Model represents a complete STL model
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// Vertices returns every triangle vertex in file order, duplicates included
func (m *Model) Vertices() []geometry.Vector3 {
	return lo.FlatMap(m.Triangles, func(t geometry.Triangle, _ int) []geometry.Vector3 {
		return []geometry.Vector3{t.V1, t.V2, t.V3}
	})
}

// BoundingBox calculates the bounding box of the entire model.
// A model without triangles yields the empty box.
func (m *Model) BoundingBox() geometry.BBox {
	bbox := geometry.NewBBox()
	for _, triangle := range m.Triangles {
		bbox.ExtendBox(triangle.Bounds())
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	return lo.SumBy(m.Triangles, func(t geometry.Triangle) float64 {
		return t.Area()
	})
}
