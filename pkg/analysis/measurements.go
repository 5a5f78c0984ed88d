package analysis

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/philipparndt/gobbox/pkg/geometry"
	"github.com/philipparndt/gobbox/pkg/stl"
)

var axisNames = []string{"X", "Y", "Z"}

// Report contains the measurements derived from a bounding box
type Report struct {
	BoundingBox     geometry.BBox
	Dimensions      geometry.Vector3
	Center          geometry.Vector3
	Volume          float64
	BoxSurfaceArea  float64
	MaxExtentAxis   int
	MaxExtent       float64
	BoxRadius       float64
	SphericalRadius float64

	// Mesh statistics, zero when the report was built from a bare box
	TriangleCount   int
	MeshSurfaceArea float64
}

// Analyze measures a bounding box
func Analyze(box geometry.BBox) *Report {
	return &Report{
		BoundingBox:     box,
		Dimensions:      box.Dimension(),
		Center:          box.Center(),
		Volume:          geometry.Volume(box),
		BoxSurfaceArea:  box.SurfaceArea(),
		MaxExtentAxis:   box.MaximumExtent(),
		MaxExtent:       box.MaximumExtentValue(),
		BoxRadius:       box.BoxRadius(),
		SphericalRadius: box.SphericalRadius(),
	}
}

// AnalyzeModel measures the bounding box of an STL model and adds mesh statistics
func AnalyzeModel(model *stl.Model) *Report {
	r := Analyze(model.BoundingBox())
	r.TriangleCount = model.TriangleCount()
	r.MeshSurfaceArea = model.SurfaceArea()
	return r
}

// OverlapResult describes how two boxes relate
type OverlapResult struct {
	A, B      geometry.BBox
	Tolerance float64
	// Overlap is the inclusive test; touching boxes overlap
	Overlap bool
	// OverlapTolerance requires penetration deeper than Tolerance on every axis
	OverlapTolerance bool
	AContainsB       bool
	BContainsA       bool
	Union            geometry.BBox
}

// Compare tests two boxes against each other
func Compare(a, b geometry.BBox, tolerance float64) OverlapResult {
	return OverlapResult{
		A:                a,
		B:                b,
		Tolerance:        tolerance,
		Overlap:          a.Overlap(b),
		OverlapTolerance: a.OverlapTolerance(b, tolerance),
		AContainsB:       containsCorners(a, b),
		BContainsA:       containsCorners(b, a),
		Union:            a.UnionBox(b),
	}
}

func containsCorners(outer, inner geometry.BBox) bool {
	corners := geometry.Corners(inner)
	return lo.EveryBy(corners[:], outer.Inside)
}

// AxisName returns "X", "Y" or "Z"
func AxisName(axis int) string {
	if axis < 0 || axis >= len(axisNames) {
		return fmt.Sprintf("axis %d", axis)
	}
	return axisNames[axis]
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string, precision int) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.*f %s", precision, value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3, precision int) string {
	return fmt.Sprintf("(%.*f, %.*f, %.*f)", precision, v.X, precision, v.Y, precision, v.Z)
}
