package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/philipparndt/gobbox/pkg/analysis"
	"github.com/philipparndt/gobbox/pkg/geometry"
	"github.com/philipparndt/gobbox/pkg/openscad"
	"github.com/philipparndt/gobbox/pkg/scene"
	"github.com/philipparndt/gobbox/pkg/stl"
)

// loadReport measures a model file, picking the loader by extension
func loadReport(ctx context.Context, path string) (*analysis.Report, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".stl":
		model, err := stl.Parse(path)
		if err != nil {
			return nil, err
		}
		return analysis.AnalyzeModel(model), nil
	case ".gltf", ".glb":
		s, err := scene.Load(path)
		if err != nil {
			return nil, err
		}
		return analysis.Analyze(s.Bounds), nil
	case ".scad":
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve path %s", path)
		}
		stlPath, err := openscad.NewRenderer(filepath.Dir(abs)).RenderTemp(ctx, abs)
		if err != nil {
			return nil, err
		}
		defer os.Remove(stlPath)

		model, err := stl.Parse(stlPath)
		if err != nil {
			return nil, err
		}
		return analysis.AnalyzeModel(model), nil
	default:
		return nil, errors.Errorf("unsupported file type %q (want .stl, .gltf, .glb or .scad)", ext)
	}
}

// watchedFiles lists the files whose changes affect the report of path
func watchedFiles(path string) ([]string, error) {
	if strings.ToLower(filepath.Ext(path)) != ".scad" {
		return []string{path}, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve path %s", path)
	}
	return openscad.NewRenderer(filepath.Dir(abs)).ResolveDependencies(abs)
}

// parseComponents parses "x,y" or "x,y,z"
func parseComponents(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 && len(parts) != 3 {
		return nil, errors.Errorf("vector %q must have 2 or 3 components", s)
	}
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "vector %q", s)
		}
		out[i] = v
	}
	return out, nil
}

func parseVector3(s string) (geometry.Vector3, error) {
	c, err := parseComponents(s)
	if err != nil {
		return geometry.Vector3{}, err
	}
	if len(c) != 3 {
		return geometry.Vector3{}, errors.Errorf("vector %q must have 3 components", s)
	}
	return geometry.NewVector3(c[0], c[1], c[2]), nil
}

func printReport(w io.Writer, r *analysis.Report) {
	p := cfg.Precision
	unit := cfg.Unit

	fmt.Fprintln(w, "Bounding Box:")
	fmt.Fprintf(w, "  Min: %s\n", analysis.FormatVector(r.BoundingBox.Min, p))
	fmt.Fprintf(w, "  Max: %s\n", analysis.FormatVector(r.BoundingBox.Max, p))
	fmt.Fprintf(w, "  Center: %s\n\n", analysis.FormatVector(r.Center, p))

	fmt.Fprintln(w, "Dimensions:")
	fmt.Fprintf(w, "  Width (X): %s\n", analysis.FormatMeasurement(r.Dimensions.X, unit, p))
	fmt.Fprintf(w, "  Depth (Y): %s\n", analysis.FormatMeasurement(r.Dimensions.Y, unit, p))
	fmt.Fprintf(w, "  Height (Z): %s\n", analysis.FormatMeasurement(r.Dimensions.Z, unit, p))
	fmt.Fprintf(w, "  Longest axis: %s (%s)\n", analysis.AxisName(r.MaxExtentAxis), analysis.FormatMeasurement(r.MaxExtent, unit, p))
	fmt.Fprintf(w, "  Box surface area: %.*f\n", p, r.BoxSurfaceArea)
	fmt.Fprintf(w, "  Volume: %.*f\n", p, r.Volume)
	fmt.Fprintf(w, "  Box radius: %s\n", analysis.FormatMeasurement(r.BoxRadius, unit, p))
	fmt.Fprintf(w, "  Spherical radius: %s\n", analysis.FormatMeasurement(r.SphericalRadius, unit, p))

	if r.TriangleCount > 0 {
		fmt.Fprintln(w, "\nMesh:")
		fmt.Fprintf(w, "  Triangles: %d\n", r.TriangleCount)
		fmt.Fprintf(w, "  Surface Area: %.*f\n", p, r.MeshSurfaceArea)
	}
}
