package geometry

import "github.com/go-gl/mathgl/mgl64"

// Volume returns the volume of a 3D bounding box
func Volume(b BBox) float64 {
	d := b.Dimension()
	return d.X * d.Y * d.Z
}

// Corners returns the eight corners of a 3D box, x varying fastest
func Corners(b BBox) [8]Vector3 {
	var cs [8]Vector3
	for i := range cs {
		c := b.Min
		if i&1 != 0 {
			c.X = b.Max.X
		}
		if i&2 != 0 {
			c.Y = b.Max.Y
		}
		if i&4 != 0 {
			c.Z = b.Max.Z
		}
		cs[i] = c
	}
	return cs
}

// Transform returns the bounds of the eight corners of b after applying m
func Transform(b BBox, m mgl64.Mat4) BBox {
	out := NewBBox()
	for _, c := range Corners(b) {
		out.Extend(FromVec3(mgl64.TransformCoordinate(c.Vec3(), m)))
	}
	return out
}
