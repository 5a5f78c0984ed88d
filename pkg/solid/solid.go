// Package solid bridges sdfx signed distance solids and geometry boxes.
package solid

import (
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/pkg/errors"

	"github.com/philipparndt/gobbox/pkg/geometry"
)

// Kinds lists the primitive names accepted by Primitive
var Kinds = []string{"box", "sphere", "cylinder"}

// FromBox3 converts an sdfx box
func FromBox3(b sdf.Box3) geometry.BBox {
	return geometry.BBox{
		Min: geometry.NewVector3(b.Min.X, b.Min.Y, b.Min.Z),
		Max: geometry.NewVector3(b.Max.X, b.Max.Y, b.Max.Z),
	}
}

// ToBox3 converts a box to its sdfx form
func ToBox3(b geometry.BBox) sdf.Box3 {
	return sdf.Box3{
		Min: v3.Vec{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		Max: v3.Vec{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
	}
}

// FromBox2 converts an sdfx 2D box
func FromBox2(b sdf.Box2) geometry.BBox2D {
	return geometry.BBox2D{
		Min: geometry.NewVector2(b.Min.X, b.Min.Y),
		Max: geometry.NewVector2(b.Max.X, b.Max.Y),
	}
}

// ToBox2 converts a 2D box to its sdfx form
func ToBox2(b geometry.BBox2D) sdf.Box2 {
	return sdf.Box2{
		Min: v2.Vec{X: b.Min.X, Y: b.Min.Y},
		Max: v2.Vec{X: b.Max.X, Y: b.Max.Y},
	}
}

// Bounds returns the bounding box sdfx reports for a solid
func Bounds(s sdf.SDF3) geometry.BBox {
	return FromBox3(s.BoundingBox())
}

// Bounds2D returns the bounding box sdfx reports for a 2D shape
func Bounds2D(s sdf.SDF2) geometry.BBox2D {
	return FromBox2(s.BoundingBox())
}

// Primitive builds a solid centered at the origin. size is the full extent
// for "box"; "sphere" uses size.X as the diameter; "cylinder" uses size.X as
// the diameter and size.Z as the height.
func Primitive(kind string, size geometry.Vector3) (sdf.SDF3, error) {
	var (
		s   sdf.SDF3
		err error
	)
	switch kind {
	case "box":
		s, err = sdf.Box3D(v3.Vec{X: size.X, Y: size.Y, Z: size.Z}, 0)
	case "sphere":
		s, err = sdf.Sphere3D(size.X / 2)
	case "cylinder":
		s, err = sdf.Cylinder3D(size.Z, size.X/2, 0)
	default:
		return nil, errors.Errorf("unknown primitive %q (want one of %v)", kind, Kinds)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build %s", kind)
	}
	return s, nil
}

// Rectangle builds a 2D rectangle centered at the origin
func Rectangle(size geometry.Vector2) sdf.SDF2 {
	return sdf.Box2D(v2.Vec{X: size.X, Y: size.Y}, 0)
}
