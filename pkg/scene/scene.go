// Package scene computes bounding boxes of glTF scenes.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	log "github.com/sirupsen/logrus"

	"github.com/philipparndt/gobbox/pkg/geometry"
)

// MeshBounds is the world-space box of one mesh instance in the scene graph
type MeshBounds struct {
	Node   string
	Mesh   string
	Bounds geometry.BBox
}

// Scene holds the boxes of every mesh instance and their union
type Scene struct {
	Meshes []MeshBounds
	Bounds geometry.BBox
}

// Load reads a .gltf or .glb file and computes its bounds
func Load(filename string) (*Scene, error) {
	doc, err := gltf.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read gltf %s", filename)
	}
	return FromDocument(doc)
}

// FromDocument computes the bounds of the document's default scene.
// Documents without scenes are treated as if every root node were listed.
func FromDocument(doc *gltf.Document) (*Scene, error) {
	s := &Scene{Bounds: geometry.NewBBox()}

	roots, err := rootNodes(doc)
	if err != nil {
		return nil, err
	}

	// nodes on the path from the current root
	onPath := make(map[uint32]bool)

	var walk func(id uint32, parent mgl64.Mat4) error
	walk = func(id uint32, parent mgl64.Mat4) error {
		if int(id) >= len(doc.Nodes) {
			return errors.Errorf("node %d out of range", id)
		}
		if onPath[id] {
			return errors.Errorf("node %d: cycle in node hierarchy", id)
		}
		onPath[id] = true
		defer delete(onPath, id)

		node := doc.Nodes[id]
		world := parent.Mul4(localTransform(node))

		if node.Mesh != nil {
			local, err := meshBounds(doc, *node.Mesh)
			if err != nil {
				return errors.Wrapf(err, "node %q", node.Name)
			}
			if !local.IsEmpty() {
				b := geometry.Transform(local, world)
				s.Meshes = append(s.Meshes, MeshBounds{
					Node:   node.Name,
					Mesh:   doc.Meshes[*node.Mesh].Name,
					Bounds: b,
				})
				s.Bounds.ExtendBox(b)
			}
		}

		for _, child := range node.Children {
			if err := walk(child, world); err != nil {
				return err
			}
		}
		return nil
	}

	for _, id := range roots {
		if err := walk(id, mgl64.Ident4()); err != nil {
			return nil, err
		}
	}

	log.WithFields(log.Fields{
		"meshes": len(s.Meshes),
		"bounds": s.Bounds.String(),
	}).Debug("computed gltf scene bounds")
	return s, nil
}

func rootNodes(doc *gltf.Document) ([]uint32, error) {
	if len(doc.Scenes) == 0 {
		children := make(map[uint32]bool)
		for _, n := range doc.Nodes {
			for _, c := range n.Children {
				children[c] = true
			}
		}
		var roots []uint32
		for i := range doc.Nodes {
			if !children[uint32(i)] {
				roots = append(roots, uint32(i))
			}
		}
		return roots, nil
	}

	idx := uint32(0)
	if doc.Scene != nil {
		idx = *doc.Scene
	}
	if int(idx) >= len(doc.Scenes) {
		return nil, errors.Errorf("scene %d out of range", idx)
	}
	return doc.Scenes[idx].Nodes, nil
}

// meshBounds folds the POSITION attribute of every primitive of a mesh
func meshBounds(doc *gltf.Document, meshID uint32) (geometry.BBox, error) {
	b := geometry.NewBBox()
	if int(meshID) >= len(doc.Meshes) {
		return b, errors.Errorf("mesh %d out of range", meshID)
	}
	mesh := doc.Meshes[meshID]

	for i, primitive := range mesh.Primitives {
		accessor, ok := primitive.Attributes["POSITION"]
		if !ok {
			log.WithFields(log.Fields{"mesh": mesh.Name, "primitive": i}).Debug("primitive without positions")
			continue
		}
		if int(accessor) >= len(doc.Accessors) {
			return b, errors.Errorf("mesh %q: accessor %d out of range", mesh.Name, accessor)
		}

		positions, err := modeler.ReadPosition(doc, doc.Accessors[accessor], nil)
		if err != nil {
			return b, errors.Wrapf(err, "mesh %q: failed to read positions", mesh.Name)
		}
		for _, p := range positions {
			b.Extend(geometry.NewVector3(float64(p[0]), float64(p[1]), float64(p[2])))
		}
	}
	return b, nil
}

var identityMatrix = [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// localTransform returns the node's matrix, or its TRS composition when no
// matrix is set. Zero-valued rotation and scale are treated as identity.
func localTransform(node *gltf.Node) mgl64.Mat4 {
	if node.Matrix != ([16]float32{}) && node.Matrix != identityMatrix {
		var m mgl64.Mat4
		for i, v := range node.Matrix {
			m[i] = float64(v)
		}
		return m
	}

	t := node.Translation
	translation := mgl64.Translate3D(float64(t[0]), float64(t[1]), float64(t[2]))

	rotation := mgl64.Ident4()
	if r := node.Rotation; r != ([4]float32{}) {
		q := mgl64.Quat{W: float64(r[3]), V: mgl64.Vec3{float64(r[0]), float64(r[1]), float64(r[2])}}
		rotation = q.Normalize().Mat4()
	}

	scale := mgl64.Ident4()
	if sc := node.Scale; sc != ([3]float32{}) {
		scale = mgl64.Scale3D(float64(sc[0]), float64(sc[1]), float64(sc[2]))
	}

	return translation.Mul4(rotation).Mul4(scale)
}
