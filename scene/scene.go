package scene

import (
	"fmt"

	"github.com/achilleasa/octocam/log"
	"github.com/achilleasa/octocam/octree"
	"github.com/achilleasa/octocam/types"
	"github.com/google/uuid"
)

var logger = log.New("scene")

// An Object is anything placed in the scene. Objects are indexed by their
// anchor point; a positive radius turns the object into a bounding sphere for
// visibility tests.
type Object struct {
	ID     uuid.UUID
	Name   string
	Anchor types.Vec3
	Radius float32
}

func (o *Object) String() string {
	return fmt.Sprintf("%s (%s) @ (%3.3f, %3.3f, %3.3f) r=%3.3f", o.Name, o.ID, o.Anchor[0], o.Anchor[1], o.Anchor[2], o.Radius)
}

// Scene stores objects in a linear octree so that visibility queries can
// skip whole regions of space.
type Scene struct {
	tree    *octree.Octree[*Object]
	objects map[uuid.UUID]*Object

	// The largest object radius; octree regions are inflated by it when
	// culling so that spheres overlapping a region boundary are not lost.
	maxRadius float32
}

// Create a new scene covering the cube [min, min+side).
func New(min types.Vec3, side float32, maxDepth, leafThreshold int) (*Scene, error) {
	tree, err := octree.New[*Object](min, side, maxDepth, leafThreshold)
	if err != nil {
		return nil, err
	}

	return &Scene{
		tree:    tree,
		objects: make(map[uuid.UUID]*Object),
	}, nil
}

// Add an object to the scene. Objects without an ID are assigned a random one.
func (s *Scene) Add(obj *Object) error {
	if obj == nil {
		return ErrNilObject
	}
	if obj.Radius < 0 {
		return fmt.Errorf("scene: object %q: %w", obj.Name, ErrNegativeRadius)
	}
	id := obj.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	if _, exists := s.objects[id]; exists {
		return fmt.Errorf("scene: object %s: %w", id, ErrDuplicateObject)
	}

	if err := s.tree.Add(obj.Anchor, obj); err != nil {
		return fmt.Errorf("scene: object %q: %w", obj.Name, err)
	}

	obj.ID = id
	s.objects[id] = obj
	if obj.Radius > s.maxRadius {
		s.maxRadius = obj.Radius
	}
	return nil
}

// Lookup an object by its ID.
func (s *Scene) Object(id uuid.UUID) (*Object, bool) {
	obj, ok := s.objects[id]
	return obj, ok
}

// Get the number of objects in the scene.
func (s *Scene) Len() int {
	return len(s.objects)
}

// Get the octree that indexes the scene objects.
func (s *Scene) Tree() *octree.Octree[*Object] {
	return s.tree
}

// Remove all objects.
func (s *Scene) Clear() {
	s.tree.Clear()
	s.objects = make(map[uuid.UUID]*Object)
	s.maxRadius = 0
}

// Finalize invokes fn once for every populated octree leaf with the leaf
// location code, its bounds and the objects it holds. It is meant for bulk
// per-leaf preparation (e.g. building per-leaf draw batches) once the scene
// is populated. Leaves are visited in no particular order.
func (s *Scene) Finalize(fn func(code octree.Code, min, max types.Vec3, objects []*Object)) {
	s.tree.LinearProcess(func(n *octree.Node[*Object]) {
		min, max := s.tree.NodeBounds(n.Code())
		fn(n.Code(), min, max, n.Leaf().Items)
	}, true)
}
