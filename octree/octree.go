package octree

import (
	"fmt"

	"github.com/achilleasa/octocam/log"
	"github.com/achilleasa/octocam/types"
)

// MaxDepthLimit is the deepest level a tree may be configured with. Each
// level consumes 3 bits of the location code and the root sentinel uses one
// more, so 10 levels fill 31 of the 32 available bits.
const MaxDepthLimit = 10

var logger = log.New("octree")

// Leaf holds the elements that were inserted into a max-depth cell.
type Leaf[T any] struct {
	Items []T
}

// Node is either an internal node (children mask != 0, no leaf) or a leaf
// (children mask == 0, leaf != nil). Nodes never point to each other; related
// nodes are found by deriving their location codes.
type Node[T any] struct {
	code     Code
	children uint8
	leaf     *Leaf[T]
}

// Get the node location code.
func (n *Node[T]) Code() Code {
	return n.code
}

// Get the children-present bitmask; bit i is set when octant i exists.
func (n *Node[T]) ChildMask() uint8 {
	return n.children
}

// Check whether the child at the given octant exists.
func (n *Node[T]) HasChild(o Octant) bool {
	return n.children&(1<<o) != 0
}

// Get the node payload. Internal nodes return nil.
func (n *Node[T]) Leaf() *Leaf[T] {
	return n.leaf
}

// A TraverseFunc receives the bounds of the visited node and its payload (nil
// for internal nodes). Returning false skips the node's subtree.
type TraverseFunc[T any] func(min, max types.Vec3, leaf *Leaf[T]) bool

// Octree is a linear octree over an axis aligned cube. Nodes live in a map
// keyed by their location code.
//
// The tree is not safe for concurrent use.
type Octree[T any] struct {
	min  types.Vec3
	max  types.Vec3
	side float32

	maxDepth int

	// Accepted for API compatibility; insertion always subdivides down to
	// maxDepth regardless of this value.
	leafThreshold int

	nodes map[Code]*Node[T]
}

// Stats summarizes the tree contents.
type Stats struct {
	Nodes    int
	Leaves   int
	Items    int
	MaxDepth int
}

// Create a new octree covering the cube [min, min+side) on every axis.
func New[T any](min types.Vec3, side float32, maxDepth int, leafThreshold int) (*Octree[T], error) {
	if maxDepth < 1 || maxDepth > MaxDepthLimit {
		return nil, ErrInvalidDepth
	}
	if !(side > 0) {
		return nil, ErrInvalidSide
	}
	if leafThreshold > 0 {
		logger.Debugf("leaf element threshold %d is not enforced; leaves are always created at depth %d", leafThreshold, maxDepth)
	}

	return &Octree[T]{
		min:           min,
		max:           min.Add(types.Vec3{side, side, side}),
		side:          side,
		maxDepth:      maxDepth,
		leafThreshold: leafThreshold,
		nodes:         make(map[Code]*Node[T]),
	}, nil
}

// Get the bounds of the indexed cube.
func (t *Octree[T]) Bounds() (min, max types.Vec3) {
	return t.min, t.max
}

// Get the configured max depth.
func (t *Octree[T]) MaxDepth() int {
	return t.maxDepth
}

// Get the configured per-leaf element threshold. The value is informational.
func (t *Octree[T]) LeafThreshold() int {
	return t.leafThreshold
}

// Get the number of materialized nodes.
func (t *Octree[T]) Len() int {
	return len(t.nodes)
}

// Drop all nodes.
func (t *Octree[T]) Clear() {
	t.nodes = make(map[Code]*Node[T])
}

// Get the root node if the tree is not empty.
func (t *Octree[T]) Root() (*Node[T], bool) {
	return t.Lookup(RootCode)
}

// Find a node by its location code.
func (t *Octree[T]) Lookup(code Code) (*Node[T], bool) {
	n, ok := t.nodes[code]
	return n, ok
}

// Insert locates the max-depth cell containing p, creating any missing nodes
// along the way, and returns its leaf. Points that fall in the same cell
// share the same leaf. If p lies outside the indexed cube ErrOutOfRange is
// returned and the tree is left untouched.
func (t *Octree[T]) Insert(p types.Vec3) (*Leaf[T], error) {
	if !isInside(p, t.min, t.max) {
		return nil, ErrOutOfRange
	}

	node := t.rootNode()
	min, max := t.min, t.max
	for depth := 1; depth <= t.maxDepth; depth++ {
		mid := midpoint(min, max)
		octant := OctantFromBits(p[0] >= mid[0], p[1] >= mid[1], p[2] >= mid[2])

		min, max = childBounds(min, max, octant)
		node = t.childNode(node, octant, depth == t.maxDepth)
	}

	t.mustBeValid(node)
	return node.leaf, nil
}

// Add inserts p and appends items to the leaf that contains it.
func (t *Octree[T]) Add(p types.Vec3, items ...T) error {
	leaf, err := t.Insert(p)
	if err != nil {
		return err
	}
	leaf.Items = append(leaf.Items, items...)
	return nil
}

// Traverse visits the tree depth-first starting from the root; each node is
// visited before its children and children are visited in octant order. It
// returns false if the tree is empty.
func (t *Octree[T]) Traverse(fn TraverseFunc[T]) bool {
	if fn == nil {
		panic("octree: nil traverse callback")
	}

	root, ok := t.nodes[RootCode]
	if !ok {
		return false
	}

	t.traverse(fn, root, t.min, t.max)
	return true
}

func (t *Octree[T]) traverse(fn TraverseFunc[T], node *Node[T], min, max types.Vec3) {
	t.mustBeValid(node)
	if !fn(min, max, node.leaf) {
		return
	}

	for o := Octant(0); o < numOctants; o++ {
		if !node.HasChild(o) {
			continue
		}

		child, ok := t.nodes[node.code.Child(o)]
		if !ok {
			panic(fmt.Sprintf("octree: node %s flags missing child %d", node.code, o))
		}

		childMin, childMax := childBounds(min, max, o)
		t.traverse(fn, child, childMin, childMax)
	}
}

// LinearProcess invokes fn for every node in the tree, or only for leaves if
// leavesOnly is set. Nodes are visited in no particular order and no bounds
// are computed; use NodeBounds if they are needed.
func (t *Octree[T]) LinearProcess(fn func(*Node[T]), leavesOnly bool) {
	if fn == nil {
		panic("octree: nil process callback")
	}

	for _, node := range t.nodes {
		if leavesOnly && !t.IsLeaf(node) {
			continue
		}
		fn(node)
	}
}

// Get the depth of a node; the root is at depth 0.
func (t *Octree[T]) NodeDepth(n *Node[T]) int {
	return n.code.Depth()
}

// Get the parent of a node. The root has no parent.
func (t *Octree[T]) ParentNode(n *Node[T]) (*Node[T], bool) {
	return t.Lookup(n.code.Parent())
}

// Check whether a node has no children.
func (t *Octree[T]) IsLeaf(n *Node[T]) bool {
	return n.children == 0
}

// Check that a node either has children or carries a payload, but not both.
func (t *Octree[T]) IsValidNode(n *Node[T]) bool {
	return (n.children != 0) != (n.leaf != nil)
}

// NodeBounds recovers the cube covered by the node with the given code by
// replaying the octant digits of the code from the root down.
func (t *Octree[T]) NodeBounds(code Code) (min, max types.Vec3) {
	if !code.IsValid() {
		panic(fmt.Sprintf("octree: bounds of %s", code))
	}

	min, max = t.min, t.max
	for level := code.Depth() - 1; level >= 0; level-- {
		min, max = childBounds(min, max, Octant((code>>(3*uint(level)))&7))
	}
	return min, max
}

// Collect node, leaf and item counts.
func (t *Octree[T]) Stats() Stats {
	var stats Stats
	for code, node := range t.nodes {
		stats.Nodes++
		if depth := code.Depth(); depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}
		if node.leaf != nil {
			stats.Leaves++
			stats.Items += len(node.leaf.Items)
		}
	}
	return stats
}

func (t *Octree[T]) rootNode() *Node[T] {
	if root, ok := t.nodes[RootCode]; ok {
		return root
	}

	root := &Node[T]{code: RootCode}
	t.nodes[RootCode] = root
	return root
}

// Get the child of parent at octant, creating it if needed. Only nodes at max
// depth receive a payload.
func (t *Octree[T]) childNode(parent *Node[T], octant Octant, isLeaf bool) *Node[T] {
	code := parent.code.Child(octant)
	if parent.HasChild(octant) {
		child, ok := t.nodes[code]
		if !ok {
			panic(fmt.Sprintf("octree: node %s flags missing child %d", parent.code, octant))
		}
		return child
	}

	if parent.leaf != nil {
		panic(fmt.Sprintf("octree: cannot subdivide leaf node %s", parent.code))
	}
	if _, exists := t.nodes[code]; exists {
		panic(fmt.Sprintf("octree: node %s exists but is not flagged in its parent", code))
	}

	child := &Node[T]{code: code}
	if isLeaf {
		child.leaf = &Leaf[T]{}
	}
	t.nodes[code] = child
	parent.children |= 1 << octant
	return child
}

func (t *Octree[T]) mustBeValid(n *Node[T]) {
	if !t.IsValidNode(n) {
		panic(fmt.Sprintf("octree: node %s has inconsistent state (children: %08b, payload: %t)", n.code, n.children, n.leaf != nil))
	}
}

func isInside(p, min, max types.Vec3) bool {
	return p[0] >= min[0] && p[1] >= min[1] && p[2] >= min[2] &&
		p[0] < max[0] && p[1] < max[1] && p[2] < max[2]
}

func midpoint(min, max types.Vec3) types.Vec3 {
	return min.Add(max.Sub(min).Mul(0.5))
}

// Get the bounds of the child cube at octant. Siblings share their parent's
// midpoint exactly.
func childBounds(min, max types.Vec3, octant Octant) (types.Vec3, types.Vec3) {
	mid := midpoint(min, max)
	childMin, childMax := min, mid

	ox, oy, oz := octant.Offsets()
	for axis, offset := range [3]float32{ox, oy, oz} {
		if offset != 0 {
			childMin[axis], childMax[axis] = mid[axis], max[axis]
		}
	}
	return childMin, childMax
}
