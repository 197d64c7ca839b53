package octree

import (
	"fmt"
	"math/bits"
)

// Octant identifies one of the eight children of a node. The index packs the
// "upper half" bit of each axis as 4*y + 2*z + x.
type Octant uint8

const (
	DownBackLeft Octant = iota
	DownBackRight
	DownFrontLeft
	DownFrontRight
	UpBackLeft
	UpBackRight
	UpFrontLeft
	UpFrontRight

	numOctants = 8
)

// Build an octant from its per-axis upper half flags.
func OctantFromBits(x, y, z bool) Octant {
	var o Octant
	if x {
		o |= 1
	}
	if z {
		o |= 2
	}
	if y {
		o |= 4
	}
	return o
}

// Get the per-axis offsets (0 or 1) of the octant in x, y, z order.
func (o Octant) Offsets() (x, y, z float32) {
	return float32(o & 1), float32((o >> 2) & 1), float32((o >> 1) & 1)
}

// Code is a location code. It stores the path from the root as base-8 digits
// below a leading sentinel bit, so the root is 1, its children are 8..15,
// their children are 64..127 and so on.
type Code uint32

// RootCode is the location code of the root node.
const RootCode Code = 1

// Get the depth of the node addressed by this code. The root is at depth 0.
func (c Code) Depth() int {
	if c == 0 {
		panic("octree: depth of invalid location code 0")
	}
	return (bits.Len32(uint32(c)) - 1) / 3
}

// Get the code of the parent node. The parent of the root is the invalid code 0.
func (c Code) Parent() Code {
	return c >> 3
}

// Get the code of a child node.
func (c Code) Child(o Octant) Code {
	return c<<3 | Code(o&7)
}

// Get the octant this node occupies within its parent.
func (c Code) Octant() Octant {
	return Octant(c & 7)
}

// Check that the code has a sentinel bit aligned to a whole level.
func (c Code) IsValid() bool {
	return c != 0 && (bits.Len32(uint32(c))-1)%3 == 0
}

func (c Code) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("invalid(%b)", uint32(c))
	}

	depth := c.Depth()
	if depth == 0 {
		return "1"
	}
	digits := make([]byte, depth)
	for i := depth - 1; i >= 0; i-- {
		digits[i] = '0' + byte(c&7)
		c >>= 3
	}
	return "1." + string(digits)
}
