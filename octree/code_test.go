package octree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeArithmetic(t *testing.T) {
	type spec struct {
		path     []Octant
		expCode  Code
		expDepth int
		expStr   string
	}
	specs := []spec{
		{nil, 1, 0, "1"},
		{[]Octant{DownBackLeft}, 8, 1, "1.0"},
		{[]Octant{UpFrontRight}, 15, 1, "1.7"},
		{[]Octant{UpBackLeft, DownFrontRight}, 0x63, 2, "1.43"},
		{[]Octant{7, 7, 7, 7, 7, 7, 7, 7, 7, 7}, 0x7fffffff, 10, "1.7777777777"},
	}

	for index, s := range specs {
		code := RootCode
		for _, o := range s.path {
			code = code.Child(o)
		}

		require.Equal(t, s.expCode, code, "[spec %d] code", index)
		require.Equal(t, s.expDepth, code.Depth(), "[spec %d] depth", index)
		require.Equal(t, s.expStr, code.String(), "[spec %d] string", index)
		require.True(t, code.IsValid(), "[spec %d] valid", index)

		// Walk back up to the root
		for i := len(s.path) - 1; i >= 0; i-- {
			require.Equal(t, s.path[i], code.Octant(), "[spec %d] octant at level %d", index, i+1)
			code = code.Parent()
		}
		require.Equal(t, RootCode, code)
	}
}

func TestCodeValidity(t *testing.T) {
	require.False(t, Code(0).IsValid())
	require.False(t, Code(2).IsValid())
	require.False(t, Code(0x10).IsValid())
	require.Equal(t, Code(0), RootCode.Parent())
	require.Panics(t, func() { Code(0).Depth() })
}

func TestOctantBits(t *testing.T) {
	for o := Octant(0); o < numOctants; o++ {
		x, y, z := o.Offsets()
		require.Equal(t, o, OctantFromBits(x == 1, y == 1, z == 1))
		require.Equal(t, int(o), int(4*y+2*z+x))
	}

	require.Equal(t, DownFrontLeft, OctantFromBits(false, false, true))
	require.Equal(t, UpBackRight, OctantFromBits(true, true, false))
}
