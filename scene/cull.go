package scene

import (
	"time"

	"github.com/achilleasa/octocam/camera"
	"github.com/achilleasa/octocam/octree"
	"github.com/achilleasa/octocam/types"
)

// CullResult lists the objects that passed a visibility query together with
// counters describing the work done.
type CullResult struct {
	Visible []*Object

	NodesVisited  int
	RegionsCulled int
	LeavesVisited int
	ObjectsTested int

	Duration time.Duration
}

// Cull collects the objects visible from view. Octree regions whose bounds
// (inflated by the largest object radius) fall outside the view frustum are
// skipped along with their subtree. Objects are returned in traversal order.
func (s *Scene) Cull(view camera.ViewSource) CullResult {
	var (
		res     CullResult
		start   = time.Now()
		frustum = view.Frustum()
		pad     = types.Vec3{s.maxRadius, s.maxRadius, s.maxRadius}
	)

	s.tree.Traverse(func(min, max types.Vec3, leaf *octree.Leaf[*Object]) bool {
		res.NodesVisited++
		if !frustum.IntersectsAABB(min.Sub(pad), max.Add(pad)) {
			res.RegionsCulled++
			return false
		}

		if leaf == nil {
			return true
		}

		res.LeavesVisited++
		for _, obj := range leaf.Items {
			res.ObjectsTested++
			if isVisible(view, &frustum, obj) {
				res.Visible = append(res.Visible, obj)
			}
		}
		return true
	})

	res.Duration = time.Since(start)
	logger.Debugf(
		"cull: visible %d/%d objects; visited %d nodes (%d leaves), culled %d regions in %s",
		len(res.Visible), s.Len(), res.NodesVisited, res.LeavesVisited, res.RegionsCulled, res.Duration,
	)
	return res
}

func isVisible(view camera.ViewSource, frustum *camera.Frustum, obj *Object) bool {
	if obj.Radius > 0 {
		return frustum.IntersectsSphere(obj.Anchor, obj.Radius)
	}
	return view.IsPointInsideFrustum(obj.Anchor)
}
