package metrics

import (
	"github.com/achilleasa/octocam/octree"
	"github.com/achilleasa/octocam/renderer"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "octocam"
	viewLabel = "view"
)

var (
	treeNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "octree_nodes",
		Help:      "The number of materialized octree nodes.",
	})

	treeLeaves = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "octree_leaves",
		Help:      "The number of octree leaves.",
	})

	treeItems = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "octree_items",
		Help:      "The number of items stored in octree leaves.",
	})

	visibleObjects = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "visible_objects",
		Help:      "The number of objects visible in the last frame.",
	}, []string{viewLabel})

	culledRegions = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "culled_regions",
		Help:      "The number of octree regions culled in the last frame.",
	}, []string{viewLabel})

	framesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "frames_total",
		Help:      "The total number of rendered frames.",
	})

	cullDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "cull_duration_seconds",
		Help:      "The time spent culling the scene for a view.",
		Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
	}, []string{viewLabel})
)

// Recorder publishes renderer frame statistics.
type Recorder struct{}

var _ renderer.FrameObserver = Recorder{}

// ObserveFrame updates the per-view gauges and the frame counters.
func (Recorder) ObserveFrame(stats renderer.FrameStats) {
	framesTotal.Inc()
	for _, view := range stats.Views {
		labels := prometheus.Labels{viewLabel: view.Id}
		visibleObjects.With(labels).Set(float64(view.Visible))
		culledRegions.With(labels).Set(float64(view.RegionsCulled))
		cullDuration.With(labels).Observe(view.CullTime.Seconds())
	}
}

// ObserveTree updates the octree gauges.
func ObserveTree(stats octree.Stats) {
	treeNodes.Set(float64(stats.Nodes))
	treeLeaves.Set(float64(stats.Leaves))
	treeItems.Set(float64(stats.Items))
}
