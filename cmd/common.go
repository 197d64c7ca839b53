package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/achilleasa/octocam/camera"
	"github.com/achilleasa/octocam/config"
	"github.com/achilleasa/octocam/metrics"
	"github.com/achilleasa/octocam/renderer"
	"github.com/achilleasa/octocam/scene"
	"github.com/urfave/cli"
)

// Flags shared by all commands that build a scene.
var sceneFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "eye",
		Usage: "camera position as x,y,z",
	},
	cli.Float64Flag{
		Name:  "yaw",
		Usage: "camera yaw in degrees",
	},
	cli.Float64Flag{
		Name:  "pitch",
		Usage: "camera pitch in degrees",
	},
	cli.Float64Flag{
		Name:  "fov",
		Usage: "vertical field of view in degrees",
	},
	cli.IntFlag{
		Name:  "width",
		Usage: "viewport width",
	},
	cli.IntFlag{
		Name:  "height",
		Usage: "viewport height",
	},
	cli.IntFlag{
		Name:  "objects, n",
		Usage: "number of random objects to scatter in the scene",
	},
	cli.Int64Flag{
		Name:  "seed",
		Usage: "seed for the random object generator",
	},
}

type world struct {
	cfg    config.Config
	scene  *scene.Scene
	camera *camera.FreeCamera
	views  []renderer.View
}

// Load the config, apply the command line overrides and build the scene,
// the camera and any extra views.
func setupWorld(ctx *cli.Context) (*world, error) {
	cfg := config.Default()
	if location := ctx.GlobalString("config"); location != "" {
		var err error
		if cfg, err = config.Load(location); err != nil {
			return nil, err
		}
	}

	flags, err := parseFlags(ctx)
	if err != nil {
		return nil, err
	}
	cfg.Resolve(flags)
	setupLogging(ctx, cfg.LogLevel)

	w := &world{cfg: cfg}
	if w.scene, err = cfg.BuildScene(); err != nil {
		return nil, err
	}
	if w.camera, err = cfg.BuildCamera(); err != nil {
		return nil, err
	}
	if w.views, err = cfg.BuildViews(); err != nil {
		return nil, err
	}

	stats := w.scene.Tree().Stats()
	metrics.ObserveTree(stats)
	logger.Infof("scene: %d objects in %d octree nodes (%d leaves, depth %d)", w.scene.Len(), stats.Nodes, stats.Leaves, stats.MaxDepth)
	logger.Debugf("camera frustum:\n%s", w.camera.Frustum())
	return w, nil
}

func parseFlags(ctx *cli.Context) (config.Flags, error) {
	flags := config.Flags{
		FOV:         float32(ctx.Float64("fov")),
		Width:       ctx.Int("width"),
		Height:      ctx.Int("height"),
		RandomCount: ctx.Int("objects"),
	}

	if eye := ctx.String("eye"); eye != "" {
		v, err := parseVec3(eye)
		if err != nil {
			return flags, fmt.Errorf("invalid --eye value: %w", err)
		}
		flags.Eye = v
	}
	if ctx.IsSet("yaw") {
		yaw := float32(ctx.Float64("yaw"))
		flags.Yaw = &yaw
	}
	if ctx.IsSet("pitch") {
		pitch := float32(ctx.Float64("pitch"))
		flags.Pitch = &pitch
	}
	if ctx.IsSet("seed") {
		seed := ctx.Int64("seed")
		flags.Seed = &seed
	}
	return flags, nil
}

func parseVec3(s string) ([]float32, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("expected 3 comma separated components; got %d", len(parts))
	}

	v := make([]float32, 3)
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return nil, err
		}
		v[i] = float32(f)
	}
	return v, nil
}

func fmtVec3(v [3]float32) string {
	return fmt.Sprintf("(%3.3f, %3.3f, %3.3f)", v[0], v[1], v[2])
}
