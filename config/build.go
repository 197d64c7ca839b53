package config

import (
	"fmt"
	"math/rand"

	"github.com/achilleasa/octocam/camera"
	"github.com/achilleasa/octocam/renderer"
	"github.com/achilleasa/octocam/scene"
	"github.com/achilleasa/octocam/types"
	"github.com/google/uuid"
)

// BuildScene creates the scene described by the config and populates it with
// the listed objects followed by the random ones.
func (c *Config) BuildScene() (*scene.Scene, error) {
	min, err := vec3("octree.min", c.Octree.Min)
	if err != nil {
		return nil, err
	}

	sc, err := scene.New(min, c.Octree.Side, c.Octree.MaxDepth, c.Octree.LeafThreshold)
	if err != nil {
		return nil, fmt.Errorf("config: octree: %w", err)
	}

	for index, objCfg := range c.Objects {
		obj, err := objCfg.object(index)
		if err != nil {
			return nil, err
		}
		if err := sc.Add(obj); err != nil {
			return nil, fmt.Errorf("config: objects[%d]: %w", index, err)
		}
	}

	if c.Random.Count < 0 {
		return nil, fmt.Errorf("config: random.count must not be negative")
	}

	// Ids are drawn from the seeded generator too so that a given seed
	// always produces the same scene.
	rng := rand.New(rand.NewSource(c.Random.Seed))
	for i := 0; i < c.Random.Count; i++ {
		var anchor types.Vec3
		for axis := 0; axis < 3; axis++ {
			anchor[axis] = randomCoord(rng, min[axis], c.Octree.Side)
		}

		id, err := uuid.NewRandomFromReader(rng)
		if err != nil {
			return nil, fmt.Errorf("config: random object id: %w", err)
		}

		obj := &scene.Object{
			ID:     id,
			Name:   fmt.Sprintf("random-%d", i),
			Anchor: anchor,
			Radius: rng.Float32() * c.Random.MaxRadius,
		}
		if err := sc.Add(obj); err != nil {
			return nil, fmt.Errorf("config: random object %d: %w", i, err)
		}
	}

	return sc, nil
}

// Pick a coordinate in [min, min+side). The sum may round up to the excluded
// upper bound so such values are drawn again.
func randomCoord(rng *rand.Rand, min, side float32) float32 {
	for {
		if v := min + rng.Float32()*side; v < min+side {
			return v
		}
	}
}

func (o ObjectConfig) object(index int) (*scene.Object, error) {
	anchor, err := vec3(fmt.Sprintf("objects[%d].anchor", index), o.Anchor)
	if err != nil {
		return nil, err
	}

	obj := &scene.Object{
		Name:   o.Name,
		Anchor: anchor,
		Radius: o.Radius,
	}
	if obj.Name == "" {
		obj.Name = fmt.Sprintf("object-%d", index)
	}
	if o.ID != "" {
		if obj.ID, err = uuid.Parse(o.ID); err != nil {
			return nil, fmt.Errorf("config: objects[%d].id: %w", index, err)
		}
	}
	return obj, nil
}

// BuildCamera creates the free camera described by the config.
func (c *Config) BuildCamera() (*camera.FreeCamera, error) {
	eye, err := vec3("camera.eye", c.Camera.Eye)
	if err != nil {
		return nil, err
	}

	cam, err := camera.NewFreeCamera(eye, c.Camera.Width, c.Camera.Height, c.Camera.FOV, camera.ClipRange{Near: c.Camera.Near, Far: c.Camera.Far})
	if err != nil {
		return nil, fmt.Errorf("config: camera: %w", err)
	}
	cam.SetOrientation(c.Camera.Yaw, c.Camera.Pitch)
	return cam, nil
}

// BuildViews creates a renderer view for each configured light.
func (c *Config) BuildViews() ([]renderer.View, error) {
	views := make([]renderer.View, 0, len(c.Lights))
	for index, lightCfg := range c.Lights {
		pos, err := vec3(fmt.Sprintf("lights[%d].position", index), lightCfg.Position)
		if err != nil {
			return nil, err
		}

		light, err := camera.NewSpotLight(
			pos,
			camera.OrientationFromAngles(lightCfg.Yaw, lightCfg.Pitch),
			lightCfg.Cone,
			camera.ClipRange{Near: lightCfg.Near, Far: lightCfg.Far},
		)
		if err != nil {
			return nil, fmt.Errorf("config: lights[%d]: %w", index, err)
		}

		id := lightCfg.Id
		if id == "" {
			id = fmt.Sprintf("light-%d", index)
		}
		views = append(views, renderer.View{Id: id, Source: light})
	}
	return views, nil
}

func vec3(field string, v []float32) (types.Vec3, error) {
	if len(v) != 3 {
		return types.Vec3{}, fmt.Errorf("config: %s: expected 3 components; got %d", field, len(v))
	}
	return types.Vec3{v[0], v[1], v[2]}, nil
}
