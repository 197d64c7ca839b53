package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/achilleasa/octocam/asset"
	"gopkg.in/yaml.v3"
)

// Config describes the scene, the camera and the views to render.
type Config struct {
	LogLevel string `yaml:"log_level"`

	Octree OctreeConfig  `yaml:"octree"`
	Camera CameraConfig  `yaml:"camera"`
	Lights []LightConfig `yaml:"lights"`

	Objects []ObjectConfig `yaml:"objects"`

	// Optional document with additional objects. Relative paths are
	// resolved against the location of the config file.
	ObjectsFile string `yaml:"objects_file"`

	Random RandomConfig `yaml:"random"`
}

type OctreeConfig struct {
	Min           []float32 `yaml:"min"`
	Side          float32   `yaml:"side"`
	MaxDepth      int       `yaml:"max_depth"`
	LeafThreshold int       `yaml:"leaf_threshold"`
}

type CameraConfig struct {
	Eye    []float32 `yaml:"eye"`
	Width  int       `yaml:"width"`
	Height int       `yaml:"height"`
	FOV    float32   `yaml:"fov"`
	Near   float32   `yaml:"near"`
	Far    float32   `yaml:"far"`
	Yaw    float32   `yaml:"yaw"`
	Pitch  float32   `yaml:"pitch"`

	MoveSpeed        float32 `yaml:"move_speed"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
}

type LightConfig struct {
	Id       string    `yaml:"id"`
	Position []float32 `yaml:"position"`
	Yaw      float32   `yaml:"yaw"`
	Pitch    float32   `yaml:"pitch"`
	Cone     float32   `yaml:"cone"`
	Near     float32   `yaml:"near"`
	Far      float32   `yaml:"far"`
}

type ObjectConfig struct {
	ID     string    `yaml:"id"`
	Name   string    `yaml:"name"`
	Anchor []float32 `yaml:"anchor"`
	Radius float32   `yaml:"radius"`
}

// Random objects scattered uniformly inside the octree bounds.
type RandomConfig struct {
	Count     int     `yaml:"count"`
	Seed      int64   `yaml:"seed"`
	MaxRadius float32 `yaml:"max_radius"`
}

// Default returns the configuration used when no config file is given: a
// 2000 unit cube centered at the origin, subdivided 10 levels deep, viewed
// from (0, 0, 4) with a 45 degree field of view.
func Default() Config {
	return Config{
		LogLevel: "notice",
		Octree: OctreeConfig{
			Min:      []float32{-1000, -1000, -1000},
			Side:     2000,
			MaxDepth: 10,
		},
		Camera: CameraConfig{
			Eye:    []float32{0, 0, 4},
			Width:  800,
			Height: 600,
			FOV:    45,
			Near:   0.01,
			Far:    5000,
			Yaw:    -90,
			Pitch:  0,
		},
	}
}

// Load reads a YAML config from a local path or an http(s) URL. Fields not
// set in the document keep their default values.
func Load(location string) (Config, error) {
	res, err := asset.NewResource(location, nil)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", location, err)
	}
	defer res.Close()

	cfg := Default()
	if err := decode(res, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", location, err)
	}

	if cfg.ObjectsFile != "" {
		objects, err := loadObjects(cfg.ObjectsFile, res)
		if err != nil {
			return Config{}, err
		}
		cfg.Objects = append(cfg.Objects, objects...)
	}

	return cfg, nil
}

func loadObjects(location string, relTo *asset.Resource) ([]ObjectConfig, error) {
	res, err := asset.NewResource(location, relTo)
	if err != nil {
		return nil, fmt.Errorf("config: read objects %s: %w", location, err)
	}
	defer res.Close()

	var objects []ObjectConfig
	if err := decode(res, &objects); err != nil {
		return nil, fmt.Errorf("config: parse objects %s: %w", res.Path(), err)
	}
	return objects, nil
}

// Decode a single YAML document rejecting unknown fields. An empty document
// leaves out untouched.
func decode(r io.Reader, out interface{}) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Flags holds CLI flag values that override config file settings. Nil
// pointers and zero values leave the config untouched.
type Flags struct {
	LogLevel    string
	Eye         []float32
	Yaw         *float32
	Pitch       *float32
	FOV         float32
	Width       int
	Height      int
	RandomCount int
	Seed        *int64
}

// Resolve applies the CLI overrides.
func (c *Config) Resolve(flags Flags) {
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	if len(flags.Eye) != 0 {
		c.Camera.Eye = flags.Eye
	}
	if flags.Yaw != nil {
		c.Camera.Yaw = *flags.Yaw
	}
	if flags.Pitch != nil {
		c.Camera.Pitch = *flags.Pitch
	}
	if flags.FOV > 0 {
		c.Camera.FOV = flags.FOV
	}
	if flags.Width > 0 {
		c.Camera.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Camera.Height = flags.Height
	}
	if flags.RandomCount > 0 {
		c.Random.Count = flags.RandomCount
	}
	if flags.Seed != nil {
		c.Random.Seed = *flags.Seed
	}
}
