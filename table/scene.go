package table

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	poolphysics "github.com/greigoat/Pool-Physics-2D"
	"github.com/greigoat/Pool-Physics-2D/vect"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFrameDelta    = vect.Float(1.0 / 60.0)
	DefaultFrames        = 600
	DefaultBallRadius    = vect.Float(0.3)
	DefaultPocketRadius  = vect.Float(0.5)
	DefaultRestThreshold = vect.Float(0.05)
	DefaultMaxCueSpeed   = vect.Float(10)
	DefaultDensity       = poolphysics.DefaultDensity
	DefaultDrag          = vect.Float(1)
)

var (
	ErrUnknownFormat   = errors.New("unknown scene format")
	ErrUnknownMaterial = errors.New("unknown material")
)

//go:embed scenes/standard.yaml
var standardScene []byte

// Scene describes a table layout and how to simulate it.
type Scene struct {
	Name       string                  `yaml:"name" toml:"name"`
	Simulation SimulationSpec          `yaml:"simulation" toml:"simulation"`
	Materials  map[string]MaterialSpec `yaml:"materials" toml:"materials"`
	Cushions   []CushionSpec           `yaml:"cushions" toml:"cushions"`
	Pockets    []PocketSpec            `yaml:"pockets" toml:"pockets"`
	Balls      []BallSpec              `yaml:"balls" toml:"balls"`
	Shot       *ShotSpec               `yaml:"shot" toml:"shot"`
}

type SimulationSpec struct {
	FixedDelta    vect.Float `yaml:"fixed_delta" toml:"fixed_delta"`
	MaxFixedSteps int        `yaml:"max_fixed_steps" toml:"max_fixed_steps"`
	FrameDelta    vect.Float `yaml:"frame_delta" toml:"frame_delta"`
	Frames        int        `yaml:"frames" toml:"frames"`
	// Speed under which every ball counts as resting.
	RestThreshold vect.Float `yaml:"rest_threshold" toml:"rest_threshold"`
	// Upper bound of the cue ball speed, enforced every frame.
	MaxCueSpeed vect.Float `yaml:"max_cue_speed" toml:"max_cue_speed"`
	CueSpawn    *vect.Vect `yaml:"cue_spawn" toml:"cue_spawn"`
}

// MaterialSpec fields left out get defaults; an explicit zero density makes an immovable material.
type MaterialSpec struct {
	Density    *vect.Float `yaml:"density" toml:"density"`
	Elasticity *vect.Float `yaml:"elasticity" toml:"elasticity"`
}

type CushionSpec struct {
	Name     string    `yaml:"name" toml:"name"`
	Position vect.Vect `yaml:"position" toml:"position"`
	Size     vect.Vect `yaml:"size" toml:"size"`
	Material string    `yaml:"material" toml:"material"`
}

type PocketSpec struct {
	Position vect.Vect  `yaml:"position" toml:"position"`
	Radius   vect.Float `yaml:"radius" toml:"radius"`
}

type BallSpec struct {
	Tag      string      `yaml:"tag" toml:"tag"`
	Position vect.Vect   `yaml:"position" toml:"position"`
	Velocity vect.Vect   `yaml:"velocity" toml:"velocity"`
	Radius   vect.Float  `yaml:"radius" toml:"radius"`
	Drag     *vect.Float `yaml:"drag" toml:"drag"`
	Material string      `yaml:"material" toml:"material"`
}

// ShotSpec is an impulse given to the cue ball before the first frame.
type ShotSpec struct {
	Direction vect.Vect  `yaml:"direction" toml:"direction"`
	Impulse   vect.Float `yaml:"impulse" toml:"impulse"`
}

// LoadScene reads a YAML (.yaml, .yml) or TOML (.toml) scene file.
func LoadScene(filename string) (*Scene, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("table: load %s: %w", filename, err)
	}

	scene, err := ParseScene(data, filepath.Ext(filename))
	if err != nil {
		return nil, fmt.Errorf("table: %s: %w", filename, err)
	}
	if scene.Name == "" {
		scene.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return scene, nil
}

// ParseScene decodes data in the format named by ext, then fills in defaults and validates it.
func ParseScene(data []byte, ext string) (*Scene, error) {
	var scene Scene

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &scene); err != nil {
			return nil, fmt.Errorf("unmarshal yaml: %w", err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&scene); err != nil {
			return nil, fmt.Errorf("unmarshal toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", ext, ErrUnknownFormat)
	}

	scene.applyDefaults()
	if err := scene.Validate(); err != nil {
		return nil, err
	}
	return &scene, nil
}

// DefaultScene returns the built in 8-ball rack.
func DefaultScene() (*Scene, error) {
	scene, err := ParseScene(standardScene, ".yaml")
	if err != nil {
		return nil, fmt.Errorf("table: standard scene: %w", err)
	}
	return scene, nil
}

func (scene *Scene) applyDefaults() {
	sim := &scene.Simulation
	if sim.FixedDelta == 0 {
		sim.FixedDelta = 0.02
	}
	if sim.MaxFixedSteps == 0 {
		sim.MaxFixedSteps = 8
	}
	if sim.FrameDelta == 0 {
		sim.FrameDelta = DefaultFrameDelta
	}
	if sim.Frames == 0 {
		sim.Frames = DefaultFrames
	}
	if sim.RestThreshold == 0 {
		sim.RestThreshold = DefaultRestThreshold
	}
	if sim.MaxCueSpeed == 0 {
		sim.MaxCueSpeed = DefaultMaxCueSpeed
	}
	if sim.CueSpawn == nil {
		spawn := DefaultCueSpawn
		sim.CueSpawn = &spawn
	}

	for name, mat := range scene.Materials {
		if mat.Density == nil {
			density := DefaultDensity
			mat.Density = &density
		}
		if mat.Elasticity == nil {
			e := vect.Float(0.8)
			mat.Elasticity = &e
		}
		scene.Materials[name] = mat
	}

	for i := range scene.Balls {
		if scene.Balls[i].Radius == 0 {
			scene.Balls[i].Radius = DefaultBallRadius
		}
		if scene.Balls[i].Drag == nil {
			drag := DefaultDrag
			scene.Balls[i].Drag = &drag
		}
	}
	for i := range scene.Pockets {
		if scene.Pockets[i].Radius == 0 {
			scene.Pockets[i].Radius = DefaultPocketRadius
		}
	}
}

// Validate reports references to undefined materials and shapes that cannot be built.
func (scene *Scene) Validate() error {
	var errs []error

	checkMaterial := func(what, name string) {
		if name == "" {
			return
		}
		if _, ok := scene.Materials[name]; !ok {
			errs = append(errs, fmt.Errorf("%s: %q: %w", what, name, ErrUnknownMaterial))
		}
	}

	for name, m := range scene.Materials {
		if m.Density != nil && *m.Density < 0 {
			errs = append(errs, fmt.Errorf("material %q: density %v must not be negative", name, *m.Density))
		}
	}
	for i, c := range scene.Cushions {
		checkMaterial(fmt.Sprintf("cushion %d", i), c.Material)
		if !(c.Size.X > 0) || !(c.Size.Y > 0) {
			errs = append(errs, fmt.Errorf("cushion %d: size %v must be positive", i, c.Size))
		}
	}
	cues := 0
	for i, b := range scene.Balls {
		checkMaterial(fmt.Sprintf("ball %d", i), b.Material)
		if !(b.Radius > 0) {
			errs = append(errs, fmt.Errorf("ball %d: radius %v must be positive", i, b.Radius))
		}
		if b.Tag == CueTag {
			cues++
		}
	}
	if cues > 1 {
		errs = append(errs, fmt.Errorf("%d balls tagged %q, want at most one", cues, CueTag))
	}
	for i, p := range scene.Pockets {
		if !(p.Radius > 0) {
			errs = append(errs, fmt.Errorf("pocket %d: radius %v must be positive", i, p.Radius))
		}
	}
	if scene.Simulation.FixedDelta < 0 || scene.Simulation.FrameDelta < 0 {
		errs = append(errs, errors.New("simulation deltas must not be negative"))
	}

	return errors.Join(errs...)
}

// EncodeYAML writes the scene back out, defaults included.
func (scene *Scene) EncodeYAML() ([]byte, error) {
	return yaml.Marshal(scene)
}
