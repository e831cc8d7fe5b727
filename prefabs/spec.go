package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/platformer/motion"
)

// PlayerSpec is the authored movement tuning and collision box for the
// player character.
type PlayerSpec struct {
	Name         string           `yaml:"name"`
	WalkSpeed    float64          `yaml:"walk_speed"`
	FallVelocity VecSpec          `yaml:"fall_velocity"`
	JumpWindows  []JumpWindowSpec `yaml:"jump_windows"`
	Collider     ColliderSpec     `yaml:"collider"`
}

type VecSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// JumpWindowSpec is one segment of the authored jump trajectory: a velocity
// held for a fixed number of simulation frames.
type JumpWindowSpec struct {
	Frames int     `yaml:"frames"`
	VelX   float64 `yaml:"vel_x"`
	VelY   float64 `yaml:"vel_y"`
}

type ColliderSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Scale   float64 `yaml:"scale"`
}

// LoadPlayerSpec loads and validates player.yaml.
func LoadPlayerSpec() (*PlayerSpec, error) {
	data, err := Load("player.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: load player.yaml: %w", err)
	}
	return ParsePlayerSpec(data)
}

// ParsePlayerSpec unmarshals and validates a player spec. Malformed tuning
// is rejected here, before the simulation ever sees it.
func ParsePlayerSpec(data []byte) (*PlayerSpec, error) {
	var spec PlayerSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal player spec: %w", err)
	}
	if spec.Collider.Width <= 0 || spec.Collider.Height <= 0 {
		return nil, fmt.Errorf("prefabs: player spec %q: invalid collider size %gx%g",
			spec.Name, spec.Collider.Width, spec.Collider.Height)
	}
	if spec.Collider.Scale < 0 {
		return nil, fmt.Errorf("prefabs: player spec %q: negative collider scale %g", spec.Name, spec.Collider.Scale)
	}
	if err := spec.MotionConfig().Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: player spec %q: %w", spec.Name, err)
	}
	return &spec, nil
}

// MotionConfig converts the authored spec into the controller's config.
func (s *PlayerSpec) MotionConfig() motion.Config {
	windows := make([]motion.JumpWindow, 0, len(s.JumpWindows))
	for _, w := range s.JumpWindows {
		windows = append(windows, motion.JumpWindow{
			DurationFrames: w.Frames,
			Velocity:       motion.Vec{X: w.VelX, Y: w.VelY},
		})
	}
	return motion.Config{
		JumpWindows:  windows,
		FallVelocity: motion.Vec{X: s.FallVelocity.X, Y: s.FallVelocity.Y},
		WalkSpeed:    s.WalkSpeed,
	}
}
