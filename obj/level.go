package obj

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/motion"
)

// Level is an authored arrangement of tagged surface rects. Geometry is split
// into one rect per touchable face (floor tops, ceiling undersides, wall
// sides); the tag decides how the movement controller reacts to contact.
// Coordinates are Y-up world units; Draw flips to screen space.
type Level struct {
	Name     string        `yaml:"name"`
	Width    float64       `yaml:"width"`
	Height   float64       `yaml:"height"`
	Spawn    Point         `yaml:"spawn"`
	Surfaces []SurfaceRect `yaml:"surfaces"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type SurfaceRect struct {
	Tag string  `yaml:"tag"`
	X   float64 `yaml:"x"`
	Y   float64 `yaml:"y"`
	W   float64 `yaml:"w"`
	H   float64 `yaml:"h"`
}

// Surface maps the authored tag to a surface classification.
func (s SurfaceRect) Surface() (motion.Surface, error) {
	switch s.Tag {
	case "floor":
		return motion.SurfaceFloor, nil
	case "ceiling":
		return motion.SurfaceCeiling, nil
	case "lwall":
		return motion.SurfaceLeftWall, nil
	case "rwall":
		return motion.SurfaceRightWall, nil
	default:
		return 0, fmt.Errorf("unknown surface tag %q", s.Tag)
	}
}

// LoadLevel loads and validates a level by name from the levels FS.
func LoadLevel(name string) (*Level, error) {
	data, err := levels.Load(name)
	if err != nil {
		return nil, fmt.Errorf("level: load %s: %w", name, err)
	}
	return ParseLevel(data)
}

// ParseLevel unmarshals and validates level YAML.
func ParseLevel(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("level: unmarshal: %w", err)
	}
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("level %s: invalid dimensions %gx%g", lvl.Name, lvl.Width, lvl.Height)
	}
	if len(lvl.Surfaces) == 0 {
		return nil, fmt.Errorf("level %s: no surfaces", lvl.Name)
	}
	for i, s := range lvl.Surfaces {
		if _, err := s.Surface(); err != nil {
			return nil, fmt.Errorf("level %s: surface %d: %w", lvl.Name, i, err)
		}
		if s.W <= 0 || s.H <= 0 {
			return nil, fmt.Errorf("level %s: surface %d: invalid size %gx%g", lvl.Name, i, s.W, s.H)
		}
	}
	return &lvl, nil
}

var surfaceColors = map[string]color.RGBA{
	"floor":   colornames.Forestgreen,
	"ceiling": colornames.Slategray,
	"lwall":   colornames.Sienna,
	"rwall":   colornames.Sienna,
}

// Draw renders each surface rect in its tag color, flipping Y to screen space.
func (l *Level) Draw(screen *ebiten.Image) {
	if l == nil {
		return
	}
	for _, s := range l.Surfaces {
		clr, ok := surfaceColors[s.Tag]
		if !ok {
			clr = colornames.Blue
		}
		screenY := l.Height - (s.Y + s.H)
		vector.DrawFilledRect(screen, float32(s.X), float32(screenY), float32(s.W), float32(s.H), clr, false)
	}
}
