// Package motion implements the deterministic character movement controller.
// It is engine-free: input samples, fixed simulation ticks, and contact
// begin/end notifications come in through three entry points, and the only
// output is relative translations issued through a Mover. One Controller
// drives one character.
package motion

import (
	"fmt"
	"math"
)

// Vec is a 2D vector in world units. Positive Y is up.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Facing is the horizontal direction the character last moved in. It mirrors
// the horizontal component of jump and walk velocity.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Sign returns +1 for right, -1 for left.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Mode is the movement state. Exactly one mode is active at a time, so the
// character can never be jumping and falling at once.
type Mode int

const (
	ModeFalling Mode = iota
	ModeGrounded
	ModeJumping
)

func (m Mode) String() string {
	switch m {
	case ModeGrounded:
		return "grounded"
	case ModeJumping:
		return "jumping"
	default:
		return "falling"
	}
}

// Surface classifies contacted level geometry.
type Surface int

const (
	SurfaceFloor Surface = iota
	SurfaceCeiling
	SurfaceLeftWall
	SurfaceRightWall
)

func (s Surface) String() string {
	switch s {
	case SurfaceFloor:
		return "floor"
	case SurfaceCeiling:
		return "ceiling"
	case SurfaceLeftWall:
		return "lwall"
	default:
		return "rwall"
	}
}

// Input is one raw input sample. JumpPressed must be edge-detected by the
// poller: true only on the poll tick the jump control went down.
type Input struct {
	JumpPressed bool
	Left        bool
	Right       bool
}

// Collider is the minimal geometry the controller needs from a body involved
// in a contact. WorldY is the collider's vertical center in world units with
// offsets and scale already applied.
type Collider interface {
	HalfHeight() float64
	WorldY() float64
}

// Mover applies a relative translation to the character.
type Mover interface {
	TranslateBy(delta Vec)
}

// Controller is the movement state machine for one character. Its three entry
// points (Sample, Step, ContactBegin/ContactEnd) are driven by the host loop
// and must not be called concurrently.
type Controller struct {
	cfg   Config
	mover Mover
	self  Collider

	// fixed at construction, used only for floor snap
	halfHeight float64

	mode    Mode
	facing  Facing
	walking bool
	cursor  jumpCursor
	clamps  contactClamps
}

// NewController validates cfg and builds a controller that starts airborne.
// The character's own half height is derived from self once, here.
func NewController(cfg Config, mover Mover, self Collider) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("motion: config: %w", err)
	}
	if mover == nil {
		return nil, fmt.Errorf("motion: nil mover")
	}
	if self == nil {
		return nil, fmt.Errorf("motion: nil self collider")
	}
	return &Controller{
		cfg:        cfg,
		mover:      mover,
		self:       self,
		halfHeight: self.HalfHeight(),
		mode:       ModeFalling,
		facing:     FacingRight,
	}, nil
}

// Sample latches one input poll into intent state. It runs once per render
// tick, strictly more often than Step, so a jump press between fixed ticks is
// never lost. Holding jump does not re-trigger; a fresh press only starts a
// jump from the grounded state.
func (c *Controller) Sample(in Input) {
	if in.JumpPressed && c.mode == ModeGrounded {
		c.mode = ModeJumping
		c.cursor = jumpCursor{}
	}
	switch {
	case in.Left && !in.Right:
		c.facing = FacingLeft
		c.walking = true
	case in.Right && !in.Left:
		c.facing = FacingRight
		c.walking = true
	default:
		c.walking = false
	}
}

// Step runs one fixed simulation tick: it composes the movement vector from
// the jump table or terminal fall plus walking, clamps it against blocked
// surfaces, issues the translation through the Mover, and returns the applied
// delta.
func (c *Controller) Step() Vec {
	var raw Vec
	switch c.mode {
	case ModeJumping:
		raw = c.jumpStep()
	case ModeFalling:
		raw = raw.Sub(c.cfg.FallVelocity)
	}
	if c.walking {
		raw.X += c.cfg.WalkSpeed * c.facing.Sign()
	}
	raw = c.clamps.apply(raw)
	c.mover.TranslateBy(raw)
	return raw
}

// jumpStep advances the window cursor one tick. The horizontal component is
// mirrored by the current facing every tick, so reversing direction mid-air
// flips it immediately. Exhausting the table transitions to falling and
// contributes nothing this tick.
func (c *Controller) jumpStep() Vec {
	win, ok := c.cursor.advance(c.cfg.JumpWindows)
	if !ok {
		c.mode = ModeFalling
		return Vec{}
	}
	return Vec{X: win.Velocity.X * c.facing.Sign(), Y: win.Velocity.Y}
}

// ContactBegin handles the start of overlap with a classified surface. Floor
// contact lands the character and snaps it onto the floor; the other surfaces
// only raise their clamp flag. Contacts of the same class are not
// reference-counted, so same-class colliders must not share edges.
func (c *Controller) ContactBegin(s Surface, other Collider) {
	switch s {
	case SurfaceFloor:
		c.mode = ModeGrounded
		c.cursor = jumpCursor{}
		c.snapToFloor(other)
	case SurfaceCeiling:
		c.clamps.ceiling = true
	case SurfaceLeftWall:
		c.clamps.left = true
	case SurfaceRightWall:
		c.clamps.right = true
	}
}

// ContactEnd handles the end of overlap with a classified surface. Walking
// off a floor re-enters free fall unless a jump is in progress.
func (c *Controller) ContactEnd(s Surface, _ Collider) {
	switch s {
	case SurfaceFloor:
		if c.mode != ModeJumping {
			c.mode = ModeFalling
		}
	case SurfaceCeiling:
		c.clamps.ceiling = false
	case SurfaceLeftWall:
		c.clamps.left = false
	case SurfaceRightWall:
		c.clamps.right = false
	}
}

// snapToFloor issues the corrective translation that puts the character's
// bottom edge exactly on the floor's top edge, cancelling any overlap the
// integration step accumulated. Floor geometry is required; there is no
// degraded mode that could avoid producing a garbage translation.
func (c *Controller) snapToFloor(floor Collider) {
	if floor == nil {
		panic("motion: floor contact without collider geometry")
	}
	floorTop := floor.WorldY() + floor.HalfHeight()
	bottom := c.self.WorldY() - c.halfHeight
	delta := floorTop - bottom
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		panic(fmt.Sprintf("motion: floor snap produced non-finite correction %v", delta))
	}
	c.mover.TranslateBy(Vec{Y: delta})
}

// Retune swaps the authored movement config at runtime, for live tuning. An
// in-flight jump whose cursor no longer fits the new table ends immediately.
func (c *Controller) Retune(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("motion: retune: %w", err)
	}
	c.cfg = cfg
	if c.mode == ModeJumping && c.cursor.window >= len(cfg.JumpWindows) {
		c.cursor = jumpCursor{}
		c.mode = ModeFalling
	}
	return nil
}

// Reset returns the controller to its initial airborne state. Clamp flags are
// left to contact-end notifications from the collision collaborator.
func (c *Controller) Reset() {
	c.mode = ModeFalling
	c.cursor = jumpCursor{}
	c.walking = false
	c.facing = FacingRight
}

// Mode returns the current movement mode.
func (c *Controller) Mode() Mode { return c.mode }

// Facing returns the current horizontal facing.
func (c *Controller) Facing() Facing { return c.facing }

// Walking reports whether walk intent was latched by the last sample.
func (c *Controller) Walking() bool { return c.walking }

// CanJump reports whether a fresh jump press would start a jump.
func (c *Controller) CanJump() bool { return c.mode == ModeGrounded }
