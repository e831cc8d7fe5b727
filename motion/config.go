package motion

import (
	"fmt"
	"math"
)

// Config is the authored movement tuning for one character. It is immutable
// at runtime from the controller's point of view; Retune swaps it wholesale.
type Config struct {
	// JumpWindows is the ordered velocity table for a full jump.
	JumpWindows []JumpWindow
	// FallVelocity is subtracted from the movement vector every falling tick,
	// i.e. the terminal fall velocity pointing down when Y is positive.
	FallVelocity Vec
	// WalkSpeed is the constant horizontal speed per fixed tick while walking.
	WalkSpeed float64
}

// Validate rejects configs the simulation has no defined behavior for.
// Malformed authored data is a load-time error, never tolerated mid-run.
func (c Config) Validate() error {
	if len(c.JumpWindows) == 0 {
		return fmt.Errorf("jump window table is empty")
	}
	for i, w := range c.JumpWindows {
		if w.DurationFrames < 1 {
			return fmt.Errorf("jump window %d: duration %d frames, want >= 1", i, w.DurationFrames)
		}
		if !finite(w.Velocity.X) || !finite(w.Velocity.Y) {
			return fmt.Errorf("jump window %d: non-finite velocity (%v, %v)", i, w.Velocity.X, w.Velocity.Y)
		}
	}
	if !finite(c.FallVelocity.X) || !finite(c.FallVelocity.Y) {
		return fmt.Errorf("non-finite fall velocity (%v, %v)", c.FallVelocity.X, c.FallVelocity.Y)
	}
	if c.WalkSpeed < 0 || !finite(c.WalkSpeed) {
		return fmt.Errorf("walk speed %v, want finite and >= 0", c.WalkSpeed)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
