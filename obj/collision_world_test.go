package obj

import (
	"math"
	"testing"

	"github.com/milk9111/platformer/motion"
)

func testLevel() *Level {
	return &Level{
		Name:   "test",
		Width:  640,
		Height: 480,
		Spawn:  Point{X: 100, Y: 80},
		Surfaces: []SurfaceRect{
			{Tag: "floor", X: 0, Y: 0, W: 640, H: 32},
			{Tag: "rwall", X: 600, Y: 32, W: 32, H: 448},
			{Tag: "lwall", X: 0, Y: 32, W: 8, H: 448},
			// underside at 120, inside the 48-unit jump arc of a grounded player
			{Tag: "ceiling", X: 0, Y: 120, W: 640, H: 16},
		},
	}
}

func testMotionConfig() motion.Config {
	return motion.Config{
		JumpWindows: []motion.JumpWindow{
			{DurationFrames: 4, Velocity: motion.Vec{X: 2, Y: 8}},
			{DurationFrames: 4, Velocity: motion.Vec{X: 1, Y: 4}},
		},
		FallVelocity: motion.Vec{Y: 6},
		WalkSpeed:    4,
	}
}

func newTestWorld(t *testing.T, lvl *Level) (*CollisionWorld, *motion.Controller) {
	t.Helper()
	world := NewCollisionWorld(lvl, PlayerBodySpec{Width: 32, Height: 64, Scale: 1})
	ctrl, err := motion.NewController(testMotionConfig(), world, world.PlayerCollider())
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	world.Bind(ctrl)
	return world, ctrl
}

// stepUntil ticks the world until cond holds, failing after maxTicks.
func stepUntil(t *testing.T, world *CollisionWorld, maxTicks int, what string, cond func() bool) {
	t.Helper()
	for i := 0; i < maxTicks; i++ {
		world.FixedTick()
		if cond() {
			return
		}
	}
	t.Fatalf("condition %q not reached in %d ticks", what, maxTicks)
}

func TestLandingSnapsOntoFloor(t *testing.T) {
	world, ctrl := newTestWorld(t, testLevel())

	stepUntil(t, world, 100, "landed", func() bool { return ctrl.Mode() == motion.ModeGrounded })

	_, y := world.PlayerPosition()
	bottom := y - 32
	const floorTop = 32.0
	if math.Abs(bottom-floorTop) > 1e-9 {
		t.Fatalf("player bottom %v, want exactly on floor top %v", bottom, floorTop)
	}
	if !ctrl.CanJump() {
		t.Fatalf("landed player should be able to jump")
	}

	// grounded player does not sink on later ticks
	world.FixedTick()
	_, y2 := world.PlayerPosition()
	if y2 != y {
		t.Fatalf("grounded player moved vertically from %v to %v", y, y2)
	}
}

func TestWalkStopsAtRightWall(t *testing.T) {
	world, ctrl := newTestWorld(t, testLevel())
	stepUntil(t, world, 100, "landed", func() bool { return ctrl.Mode() == motion.ModeGrounded })

	ctrl.Sample(motion.Input{Right: true})
	var lastX float64
	stepUntil(t, world, 400, "stopped at wall", func() bool {
		x, _ := world.PlayerPosition()
		stopped := x == lastX
		lastX = x
		return stopped
	})

	// held walk input keeps producing zero horizontal motion
	for i := 0; i < 5; i++ {
		ctrl.Sample(motion.Input{Right: true})
		world.FixedTick()
	}
	x, _ := world.PlayerPosition()
	if x != lastX {
		t.Fatalf("blocked player still moved from %v to %v", lastX, x)
	}

	// walking away from the wall works immediately
	ctrl.Sample(motion.Input{Left: true})
	world.FixedTick()
	x2, _ := world.PlayerPosition()
	if x2 >= x {
		t.Fatalf("player should walk away from the wall, x %v -> %v", x, x2)
	}
}

func TestCeilingStopsAscent(t *testing.T) {
	lvl := testLevel()
	world, ctrl := newTestWorld(t, lvl)
	stepUntil(t, world, 100, "landed", func() bool { return ctrl.Mode() == motion.ModeGrounded })

	ctrl.Sample(motion.Input{JumpPressed: true})

	// full jump rise is 4*8+4*4 = 48; the ceiling underside at 120 cuts the
	// ascent short of the unobstructed apex
	peak := math.Inf(-1)
	for i := 0; i < 60; i++ {
		world.FixedTick()
		_, y := world.PlayerPosition()
		peak = math.Max(peak, y)
	}

	unobstructedPeak := 32.0 + 32.0 + 48.0
	if peak >= unobstructedPeak {
		t.Fatalf("peak %v not limited by ceiling, unobstructed apex is %v", peak, unobstructedPeak)
	}
	// the head may clip at most one step into the ceiling before the veto
	const ceilingBottom = 120.0
	maxClip := testMotionConfig().JumpWindows[0].Velocity.Y
	if peak+32 > ceilingBottom+maxClip {
		t.Fatalf("head reached %v, more than one step past ceiling underside %v", peak+32, ceilingBottom)
	}

	// the player falls back and lands again
	stepUntil(t, world, 200, "landed again", func() bool { return ctrl.Mode() == motion.ModeGrounded })
}

func TestWalkOffPlatformFalls(t *testing.T) {
	lvl := &Level{
		Name:   "ledge",
		Width:  640,
		Height: 480,
		Spawn:  Point{X: 100, Y: 300},
		Surfaces: []SurfaceRect{
			{Tag: "floor", X: 0, Y: 200, W: 200, H: 16},
			{Tag: "floor", X: 0, Y: 0, W: 640, H: 32},
		},
	}
	world, ctrl := newTestWorld(t, lvl)
	stepUntil(t, world, 100, "landed on ledge", func() bool { return ctrl.Mode() == motion.ModeGrounded })

	_, y := world.PlayerPosition()
	if math.Abs((y-32)-216) > 1e-9 {
		t.Fatalf("player bottom %v, want on ledge top 216", y-32)
	}

	stepUntil(t, world, 200, "walked off and fell", func() bool {
		ctrl.Sample(motion.Input{Right: true})
		return ctrl.Mode() == motion.ModeFalling
	})

	stepUntil(t, world, 200, "landed on ground", func() bool {
		ctrl.Sample(motion.Input{})
		return ctrl.Mode() == motion.ModeGrounded
	})
	_, y2 := world.PlayerPosition()
	if math.Abs((y2-32)-32) > 1e-9 {
		t.Fatalf("player bottom %v, want on ground top 32", y2-32)
	}
}

func TestJumpLeavesFloorWithoutFalling(t *testing.T) {
	world, ctrl := newTestWorld(t, testLevel())
	stepUntil(t, world, 100, "landed", func() bool { return ctrl.Mode() == motion.ModeGrounded })

	ctrl.Sample(motion.Input{JumpPressed: true})
	world.FixedTick()
	if ctrl.Mode() != motion.ModeJumping {
		t.Fatalf("mode %v after first jump tick, want jumping", ctrl.Mode())
	}
	world.FixedTick()
	// floor contact ended during the ascent; the jump must not degrade to a fall
	if ctrl.Mode() != motion.ModeJumping {
		t.Fatalf("mode %v during ascent, want jumping", ctrl.Mode())
	}
}
