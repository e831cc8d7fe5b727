package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/platformer/motion"
)

const stickDeadzone = 0.3

// Input holds the raw device state polled once per render tick.
type Input struct {
	// MoveLeft/MoveRight are true while the movement controls are held.
	MoveLeft  bool
	MoveRight bool
	// JumpPressed is true only on the tick the jump control went down.
	JumpPressed bool
	// PausePressed is true only on the tick the pause control went down.
	PausePressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and, when present, the first gamepad.
func (i *Input) Update() {
	i.MoveLeft = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	i.MoveRight = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	i.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]

		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -stickDeadzone {
			i.MoveLeft = true
			i.MoveRight = false
		} else if leftX > stickDeadzone {
			i.MoveRight = true
			i.MoveLeft = false
		}

		i.JumpPressed = i.JumpPressed ||
			inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		i.PausePressed = i.PausePressed ||
			inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
	}
}

// Intent converts the polled state into a movement input sample.
func (i *Input) Intent() motion.Input {
	return motion.Input{
		JumpPressed: i.JumpPressed,
		Left:        i.MoveLeft,
		Right:       i.MoveRight,
	}
}
