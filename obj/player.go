package obj

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/platformer/motion"
)

// Player renders the character driven by a movement controller. All motion
// lives in the controller and collision world; this is the view.
type Player struct {
	ctrl  *motion.Controller
	world *CollisionWorld
	spec  PlayerBodySpec
}

func NewPlayer(ctrl *motion.Controller, world *CollisionWorld, spec PlayerBodySpec) *Player {
	return &Player{ctrl: ctrl, world: world, spec: spec}
}

// Draw renders the collision box as a filled rect plus a facing notch, with
// the world's Y-up coordinates flipped to screen space.
func (p *Player) Draw(screen *ebiten.Image, levelHeight float64) {
	x, y := p.world.PlayerPosition()
	s := p.spec.scale()
	w := p.spec.Width * s
	h := p.spec.Height * s
	left := x + p.spec.OffsetX*s - w/2.0
	top := y + p.spec.OffsetY*s + h/2.0
	screenY := levelHeight - top

	vector.DrawFilledRect(screen, float32(left), float32(screenY), float32(w), float32(h), colornames.Crimson, false)

	// facing notch on the leading edge
	notchW := w / 4.0
	notchX := left + w - notchW
	if p.ctrl.Facing() == motion.FacingLeft {
		notchX = left
	}
	vector.DrawFilledRect(screen, float32(notchX), float32(screenY+h/4), float32(notchW), float32(h/8), colornames.White, false)
}

// DebugString reports mode, facing, and position for the overlay line.
func (p *Player) DebugString() string {
	x, y := p.world.PlayerPosition()
	return fmt.Sprintf("mode: %s  facing: %s  pos: (%.1f, %.1f)", p.ctrl.Mode(), p.ctrl.Facing(), x, y)
}
