// Command trajectory prints the authored jump trajectory tick by tick as CSV,
// for tuning player.yaml without launching the game.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/platformer/motion"
	"github.com/milk9111/platformer/prefabs"
)

type tracedBody struct {
	half float64
	pos  motion.Vec
}

func (b *tracedBody) TranslateBy(d motion.Vec) { b.pos = b.pos.Add(d) }
func (b *tracedBody) HalfHeight() float64      { return b.half }
func (b *tracedBody) WorldY() float64          { return b.pos.Y }

type flatFloor struct{}

func (flatFloor) HalfHeight() float64 { return 0 }
func (flatFloor) WorldY() float64     { return 0 }

func main() {
	spec := flag.String("spec", "player.yaml", "player spec in prefabs/")
	facingLeft := flag.Bool("left", false, "simulate facing left")
	extra := flag.Int("extra", 10, "falling ticks to print after the jump ends")
	flag.Parse()

	data, err := prefabs.Load(*spec)
	if err != nil {
		log.Fatalf("load %s: %v", *spec, err)
	}
	player, err := prefabs.ParsePlayerSpec(data)
	if err != nil {
		log.Fatal(err)
	}

	body := &tracedBody{half: player.Collider.Height * colliderScale(player) / 2.0}
	body.pos.Y = body.half
	ctrl, err := motion.NewController(player.MotionConfig(), body, body)
	if err != nil {
		log.Fatal(err)
	}

	// land on a floor whose top is at y=0, set facing, then press jump with
	// no walk held so the dump shows the authored trajectory alone
	ctrl.ContactBegin(motion.SurfaceFloor, flatFloor{})
	ctrl.Sample(motion.Input{Left: *facingLeft, Right: !*facingLeft})
	ctrl.Sample(motion.Input{JumpPressed: true})

	fmt.Fprintln(os.Stdout, "tick,dx,dy,x,y,mode")
	tick := 0
	fallingTicks := 0
	for fallingTicks < *extra {
		d := ctrl.Step()
		tick++
		if ctrl.Mode() == motion.ModeFalling {
			fallingTicks++
		}
		fmt.Fprintf(os.Stdout, "%d,%g,%g,%g,%g,%s\n", tick, d.X, d.Y, body.pos.X, body.pos.Y, ctrl.Mode())
	}
}

func colliderScale(p *prefabs.PlayerSpec) float64 {
	if p.Collider.Scale <= 0 {
		return 1
	}
	return p.Collider.Scale
}
