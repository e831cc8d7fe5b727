package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"

	"github.com/milk9111/platformer/motion"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	// fixed simulation rate, independent of the render/input tick rate
	simTPS = 50.0

	// how far below the level a fall counts as out of the world
	respawnMargin = 200.0
)

type Game struct {
	log *zap.SugaredLogger

	input  *obj.Input
	level  *obj.Level
	world  *obj.CollisionWorld
	ctrl   *motion.Controller
	player *obj.Player

	watcher *prefabs.Watcher
	pause   *ebitenui.UI
	paused  bool
	quit    bool

	// fixed-step accumulator, in sim ticks
	acc    float64
	frames int
}

func NewGame(levelName string, watch bool, log *zap.SugaredLogger) (*Game, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	lvl, err := obj.LoadLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	bodySpec := obj.PlayerBodySpec{
		Width:   spec.Collider.Width,
		Height:  spec.Collider.Height,
		OffsetX: spec.Collider.OffsetX,
		OffsetY: spec.Collider.OffsetY,
		Scale:   spec.Collider.Scale,
	}

	world := obj.NewCollisionWorld(lvl, bodySpec)
	ctrl, err := motion.NewController(spec.MotionConfig(), world, world.PlayerCollider())
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	world.Bind(ctrl)

	g := &Game{
		log:    log,
		input:  obj.NewInput(),
		level:  lvl,
		world:  world,
		ctrl:   ctrl,
		player: obj.NewPlayer(ctrl, world, bodySpec),
	}
	g.pause = NewPauseUI(g)

	if watch {
		watcher, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Warnw("tuning watch disabled", "err", err)
		} else {
			g.watcher = watcher
			log.Infow("watching prefabs for tuning changes")
		}
	}

	log.Infow("game ready",
		"level", lvl.Name,
		"jump_windows", len(spec.JumpWindows),
		"walk_speed", spec.WalkSpeed,
	)
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++
	g.drainTuningEvents()

	// input poll tick: runs every rendered frame, strictly more often than
	// the fixed tick below, so intent edges are latched here
	g.input.Update()
	if g.input.PausePressed {
		g.paused = !g.paused
	}
	if g.paused {
		g.pause.Update()
		return nil
	}
	g.ctrl.Sample(g.input.Intent())

	g.acc += simTPS / float64(ebiten.TPS())
	for g.acc >= 1 {
		g.acc--
		g.world.FixedTick()
	}

	g.respawnIfFallen()
	return nil
}

// drainTuningEvents applies pending live tuning edits. Only the motion config
// is swapped; collider changes need a restart.
func (g *Game) drainTuningEvents() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			spec, err := prefabs.LoadPlayerSpec()
			if err != nil {
				g.log.Warnw("tuning reload rejected", "file", name, "err", err)
				continue
			}
			if err := g.ctrl.Retune(spec.MotionConfig()); err != nil {
				g.log.Warnw("tuning reload rejected", "file", name, "err", err)
				continue
			}
			g.log.Infow("tuning reloaded", "file", name)
		case err := <-g.watcher.Errors:
			g.log.Warnw("tuning watch error", "err", err)
		default:
			return
		}
	}
}

func (g *Game) respawnIfFallen() {
	_, y := g.world.PlayerPosition()
	if y > -respawnMargin {
		return
	}
	g.world.SetPlayerPosition(g.level.Spawn.X, g.level.Spawn.Y)
	g.ctrl.Reset()
	g.log.Debugw("player respawned", "y", y)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	g.level.Draw(screen)
	g.player.Draw(screen, g.level.Height)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  %s", ebiten.ActualFPS(), g.player.DebugString()))

	if g.paused {
		g.pause.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
