package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/platformer/levels"
)

func main() {
	levelName := flag.String("level", "plain", "level name in levels/ (basename, .yaml optional)")
	debug := flag.Bool("debug", false, "enable debug logging")
	watch := flag.Bool("watch", false, "reload prefab tuning on save")
	logPath := flag.String("log", "platformer.log", "log file path")
	flag.Parse()

	log := newLogger(*logPath, *debug)
	defer func() {
		_ = log.Sync()
	}()

	game, err := NewGame(*levelName, *watch, log)
	if err != nil {
		log.Fatalw("failed to start", "err", err, "levels", levels.Names())
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("platformer")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalw("game exited", "err", err)
	}
}
