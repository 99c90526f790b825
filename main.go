package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/fortune-wheel/internal/config"
	"github.com/iburimskiy/fortune-wheel/internal/game"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code. Everything it defers has run by the time
// main exits.
func run() int {
	var (
		itemsPath string
		seed      int64
		muted     bool
	)
	flag.StringVar(&itemsPath, "items", "", "YAML file with the wheel items (built-in list when empty)")
	flag.Int64Var(&seed, "seed", 0, "Random seed, 0 seeds from the clock")
	flag.BoolVar(&muted, "mute", false, "Disable sound")
	flag.Parse()

	logger := log.New(os.Stderr, "fortune-wheel: ", log.LstdFlags)

	items, err := config.LoadItems(itemsPath)
	if err != nil {
		reportStartup(logger, err)
		return 1
	}
	logger.Printf("loaded %d items", len(items))

	g, err := game.NewGame(game.Options{
		Items:  items,
		Seed:   seed,
		Muted:  muted,
		Logger: logger,
	})
	if err != nil {
		reportStartup(logger, err)
		return 1
	}
	defer g.Close()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle + " - Space/Enter: spin, Esc/Q: quit")
	ebiten.SetTPS(config.TickRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Printf("run: %v", err)
		return 1
	}
	return 0
}

// reportStartup shows a start-up error in a dialog and on stderr.
func reportStartup(logger *log.Logger, err error) {
	if derr := zenity.Error("Cannot show the wheel: "+err.Error(),
		zenity.Title(config.WindowTitle),
		zenity.ErrorIcon,
	); derr != nil {
		logger.Printf("error dialog: %v", derr)
	}
	logger.Printf("startup: %v", err)
}
