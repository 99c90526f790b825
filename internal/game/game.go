package game

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/fortune-wheel/internal/burst"
	"github.com/iburimskiy/fortune-wheel/internal/config"
	"github.com/iburimskiy/fortune-wheel/internal/rng"
	"github.com/iburimskiy/fortune-wheel/internal/stats"
	"github.com/iburimskiy/fortune-wheel/internal/wheel"
	"github.com/iburimskiy/fortune-wheel/internal/widget"
)

type Options struct {
	Items  []wheel.Item
	Seed   int64 // 0 seeds from the clock
	Muted  bool
	Logger *log.Logger
}

type game struct {
	state  *widget.State
	clock  widget.Clock
	audio  *player
	stats  *stats.Session
	logger *log.Logger
	items  []wheel.Item

	// viz
	time        float64
	colorPhase  float64
	started     time.Time
	lastSegment int

	// input edge detection
	prevKey map[ebiten.Key]bool

	// button state
	buttonHovered bool
	buttonPressed bool

	lastErr error
}

// NewGame builds the wheel for opts.Items. It fails when the list cannot be laid
// out; audio problems only mute the game.
func NewGame(opts Options) (*game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	w, err := wheel.New(opts.Items, rng.NewRandomizer(opts.Seed))
	if err != nil {
		return nil, err
	}

	confettiSeed := opts.Seed
	if confettiSeed != 0 {
		confettiSeed++
	}

	g := &game{
		clock:   widget.SystemClock{},
		stats:   stats.NewSession(w.Items()),
		logger:  logger,
		items:   w.Items(),
		prevKey: map[ebiten.Key]bool{},
	}
	g.state = widget.New(w,
		burst.Point{X: config.WindowWidth / 2, Y: config.WindowHeight / 2},
		widget.WithSource(rng.NewRandomizer(confettiSeed)),
		widget.WithObserver(g.stats.Record),
	)
	g.started = g.clock.Now()
	g.lastSegment = wheel.SegmentAt(g.state.Rotation, len(g.items))

	g.audio, err = newPlayer(opts.Muted)
	if err != nil {
		logger.Printf("audio disabled: %v", err)
		g.lastErr = err
	}

	return g, nil
}

func (g *game) Update() error {
	if g.state.Cancelled() {
		return ebiten.Termination
	}

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	now := g.clock.Now()

	// Handle button interactions
	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = mouseX >= config.ButtonX && mouseX <= config.ButtonX+config.ButtonWidth &&
		mouseY >= config.ButtonY && mouseY <= config.ButtonY+config.ButtonHeight

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			g.spin(now)
		}
		g.buttonPressed = false
	}

	if justPressed(ebiten.KeySpace) || justPressed(ebiten.KeyEnter) {
		g.spin(now)
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	ev := g.state.Advance(now)
	if ev.Has(widget.Revealed) {
		g.logger.Printf("winner: %s %q", g.state.Winner.ID, g.state.Winner.Text)
		g.audio.fanfare()
	}

	if g.state.Busy {
		seg := wheel.SegmentAt(g.state.DisplayRotation(now), len(g.items))
		if seg != g.lastSegment {
			g.lastSegment = seg
			g.audio.click()
		}
	}

	g.time += 1.0 / config.TickRate
	g.colorPhase += config.ColorShiftSpeed

	return nil
}

// spin starts a spin unless one is already running.
func (g *game) spin(now time.Time) {
	if !g.state.Trigger(now) {
		return
	}
	g.lastErr = nil
	g.logger.Printf("spin: %d full turns, target %.1f deg", g.state.Last.FullSpins, g.state.Rotation)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Close stops pending reveals, the confetti and audio. Safe to call twice.
func (g *game) Close() {
	if g.state.Cancelled() {
		return
	}
	g.state.Cancel()
	g.audio.close()
	g.stats.Log(g.logger)
	g.stats.Stop()
}
