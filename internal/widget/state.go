package widget

import (
	"time"

	"github.com/iburimskiy/fortune-wheel/internal/burst"
	"github.com/iburimskiy/fortune-wheel/internal/config"
	"github.com/iburimskiy/fortune-wheel/internal/rng"
	"github.com/iburimskiy/fortune-wheel/internal/wheel"
)

// Events reports what happened during one Advance call.
type Events uint8

const (
	// Revealed fires once the wheel has settled and the winner is shown.
	Revealed Events = 1 << iota
	// BurstEnded fires when the confetti display time is over.
	BurstEnded
)

func (e Events) Has(flag Events) bool { return e&flag != 0 }

// State is everything the shell needs to draw the wheel and its result. It is
// driven from a single goroutine (the game loop).
type State struct {
	Busy        bool
	Rotation    float64 // target cumulative rotation of the current or last spin
	Winner      *wheel.Item
	Last        wheel.Result
	Burst       burst.Batch
	BurstActive bool

	wheel  *wheel.Wheel
	center burst.Point
	src    rng.Source
	ease   CubicBezier

	settle   time.Duration
	burstFor time.Duration

	from       float64
	spunAt     time.Time
	revealAt   time.Time
	burstUntil time.Time

	observers []func(wheel.Result)
	cancelled bool
}

type Option func(*State)

func WithSettleDuration(d time.Duration) Option {
	return func(s *State) { s.settle = d }
}

func WithBurstDuration(d time.Duration) Option {
	return func(s *State) { s.burstFor = d }
}

// WithSource sets the randomness used for confetti.
func WithSource(src rng.Source) Option {
	return func(s *State) { s.src = src }
}

// WithObserver registers fn to be called with every winning result when it is revealed.
func WithObserver(fn func(wheel.Result)) Option {
	return func(s *State) { s.observers = append(s.observers, fn) }
}

func New(w *wheel.Wheel, center burst.Point, opts ...Option) *State {
	s := &State{
		wheel:    w,
		center:   center,
		ease:     CubicBezier{X1: config.EaseX1, Y1: config.EaseY1, X2: config.EaseX2, Y2: config.EaseY2},
		settle:   config.SettleDuration,
		burstFor: config.BurstDuration,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.src == nil {
		s.src = rng.NewRandomizer(0)
	}
	return s
}

// Trigger starts a spin. It is a no-op while a spin is in flight or after Cancel,
// and reports whether a spin was started.
func (s *State) Trigger(now time.Time) bool {
	if s.Busy || s.cancelled {
		return false
	}

	res, err := s.wheel.Spin(s.Rotation)
	if err != nil {
		// a wheel built by wheel.New always has items
		return false
	}

	s.Winner = nil
	s.stopBurst()

	s.from = s.Rotation
	s.Rotation = res.Angle
	s.Last = res
	s.Busy = true
	s.spunAt = now
	s.revealAt = now.Add(s.settle)
	return true
}

// Advance moves the widget to now: reveals the winner once the wheel has settled,
// steps the confetti and ends the burst when its display time is over.
func (s *State) Advance(now time.Time) Events {
	if s.cancelled {
		return 0
	}

	var ev Events
	if s.Busy && !now.Before(s.revealAt) {
		s.Busy = false
		winner := s.Last.Item
		s.Winner = &winner
		s.Burst = burst.Spawn(s.center, s.src)
		s.BurstActive = true
		s.burstUntil = now.Add(s.burstFor)
		ev |= Revealed
		for _, fn := range s.observers {
			fn(s.Last)
		}
		return ev
	}

	if !s.BurstActive {
		return ev
	}
	if !now.Before(s.burstUntil) {
		s.stopBurst()
		return ev | BurstEnded
	}
	if burst.IsActive(s.Burst) {
		s.Burst = burst.Tick(s.Burst)
	}
	return ev
}

// DisplayRotation is the on-screen angle of the wheel at now, easing from the
// previous rest angle to Rotation over the settle duration.
func (s *State) DisplayRotation(now time.Time) float64 {
	if !s.Busy || s.settle <= 0 {
		return s.Rotation
	}
	p := float64(now.Sub(s.spunAt)) / float64(s.settle)
	return s.from + (s.Rotation-s.from)*s.ease.At(p)
}

// Cancel releases pending deadlines and the confetti. Later Trigger and Advance
// calls do nothing.
func (s *State) Cancel() {
	s.cancelled = true
	s.Busy = false
	s.revealAt = time.Time{}
	s.stopBurst()
}

// Cancelled reports whether Cancel has been called.
func (s *State) Cancelled() bool { return s.cancelled }

func (s *State) stopBurst() {
	s.Burst = nil
	s.BurstActive = false
	s.burstUntil = time.Time{}
}
