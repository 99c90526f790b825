package sound

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// LevelTap wraps a beep.Streamer and records the last N played samples into a ring
// buffer so the renderer can react to whatever is sounding right now.
type LevelTap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	mu        sync.RWMutex
}

func NewLevelTap(src beep.Streamer, ringSize int) *LevelTap {
	return &LevelTap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *LevelTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)

	t.mu.Lock()
	for i := 0; i < n; i++ {
		t.push(samples[i])
	}
	// keep the level decaying once the source runs dry
	for i := n; i < len(samples); i++ {
		t.push([2]float64{})
	}
	t.mu.Unlock()

	return n, ok
}

func (t *LevelTap) push(s [2]float64) {
	t.buffer[t.nextIndex] = s
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
	}
}

func (t *LevelTap) Err() error { return t.Source.Err() }

// Level returns the RMS of the last n recorded samples, mono-mixed, in [0,1].
func (t *LevelTap) Level(n int) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > len(t.buffer) {
		n = len(t.buffer)
	}
	if n <= 0 {
		return 0
	}

	var sumSquares float64
	idx := t.nextIndex - 1
	for i := 0; i < n; i++ {
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
		mono := (t.buffer[idx][0] + t.buffer[idx][1]) * 0.5
		sumSquares += mono * mono
		idx--
	}

	rms := math.Sqrt(sumSquares / float64(n))
	if rms > 1 {
		rms = 1
	}
	return rms
}
