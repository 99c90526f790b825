package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/faiface/beep"
)

type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq     float64
	phase    float64
	position int
	length   int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator returns a finite stereo tone of the given wave shape.
func NewOscillator(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		length: rate.N(d),
		wave:   wave,
		rate:   rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	if o.position >= o.length {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.length {
			return i, true
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			v = rand.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a stream with a linear attack and release.
type envelope struct {
	streamer beep.Streamer
	position int
	total    int
	attack   int
	release  int
}

func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		total:    rate.N(d),
		attack:   rate.N(attack),
		release:  rate.N(release),
	}
}

func (e *envelope) gain() float64 {
	switch {
	case e.attack > 0 && e.position < e.attack:
		return float64(e.position) / float64(e.attack)
	case e.release > 0 && e.position >= e.total-e.release:
		g := float64(e.total-e.position) / float64(e.release)
		if g < 0 {
			return 0
		}
		return g
	default:
		return 1
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	if e.position >= e.total {
		return 0, false
	}
	if rest := e.total - e.position; len(samples) > rest {
		samples = samples[:rest]
	}

	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
