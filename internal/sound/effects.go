package sound

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
)

const (
	clickFreq     = 1800.0
	clickDuration = 12 * time.Millisecond
	clickRelease  = 8 * time.Millisecond

	noteDuration = 110 * time.Millisecond
	noteAttack   = 5 * time.Millisecond
	noteRelease  = 60 * time.Millisecond
	finalNote    = 420 * time.Millisecond
)

// C major arpeggio, C5 E5 G5 then a held C6.
var fanfareNotes = []float64{523.25, 659.25, 783.99}

const fanfareFinal = 1046.50

func volume(s beep.Streamer, v float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: v}
}

// Click is the tick heard when a segment edge passes the pointer.
func Click(rate beep.SampleRate) beep.Streamer {
	tone := NewOscillator(clickFreq, clickDuration, WaveSquare, rate)
	return volume(NewEnvelope(tone, clickDuration, 0, clickRelease, rate), -3)
}

func note(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	// square body with a sine an octave up for shine
	body := NewEnvelope(NewOscillator(freq, d, WaveSquare, rate), d, noteAttack, noteRelease, rate)
	shine := NewEnvelope(NewOscillator(freq*2, d, WaveSine, rate), d, noteAttack, noteRelease, rate)
	return beep.Mix(volume(body, -2), volume(shine, -3))
}

// Fanfare plays when the winner is revealed.
func Fanfare(rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(fanfareNotes)+1)
	for _, f := range fanfareNotes {
		parts = append(parts, note(f, noteDuration, rate))
	}
	parts = append(parts, note(fanfareFinal, finalNote, rate))
	return beep.Seq(parts...)
}
