package sound

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rate = beep.SampleRate(44100)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 256)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never ended")
	return nil
}

func TestOscillatorLengthAndRange(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 50*time.Millisecond, wave, rate)
		samples := drain(t, osc)

		assert.Len(t, samples, rate.N(50*time.Millisecond), "wave %d", wave)
		for _, s := range samples {
			assert.GreaterOrEqual(t, s[0], -1.0)
			assert.LessOrEqual(t, s[0], 1.0)
			assert.Equal(t, s[0], s[1])
		}
		assert.NoError(t, osc.Err())
	}
}

func TestOscillatorSquareValues(t *testing.T) {
	samples := drain(t, NewOscillator(220, 20*time.Millisecond, WaveSquare, rate))
	for _, s := range samples {
		assert.Contains(t, []float64{-1, 1}, s[0])
	}
}

func TestOscillatorDrainedStaysDrained(t *testing.T) {
	osc := NewOscillator(440, time.Millisecond, WaveSine, rate)
	drain(t, osc)

	n, ok := osc.Stream(make([][2]float64, 16))
	assert.Equal(t, 0, n)
	assert.False(t, ok)
}

func TestEnvelopeShapesAndCuts(t *testing.T) {
	d := 100 * time.Millisecond
	src := NewOscillator(0, time.Second, WaveSquare, rate) // phase never moves, constant +1
	env := NewEnvelope(src, d, 10*time.Millisecond, 20*time.Millisecond, rate)

	samples := drain(t, env)
	require.Len(t, samples, rate.N(d))

	assert.Equal(t, 0.0, samples[0][0])
	assert.Equal(t, 1.0, samples[len(samples)/2][0])
	assert.Less(t, samples[len(samples)-1][0], 0.01)
	for i := 1; i < rate.N(10*time.Millisecond); i++ {
		assert.Greater(t, samples[i][0], samples[i-1][0])
	}
}

func TestClickAndFanfareAreFinite(t *testing.T) {
	click := drain(t, Click(rate))
	assert.Len(t, click, rate.N(clickDuration))

	fanfare := drain(t, Fanfare(rate))
	want := 3*rate.N(noteDuration) + rate.N(finalNote)
	assert.Len(t, fanfare, want)

	var peak float64
	for _, s := range fanfare {
		if s[0] > peak {
			peak = s[0]
		}
	}
	assert.Greater(t, peak, 0.1)
	assert.LessOrEqual(t, peak, 1.0)
}

func TestLevelTapSilence(t *testing.T) {
	tap := NewLevelTap(beep.Silence(1000), 512)
	drain(t, tap)
	assert.Equal(t, 0.0, tap.Level(512))
	assert.Equal(t, 0.0, tap.Level(0))
}

func TestLevelTapLoudThenDecay(t *testing.T) {
	tone := NewOscillator(0, 10*time.Millisecond, WaveSquare, rate)
	tap := NewLevelTap(tone, 256)

	buf := make([][2]float64, 128)
	n, ok := tap.Stream(buf)
	require.True(t, ok)
	require.Equal(t, 128, n)
	assert.InDelta(t, 1.0, tap.Level(128), 1e-9)
	// clamped to the ring, half of which has not been written yet
	assert.InDelta(t, math.Sqrt(0.5), tap.Level(10000), 1e-9)

	drain(t, tap)
	// past the end the tap keeps recording silence
	for i := 0; i < 4; i++ {
		tap.Stream(buf)
	}
	assert.Equal(t, 0.0, tap.Level(256))
	assert.NoError(t, tap.Err())
}
