package game

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/fortune-wheel/internal/config"
	"github.com/iburimskiy/fortune-wheel/internal/sound"
)

// player owns the speaker. Every effect is added to one mixer that plays for the
// whole session; the tap in front of it feeds the rim glow.
type player struct {
	rate  beep.SampleRate
	mixer *beep.Mixer
	tap   *sound.LevelTap
	ready bool
}

func newPlayer(muted bool) (*player, error) {
	p := &player{
		rate:  beep.SampleRate(config.SampleRate),
		mixer: &beep.Mixer{},
	}
	p.tap = sound.NewLevelTap(p.mixer, config.LevelRingSize)
	if muted {
		return p, nil
	}

	if err := speaker.Init(p.rate, config.AudioBufferSize); err != nil {
		return p, fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.tap)
	p.ready = true
	return p, nil
}

func (p *player) play(s beep.Streamer) {
	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func (p *player) click() { p.play(sound.Click(p.rate)) }

func (p *player) fanfare() { p.play(sound.Fanfare(p.rate)) }

// level is the loudness of roughly the last frame of audio.
func (p *player) level() float64 {
	if !p.ready {
		return 0
	}
	return p.tap.Level(p.rate.N(time.Second / config.TickRate))
}

func (p *player) close() {
	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.ready = false
}
