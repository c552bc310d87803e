// Package sound plays short generated tones for game feedback. Audio
// is strictly best-effort: a failed speaker init leaves the player
// muted and the game fully playable.
package sound

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays generated sine tones through the speaker.
type Player struct {
	enabled bool
}

// NewPlayer initializes the speaker unless mute is set. Initialization
// failure is swallowed; the returned player simply stays silent.
func NewPlayer(mute bool) *Player {
	if mute {
		return &Player{}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return &Player{}
	}
	return &Player{enabled: true}
}

// Enabled checks if the player produces audio.
func (p *Player) Enabled() bool {
	return p.enabled
}

// Commit plays a short blip when a connection lands.
func (p *Player) Commit() {
	p.play(p.tone(660, 60*time.Millisecond))
}

// Win plays a rising two-note chime.
func (p *Player) Win() {
	p.play(beep.Seq(
		p.tone(523, 130*time.Millisecond),
		p.tone(784, 220*time.Millisecond),
	))
}

// Close shuts the speaker down.
func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
	}
}

func (p *Player) play(s beep.Streamer) {
	if !p.enabled || s == nil {
		return
	}
	speaker.Play(s)
}

// tone returns a fixed-length sine streamer, or nil if the generator
// rejects the frequency.
func (p *Player) tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil
	}
	return beep.Take(sampleRate.N(d), sine)
}
