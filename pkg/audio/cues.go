// Package audio plays the short hit and miss cues.
//
// Tones are synthesised once with beep and played back through the ebiten
// audio context as 16-bit stereo PCM.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/gonewx/cardace/pkg/config"
	"github.com/gonewx/cardace/pkg/events"
)

// Cues plays a cue for a gameplay event.
type Cues interface {
	Play(kind events.CueKind)
}

// NopCues discards every cue.
type NopCues struct{}

// Play does nothing.
func (NopCues) Play(events.CueKind) {}

type tone struct {
	freq     float64
	duration time.Duration
}

var cueTones = map[events.CueKind]tone{
	events.CueHit:  {freq: 880, duration: 80 * time.Millisecond},
	events.CueMiss: {freq: 110, duration: 180 * time.Millisecond},
}

// Player plays pre-rendered cues on an ebiten audio context.
type Player struct {
	ctx     *ebaudio.Context
	samples map[events.CueKind][]byte
}

// NewPlayer renders the cue tones and binds them to the process audio
// context, creating it at the configured sample rate if needed.
func NewPlayer(cfg config.AudioConfig) (*Player, error) {
	ctx := ebaudio.CurrentContext()
	if ctx == nil {
		ctx = ebaudio.NewContext(cfg.SampleRate)
	}
	rate := beep.SampleRate(ctx.SampleRate())

	p := &Player{ctx: ctx, samples: make(map[events.CueKind][]byte, len(cueTones))}
	for kind, t := range cueTones {
		pcm, err := RenderTone(rate, t.freq, t.duration, cfg.Volume)
		if err != nil {
			return nil, fmt.Errorf("render cue %d: %w", kind, err)
		}
		p.samples[kind] = pcm
	}
	return p, nil
}

// Play starts the cue; overlapping cues mix.
func (p *Player) Play(kind events.CueKind) {
	pcm, ok := p.samples[kind]
	if !ok {
		return
	}
	p.ctx.NewPlayerFromBytes(pcm).Play()
}

// RenderTone synthesises a sine tone as little-endian 16-bit stereo PCM.
func RenderTone(rate beep.SampleRate, freq float64, d time.Duration, volume float64) ([]byte, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	n := rate.N(d)
	stream := withVolume(beep.Take(n, sine), volume)

	buf := make([][2]float64, n)
	got := 0
	for got < n {
		k, ok := stream.Stream(buf[got:])
		got += k
		if !ok {
			break
		}
	}

	pcm := make([]byte, 0, got*4)
	for i := 0; i < got; i++ {
		for ch := 0; ch < 2; ch++ {
			v := int16(clampSample(buf[i][ch]) * math.MaxInt16)
			pcm = append(pcm, byte(v), byte(v>>8))
		}
	}
	return pcm, nil
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// clampSample clamps a sample to [-1, 1].
func clampSample(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
