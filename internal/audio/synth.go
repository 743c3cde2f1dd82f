// Package audio voices simulation events with synthesized chiptune effects.
// Sounds are generated on the fly with beep; no sample files are shipped.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the output rate for every generated sound.
const SampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// sample returns the wave value at phase p in [0, 1).
func (w WaveType) sample(p float64) float64 {
	switch w {
	case WaveSquare:
		if p < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (p - 0.5)
	default:
		return math.Sin(2 * math.Pi * p)
	}
}

// Sweep describes a one-shot tone whose pitch and gain both glide
// exponentially from start to end values.
type Sweep struct {
	Wave     WaveType
	FromHz   float64
	ToHz     float64
	Gain     float64 // Starting gain; fades to 1% of it
	Duration time.Duration
}

// Effect sweeps
var (
	ShotSweep        = Sweep{Wave: WaveSquare, FromHz: 800, ToHz: 300, Gain: 0.2, Duration: 100 * time.Millisecond}
	EnemyDeathSweep  = Sweep{Wave: WaveSquare, FromHz: 150, ToHz: 40, Gain: 0.3, Duration: 200 * time.Millisecond}
	PlayerDeathSweep = Sweep{Wave: WaveSaw, FromHz: 300, ToHz: 30, Gain: 0.4, Duration: 500 * time.Millisecond}
	BonusDeathSweep  = Sweep{Wave: WaveSquare, FromHz: 900, ToHz: 60, Gain: 0.35, Duration: 400 * time.Millisecond}
	WaveSweep        = Sweep{Wave: WaveSine, FromHz: 300, ToHz: 1200, Gain: 0.25, Duration: 350 * time.Millisecond}
	GameOverSweep    = Sweep{Wave: WaveSaw, FromHz: 220, ToHz: 20, Gain: 0.4, Duration: time.Second}
)

// sweepStreamer renders a Sweep sample by sample.
type sweepStreamer struct {
	wave     WaveType
	fromHz   float64
	ratioHz  float64 // ToHz / FromHz
	gain     float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
}

// NewSweep creates a streamer for s at the given rate.
func NewSweep(s Sweep, rate beep.SampleRate) beep.Streamer {
	return &sweepStreamer{
		wave:    s.Wave,
		fromHz:  s.FromHz,
		ratioHz: s.ToHz / s.FromHz,
		gain:    s.Gain,
		total:   rate.N(s.Duration),
		rate:    rate,
	}
}

func (o *sweepStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		t := float64(o.position) / float64(o.total)
		freq := o.fromHz * math.Pow(o.ratioHz, t)
		gain := o.gain * math.Pow(0.01, t)

		val := gain * o.wave.sample(o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sweepStreamer) Err() error { return nil }

// humGenerator is the endless warble of a flying bonus ship: a low square
// wave whose pitch wobbles with a slow LFO.
type humGenerator struct {
	rate  beep.SampleRate
	pos   int
	phase float64
}

// NewHum creates the looping bonus ship hum.
func NewHum(rate beep.SampleRate) beep.Streamer {
	return &humGenerator{rate: rate}
}

func (g *humGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.rate)
		freq := 110 + 30*math.Sin(2*math.Pi*6*t)

		val := 0.08 * WaveSquare.sample(g.phase)
		samples[i][0] = val
		samples[i][1] = val

		g.phase += freq / float64(g.rate)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *humGenerator) Err() error { return nil }

// newVolume scales a stream linearly; zero or less silences it.
// math.Log2(0) is -Inf, so silence is requested explicitly.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
