package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave defines oscillator wave shapes
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a fixed-length tone
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// NewOscillator creates a tone streamer that ends after duration
func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a streamer in and out linearly
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope applies an attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales a streamer by a linear gain; gain <= 0 silences it
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

const (
	pickupNote1   = 70 * time.Millisecond
	pickupNote2   = 160 * time.Millisecond
	pickupAttack  = 4 * time.Millisecond
	pickupRelease = 60 * time.Millisecond
)

// PickupCue synthesizes the coin pickup chime (B5 then E6)
func PickupCue(rate beep.SampleRate) *Clip {
	n1 := NewEnvelope(NewOscillator(987.77, pickupNote1, WaveSquare, rate), pickupNote1, pickupAttack, pickupRelease/2, rate)
	n2 := NewEnvelope(NewOscillator(1318.51, pickupNote2, WaveTriangle, rate), pickupNote2, pickupAttack, pickupRelease, rate)

	return FromStreamer(withVolume(beep.Seq(n1, n2), 0.35), rate)
}
