// Package sound synthesizes, decodes and plays short sound cues.
//
// Cues are built with beep streamers and rendered into memory once; playback
// goes through the ebiten audio context so only one audio device is opened.
package sound

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/wav"
)

// resampleQuality is the beep.Resample interpolation quality
const resampleQuality = 4

// Clip is a fully decoded stereo sound held in memory
type Clip struct {
	Rate    beep.SampleRate
	Samples [][2]float64
}

// FromStreamer drains a finite streamer into a clip
func FromStreamer(s beep.Streamer, rate beep.SampleRate) *Clip {
	c := &Clip{Rate: rate}
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		c.Samples = append(c.Samples, buf[:n]...)
		if !ok {
			break
		}
	}
	return c
}

// Decode reads a WAV stream and resamples it to rate
func Decode(r io.Reader, rate beep.SampleRate) (*Clip, error) {
	s, format, err := wav.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav: %w", err)
	}
	defer s.Close()

	var src beep.Streamer = s
	if format.SampleRate != rate {
		src = beep.Resample(resampleQuality, format.SampleRate, rate, s)
	}
	c := FromStreamer(src, rate)
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to decode wav: %w", err)
	}
	return c, nil
}

// Len returns the number of sample frames
func (c *Clip) Len() int {
	return len(c.Samples)
}

// Duration returns the clip length
func (c *Clip) Duration() time.Duration {
	if c.Rate <= 0 {
		return 0
	}
	return c.Rate.D(len(c.Samples))
}

// Streamer returns a fresh streamer over the clip
func (c *Clip) Streamer() beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= len(c.Samples) {
			return 0, false
		}
		n := copy(samples, c.Samples[pos:])
		pos += n
		return n, true
	})
}

// WithVolume returns a copy scaled by beep's exponential volume (base 2).
// Zero returns the clip unchanged.
func (c *Clip) WithVolume(volume float64) *Clip {
	if volume == 0 {
		return c
	}
	return FromStreamer(&effects.Volume{Streamer: c.Streamer(), Base: 2, Volume: volume}, c.Rate)
}

// F32LE renders the clip as interleaved little-endian float32 stereo samples,
// the format ebiten's audio context plays natively.
func (c *Clip) F32LE() []byte {
	out := make([]byte, len(c.Samples)*8)
	for i, s := range c.Samples {
		binary.LittleEndian.PutUint32(out[i*8:], math.Float32bits(float32(clampSample(s[0]))))
		binary.LittleEndian.PutUint32(out[i*8+4:], math.Float32bits(float32(clampSample(s[1]))))
	}
	return out
}

func clampSample(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
