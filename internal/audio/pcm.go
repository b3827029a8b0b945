// Package audio plays synthesized buffers on the system audio device.
package audio

import (
	"errors"
	"math"
)

// ErrDegenerateBuffer is returned for buffers that cannot be normalized:
// empty, or silent everywhere.
var ErrDegenerateBuffer = errors.New("audio: degenerate buffer")

// maxInt16 is the peak value a normalized sample maps to.
const maxInt16 = 32767

// Normalize scales buffer so its peak absolute value becomes 32767 and
// duplicates each sample onto two channels.
func Normalize(buffer []float64) ([][2]int16, error) {
	peak := 0.0
	for _, s := range buffer {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	if len(buffer) == 0 || peak == 0 || math.IsNaN(peak) || math.IsInf(peak, 0) {
		return nil, ErrDegenerateBuffer
	}

	scale := maxInt16 / peak
	frames := make([][2]int16, len(buffer))
	for i, s := range buffer {
		v := int16(math.Round(s * scale))
		frames[i] = [2]int16{v, v}
	}
	return frames, nil
}

// pcmStreamer feeds normalized frames to beep at a fixed gain.
type pcmStreamer struct {
	frames [][2]int16
	gain   float64
	pos    int
}

func newPCMStreamer(frames [][2]int16, gain float64) *pcmStreamer {
	return &pcmStreamer{frames: frames, gain: gain}
}

// Stream implements beep.Streamer.
func (p *pcmStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if p.pos >= len(p.frames) {
		return 0, false
	}
	for n < len(samples) && p.pos < len(p.frames) {
		f := p.frames[p.pos]
		samples[n][0] = float64(f[0]) / 32768 * p.gain
		samples[n][1] = float64(f[1]) / 32768 * p.gain
		n++
		p.pos++
	}
	return n, true
}

// Err implements beep.Streamer.
func (p *pcmStreamer) Err() error {
	return nil
}
