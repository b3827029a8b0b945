// Package synth generates the game's sound effects procedurally.
package synth

import "math"

// SampleRate is the rate every generated buffer is sampled at.
const SampleRate = 44100

// impactDecay is the exponential envelope rate of impact sounds.
const impactDecay = 8.0

// sampleCount returns the number of samples covering duration seconds.
func sampleCount(duration float64) int {
	if duration <= 0 {
		return 0
	}
	return int(math.Round(SampleRate * duration))
}

// GenerateTone returns a sine wave of frequency Hz lasting duration seconds,
// scaled by amplitude. Sample i is taken at t = i/SampleRate, so the end
// point is excluded.
func GenerateTone(frequency, duration, amplitude float64) []float64 {
	buf := make([]float64, sampleCount(duration))
	for i := range buf {
		t := float64(i) / SampleRate
		buf[i] = amplitude * math.Sin(2*math.Pi*frequency*t)
	}
	return buf
}

// GenerateImpact returns a sine at baseFrequency shaped by an e^(-8t) decay.
func GenerateImpact(baseFrequency, duration, amplitude float64) []float64 {
	buf := make([]float64, sampleCount(duration))
	for i := range buf {
		t := float64(i) / SampleRate
		buf[i] = amplitude * math.Sin(2*math.Pi*baseFrequency*t) * math.Exp(-impactDecay*t)
	}
	return buf
}
