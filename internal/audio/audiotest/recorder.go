// Package audiotest provides sinks for exercising audio routing without a device.
package audiotest

import "sync"

// Recorder is an audio.Sink that keeps every buffer it receives.
type Recorder struct {
	mu      sync.Mutex
	buffers [][]float64
}

// Play records buffer.
func (r *Recorder) Play(buffer []float64) {
	r.mu.Lock()
	r.buffers = append(r.buffers, buffer)
	r.mu.Unlock()
}

// Buffers returns the recorded buffers in arrival order.
func (r *Recorder) Buffers() [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]float64, len(r.buffers))
	copy(out, r.buffers)
	return out
}

// Len returns the number of recorded buffers.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.buffers)
}

// Reset drops recorded buffers.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.buffers = nil
	r.mu.Unlock()
}
