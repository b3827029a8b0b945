package audio

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/synth"
)

// Sink accepts mono buffers at synth.SampleRate for playback.
type Sink interface {
	Play(buffer []float64)
}

const sampleRate = beep.SampleRate(synth.SampleRate)

// SpeakerPlayer plays buffers through the beep speaker. Every buffer is
// added to one long-lived mixer, so overlapping sounds are mixed by the
// backend and Play never blocks on playback.
type SpeakerPlayer struct {
	cfg    config.AudioConfig
	logger *log.Logger
	mixer  *beep.Mixer

	mu         sync.Mutex // Serializes Start and Close
	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool
}

// NewSpeakerPlayer creates a player. Nothing is opened until Start.
func NewSpeakerPlayer(cfg config.AudioConfig, logger *log.Logger) *SpeakerPlayer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &SpeakerPlayer{
		cfg:    cfg,
		logger: logger,
		mixer:  &beep.Mixer{},
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Start initializes the speaker. When no audio device is available the
// player switches to silent mode and Start still succeeds.
func (p *SpeakerPlayer) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running.Load() {
		return fmt.Errorf("audio: player already running")
	}

	if !p.cfg.Enabled {
		p.silentMode.Store(true)
		p.running.Store(true)
		p.logger.Debug("audio disabled by config")
		return nil
	}

	bufferMS := p.cfg.BufferMS
	if bufferMS <= 0 {
		bufferMS = 100
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Duration(bufferMS)*time.Millisecond)); err != nil {
		p.silentMode.Store(true)
		p.running.Store(true)
		p.logger.Warn("audio device unavailable, running silent", "error", err)
		return nil
	}

	speaker.Play(p.mixer)
	p.running.Store(true)
	p.logger.Info("audio started", "sample_rate", int(sampleRate), "buffer_ms", bufferMS)
	return nil
}

// Play normalizes buffer and queues it on the mixer. Degenerate buffers are
// skipped.
func (p *SpeakerPlayer) Play(buffer []float64) {
	p.play(buffer, nil)
}

// PlayDone is Play with a channel that is closed once the buffer finished
// playing, or immediately when it was dropped.
func (p *SpeakerPlayer) PlayDone(buffer []float64) <-chan struct{} {
	done := make(chan struct{})
	var once sync.Once
	finish := func() { once.Do(func() { close(done) }) }
	if !p.play(buffer, finish) {
		finish()
	}
	return done
}

func (p *SpeakerPlayer) play(buffer []float64, onDone func()) bool {
	if !p.running.Load() || p.silentMode.Load() || p.muted.Load() {
		return false
	}

	frames, err := Normalize(buffer)
	if err != nil {
		if errors.Is(err, ErrDegenerateBuffer) {
			p.logger.Debug("skipping degenerate buffer", "samples", len(buffer))
		}
		return false
	}

	var s beep.Streamer = newPCMStreamer(frames, p.cfg.Volume)
	if onDone != nil {
		s = beep.Seq(s, beep.Callback(onDone))
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	return true
}

// SetMuted toggles muting without touching the device.
func (p *SpeakerPlayer) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// Muted reports whether requests are dropped by mute.
func (p *SpeakerPlayer) Muted() bool {
	return p.muted.Load()
}

// Silent reports whether the player runs without an audio device.
func (p *SpeakerPlayer) Silent() bool {
	return p.silentMode.Load()
}

// Close stops playback and releases the device.
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running.Load() {
		return
	}
	p.running.Store(false)

	if p.silentMode.Load() {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
