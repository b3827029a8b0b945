package audio

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/synth"
)

// Dispatcher turns sound cues into buffers and hands them to a sink.
type Dispatcher struct {
	cache  *synth.Cache
	sink   Sink
	logger *log.Logger
}

// NewDispatcher creates a dispatcher. A nil sink drops every cue.
func NewDispatcher(cache *synth.Cache, sink Sink, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Dispatcher{cache: cache, sink: sink, logger: logger}
}

// Dispatch plays cues in order.
func (d *Dispatcher) Dispatch(cues []synth.Cue) {
	if d == nil || d.sink == nil {
		return
	}
	for _, cue := range cues {
		buf := d.cache.Get(cue)
		if buf == nil {
			d.logger.Debug("unknown cue", "cue", cue)
			continue
		}
		d.sink.Play(buf)
	}
}
