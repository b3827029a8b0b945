package synth

import "sync"

// Cache stores generated buffers per cue. Generation is deterministic, so a
// buffer is built at most once and shared afterwards. Callers must not
// modify returned buffers.
type Cache struct {
	table Table

	mu    sync.RWMutex
	store [cueCount][]float64
	ready [cueCount]bool
}

// NewCache creates an empty cache over table.
func NewCache(table Table) *Cache {
	return &Cache{table: table}
}

// Get returns the cached buffer or generates it on demand.
func (c *Cache) Get(cue Cue) []float64 {
	if cue < 0 || cue >= cueCount {
		return nil
	}

	c.mu.RLock()
	if c.ready[cue] {
		buf := c.store[cue]
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.ready[cue] {
		return c.store[cue]
	}

	buf := c.table.Voice(cue).Render()
	c.store[cue] = buf
	c.ready[cue] = true
	return buf
}

// Preload generates every cue.
func (c *Cache) Preload() {
	for _, cue := range AllCues() {
		c.Get(cue)
	}
}
