package sessions

import "sync"

// Progress tracks the latest upload percentage per session.
// Values live only in the process that is serving the upload.
type Progress struct {
	mu     sync.RWMutex
	values map[string]int
}

func NewProgress() *Progress {
	return &Progress{values: make(map[string]int)}
}

// Set records pct for id, clamped to 0..100. Values never move backwards.
func (p *Progress) Set(id string, pct int) {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	p.mu.Lock()
	if pct > p.values[id] {
		p.values[id] = pct
	} else if _, ok := p.values[id]; !ok {
		p.values[id] = pct
	}
	p.mu.Unlock()
}

// Get returns the last value for id and whether an upload is being tracked.
func (p *Progress) Get(id string) (int, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.values[id]
	return v, ok
}

func (p *Progress) Clear(id string) {
	p.mu.Lock()
	delete(p.values, id)
	p.mu.Unlock()
}

// Reporter returns a callback that records progress for id.
func (p *Progress) Reporter(id string) func(int) {
	return func(pct int) { p.Set(id, pct) }
}
