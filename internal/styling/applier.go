package styling

import "sync"

// Applier is the single point that writes the stylesheet into the live page.
// The manager calls it but does not implement it, keeping the request and
// parse logic testable without a rendering surface.
type Applier interface {
	ApplyStylesheet(css string)
}

// StyleStore holds the current stylesheet text. Each successful request
// overwrites the previous payload; the empty string is the valid
// "no styling applied" state.
type StyleStore struct {
	mu  sync.RWMutex
	css string
}

func (s *StyleStore) ApplyStylesheet(css string) {
	s.mu.Lock()
	s.css = css
	s.mu.Unlock()
}

// Current returns the last accepted CSS payload.
func (s *StyleStore) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.css
}
