package engine

import "sync"

// Mixer holds the per-channel strip flags exposed in the audio options.
type Mixer struct {
	mu    sync.Mutex
	mono  map[int]bool
	phase map[int]bool
}

// NewMixer returns a mixer with every strip in stereo and normal phase.
func NewMixer() *Mixer {
	return &Mixer{mono: make(map[int]bool), phase: make(map[int]bool)}
}

// Mono reports whether the strip for ch is summed to mono.
func (m *Mixer) Mono(ch int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mono[ch]
}

// Phase reports whether the strip for ch has its phase reversed.
func (m *Mixer) Phase(ch int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.phase[ch]
}

// ToggleMono flips the mono flag for ch and returns the new value.
func (m *Mixer) ToggleMono(ch int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mono[ch] = !m.mono[ch]
	return m.mono[ch]
}

// TogglePhase flips the phase reverse flag for ch and returns the new value.
func (m *Mixer) TogglePhase(ch int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.phase[ch] = !m.phase[ch]
	return m.phase[ch]
}
