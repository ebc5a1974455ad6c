package engine

import (
	"errors"
	"sync"
)

// ErrRecording is returned when a change is refused while recording.
var ErrRecording = errors.New("audio recorder is recording")

// Recorder tracks the audio recorder status and which channels are primed
// for multichannel recording.
type Recorder struct {
	mu        sync.Mutex
	recording bool
	primed    map[int]bool
}

// NewRecorder returns an idle recorder with nothing primed.
func NewRecorder() *Recorder {
	return &Recorder{primed: make(map[int]bool)}
}

// Status reports whether the recorder is running.
func (r *Recorder) Status() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

// SetStatus starts or stops the recorder.
func (r *Recorder) SetStatus(recording bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recording = recording
}

// ToggleRecording starts an idle recorder or stops a running one and returns
// the new status.
func (r *Recorder) ToggleRecording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recording = !r.recording
	return r.recording
}

// IsPrimed reports whether ch is armed for multichannel recording.
func (r *Recorder) IsPrimed(ch int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.primed[ch]
}

// TogglePrime arms or disarms ch. Priming is locked while recording.
func (r *Recorder) TogglePrime(ch int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.recording {
		return r.primed[ch], ErrRecording
	}
	r.primed[ch] = !r.primed[ch]
	return r.primed[ch], nil
}
