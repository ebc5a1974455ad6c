package state

// RecorderStore remembers the last polled recorder status.
type RecorderStore interface {
	Recording() bool
	// Set records a status and reports whether it differs from the last.
	Set(recording bool) bool
}

type recorderStore struct {
	recording bool
	seen      bool
}

// NewRecorderStore returns a store seeded with the status the menu was built
// with, so the first poll only counts as a change when the status moved.
func NewRecorderStore(recording bool) RecorderStore {
	return &recorderStore{recording: recording, seen: true}
}

func (s *recorderStore) Recording() bool {
	return s.recording
}

func (s *recorderStore) Set(recording bool) bool {
	changed := s.seen && recording != s.recording
	s.recording = recording
	s.seen = true
	return changed
}
