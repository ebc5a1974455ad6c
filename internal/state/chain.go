package state

// ChainStore remembers the last polled graph state.
type ChainStore interface {
	Revision() uint64
	Learning() string
	// Set records a snapshot and reports whether it differs from the last.
	Set(revision uint64, learning string) bool
}

type chainStore struct {
	revision uint64
	learning string
	seen     bool
}

func NewChainStore() ChainStore {
	return &chainStore{}
}

func (s *chainStore) Revision() uint64 {
	return s.revision
}

func (s *chainStore) Learning() string {
	return s.learning
}

func (s *chainStore) Set(revision uint64, learning string) bool {
	changed := s.seen && (revision != s.revision || learning != s.learning)
	s.revision = revision
	s.learning = learning
	s.seen = true
	return changed
}
