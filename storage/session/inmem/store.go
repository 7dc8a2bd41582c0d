package inmemstore

import (
	"sync"

	"github.com/trezcool/lava/core/session"
)

// store keeps the persisted session in memory; for dev and tests.
type store struct {
	mu    sync.Mutex
	sess  session.PersistedSession
	saved bool
}

var _ session.Store = (*store)(nil)

func NewStore() *store { //nolint
	return &store{}
}

func (s *store) Save(sess session.PersistedSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = sess
	s.saved = true
	return nil
}

func (s *store) Load() (session.PersistedSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.saved {
		return session.PersistedSession{}, session.ErrNoSession
	}
	return s.sess, nil
}

func (s *store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = session.PersistedSession{}
	s.saved = false
	return nil
}
