package web

import (
	"sync"

	"github.com/google/uuid"
)

// Report is the session-scoped result of the most recent generation request.
// Failed marks the sentinel failure message rather than service output.
type Report struct {
	Markdown string
	Failed   bool
}

// SessionStore keeps the last report per browser session, in memory only.
// A session's report is overwritten on every request and discarded when the
// process exits.
type SessionStore struct {
	mu      sync.Mutex
	reports map[string]Report
}

func NewSessionStore() *SessionStore {
	return &SessionStore{reports: make(map[string]Report)}
}

// NewID issues a fresh session identifier.
func (s *SessionStore) NewID() string {
	return uuid.New().String()
}

// Get returns the session's last report, if any request has completed.
func (s *SessionStore) Get(id string) (Report, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reports[id]
	return r, ok
}

// Put overwrites the session's report with the most recent result.
func (s *SessionStore) Put(id string, r Report) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reports[id] = r
}
