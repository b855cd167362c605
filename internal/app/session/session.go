// Package session holds in-memory draft editing sessions for program
// aggregates. A session is the single source of truth for one program's
// form data while an administrator edits it; nothing reaches storage until
// the draft is explicitly committed, and discarding a draft is a pure drop
// with no rollback to perform.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alqalam/college-backend/internal/app/models"
)

// Session wraps one draft Program. All mutation goes through Apply, which
// feeds the updater the latest value under the lock, so updates issued from
// different form tabs compose instead of overwriting each other.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu      sync.Mutex
	program models.Program
}

// Snapshot returns a copy of the current draft.
func (s *Session) Snapshot() models.Program {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.program
}

// Apply replaces the draft with update(current). Updaters must treat the
// received value as read-only outside the fields they change.
func (s *Session) Apply(update func(models.Program) models.Program) models.Program {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.program = update(s.program)
	return s.program
}

// Store keeps the open draft sessions of this process, keyed by session id.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Open starts a new draft session seeded with the given aggregate and
// returns it. Every Open gets a fresh id; two administrators opening the
// same program edit independent drafts (last commit wins, single-writer by
// convention).
func (st *Store) Open(program models.Program) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		program:   program,
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get returns the session with the given id, or nil if it was never opened
// or has been discarded.
func (st *Store) Get(id string) *Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sessions[id]
}

// Discard drops a draft without committing it. Discarding an unknown id is
// a no-op.
func (st *Store) Discard(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len reports the number of open drafts.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
