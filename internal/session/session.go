// Package session tracks which user, if any, is logged into the back office.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hitec/nhplus/internal/common"
	"github.com/hitec/nhplus/internal/models"
)

// State is the session state.
type State int

const (
	LoggedOut State = iota
	LoggedIn
)

func (s State) String() string {
	if s == LoggedIn {
		return "logged in"
	}
	return "logged out"
}

// Session moves between LoggedOut and LoggedIn only. It never expires.
// The zero value is a logged-out session ready for use.
type Session struct {
	mu      sync.RWMutex
	user    *models.User
	id      uuid.UUID
	started time.Time
}

func New() *Session {
	return &Session{}
}

// Login records u as the current user. A nil user is refused with
// common.ErrorUnauthorized.
func (s *Session) Login(u *models.User) error {
	if u == nil {
		return common.ErrorUnauthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user != nil {
		return common.ErrorAlreadyLoggedIn
	}
	cp := *u
	s.user = &cp
	s.id = uuid.New()
	s.started = time.Now()
	return nil
}

// Logout clears the current user.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return common.ErrorNotLoggedIn
	}
	s.user = nil
	s.id = uuid.Nil
	s.started = time.Time{}
	return nil
}

// User returns a copy of the current user, or nil when logged out.
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	cp := *s.user
	return &cp
}

// ID identifies the current login in logs. It is uuid.Nil when logged out.
func (s *Session) ID() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return LoggedOut
	}
	return LoggedIn
}

// Since returns when the current login started.
func (s *Session) Since() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.started
}
