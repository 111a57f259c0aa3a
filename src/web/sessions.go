package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BielosX/wombat/poke-browser/src/browser"
)

const SessionCookie = "poke_session"

type session struct {
	browser  *browser.Browser
	lastSeen time.Time
}

// Sessions gives every visitor its own Browser, keyed by a cookie.
type Sessions struct {
	newBrowser func() *browser.Browser
	ttl        time.Duration
	now        func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

func NewSessions(newBrowser func() *browser.Browser, ttl time.Duration) *Sessions {
	return &Sessions{
		newBrowser: newBrowser,
		ttl:        ttl,
		now:        time.Now,
		sessions:   map[string]*session{},
	}
}

// Get returns the Browser of the request's session, starting a new session
// and setting its cookie when the request has none or an unknown one.
func (s *Sessions) Get(w http.ResponseWriter, r *http.Request) *browser.Browser {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		if existing, ok := s.sessions[cookie.Value]; ok {
			existing.lastSeen = now
			return existing.browser
		}
	}
	id := uuid.NewString()
	created := &session{browser: s.newBrowser(), lastSeen: now}
	s.sessions[id] = created
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return created.browser
}

// Prune drops sessions idle for longer than the TTL and reports how many.
func (s *Sessions) Prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ttl <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.ttl)
	pruned := 0
	for id, session := range s.sessions {
		if session.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			pruned++
		}
	}
	return pruned
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
