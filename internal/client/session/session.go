package session

import (
	"bytes"
	"encoding/json"
	"sync"
)

// Status is the authentication state the UI is gated on.
type Status int

const (
	// StatusResolving is the state before the boot read completed.
	StatusResolving Status = iota
	StatusUnauthenticated
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusResolving:
		return "resolving"
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is the cached copy of what the credential store holds.
// User is never set while Token is empty.
type Session struct {
	Token string
	User  json.RawMessage
}

// Listener receives every status transition, in order.
type Listener func(prev, next Status)

// Manager holds the in-memory session and fans status transitions out to
// subscribers. It is safe for concurrent use.
type Manager struct {
	mu        sync.Mutex
	resolved  bool
	session   Session
	listeners map[int]Listener
	nextID    int
	notifyMu  sync.Mutex
}

// NewManager constructs a Manager in the Unresolved state.
func NewManager() *Manager {
	return &Manager{listeners: make(map[int]Listener)}
}

// Status reports the current status.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statusLocked()
}

// Current returns a copy of the cached session.
func (m *Manager) Current() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Session{Token: m.session.Token, User: bytes.Clone(m.session.User)}
}

// Authenticate caches token and user and marks the session resolved.
// An empty token is treated as a logout.
func (m *Manager) Authenticate(token string, user json.RawMessage) {
	if token == "" {
		m.Clear()
		return
	}
	m.set(Session{Token: token, User: bytes.Clone(user)})
}

// Clear drops the cached session.
func (m *Manager) Clear() {
	m.set(Session{})
}

// Subscribe registers l and returns a function removing it. Listeners run
// synchronously on the goroutine that changed the state, outside the state
// lock: they may read the Manager but must not change it.
func (m *Manager) Subscribe(l Listener) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = l
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

func (m *Manager) set(s Session) {
	// notifyMu keeps listener calls in the same order as the transitions.
	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.mu.Lock()
	prev := m.statusLocked()
	m.resolved = true
	m.session = s
	next := m.statusLocked()
	listeners := make([]Listener, 0, len(m.listeners))
	for _, l := range m.listeners {
		listeners = append(listeners, l)
	}
	m.mu.Unlock()

	if prev == next {
		return
	}
	for _, l := range listeners {
		l(prev, next)
	}
}

func (m *Manager) statusLocked() Status {
	switch {
	case !m.resolved:
		return StatusResolving
	case m.session.Token != "":
		return StatusAuthenticated
	default:
		return StatusUnauthenticated
	}
}
