package session

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transition struct{ prev, next Status }

func record(m *Manager) (*[]transition, func()) {
	var mu sync.Mutex
	got := &[]transition{}
	cancel := m.Subscribe(func(prev, next Status) {
		mu.Lock()
		defer mu.Unlock()
		*got = append(*got, transition{prev, next})
	})
	return got, cancel
}

func TestManager_StartsResolving(t *testing.T) {
	m := NewManager()
	assert.Equal(t, StatusResolving, m.Status())
	assert.Equal(t, Session{}, m.Current())
}

func TestManager_Transitions(t *testing.T) {
	m := NewManager()
	got, cancel := record(m)
	defer cancel()

	m.Clear()
	m.Authenticate("t1", json.RawMessage(`{"name":"A"}`))
	m.Authenticate("t2", nil) // same status, no notification
	m.Clear()

	require.Equal(t, []transition{
		{StatusResolving, StatusUnauthenticated},
		{StatusUnauthenticated, StatusAuthenticated},
		{StatusAuthenticated, StatusUnauthenticated},
	}, *got)
	assert.Equal(t, StatusUnauthenticated, m.Status())
}

func TestManager_EmptyTokenIsLogout(t *testing.T) {
	m := NewManager()
	m.Authenticate("t1", nil)
	m.Authenticate("", json.RawMessage(`{"name":"A"}`))

	assert.Equal(t, StatusUnauthenticated, m.Status())
	assert.Empty(t, m.Current().User, "user must never outlive the token")
}

func TestManager_CurrentIsACopy(t *testing.T) {
	m := NewManager()
	m.Authenticate("t1", json.RawMessage(`{"name":"A"}`))

	s := m.Current()
	s.User[2] = 'X'

	assert.JSONEq(t, `{"name":"A"}`, string(m.Current().User))
}

func TestManager_UnsubscribeStopsNotifications(t *testing.T) {
	m := NewManager()
	got, cancel := record(m)

	m.Clear()
	cancel()
	m.Authenticate("t1", nil)

	assert.Len(t, *got, 1)
}

func TestManager_ListenerCanReadState(t *testing.T) {
	m := NewManager()
	var seen Status
	m.Subscribe(func(_, _ Status) { seen = m.Status() })

	m.Authenticate("t1", nil)
	assert.Equal(t, StatusAuthenticated, seen)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "resolving", StatusResolving.String())
	assert.Equal(t, "unauthenticated", StatusUnauthenticated.String())
	assert.Equal(t, "authenticated", StatusAuthenticated.String())
	assert.Equal(t, "unknown", Status(42).String())
}
