// Package navigator decides which screen group the client presents.
//
// GroupFor is a pure function of the session status. Navigator keeps the
// back stack inside the current group; switching groups always replaces the
// stack, so after a login or logout the previous group is unreachable.
package navigator

import (
	"slices"
	"sync"

	"github.com/dmitrijs2005/gophfeed/internal/client/session"
)

type Screen string

const (
	ScreenLogin    Screen = "login"
	ScreenRegister Screen = "register"
	ScreenHome     Screen = "home"
	ScreenProfile  Screen = "profile"
)

type Group struct {
	Name    string
	Screens []Screen
}

var (
	// GroupNone is shown while the session is being resolved: nothing.
	GroupNone            = Group{Name: "none"}
	GroupUnauthenticated = Group{Name: "auth", Screens: []Screen{ScreenLogin, ScreenRegister}}
	GroupAuthenticated   = Group{Name: "app", Screens: []Screen{ScreenHome, ScreenProfile}}
)

// GroupFor maps a session status to the group to present.
func GroupFor(s session.Status) Group {
	switch s {
	case session.StatusAuthenticated:
		return GroupAuthenticated
	case session.StatusUnauthenticated:
		return GroupUnauthenticated
	default:
		return GroupNone
	}
}

// Has reports whether screen belongs to g.
func (g Group) Has(screen Screen) bool {
	return slices.Contains(g.Screens, screen)
}

// Root is the first screen of the group, or "" for GroupNone.
func (g Group) Root() Screen {
	if len(g.Screens) == 0 {
		return ""
	}
	return g.Screens[0]
}

// Navigator tracks the active screen group and its back stack.
type Navigator struct {
	mu    sync.Mutex
	group Group
	stack []Screen
}

// New constructs a Navigator with no group attached.
func New() *Navigator {
	return &Navigator{group: GroupNone}
}

// Attach presents the group for the manager's current status and follows
// every later transition. It returns the unsubscribe function.
func (n *Navigator) Attach(m *session.Manager) func() {
	cancel := m.Subscribe(func(_, next session.Status) {
		n.Replace(GroupFor(next))
	})
	n.Replace(GroupFor(m.Status()))
	return cancel
}

// Replace discards the whole stack and shows the root of g.
func (n *Navigator) Replace(g Group) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.group = g
	n.stack = n.stack[:0]
	if root := g.Root(); root != "" {
		n.stack = append(n.stack, root)
	}
}

// Navigate pushes screen if it belongs to the current group.
func (n *Navigator) Navigate(screen Screen) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.group.Has(screen) {
		return false
	}
	if len(n.stack) > 0 && n.stack[len(n.stack)-1] == screen {
		return true
	}
	n.stack = append(n.stack, screen)
	return true
}

// Back pops one screen. The group root is never popped.
func (n *Navigator) Back() bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.stack) <= 1 {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	return true
}

func (n *Navigator) Group() Group {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.group
}

// Current is the top of the stack, or "" when nothing is presented.
func (n *Navigator) Current() Screen {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.stack) == 0 {
		return ""
	}
	return n.stack[len(n.stack)-1]
}

// Stack returns a copy of the back stack, bottom first.
func (n *Navigator) Stack() []Screen {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.stack)
}
