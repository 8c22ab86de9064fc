package board

import (
	"context"
	"sync"
)

// Manager hands out one controller per user so a user's board state
// survives across requests within the process.
type Manager struct {
	deps Deps

	mu     sync.Mutex
	boards map[string]*Controller
}

// NewManager creates a controller manager.
func NewManager(deps Deps) *Manager {
	return &Manager{
		deps:   deps,
		boards: make(map[string]*Controller),
	}
}

// Get returns the controller for a session, loading the board on first
// access. A load failure is returned and nothing is cached, so the next
// request retries.
func (m *Manager) Get(ctx context.Context, session Session) (*Controller, error) {
	m.mu.Lock()
	ctrl, ok := m.boards[session.User.ID]
	m.mu.Unlock()
	if ok {
		return ctrl, nil
	}

	ctrl = NewController(session, m.deps)
	if err := ctrl.Load(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.boards[session.User.ID]; ok {
		return existing, nil
	}
	m.boards[session.User.ID] = ctrl
	return ctrl, nil
}

// Drop forgets a user's controller, typically after sign-out.
func (m *Manager) Drop(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.boards, userID)
}
