package repository

import (
	"context"
	"sync"

	"github.com/breachwatch/breachtrends/pkg/domain/interfaces"
	"github.com/breachwatch/breachtrends/pkg/domain/model"
	"github.com/breachwatch/breachtrends/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Memory implements SessionStore with in-memory storage
type Memory struct {
	mu       sync.RWMutex
	sessions map[types.SessionID]*model.ViewSession
}

// NewMemory creates a new memory session store
func NewMemory() interfaces.SessionStore {
	return &Memory{
		sessions: make(map[types.SessionID]*model.ViewSession),
	}
}

// PutSession saves a view session
func (m *Memory) PutSession(ctx context.Context, session *model.ViewSession) error {
	if session == nil {
		return goerr.New("session is nil")
	}
	if session.ID == "" {
		return goerr.New("session ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Store a copy to prevent external modification
	sessionCopy := *session
	m.sessions[session.ID] = &sessionCopy
	return nil
}

// GetSession retrieves a view session by ID
func (m *Memory) GetSession(ctx context.Context, id types.SessionID) (*model.ViewSession, error) {
	if id == "" {
		return nil, goerr.New("session ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	session, exists := m.sessions[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrSessionNotFound, "no such session",
			goerr.V("sessionID", id))
	}

	sessionCopy := *session
	return &sessionCopy, nil
}

// DeleteSession removes a view session
func (m *Memory) DeleteSession(ctx context.Context, id types.SessionID) error {
	if id == "" {
		return goerr.New("session ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[id]; !exists {
		return goerr.Wrap(model.ErrSessionNotFound, "no such session",
			goerr.V("sessionID", id))
	}

	delete(m.sessions, id)
	return nil
}

// Close releases the store
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions = make(map[types.SessionID]*model.ViewSession)
	return nil
}
