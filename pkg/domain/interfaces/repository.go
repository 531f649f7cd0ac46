package interfaces

import (
	"context"

	"github.com/breachwatch/breachtrends/pkg/domain/model"
	"github.com/breachwatch/breachtrends/pkg/domain/types"
)

// SessionStore defines the interface for session-scoped view state.
// Implementations are in-memory only; view state does not survive a run.
type SessionStore interface {
	PutSession(ctx context.Context, session *model.ViewSession) error
	GetSession(ctx context.Context, id types.SessionID) (*model.ViewSession, error)
	DeleteSession(ctx context.Context, id types.SessionID) error

	// Close releases the store
	Close() error
}
