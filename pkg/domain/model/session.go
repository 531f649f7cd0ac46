package model

import (
	"time"

	"github.com/breachwatch/breachtrends/pkg/domain/types"
)

// ViewSession represents one reader's ephemeral presentation state: which of
// the chart views is currently selected. Sessions live in memory only and
// are not persisted across runs.
type ViewSession struct {
	ID        types.SessionID `json:"id"`
	View      types.ViewID    `json:"view"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewViewSession creates a new ViewSession starting at the default view
func NewViewSession() (*ViewSession, error) {
	id, err := types.NewSessionID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &ViewSession{
		ID:        id,
		View:      types.DefaultView,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Select switches the session to the given view. Any view is reachable from
// any other; unknown values fall back to the default view.
func (s *ViewSession) Select(view types.ViewID) {
	s.View = view.Normalize()
	s.UpdatedAt = time.Now()
}
