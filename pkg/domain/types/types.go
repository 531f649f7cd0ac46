package types

import (
	"github.com/google/uuid"
)

// Category represents a breach-location category from the HHS breach report
type Category string

const (
	CategoryNetworkServer   Category = "Network Server"
	CategoryEmail           Category = "Email"
	CategoryEMR             Category = "Electronic Medical Record"
	CategoryPaperFilms      Category = "Paper/Films"
	CategoryOther           Category = "Other"
	CategoryDesktopComputer Category = "Desktop Computer"
)

// Categories returns all categories in canonical display order.
// The order is stable and used as the tie-breaker for ranked output.
func Categories() []Category {
	return []Category{
		CategoryNetworkServer,
		CategoryEmail,
		CategoryEMR,
		CategoryPaperFilms,
		CategoryOther,
		CategoryDesktopComputer,
	}
}

// String returns the string representation
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the category is one of the six known locations
func (c Category) IsValid() bool {
	switch c {
	case CategoryNetworkServer, CategoryEmail, CategoryEMR,
		CategoryPaperFilms, CategoryOther, CategoryDesktopComputer:
		return true
	default:
		return false
	}
}

// Year represents a calendar reporting year
type Year int

// Int returns the int representation
func (y Year) Int() int {
	return int(y)
}

// SessionID represents a presentation session identifier
type SessionID string

// String returns the string representation
func (id SessionID) String() string {
	return string(id)
}

// NewSessionID creates a new SessionID using UUID v7
func NewSessionID() (SessionID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return SessionID(id.String()), nil
}
