package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/flightdesk/internal/domain"
)

// Snapshot is the full persisted state: every flight plus the
// phone -> ticket numbers booking registry.
type Snapshot struct {
	Flights []*domain.Flight
	History map[string][]string
}

func NewSnapshot() *Snapshot {
	return &Snapshot{History: make(map[string][]string)}
}

type CatalogStore interface {
	// Load reads the full persisted state. A missing store is not an error:
	// it yields an empty snapshot.
	Load(ctx context.Context) (*Snapshot, error)
	// Save rewrites the full persisted state.
	Save(ctx context.Context, snap *Snapshot) error
}

// ParseError reports a structurally broken flight store file, such as a
// record group truncated at EOF. Single malformed records are skipped during
// load and do not surface as a ParseError.
type ParseError struct {
	File string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}
