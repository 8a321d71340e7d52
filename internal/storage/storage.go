// Package storage defines persistence interfaces for saved careers. The
// simulation kernel never touches persistence; stores serialize whole
// snapshots and hand them back intact.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/touchline/internal/sim/domain"
)

// ErrNotFound indicates a requested save is missing.
var ErrNotFound = errors.New("save not found")

// Save is one stored career: the master seed drives every weekly tick,
// so seed plus snapshot replays identically.
type Save struct {
	Name  string
	Seed  int64
	State domain.GameState
}

// SaveMeta describes a stored career without its snapshot.
type SaveMeta struct {
	Name      string
	Seed      int64
	Week      int
	Season    int
	ScoutName string
	UpdatedAt time.Time
}

// SaveStore persists careers keyed by save name.
type SaveStore interface {
	Put(ctx context.Context, save Save) error
	Get(ctx context.Context, name string) (Save, error)
	List(ctx context.Context) ([]SaveMeta, error)
	Delete(ctx context.Context, name string) error
}
