// Package session owns editing and simulation sessions. Each session holds a
// pouch, a bounded undo history and a mutex so the pouch has a single writer.
package session

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/PouchSim_Go/internal/domain"
	"github.com/osse101/PouchSim_Go/internal/pouch"
)

// Session is one pouch being edited or simulated
type Session struct {
	ID        string
	ParentID  string
	CreatedAt time.Time

	mu        sync.Mutex
	slots     *pouch.Slots
	history   []*pouch.Slots
	updatedAt time.Time

	// set before an explicit delete so eviction does not report it as expired
	deleted atomic.Bool
}

func newSession(id, parentID string, slots *pouch.Slots) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        id,
		ParentID:  parentID,
		CreatedAt: now,
		slots:     slots,
		updatedAt: now,
	}
}

// pushHistory records a pouch state, dropping the oldest beyond depth.
// Caller holds mu.
func (s *Session) pushHistory(prev *pouch.Slots, depth int) {
	if depth <= 0 {
		return
	}
	if len(s.history) >= depth {
		s.history = append(s.history[:0], s.history[len(s.history)-depth+1:]...)
	}
	s.history = append(s.history, prev)
}

// popHistory returns the latest recorded state. Caller holds mu.
func (s *Session) popHistory() (*pouch.Slots, bool) {
	if len(s.history) == 0 {
		return nil, false
	}
	last := s.history[len(s.history)-1]
	s.history[len(s.history)-1] = nil
	s.history = s.history[:len(s.history)-1]
	return last, true
}

// view copies the session state. Caller holds mu.
func (s *Session) view() *View {
	return &View{
		ID:        s.ID,
		ParentID:  s.ParentID,
		Stacks:    s.slots.Snapshot(),
		Records:   s.slots.Records(),
		UndoDepth: len(s.history),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.updatedAt,
	}
}

// View is a point-in-time copy of a session. Changing it does not affect the
// session.
type View struct {
	ID        string               `json:"id"`
	ParentID  string               `json:"parent_id,omitempty"`
	Stacks    []pouch.ItemStack    `json:"-"`
	Records   []domain.StackRecord `json:"stacks"`
	UndoDepth int                  `json:"undo_depth"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// Len is the number of slots in the viewed pouch
func (v *View) Len() int {
	return len(v.Records)
}
