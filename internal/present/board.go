package present

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session identifies one popup open. Token orders sessions; only the
// newest may commit.
type Session struct {
	ID    string `json:"id"`
	Token uint64 `json:"token"`
}

// Snapshot is the board's current state.
type Snapshot struct {
	Session   Session   `json:"session"`
	Pending   bool      `json:"pending"`
	Patch     Patch     `json:"patch"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Board holds the latest popup patch. A lookup started by an older session
// can never overwrite the result of a newer one.
type Board struct {
	mu      sync.Mutex
	seq     uint64
	current Snapshot
	nowFunc func() time.Time
}

// NewBoard creates an empty Board.
func NewBoard() *Board {
	return &Board{nowFunc: time.Now}
}

// Begin starts a session for title and shows the loading patch.
func (b *Board) Begin(title string) Session {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.seq++
	s := Session{ID: uuid.NewString(), Token: b.seq}
	b.current = Snapshot{
		Session:   s,
		Pending:   true,
		Patch:     Loading(title),
		UpdatedAt: b.nowFunc(),
	}
	return s
}

// Commit applies p if s is still the newest session. It reports whether
// the patch was applied.
func (b *Board) Commit(s Session, p Patch) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if s.Token != b.seq || s.ID != b.current.Session.ID {
		return false
	}
	b.current.Patch = p
	b.current.Pending = false
	b.current.UpdatedAt = b.nowFunc()
	return true
}

// Current returns a copy of the board state.
func (b *Board) Current() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}
