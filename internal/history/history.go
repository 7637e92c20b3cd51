package history

import (
	"go.uber.org/zap"

	"github.com/phravins/uhuru/internal/gate"
)

const (
	DeletedNotice = "History item deleted"
	ClearedNotice = "All search history cleared"
)

// Notifier receives a short status message after every mutation.
type Notifier interface {
	Show(text string)
}

// Store is the ordered, in-memory search history. Entries are only ever
// removed; the order they were seeded in is kept.
type Store struct {
	entries   []Entry
	notifier  Notifier
	clearGate *gate.Gate
	logger    *zap.Logger
}

// NewStore loads the seed entries once from p.
func NewStore(p Provider, n Notifier, logger *zap.Logger) (*Store, error) {
	entries, err := Load(p)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		entries:  entries,
		notifier: n,
		logger:   logger,
	}
	s.clearGate = gate.NewSimple(s.clearAll)
	return s, nil
}

// Entries returns a copy of the current entries in stored order.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Store) Len() int {
	return len(s.entries)
}

// Get returns the entry with id.
func (s *Store) Get(id int) (Entry, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// RemoveByID deletes the entry with id. Unknown ids are ignored and produce no
// notice. It reports whether an entry was removed.
func (s *Store) RemoveByID(id int) bool {
	kept := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(s.entries) {
		s.logger.Debug("history entry not found", zap.Int("id", id))
		return false
	}
	s.entries = kept
	s.logger.Info("history entry deleted", zap.Int("id", id), zap.Int("remaining", len(kept)))
	s.notify(DeletedNotice)
	return true
}

// ClearGate is the only way to clear the history: a yes/no confirmation whose
// action empties the store.
func (s *Store) ClearGate() *gate.Gate {
	return s.clearGate
}

func (s *Store) clearAll() {
	n := len(s.entries)
	s.entries = nil
	s.logger.Info("history cleared", zap.Int("removed", n))
	s.notify(ClearedNotice)
}

func (s *Store) notify(text string) {
	if s.notifier != nil {
		s.notifier.Show(text)
	}
}
