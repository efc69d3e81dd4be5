package engine

import (
	"github.com/eddiemcnally/dolphin-sub001/internal/board"
)

// EntryKind classifies the bound a transposition entry carries.
type EntryKind uint8

const (
	Exact EntryKind = iota // full-window score
	Lower                  // beta cutoff: score is a lower bound
	Upper                  // failed low: score is an upper bound
)

// String returns the bound name.
func (k EntryKind) String() string {
	switch k {
	case Exact:
		return "Exact"
	case Lower:
		return "Lower"
	case Upper:
		return "Upper"
	}
	return "Unknown"
}

// Entry is one transposition table slot. The full hash is stored so
// Get can reject entries left behind by a colliding position instead
// of handing back a foreign score.
type Entry struct {
	Hash  uint64
	Move  board.Move
	Score int
	Depth int
	Kind  EntryKind
	used  bool
}

// TransTable is a fixed-capacity map from Zobrist hash to search
// results, indexed by hash mod capacity. Slots are always
// overwritten; there is no bucket chain and no allocation after
// construction.
type TransTable struct {
	entries []Entry
	capacity uint64
}

// NewTransTable allocates a table with the given number of slots.
func NewTransTable(capacity int) *TransTable {
	if capacity <= 0 {
		capacity = 1
	}
	return &TransTable{
		entries:  make([]Entry, capacity),
		capacity: uint64(capacity),
	}
}

// Put stores a result, unconditionally replacing whatever occupied
// the slot.
func (tt *TransTable) Put(hash uint64, kind EntryKind, depth, score int, best board.Move) {
	tt.entries[hash%tt.capacity] = Entry{
		Hash:  hash,
		Move:  best,
		Score: score,
		Depth: depth,
		Kind:  kind,
		used:  true,
	}
}

// Get returns the entry for hash. A slot holding a different
// position's hash is a collision and reported as a miss.
func (tt *TransTable) Get(hash uint64) (Entry, bool) {
	e := tt.entries[hash%tt.capacity]
	if !e.used || e.Hash != hash {
		return Entry{}, false
	}
	return e, true
}

// BestMove returns the stored best move for hash, if any.
func (tt *TransTable) BestMove(hash uint64) (board.Move, bool) {
	e, ok := tt.Get(hash)
	if !ok || e.Move == board.NoMove {
		return board.NoMove, false
	}
	return e.Move, true
}

// Capacity returns the number of slots.
func (tt *TransTable) Capacity() int {
	return int(tt.capacity)
}

// Used counts the slots currently holding an entry.
func (tt *TransTable) Used() int {
	used := 0
	for i := range tt.entries {
		if tt.entries[i].used {
			used++
		}
	}
	return used
}

// Clear empties every slot.
func (tt *TransTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = Entry{}
	}
}
