package entity

import (
	"sync"

	"github.com/google/uuid"
)

// PlayerListEntry is one tab-list row: the subset of PlayerInfoUpdate's
// per-player fields this core tracks. Chat-session keys and signed-name
// properties aren't interpreted anywhere, so they aren't stored.
type PlayerListEntry struct {
	UUID     uuid.UUID
	Name     string
	GameMode GameMode
	Latency  int32
	Listed   bool
}

// PlayerList mirrors the server's tab list from PlayerInfoUpdate/
// PlayerInfoRemove, keyed by UUID the way the wire protocol itself does.
type PlayerList struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*PlayerListEntry
}

func NewPlayerList() *PlayerList {
	return &PlayerList{entries: make(map[uuid.UUID]*PlayerListEntry)}
}

// Upsert applies fn to the entry for id, creating it first if absent.
func (l *PlayerList) Upsert(id uuid.UUID, fn func(*PlayerListEntry)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[id]
	if !ok {
		e = &PlayerListEntry{UUID: id}
		l.entries[id] = e
	}
	fn(e)
}

// Remove drops an entry by UUID.
func (l *PlayerList) Remove(id uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, id)
}

// Entries returns a snapshot of every tracked tab-list row.
func (l *PlayerList) Entries() []PlayerListEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]PlayerListEntry, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, *e)
	}
	return out
}

// ByUUID returns a single entry by UUID.
func (l *PlayerList) ByUUID(id uuid.UUID) (PlayerListEntry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	e, ok := l.entries[id]
	if !ok {
		return PlayerListEntry{}, false
	}
	return *e, true
}
