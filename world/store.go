package world

import "sync"

// SharedStorage is the process-wide chunk registry: one Column per ChunkPos
// per instance, created on first reference and dropped once its reference
// count hits zero. Multiple clients in the same instance share the same
// *Column, so a block update from any connection is visible to all.
type SharedStorage struct {
	mu   sync.RWMutex
	cols map[ChunkPos]*sharedEntry
}

type sharedEntry struct {
	column *Column
	refs   int
}

func NewSharedStorage() *SharedStorage {
	return &SharedStorage{cols: make(map[ChunkPos]*sharedEntry)}
}

// Acquire returns the column at pos, creating it via newFn if absent, and
// bumps its reference count. Callers must pair every Acquire with Release.
func (s *SharedStorage) Acquire(pos ChunkPos, newFn func() *Column) *Column {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.cols[pos]
	if !ok {
		entry = &sharedEntry{column: newFn()}
		s.cols[pos] = entry
	}
	entry.refs++
	return entry.column
}

// Lookup returns the column at pos without affecting its reference count,
// used by the already-shared optimization: adopt without reparsing.
func (s *SharedStorage) Lookup(pos ChunkPos) (*Column, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.cols[pos]
	if !ok {
		return nil, false
	}
	return entry.column, true
}

// AcquireIfPresent atomically bumps pos's reference count and returns its
// column, only if it already exists — used by Adopt, where a plain
// Lookup-then-Acquire would race against a concurrent Release dropping the
// entry to zero in between.
func (s *SharedStorage) AcquireIfPresent(pos ChunkPos) (*Column, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.cols[pos]
	if !ok {
		return nil, false
	}
	entry.refs++
	return entry.column, true
}

// Release drops one reference to pos, removing it from the registry once
// the count reaches zero.
func (s *SharedStorage) Release(pos ChunkPos) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.cols[pos]
	if !ok {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(s.cols, pos)
	}
}

// ForBlock runs fn against the column containing blockPos under the write
// lock, a convenience for the single-position block-update handler.
func (s *SharedStorage) ForBlock(pos ChunkPos, fn func(*Column)) {
	s.mu.RLock()
	entry, ok := s.cols[pos]
	s.mu.RUnlock()
	if !ok {
		return
	}
	fn(entry.column)
}

// PartialStorage is one client's bounded view of the shared registry: the
// set of chunk positions currently in its view distance, each backed by the
// same *Column the SharedStorage owns.
type PartialStorage struct {
	shared *SharedStorage
	held   map[ChunkPos]*Column
}

func NewPartialStorage(shared *SharedStorage) *PartialStorage {
	return &PartialStorage{shared: shared, held: make(map[ChunkPos]*Column)}
}

// Has reports whether this view already holds pos, the already-loaded
// optimization: a duplicate LevelChunkWithLight for a position already in
// view is dropped without reparsing.
func (p *PartialStorage) Has(pos ChunkPos) bool {
	_, ok := p.held[pos]
	return ok
}

// Adopt brings pos into this view from the shared registry without
// parsing, used when the shared store already has it (also an
// already-loaded-class optimization, just sourced from another client's
// view instead of this one's).
func (p *PartialStorage) Adopt(pos ChunkPos) (*Column, bool) {
	col, ok := p.shared.AcquireIfPresent(pos)
	if !ok {
		return nil, false
	}
	p.held[pos] = col
	return col, true
}

// Load parses a fresh column via newFn and adds it to both the shared
// registry and this view.
func (p *PartialStorage) Load(pos ChunkPos, newFn func() *Column) *Column {
	col := p.shared.Acquire(pos, newFn)
	p.held[pos] = col
	return col
}

// Get returns the column at pos if this view currently holds it.
func (p *PartialStorage) Get(pos ChunkPos) (*Column, bool) {
	col, ok := p.held[pos]
	return col, ok
}

// Evict drops pos from this view and releases the shared reference.
func (p *PartialStorage) Evict(pos ChunkPos) {
	if _, ok := p.held[pos]; !ok {
		return
	}
	delete(p.held, pos)
	p.shared.Release(pos)
}

// Reset evicts every chunk currently held, used on a dimension change where
// the new instance's height/metadata differs from the one being left.
func (p *PartialStorage) Reset() {
	for pos := range p.held {
		p.shared.Release(pos)
	}
	p.held = make(map[ChunkPos]*Column)
}

// Len reports how many columns this view currently holds.
func (p *PartialStorage) Len() int { return len(p.held) }
