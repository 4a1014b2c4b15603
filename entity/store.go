package entity

import (
	"sync"

	"github.com/google/uuid"

	"github.com/OCharnyshevich/gocraft-bot/world"
)

// sharedCounters is the process-wide updates_received counter per server
// id, shared across every client tracking that entity. PartialInfos
// compares its own per-client counter against this one to decide whether a
// relative update has already been applied by another client.
type sharedCounters struct {
	mu     sync.Mutex
	counts map[int32]uint32
}

func newSharedCounters() *sharedCounters {
	return &sharedCounters{counts: make(map[int32]uint32)}
}

// observe compares localCount to the shared counter for serverID. If they
// are equal, the update has not yet been applied by anyone: both counters
// advance and apply reports true. If local is behind, only the local
// counter is advanced to catch up, and apply reports false.
func (s *sharedCounters) observe(serverID int32, localCount uint32) (newLocal uint32, apply bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	shared := s.counts[serverID]
	if localCount == shared {
		s.counts[serverID] = shared + 1
		return localCount + 1, true
	}
	return localCount + 1, false
}

// Store is the process-wide entity registry: the component table plus
// server-id/UUID/chunk secondary indices. A single Store backs every
// client instance that shares a world, matching the chunk store's
// shared/partial split.
type Store struct {
	mu       sync.RWMutex
	nextID   uint64
	byHandle map[Handle]*Entity
	byServer map[int32]Handle
	byUUID   map[uuid.UUID]Handle
	byChunk  map[world.ChunkPos]map[Handle]struct{}
	counters *sharedCounters
}

func NewStore() *Store {
	return &Store{
		byHandle: make(map[Handle]*Entity),
		byServer: make(map[int32]Handle),
		byUUID:   make(map[uuid.UUID]Handle),
		byChunk:  make(map[world.ChunkPos]map[Handle]struct{}),
		counters: newSharedCounters(),
	}
}

// Spawn creates or returns the existing entity for serverID, marking
// viewer as one of its observers.
func (s *Store) Spawn(serverID int32, id uuid.UUID, kind string, pos world.Vec3, rot world.Rotation, viewer any) *Entity {
	s.mu.Lock()
	defer s.mu.Unlock()

	if h, ok := s.byServer[serverID]; ok {
		e := s.byHandle[h]
		e.LoadedBy[viewer] = struct{}{}
		return e
	}

	s.nextID++
	h := Handle(s.nextID)
	e := newEntity(h, serverID, id, kind, pos, rot)
	e.LoadedBy[viewer] = struct{}{}

	s.byHandle[h] = e
	s.byServer[serverID] = h
	s.byUUID[id] = h
	s.indexChunk(e)
	return e
}

func (s *Store) indexChunk(e *Entity) {
	pos := world.ChunkPosOf(world.BlockPos{X: int32(e.Position.X), Y: int32(e.Position.Y), Z: int32(e.Position.Z)})
	bucket, ok := s.byChunk[pos]
	if !ok {
		bucket = make(map[Handle]struct{})
		s.byChunk[pos] = bucket
	}
	bucket[e.Handle] = struct{}{}
}

func (s *Store) reindexChunk(e *Entity, oldPos world.ChunkPos) {
	if bucket, ok := s.byChunk[oldPos]; ok {
		delete(bucket, e.Handle)
		if len(bucket) == 0 {
			delete(s.byChunk, oldPos)
		}
	}
	s.indexChunk(e)
}

// ByServerID looks up an entity by its current numeric server id.
func (s *Store) ByServerID(serverID int32) (*Entity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.byServer[serverID]
	if !ok {
		return nil, false
	}
	return s.byHandle[h], true
}

// ByUUID looks up an entity by its UUID.
func (s *Store) ByUUID(id uuid.UUID) (*Entity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.byUUID[id]
	if !ok {
		return nil, false
	}
	return s.byHandle[h], true
}

// ByChunk returns every entity whose position currently falls in pos.
func (s *Store) ByChunk(pos world.ChunkPos) []*Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bucket := s.byChunk[pos]
	out := make([]*Entity, 0, len(bucket))
	for h := range bucket {
		out = append(out, s.byHandle[h])
	}
	return out
}

// SetAbsolute applies an absolute teleport, used for packets that always
// carry a full position and therefore never need the dedup protocol.
func (s *Store) SetAbsolute(serverID int32, pos world.Vec3, rot world.Rotation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.byServer[serverID]
	if !ok {
		return
	}
	e := s.byHandle[h]
	oldPos := world.ChunkPosOf(world.BlockPos{X: int32(e.Position.X), Y: int32(e.Position.Y), Z: int32(e.Position.Z)})
	e.Position = pos
	e.Rotation = rot
	s.reindexChunk(e, oldPos)
}

// ApplyRelativeIfDue runs the updates_received dedup protocol for a
// relative move/velocity packet about serverID. localPlayerServerID
// excludes the local player from the broadcast path entirely, per the
// store's second duty: a local player's own state is never written by a
// relative-update broadcast. partial supplies and updates this viewer's own
// per-entity counter.
func (s *Store) ApplyRelativeIfDue(serverID int32, localPlayerServerID int32, partial *PartialInfos, apply func(*Entity)) {
	if serverID == localPlayerServerID {
		return
	}

	s.mu.Lock()
	e, ok := s.byHandle[s.byServer[serverID]]
	s.mu.Unlock()
	if !ok {
		return
	}

	local := partial.counters[serverID]
	newLocal, shouldApply := s.counters.observe(serverID, local)
	partial.counters[serverID] = newLocal
	if !shouldApply {
		return
	}

	s.mu.Lock()
	oldPos := world.ChunkPosOf(world.BlockPos{X: int32(e.Position.X), Y: int32(e.Position.Y), Z: int32(e.Position.Z)})
	apply(e)
	s.reindexChunk(e, oldPos)
	s.mu.Unlock()
}

// SetMetadata replaces an entity's opaque metadata blob. Metadata carries
// no position/heightmap bookkeeping, so unlike SetAbsolute this never
// touches the chunk index.
func (s *Store) SetMetadata(serverID int32, raw []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.byServer[serverID]
	if !ok {
		return
	}
	s.byHandle[h].RawMetadata = raw
}

// Despawn drops viewer's observation of serverID, destroying the entity
// once no viewer references it.
func (s *Store) Despawn(serverID int32, viewer any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.byServer[serverID]
	if !ok {
		return
	}
	e := s.byHandle[h]
	delete(e.LoadedBy, viewer)
	if len(e.LoadedBy) > 0 {
		return
	}

	delete(s.byServer, serverID)
	delete(s.byUUID, e.UUID)
	delete(s.byHandle, h)
	pos := world.ChunkPosOf(world.BlockPos{X: int32(e.Position.X), Y: int32(e.Position.Y), Z: int32(e.Position.Z)})
	if bucket, ok := s.byChunk[pos]; ok {
		delete(bucket, h)
		if len(bucket) == 0 {
			delete(s.byChunk, pos)
		}
	}
}

// PartialInfos is one client's per-entity relative-update counters,
// spec.md's PartialEntityInfos.updates_received.
type PartialInfos struct {
	counters map[int32]uint32
}

func NewPartialInfos() *PartialInfos {
	return &PartialInfos{counters: make(map[int32]uint32)}
}
