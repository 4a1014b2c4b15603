// Package entity holds the client's mirror of server-known entities: the
// local player, remote players, mobs and item drops, each keyed by a
// locally issued handle with server-id/UUID/chunk secondary indices.
package entity

import (
	"github.com/google/uuid"

	"github.com/OCharnyshevich/gocraft-bot/world"
)

// Handle is a locally issued, process-stable reference to an entity. It
// stays valid for the entity's whole lifetime, even across a server id
// reuse (the server is free to reuse numeric ids after despawn; the
// handle never is).
type Handle uint64

// Entity is one tracked object: a player, mob, or item drop. Metadata
// beyond position/velocity/kind is intentionally left as a raw byte blob —
// interpreting per-kind metadata is a rendering/AI concern outside this
// core's scope.
type Entity struct {
	Handle   Handle
	ServerID int32
	UUID     uuid.UUID
	Kind     string

	Position world.Vec3
	Rotation world.Rotation
	Velocity world.Vec3
	OnGround bool

	RawMetadata []byte

	// LoadedBy is the set of partial views (by an embedder-defined key,
	// typically a connection id) currently observing this entity. The
	// entity is destroyed once this set becomes empty or the server sends
	// a remove-entities packet naming it explicitly.
	LoadedBy map[any]struct{}
}

func newEntity(handle Handle, serverID int32, id uuid.UUID, kind string, pos world.Vec3, rot world.Rotation) *Entity {
	return &Entity{
		Handle:   handle,
		ServerID: serverID,
		UUID:     id,
		Kind:     kind,
		Position: pos,
		Rotation: rot,
		LoadedBy: make(map[any]struct{}),
	}
}

// ApplyRelativeMove shifts Position by a delta expressed as the wire's
// fixed-point units (1/4096 of a block per unit), the representation
// RelEntityMove-family packets use.
func (e *Entity) ApplyRelativeMove(dx, dy, dz int16) {
	e.Position.X += float64(dx) / 4096
	e.Position.Y += float64(dy) / 4096
	e.Position.Z += float64(dz) / 4096
}
