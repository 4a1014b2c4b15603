package entity

import (
	"testing"

	"github.com/google/uuid"

	"github.com/OCharnyshevich/gocraft-bot/world"
)

func TestSpawnReturnsSameEntityForSameServerID(t *testing.T) {
	s := NewStore()
	a := s.Spawn(42, uuid.New(), "zombie", world.Vec3{}, world.Rotation{}, "viewerA")
	b := s.Spawn(42, uuid.New(), "zombie", world.Vec3{}, world.Rotation{}, "viewerB")
	if a != b {
		t.Fatal("expected same entity for duplicate server id spawn")
	}
	if len(a.LoadedBy) != 2 {
		t.Fatalf("expected 2 viewers, got %d", len(a.LoadedBy))
	}
}

func TestDespawnRemovesOnlyWhenLastViewerLeaves(t *testing.T) {
	s := NewStore()
	s.Spawn(7, uuid.New(), "pig", world.Vec3{}, world.Rotation{}, "a")
	s.Spawn(7, uuid.New(), "pig", world.Vec3{}, world.Rotation{}, "b")

	s.Despawn(7, "a")
	if _, ok := s.ByServerID(7); !ok {
		t.Fatal("entity should still exist while viewer b holds it")
	}

	s.Despawn(7, "b")
	if _, ok := s.ByServerID(7); ok {
		t.Fatal("entity should be gone once all viewers release it")
	}
}

func TestApplyRelativeIfDueDedupesAcrossClients(t *testing.T) {
	s := NewStore()
	e := s.Spawn(5, uuid.New(), "cow", world.Vec3{X: 0, Y: 0, Z: 0}, world.Rotation{}, "viewer")

	p1 := NewPartialInfos()
	p2 := NewPartialInfos()

	applied := 0
	apply := func(ent *Entity) { applied++; ent.ApplyRelativeMove(4096, 0, 0) }

	// Both clients observe the same broadcast update; only the first to
	// arrive should actually apply it.
	s.ApplyRelativeIfDue(5, -1, p1, apply)
	s.ApplyRelativeIfDue(5, -1, p2, apply)

	if applied != 1 {
		t.Fatalf("expected exactly one application of the shared update, got %d", applied)
	}
	if e.Position.X != 1 {
		t.Fatalf("expected position to advance by 1 block, got %v", e.Position.X)
	}

	// A second, distinct update should apply again for whichever client
	// catches up next.
	s.ApplyRelativeIfDue(5, -1, p1, apply)
	if applied != 2 {
		t.Fatalf("expected second update to apply once p1 catches up, got %d", applied)
	}
}

func TestApplyRelativeIfDueSkipsLocalPlayer(t *testing.T) {
	s := NewStore()
	s.Spawn(1, uuid.New(), "player", world.Vec3{}, world.Rotation{}, "viewer")
	p := NewPartialInfos()

	applied := false
	s.ApplyRelativeIfDue(1, 1, p, func(*Entity) { applied = true })
	if applied {
		t.Fatal("local player's own entity must never be updated via the broadcast path")
	}
}

func TestInventorySlotRoundTrip(t *testing.T) {
	inv := NewInventory()
	inv.SelectedSlot = 3
	if inv.MainHandSlot() != 39 {
		t.Fatalf("expected main hand slot 39, got %d", inv.MainHandSlot())
	}
	if !inv.Set(39, Slot{Present: true, ItemID: 7, Count: 5}) {
		t.Fatal("expected Set to succeed for a valid index")
	}
	if inv.MainHand().ItemID != 7 {
		t.Fatalf("expected item id 7, got %d", inv.MainHand().ItemID)
	}
	if inv.Set(999, Slot{}) {
		t.Fatal("expected Set to reject an out of range index")
	}
}
