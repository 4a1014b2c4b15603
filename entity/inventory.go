package entity

import (
	"bytes"
	"fmt"

	mcnet "github.com/OCharnyshevich/gocraft-bot/net"
)

// Slot is a single inventory slot: empty when Present is false. Component
// data (enchantments, custom names, etc.) is stored opaquely — this core
// never interprets item components, only counts and moves them.
type Slot struct {
	Present    bool
	ItemID     int32
	Count      int32
	Components []byte
}

// ReadSlot decodes a Slot in the modern (component-based) wire format:
// varint(count) || (if count>0: varint(item_id), varint(num_components_to_add),
// varint(num_components_to_remove), then opaque component bytes for the
// rest of the slot).
func ReadSlot(r *bytes.Reader) (Slot, error) {
	count, _, err := mcnet.ReadVarInt(r)
	if err != nil {
		return Slot{}, fmt.Errorf("read slot count: %w", err)
	}
	if count <= 0 {
		return Slot{Present: false}, nil
	}

	itemID, _, err := mcnet.ReadVarInt(r)
	if err != nil {
		return Slot{}, fmt.Errorf("read slot item id: %w", err)
	}

	rest := make([]byte, r.Len())
	if _, err := r.Read(rest); err != nil {
		return Slot{}, fmt.Errorf("read slot components: %w", err)
	}

	return Slot{Present: true, ItemID: itemID, Count: count, Components: rest}, nil
}

// WriteSlot encodes a Slot back to the wire.
func WriteSlot(buf *bytes.Buffer, s Slot) error {
	if !s.Present {
		_, err := mcnet.WriteVarInt(buf, 0)
		return err
	}
	if _, err := mcnet.WriteVarInt(buf, s.Count); err != nil {
		return err
	}
	if _, err := mcnet.WriteVarInt(buf, s.ItemID); err != nil {
		return err
	}
	_, err := buf.Write(s.Components)
	return err
}

// Inventory mirrors the player's own container: 9 hotbar slots (36-44),
// main storage (9-35), armor (5-8), off hand (45), and a cursor slot used
// while a window is open. Indices follow the wire's own player-inventory
// numbering so handlers can apply ContainerSetSlot updates directly.
type Inventory struct {
	Slots         [46]Slot
	SelectedSlot  int8 // 0-8, which hotbar slot is active
	StateID       int32
	CarriedCursor Slot
}

func NewInventory() *Inventory {
	return &Inventory{}
}

// MainHandSlot returns the slot index for the currently selected hotbar item.
func (inv *Inventory) MainHandSlot() int {
	return 36 + int(inv.SelectedSlot)
}

// MainHand returns the currently selected hotbar item.
func (inv *Inventory) MainHand() Slot {
	return inv.Slots[inv.MainHandSlot()]
}

// Set applies a single ContainerSetSlot update, guarding against an out of
// range index from a malformed or unexpected packet.
func (inv *Inventory) Set(index int, s Slot) bool {
	if index < 0 || index >= len(inv.Slots) {
		return false
	}
	inv.Slots[index] = s
	return true
}

// SetAll applies a ContainerSetContent bulk replacement: every slot in
// order, plus the carried cursor slot. Extra or missing slots relative to
// this inventory's own size are ignored rather than treated as an error,
// since a non-player window can legitimately carry a different slot count
// before this core decides (via WindowID) whether to apply it at all.
func (inv *Inventory) SetAll(slots []Slot, carried Slot) {
	n := len(slots)
	if n > len(inv.Slots) {
		n = len(inv.Slots)
	}
	for i := 0; i < n; i++ {
		inv.Slots[i] = slots[i]
	}
	inv.CarriedCursor = carried
}
