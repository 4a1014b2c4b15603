package client

import (
	"bytes"
	"fmt"
	"sync"

	mcnet "github.com/OCharnyshevich/gocraft-bot/net"
	"github.com/OCharnyshevich/gocraft-bot/world/nbt"
)

// Registry mirrors the server's registry data sent during Configuration
// (RegistryData packets): a named collection of entries, each carrying an
// optional NBT blob, in server-assigned insertion order. Entries without a
// payload (nil) use whatever default the client's gamedata already has for
// that id.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]map[string]int // registryID -> entryID -> index
	entries map[string][]RegistryEntry
}

// RegistryEntry is one entry of a registry, as sent in a RegistryData packet.
type RegistryEntry struct {
	ID   string
	Data nbt.Compound // nil if the entry carries no override payload
}

func NewRegistry() *Registry {
	return &Registry{
		byName:  make(map[string]map[string]int),
		entries: make(map[string][]RegistryEntry),
	}
}

// Set replaces the entries of a single registry wholesale, as one
// RegistryData packet does.
func (r *Registry) Set(registryID string, entries []RegistryEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	index := make(map[string]int, len(entries))
	for i, e := range entries {
		index[e.ID] = i
	}
	r.byName[registryID] = index
	r.entries[registryID] = entries
}

// Entries returns a copy of a registry's entries in insertion order.
func (r *Registry) Entries(registryID string) []RegistryEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	src := r.entries[registryID]
	out := make([]RegistryEntry, len(src))
	copy(out, src)
	return out
}

// IndexOf returns the protocol id (insertion index) of an entry, which is
// what varint-encoded registry references in later packets use.
func (r *Registry) IndexOf(registryID, entryID string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byName[registryID]
	if !ok {
		return 0, false
	}
	i, ok := idx[entryID]
	return i, ok
}

// decodeRegistryEntries parses a RegistryData packet's trailing bytes:
// varint(entry count), then per entry a string id, a present-flag bool, and
// (if present) a network-NBT compound payload.
func decodeRegistryEntries(raw []byte) ([]RegistryEntry, error) {
	r := bytes.NewReader(raw)

	count, _, err := mcnet.ReadVarInt(r)
	if err != nil {
		return nil, fmt.Errorf("read entry count: %w", err)
	}

	entries := make([]RegistryEntry, 0, count)
	for i := int32(0); i < count; i++ {
		id, err := mcnet.ReadString(r, 32767)
		if err != nil {
			return nil, fmt.Errorf("read entry id: %w", err)
		}

		hasData, err := mcnet.ReadBool(r)
		if err != nil {
			return nil, fmt.Errorf("read entry has-data flag: %w", err)
		}

		var data nbt.Compound
		if hasData {
			nr := nbt.NewReader(r)
			data, err = nr.ReadCompound()
			if err != nil {
				return nil, fmt.Errorf("read entry nbt: %w", err)
			}
		}

		entries = append(entries, RegistryEntry{ID: id, Data: data})
	}
	return entries, nil
}

// Lookup returns the entry at a given protocol index.
func (r *Registry) Lookup(registryID string, index int) (RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.entries[registryID]
	if index < 0 || index >= len(entries) {
		return RegistryEntry{}, false
	}
	return entries[index], true
}

// EntryByID returns a registry's entry by its string id (e.g. a
// dimension-type name like "minecraft:overworld"), for the handful of
// packets that reference registries by name rather than protocol index.
func (r *Registry) EntryByID(registryID, entryID string) (RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byName[registryID]
	if !ok {
		return RegistryEntry{}, false
	}
	i, ok := idx[entryID]
	if !ok {
		return RegistryEntry{}, false
	}
	return r.entries[registryID][i], true
}
