package world

import "fmt"

// PalettedContainer stores a fixed number of indexed values (block states or
// biomes) using the minimum bit width that fits the distinct values seen,
// growing the palette and repacking the backing words as needed. Below
// directBits the container holds an indirect palette (a small lookup table
// of distinct values); at or above directBits it stores values directly,
// matching the wire format's own threshold (4..8 bpc indirect / 9+ direct
// for blocks, 1..3 bpc indirect / 4+ direct for biomes).
type PalettedContainer struct {
	cellCount  int
	minBits    int // bpc below which a single-value (bits=0) container is used
	directBits int // bpc at/above which the container switches to direct

	bitsPerEntry int
	palette      []int32 // nil when direct
	single       int32   // valid only when bitsPerEntry == 0
	data         []uint64
}

// NewBlockPalette returns a container sized for a chunk section's 4096
// blocks, matching the wire format's indirect range of 4-8 bpc.
func NewBlockPalette() *PalettedContainer {
	return &PalettedContainer{cellCount: 16 * 16 * 16, minBits: 4, directBits: 9, single: 0}
}

// NewBiomePalette returns a container sized for a chunk section's 4x4x4
// biome grid, matching the wire format's indirect range of 1-3 bpc.
func NewBiomePalette() *PalettedContainer {
	return &PalettedContainer{cellCount: 4 * 4 * 4, minBits: 1, directBits: 4, single: 0}
}

// Get returns the value stored at the given cell index.
func (p *PalettedContainer) Get(index int) int32 {
	if index < 0 || index >= p.cellCount {
		panic(fmt.Sprintf("paletted container index out of range: %d", index))
	}
	if p.bitsPerEntry == 0 {
		return p.single
	}

	entriesPerWord := 64 / p.bitsPerEntry
	word := index / entriesPerWord
	shift := (index % entriesPerWord) * p.bitsPerEntry
	mask := uint64(1)<<uint(p.bitsPerEntry) - 1

	raw := int32((p.data[word] >> uint(shift)) & mask)
	if p.palette == nil {
		return raw
	}
	if int(raw) >= len(p.palette) {
		return 0
	}
	return p.palette[raw]
}

// Set stores value at the given cell index, growing the palette or
// widening the backing words if value hasn't been seen before.
func (p *PalettedContainer) Set(index int, value int32) {
	if index < 0 || index >= p.cellCount {
		panic(fmt.Sprintf("paletted container index out of range: %d", index))
	}

	if p.bitsPerEntry == 0 {
		if p.single == value {
			return
		}
		p.grow(p.minBits, []int32{p.single, value})
		p.writeRaw(index, 1)
		return
	}

	raw, ok := p.paletteIndexOf(value)
	if !ok {
		raw = p.appendToPalette(value)
	}
	p.writeRaw(index, raw)
}

// paletteIndexOf looks up value's raw index, handling the direct case where
// the raw index is the value itself.
func (p *PalettedContainer) paletteIndexOf(value int32) (int32, bool) {
	if p.palette == nil {
		return value, true
	}
	for i, v := range p.palette {
		if v == value {
			return int32(i), true
		}
	}
	return 0, false
}

// appendToPalette adds value to the indirect palette, growing bit width (or
// switching to direct) when the current width can no longer address it.
func (p *PalettedContainer) appendToPalette(value int32) int32 {
	capacity := int32(1) << uint(p.bitsPerEntry)
	if int32(len(p.palette)) < capacity {
		p.palette = append(p.palette, value)
		return int32(len(p.palette) - 1)
	}

	next := p.bitsPerEntry + 1
	if next >= p.directBits {
		p.grow(p.directBits, nil)
		return value
	}
	p.grow(next, append(append([]int32{}, p.palette...), value))
	return int32(len(p.palette) - 1)
}

// grow repacks the container at newBits, optionally installing newPalette
// (nil means switch to a direct, paletteless layout).
func (p *PalettedContainer) grow(newBits int, newPalette []int32) {
	old := make([]int32, p.cellCount)
	if p.bitsPerEntry == 0 && p.data == nil && p.palette == nil {
		for i := range old {
			old[i] = p.single
		}
	} else {
		for i := range old {
			old[i] = p.Get(i)
		}
	}

	p.bitsPerEntry = newBits
	p.palette = newPalette
	p.data = make([]uint64, WordCount(p.cellCount, newBits))

	for i, v := range old {
		raw, ok := p.paletteIndexOf(v)
		if !ok {
			raw = p.appendToPalette(v)
		}
		p.writeRaw(i, raw)
	}
}

func (p *PalettedContainer) writeRaw(index int, raw int32) {
	entriesPerWord := 64 / p.bitsPerEntry
	word := index / entriesPerWord
	shift := uint((index % entriesPerWord) * p.bitsPerEntry)
	mask := uint64(1)<<uint(p.bitsPerEntry) - 1

	p.data[word] &^= mask << shift
	p.data[word] |= (uint64(raw) & mask) << shift
}

// WordCount returns the number of u64 words needed to pack cellCount
// entries of bitsPerEntry bits each, with entries never spanning a word
// boundary (the padded layout the wire format uses from 1.16 onward).
func WordCount(cellCount, bitsPerEntry int) int {
	if bitsPerEntry == 0 {
		return 0
	}
	entriesPerWord := 64 / bitsPerEntry
	return (cellCount + entriesPerWord - 1) / entriesPerWord
}

// BitsPerEntry reports the container's current packing width (0 for a
// single-value container).
func (p *PalettedContainer) BitsPerEntry() int { return p.bitsPerEntry }

// Palette reports the container's indirect palette, or nil if it is in
// single-value or direct mode.
func (p *PalettedContainer) Palette() []int32 { return p.palette }

// Data returns the packed backing words.
func (p *PalettedContainer) Data() []uint64 { return p.data }

// LoadPacked installs a container already decoded from the wire: bpc,
// palette (nil for direct), and the packed words.
func LoadPacked(cellCount, minBits, directBits, bitsPerEntry int, palette []int32, data []uint64, single int32) *PalettedContainer {
	return &PalettedContainer{
		cellCount:    cellCount,
		minBits:      minBits,
		directBits:   directBits,
		bitsPerEntry: bitsPerEntry,
		palette:      palette,
		data:         data,
		single:       single,
	}
}
