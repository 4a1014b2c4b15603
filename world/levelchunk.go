package world

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	mcnet "github.com/OCharnyshevich/gocraft-bot/net"
	"github.com/OCharnyshevich/gocraft-bot/world/nbt"
)

// DecodeLevelChunk parses a LevelChunkWithLight packet's payload (everything
// after the ChunkX/ChunkZ fields) into a fresh Column. Decoding stops after
// the section data: the block entities and the light masks and arrays that
// follow are not read, and Column.LightData is left empty.
func DecodeLevelChunk(data []byte, pos ChunkPos, minY, height int32, predicates map[HeightmapKind]IsOpaquePredicate) (*Column, error) {
	r := bytes.NewReader(data)

	if _, err := nbt.NewReader(r).ReadCompound(); err != nil {
		return nil, fmt.Errorf("read heightmaps nbt: %w", err)
	}

	dataLen, _, err := mcnet.ReadVarInt(r)
	if err != nil {
		return nil, fmt.Errorf("read section data length: %w", err)
	}
	sectionBuf := make([]byte, dataLen)
	if _, err := io.ReadFull(r, sectionBuf); err != nil {
		return nil, fmt.Errorf("read section data: %w", err)
	}

	col := NewColumn(pos, minY, height, predicates)
	sr := bytes.NewReader(sectionBuf)
	for i := range col.Sections {
		sec, err := decodeChunkSection(sr, col.Sections[i].Y)
		if err != nil {
			return nil, fmt.Errorf("decode section %d: %w", i, err)
		}
		col.Sections[i] = sec
	}

	return col, nil
}

func decodeChunkSection(r *bytes.Reader, y int32) (*ChunkSection, error) {
	var countBuf [2]byte
	if _, err := io.ReadFull(r, countBuf[:]); err != nil {
		return nil, fmt.Errorf("read block count: %w", err)
	}
	blockCount := int16(binary.BigEndian.Uint16(countBuf[:]))

	blocks, err := decodePalettedContainer(r, 16*16*16, 4, 9)
	if err != nil {
		return nil, fmt.Errorf("read block states: %w", err)
	}
	biomes, err := decodePalettedContainer(r, 4*4*4, 1, 4)
	if err != nil {
		return nil, fmt.Errorf("read biomes: %w", err)
	}

	return &ChunkSection{Y: y, Blocks: blocks, Biomes: biomes, BlockCount: blockCount}, nil
}

// decodePalettedContainer mirrors the wire's three container shapes: a
// single value with no backing array, an indirect palette below directBits,
// or a direct (paletteless) array at or above it.
func decodePalettedContainer(r *bytes.Reader, cellCount, minBits, directBits int) (*PalettedContainer, error) {
	bitsByte, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	bits := int(bitsByte)

	if bits == 0 {
		single, _, err := mcnet.ReadVarInt(r)
		if err != nil {
			return nil, err
		}
		if _, _, err := mcnet.ReadVarInt(r); err != nil { // empty data-array length, always 0
			return nil, err
		}
		return LoadPacked(cellCount, minBits, directBits, 0, nil, nil, single), nil
	}

	var palette []int32
	if bits < directBits {
		paletteLen, _, err := mcnet.ReadVarInt(r)
		if err != nil {
			return nil, err
		}
		palette = make([]int32, paletteLen)
		for i := range palette {
			v, _, err := mcnet.ReadVarInt(r)
			if err != nil {
				return nil, err
			}
			palette[i] = v
		}
	}

	wordCount, _, err := mcnet.ReadVarInt(r)
	if err != nil {
		return nil, err
	}
	words := make([]uint64, wordCount)
	for i := range words {
		var buf [8]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, err
		}
		words[i] = binary.BigEndian.Uint64(buf[:])
	}

	return LoadPacked(cellCount, minBits, directBits, bits, palette, words, 0), nil
}
