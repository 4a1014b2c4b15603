package world

// ChunkSection is one 16x16x16 cube of a chunk column: a paletted block
// grid, a paletted biome grid at quarter resolution, and the non-air block
// count the server reports for rendering/culling decisions the core itself
// doesn't make but forwards to consumers.
type ChunkSection struct {
	Y          int32
	Blocks     *PalettedContainer
	Biomes     *PalettedContainer
	BlockCount int16
}

func NewChunkSection(y int32) *ChunkSection {
	return &ChunkSection{Y: y, Blocks: NewBlockPalette(), Biomes: NewBiomePalette()}
}

// BlockAt returns the block state id at the section-local coordinate.
func (s *ChunkSection) BlockAt(x, y, z int) int32 {
	return s.Blocks.Get((y*16+z)*16 + x)
}

// SetBlockAt stores a block state id at the section-local coordinate,
// maintaining BlockCount for air/non-air transitions.
func (s *ChunkSection) SetBlockAt(x, y, z int, state int32, isAir func(int32) bool) {
	idx := (y*16+z)*16 + x
	was := s.Blocks.Get(idx)
	s.Blocks.Set(idx, state)

	wasAir := isAir(was)
	isNowAir := isAir(state)
	switch {
	case wasAir && !isNowAir:
		s.BlockCount++
	case !wasAir && isNowAir:
		s.BlockCount--
	}
}

// BiomeAt returns the biome id at the given quarter-resolution coordinate
// (0..3 on each axis).
func (s *ChunkSection) BiomeAt(x, y, z int) int32 {
	return s.Biomes.Get((y*4+z)*4 + x)
}
