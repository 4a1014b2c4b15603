package world

// HeightmapKind names one of the four heightmaps a column tracks.
type HeightmapKind string

const (
	HeightmapWorldSurface           HeightmapKind = "WORLD_SURFACE"
	HeightmapMotionBlocking         HeightmapKind = "MOTION_BLOCKING"
	HeightmapOceanFloor             HeightmapKind = "OCEAN_FLOOR"
	HeightmapMotionBlockingNoLeaves HeightmapKind = "MOTION_BLOCKING_NO_LEAVES"
)

// IsOpaquePredicate reports whether a block state counts as "opaque" for a
// given heightmap kind — each kind has its own predicate (e.g.
// MOTION_BLOCKING_NO_LEAVES excludes leaves from counting as the surface).
type IsOpaquePredicate func(state int32) bool

// Column is a vertical stack of chunk sections spanning [MinY, MinY+Height),
// plus its four heightmaps. Sections are indexed by (y-MinY)/16.
type Column struct {
	Pos      ChunkPos
	MinY     int32
	Height   int32
	Sections []*ChunkSection

	heightmaps map[HeightmapKind][]int32 // column-local, one y per (x,z) cell
	predicates map[HeightmapKind]IsOpaquePredicate

	LightData [][]byte // opaque per-section sky+block light, index-aligned with Sections
}

// NewColumn allocates an empty column with air sections and zeroed
// heightmaps, ready to receive a LevelChunkWithLight payload.
func NewColumn(pos ChunkPos, minY, height int32, predicates map[HeightmapKind]IsOpaquePredicate) *Column {
	count := int(height / 16)
	sections := make([]*ChunkSection, count)
	for i := range sections {
		sections[i] = NewChunkSection(minY/16 + int32(i))
	}

	heightmaps := make(map[HeightmapKind][]int32, len(predicates))
	for kind := range predicates {
		heightmaps[kind] = make([]int32, 16*16)
	}

	return &Column{
		Pos:        pos,
		MinY:       minY,
		Height:     height,
		Sections:   sections,
		heightmaps: heightmaps,
		predicates: predicates,
		LightData:  make([][]byte, count),
	}
}

func (c *Column) sectionIndex(y int32) int {
	return int((y - c.MinY) / 16)
}

// BlockAt returns the block state at the given world-y block position
// within this column (x, z are column-local 0..15).
func (c *Column) BlockAt(x int, y int32, z int) int32 {
	idx := c.sectionIndex(y)
	if idx < 0 || idx >= len(c.Sections) {
		return 0
	}
	return c.Sections[idx].BlockAt(x, int(mod16(y)), z)
}

// SetBlockAt stores a block state at a column-relative position and
// incrementally updates all four heightmaps, rescanning the column downward
// from its top (not from the previous recorded height) only when the change
// could affect that kind's
// surface (the previous top block is being removed, or the new block is
// opaque and taller than the current top).
func (c *Column) SetBlockAt(x int, y int32, z int, state int32, isAir func(int32) bool) {
	idx := c.sectionIndex(y)
	if idx < 0 || idx >= len(c.Sections) {
		return
	}
	c.Sections[idx].SetBlockAt(x, int(mod16(y)), z, state, isAir)

	cell := z*16 + x
	for kind, predicate := range c.predicates {
		heights := c.heightmaps[kind]
		top := heights[cell]
		switch {
		case predicate(state) && y+1 > top:
			heights[cell] = y + 1
		case top != 0 && y+1 == top && !predicate(state):
			heights[cell] = c.rescanHeight(x, z, predicate)
		}
	}
}

// rescanHeight scans downward from the column's top to find the new
// highest opaque-per-predicate block, used only when a block removal could
// have lowered the recorded height.
func (c *Column) rescanHeight(x, z int, predicate IsOpaquePredicate) int32 {
	for y := c.MinY + c.Height - 1; y >= c.MinY; y-- {
		if predicate(c.BlockAt(x, y, z)) {
			return y + 1
		}
	}
	return c.MinY
}

// Heightmap returns the recorded surface height for (x, z) under kind.
func (c *Column) Heightmap(kind HeightmapKind, x, z int) int32 {
	heights, ok := c.heightmaps[kind]
	if !ok {
		return 0
	}
	return heights[z*16+x]
}

func mod16(y int32) int32 {
	m := y % 16
	if m < 0 {
		m += 16
	}
	return m
}
