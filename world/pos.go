package world

import "math"

// Vec3 is a double-precision position or velocity, the unit used for entity
// and player coordinates on the wire.
type Vec3 struct {
	X, Y, Z float64
}

// DistanceSquared returns the squared Euclidean distance to other, the form
// used by the movement emitter's epsilon comparison to avoid a sqrt per tick.
func (v Vec3) DistanceSquared(other Vec3) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	return dx*dx + dy*dy + dz*dz
}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// BlockPos is an integer block coordinate.
type BlockPos struct {
	X, Y, Z int32
}

// ToVec3 returns the position of this block's minimum corner.
func (p BlockPos) ToVec3() Vec3 {
	return Vec3{float64(p.X), float64(p.Y), float64(p.Z)}
}

// Encode packs a block position into the wire's 64-bit position format:
// 26 bits X, 26 bits Z, 12 bits Y, each a sign-extended two's complement
// field.
func (p BlockPos) Encode() int64 {
	x := uint64(p.X) & 0x3FFFFFF
	z := uint64(p.Z) & 0x3FFFFFF
	y := uint64(p.Y) & 0xFFF
	return int64(x<<38 | z<<12 | y)
}

// DecodeBlockPos reverses BlockPos.Encode, sign-extending each field back
// from its packed width.
func DecodeBlockPos(v int64) BlockPos {
	x := int32(v >> 38)
	y := int32(v<<52>>52) // sign-extend the low 12 bits
	z := int32(v<<26>>38) // sign-extend the middle 26 bits
	return BlockPos{X: x, Y: y, Z: z}
}

// ChunkPos identifies a 16x16 column by its chunk-grid coordinates.
type ChunkPos struct {
	X, Z int32
}

// ChunkPosOf returns the column containing the given block position.
func ChunkPosOf(p BlockPos) ChunkPos {
	return ChunkPos{X: floorDiv(p.X, 16), Z: floorDiv(p.Z, 16)}
}

// ChunkSectionPos identifies a single 16x16x16 cube within a column.
type ChunkSectionPos struct {
	X, Y, Z int32
}

func ChunkSectionPosOf(p BlockPos) ChunkSectionPos {
	return ChunkSectionPos{X: floorDiv(p.X, 16), Y: floorDiv(p.Y, 16), Z: floorDiv(p.Z, 16)}
}

// DecodeChunkSectionPos unpacks SectionBlocksUpdate's position long: 22
// bits X, 22 bits Z, 20 bits Y, each sign-extended two's complement.
func DecodeChunkSectionPos(v int64) ChunkSectionPos {
	x := int32(v >> 42)
	z := int32(v<<22>>42)
	y := int32(v<<44>>44) // sign-extend the low 20 bits
	return ChunkSectionPos{X: x, Y: y, Z: z}
}

func floorDiv(a, b int32) int32 {
	return int32(math.Floor(float64(a) / float64(b)))
}

// Rotation is a yaw/pitch pair in degrees.
type Rotation struct {
	Yaw, Pitch float32
}
