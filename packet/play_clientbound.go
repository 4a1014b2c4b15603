package packet

import "github.com/google/uuid"

// Clientbound game-state packets.

// GameMode values carried by Login/GameEvent.
const (
	GameModeSurvival  int8 = 0
	GameModeCreative  int8 = 1
	GameModeAdventure int8 = 2
	GameModeSpectator int8 = 3
)

// KeepAlivePlay is a liveness check the client must echo back unmodified
// (clientbound 0x26, serverbound 0x1A).
type KeepAlivePlay struct {
	KeepAliveID int64 `mc:"i64"`
}

func (KeepAlivePlay) PacketID() int32 { return 0x26 }

// Login initializes the player into a dimension after configuration
// finishes or a dimension change occurs (clientbound 0x2C). DimensionNames,
// HashedSeed and the per-dimension NBT are carried in Raw — decoded by the
// instance handler, which only needs a handful of these fields.
type Login struct {
	EntityID           int32  `mc:"i32"`
	IsHardcore         bool   `mc:"bool"`
	DimensionType      string `mc:"string"`
	DimensionName      string `mc:"string"`
	GameMode           int8   `mc:"i8"`
	PreviousGameMode   int8   `mc:"i8"`
	IsDebug            bool   `mc:"bool"`
	IsFlat             bool   `mc:"bool"`
	PortalCooldown     int32  `mc:"varint"`
	SeaLevel           int32  `mc:"varint"`
	EnforcesSecureChat bool   `mc:"bool"`
	Raw                []byte `mc:"rest"`
}

func (Login) PacketID() int32 { return 0x2C }

// Respawn reinitializes the player into a (possibly new) dimension without
// a full reconnect (clientbound 0x45).
type Respawn struct {
	DimensionType    string `mc:"string"`
	DimensionName    string `mc:"string"`
	HashedSeed       int64  `mc:"i64"`
	GameMode         int8   `mc:"i8"`
	PreviousGameMode int8   `mc:"i8"`
	IsDebug          bool   `mc:"bool"`
	IsFlat           bool   `mc:"bool"`
	CopyMetadata     uint8  `mc:"u8"`
	Raw              []byte `mc:"rest"`
}

func (Respawn) PacketID() int32 { return 0x45 }

// SetHealth reports current health and food. It is applied to the local
// player once Login has created one; a SetHealth that arrives before Login
// is dropped (clientbound 0x62).
type SetHealth struct {
	Health         float32 `mc:"f32"`
	Food           int32   `mc:"varint"`
	FoodSaturation float32 `mc:"f32"`
}

func (SetHealth) PacketID() int32 { return 0x62 }

// LevelChunkWithLight carries one chunk column's block/biome/light data
// (clientbound 0x27). Decoding the packed sections happens in the world
// package, which understands the paletted-container layout; this struct
// only exposes the coordinates and the undecoded payload.
type LevelChunkWithLight struct {
	ChunkX int32  `mc:"i32"`
	ChunkZ int32  `mc:"i32"`
	Data   []byte `mc:"rest"`
}

func (LevelChunkWithLight) PacketID() int32 { return 0x27 }

// ForgetLevelChunk tells the client a chunk column is no longer tracked
// (clientbound 0x22).
type ForgetLevelChunk struct {
	ChunkZ int32 `mc:"i32"`
	ChunkX int32 `mc:"i32"`
}

func (ForgetLevelChunk) PacketID() int32 { return 0x22 }

// SetChunkCacheCenter moves the server's view of which chunk the client is
// centered on, used to prune the local chunk mirror (clientbound 0x57).
type SetChunkCacheCenter struct {
	ChunkX int32 `mc:"varint"`
	ChunkZ int32 `mc:"varint"`
}

func (SetChunkCacheCenter) PacketID() int32 { return 0x57 }

// BlockUpdate applies a single block change (clientbound 0x09).
type BlockUpdate struct {
	Location int64 `mc:"position"`
	BlockID  int32 `mc:"varint"`
}

func (BlockUpdate) PacketID() int32 { return 0x09 }

// PlayerPositionMask bits, set when the matching field on PlayerPosition is
// relative to the player's current position/rotation rather than absolute.
type PlayerPositionMask uint8

const (
	PosMaskRelX PlayerPositionMask = 1 << iota
	PosMaskRelY
	PosMaskRelZ
	PosMaskRelYaw
	PosMaskRelPitch
	PosMaskRotateDeltaVelocity
)

// PlayerPosition teleports the player and must be acknowledged with the
// same TeleportID via AcceptTeleportation before further movement packets
// are sent (clientbound 0x41).
type PlayerPosition struct {
	TeleportID int32   `mc:"varint"`
	X          float64 `mc:"f64"`
	Y          float64 `mc:"f64"`
	Z          float64 `mc:"f64"`
	VelocityX  float64 `mc:"f64"`
	VelocityY  float64 `mc:"f64"`
	VelocityZ  float64 `mc:"f64"`
	Yaw        float32 `mc:"f32"`
	Pitch      float32 `mc:"f32"`
	Flags      int32   `mc:"i32"`
}

func (PlayerPosition) PacketID() int32 { return 0x41 }

// SetEntityMotion sets an entity's velocity in units of 1/8000 block per
// tick (clientbound 0x6C).
type SetEntityMotion struct {
	EntityID  int32 `mc:"varint"`
	VelocityX int16 `mc:"i16"`
	VelocityY int16 `mc:"i16"`
	VelocityZ int16 `mc:"i16"`
}

func (SetEntityMotion) PacketID() int32 { return 0x6C }

// PingPlay and PongPlay are the in-game liveness probe pair, distinct from
// KeepAlivePlay (clientbound 0x36 / serverbound 0x2D).
type PingPlay struct {
	ID int32 `mc:"i32"`
}

func (PingPlay) PacketID() int32 { return 0x36 }

// Explode reports an explosion's center. The optional knockback applied to
// the local player follows immediately in Raw as three f64s when present;
// it is small and situational enough that a manual read in the client
// package beats a nested-struct tag the codec doesn't otherwise need.
type Explode struct {
	X   float64 `mc:"f64"`
	Y   float64 `mc:"f64"`
	Z   float64 `mc:"f64"`
	Raw []byte  `mc:"rest"`
}

func (Explode) PacketID() int32 { return 0x11 }

// SystemChat delivers a server-originated chat/system message with no
// sender (clientbound 0x72).
type SystemChat struct {
	Content []byte `mc:"rest"`
}

func (SystemChat) PacketID() int32 { return 0x72 }

// PlayerChat delivers a signed player chat message; signature verification
// is out of scope, so the raw payload is exposed for the content extractor
// in the client package (clientbound 0x39).
type PlayerChat struct {
	Raw []byte `mc:"rest"`
}

func (PlayerChat) PacketID() int32 { return 0x39 }

// UpdateAdvancements is forwarded to consumers unparsed; no core behavior
// depends on its contents (clientbound 0x73).
type UpdateAdvancements struct {
	Raw []byte `mc:"rest"`
}

func (UpdateAdvancements) PacketID() int32 { return 0x73 }

// MerchantOffers lists a villager's trades for an open trade window
// (clientbound 0x2B).
type MerchantOffers struct {
	WindowID int32  `mc:"varint"`
	Raw      []byte `mc:"rest"`
}

func (MerchantOffers) PacketID() int32 { return 0x2B }

// ContainerSetSlot updates a single inventory slot (clientbound 0x13).
type ContainerSetSlot struct {
	WindowID  int8   `mc:"i8"`
	StateID   int32  `mc:"varint"`
	SlotIndex int16  `mc:"i16"`
	SlotData  []byte `mc:"rest"`
}

func (ContainerSetSlot) PacketID() int32 { return 0x13 }

// PlayDisconnect ends the connection with a reason (clientbound 0x1D).
type PlayDisconnect struct {
	Reason []byte `mc:"rest"`
}

func (PlayDisconnect) PacketID() int32 { return 0x1D }

// StartConfiguration tells the client to move back into Configuration, used
// for datapack/registry reloads (clientbound 0x6B).
type StartConfiguration struct{}

func (StartConfiguration) PacketID() int32 { return 0x6B }

// AddEntity announces a new entity and its spawn state (clientbound 0x01).
type AddEntity struct {
	EntityID   int32     `mc:"varint"`
	EntityUUID uuid.UUID `mc:"uuid"`
	EntityType int32     `mc:"varint"`
	X          float64   `mc:"f64"`
	Y          float64   `mc:"f64"`
	Z          float64   `mc:"f64"`
	Pitch      int8      `mc:"i8"`
	Yaw        int8      `mc:"i8"`
	HeadYaw    int8      `mc:"i8"`
	Data       int32     `mc:"varint"`
	VelocityX  int16     `mc:"i16"`
	VelocityY  int16     `mc:"i16"`
	VelocityZ  int16     `mc:"i16"`
}

func (AddEntity) PacketID() int32 { return 0x01 }

// UpdateEntityPosition applies a relative move only, in 1/4096-block fixed
// point (clientbound 0x2F).
type UpdateEntityPosition struct {
	EntityID int32 `mc:"varint"`
	DeltaX   int16 `mc:"i16"`
	DeltaY   int16 `mc:"i16"`
	DeltaZ   int16 `mc:"i16"`
	OnGround bool  `mc:"bool"`
}

func (UpdateEntityPosition) PacketID() int32 { return 0x2F }

// UpdateEntityPositionAndRotation applies a relative move plus an absolute
// rotation (clientbound 0x30).
type UpdateEntityPositionAndRotation struct {
	EntityID int32 `mc:"varint"`
	DeltaX   int16 `mc:"i16"`
	DeltaY   int16 `mc:"i16"`
	DeltaZ   int16 `mc:"i16"`
	Yaw      int8  `mc:"i8"`
	Pitch    int8  `mc:"i8"`
	OnGround bool  `mc:"bool"`
}

func (UpdateEntityPositionAndRotation) PacketID() int32 { return 0x30 }

// UpdateEntityRotation applies a rotation-only update with no position
// change (clientbound 0x31).
type UpdateEntityRotation struct {
	EntityID int32 `mc:"varint"`
	Yaw      int8  `mc:"i8"`
	Pitch    int8  `mc:"i8"`
	OnGround bool  `mc:"bool"`
}

func (UpdateEntityRotation) PacketID() int32 { return 0x31 }

// TeleportEntity sets an entity's absolute position and rotation, bypassing
// the relative-update dedup protocol entirely since the value is already
// whole (clientbound 0x70).
type TeleportEntity struct {
	EntityID  int32   `mc:"varint"`
	X         float64 `mc:"f64"`
	Y         float64 `mc:"f64"`
	Z         float64 `mc:"f64"`
	VelocityX float64 `mc:"f64"`
	VelocityY float64 `mc:"f64"`
	VelocityZ float64 `mc:"f64"`
	Yaw       float32 `mc:"f32"`
	Pitch     float32 `mc:"f32"`
	OnGround  bool    `mc:"bool"`
}

func (TeleportEntity) PacketID() int32 { return 0x70 }

// RemoveEntities despawns a batch of entities by server id (clientbound 0x47).
type RemoveEntities struct {
	EntityIDs []byte `mc:"rest"`
}

func (RemoveEntities) PacketID() int32 { return 0x47 }

// SectionBlocksUpdate batches block changes within a single chunk section
// (clientbound 0x42). SectionPos is vanilla's packed 22/22/20-bit x/z/y
// position (see world.DecodeChunkSectionPos); Raw is a varint count
// followed by that many varlong-packed (state, local x/y/z) changes,
// applied against the same column/heightmap path a single BlockUpdate uses.
type SectionBlocksUpdate struct {
	SectionPos int64  `mc:"i64"`
	Raw        []byte `mc:"rest"`
}

func (SectionBlocksUpdate) PacketID() int32 { return 0x42 }

// ChunkBatchStart brackets the beginning of one burst of
// LevelChunkWithLight packets (clientbound 0x0D).
type ChunkBatchStart struct{}

func (ChunkBatchStart) PacketID() int32 { return 0x0D }

// ChunkBatchFinished closes a chunk batch and reports how many chunks it
// carried; the client answers with ChunkBatchReceived so the server can
// pace future batches (clientbound 0x0C).
type ChunkBatchFinished struct {
	BatchSize int32 `mc:"varint"`
}

func (ChunkBatchFinished) PacketID() int32 { return 0x0C }

// SetEntityMetadata carries an entity's metadata fields. Interpreting
// per-kind metadata is out of scope, so it is mirrored opaquely into
// entity.Entity.RawMetadata rather than decoded field by field
// (clientbound 0x5C).
type SetEntityMetadata struct {
	EntityID int32  `mc:"varint"`
	Raw      []byte `mc:"rest"`
}

func (SetEntityMetadata) PacketID() int32 { return 0x5C }

// PlayerInfoRemove drops tab-list entries by UUID (clientbound 0x3F).
type PlayerInfoRemove struct {
	Raw []byte `mc:"rest"` // varint count || uuid[]
}

func (PlayerInfoRemove) PacketID() int32 { return 0x3F }

// PlayerInfoUpdate adds or updates tab-list entries. The leading action
// bitset decides which fields follow for each subsequent player entry, so
// the body is decoded by hand in the client package rather than through
// the tag marshaler (clientbound 0x40).
type PlayerInfoUpdate struct {
	Actions uint8  `mc:"u8"`
	Raw     []byte `mc:"rest"`
}

// PlayerInfoUpdate action bits.
const (
	PlayerInfoActionAddPlayer uint8 = 1 << iota
	PlayerInfoActionInitializeChat
	PlayerInfoActionUpdateGameMode
	PlayerInfoActionUpdateListed
	PlayerInfoActionUpdateLatency
	PlayerInfoActionUpdateDisplayName
)

func (PlayerInfoUpdate) PacketID() int32 { return 0x40 }

// ContainerSetContent replaces every slot of an open window at once,
// including the player's own inventory (window 0) right after login
// (clientbound 0x12).
type ContainerSetContent struct {
	WindowID uint8  `mc:"u8"`
	StateID  int32  `mc:"varint"`
	Raw      []byte `mc:"rest"` // varint count || Slot[]; carried cursor Slot follows
}

func (ContainerSetContent) PacketID() int32 { return 0x12 }

// SetChunkCacheRadius reports the server's simulation/view distance
// (clientbound 0x56).
type SetChunkCacheRadius struct {
	ViewDistance int32 `mc:"varint"`
}

func (SetChunkCacheRadius) PacketID() int32 { return 0x56 }
