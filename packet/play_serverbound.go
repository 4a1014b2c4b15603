package packet

import "github.com/google/uuid"

// Serverbound game-state packets.

// AcceptTeleportation acknowledges a PlayerPosition teleport; no movement
// packet may be sent for a pending teleport until this is sent (serverbound 0x00).
type AcceptTeleportation struct {
	TeleportID int32 `mc:"varint"`
}

func (AcceptTeleportation) PacketID() int32 { return 0x00 }

// MovePlayerPos reports position only, rotation unchanged (serverbound 0x1D).
type MovePlayerPos struct {
	X        float64 `mc:"f64"`
	Y        float64 `mc:"f64"`
	Z        float64 `mc:"f64"`
	OnGround bool    `mc:"bool"`
}

func (MovePlayerPos) PacketID() int32 { return 0x1D }

// MovePlayerPosRot reports position and rotation together (serverbound 0x1E).
type MovePlayerPosRot struct {
	X        float64 `mc:"f64"`
	Y        float64 `mc:"f64"`
	Z        float64 `mc:"f64"`
	Yaw      float32 `mc:"f32"`
	Pitch    float32 `mc:"f32"`
	OnGround bool    `mc:"bool"`
}

func (MovePlayerPosRot) PacketID() int32 { return 0x1E }

// MovePlayerRot reports rotation only, position unchanged (serverbound 0x1F).
type MovePlayerRot struct {
	Yaw      float32 `mc:"f32"`
	Pitch    float32 `mc:"f32"`
	OnGround bool    `mc:"bool"`
}

func (MovePlayerRot) PacketID() int32 { return 0x1F }

// MovePlayerStatusOnly reports neither position nor rotation changed, only
// the on-ground flag (serverbound 0x20).
type MovePlayerStatusOnly struct {
	OnGround bool `mc:"bool"`
}

func (MovePlayerStatusOnly) PacketID() int32 { return 0x20 }

// PlayerInput reports the currently-held movement keys, sent on ticks where
// they changed, ahead of any PlayerCommand and the positional packet
// (serverbound 0x1C).
type PlayerInput struct {
	Flags uint8 `mc:"u8"`
}

// PlayerInput flag bits.
const (
	InputForward uint8 = 1 << iota
	InputBackward
	InputLeft
	InputRight
	InputJump
	InputSneak
	InputSprint
)

func (PlayerInput) PacketID() int32 { return 0x1C }

// PlayerCommand toggles a persistent action such as sneaking or sprinting
// (serverbound 0x24).
type PlayerCommand struct {
	EntityID  int32 `mc:"varint"`
	ActionID  int32 `mc:"varint"`
	JumpBoost int32 `mc:"varint"`
}

func (PlayerCommand) PacketID() int32 { return 0x24 }

// PlayerCommand action ids.
const (
	PlayerCommandStartSneak int32 = iota
	PlayerCommandStopSneak
	PlayerCommandLeaveBed
	PlayerCommandStartSprint
	PlayerCommandStopSprint
	PlayerCommandStartJumpHorse
	PlayerCommandStopJumpHorse
	PlayerCommandOpenInventoryHorse
	PlayerCommandStartFlyElytra
)

// ClientTickEnd marks the boundary of one client tick for the server's own
// bookkeeping; sent last, after any positional packet (serverbound 0x0B).
type ClientTickEnd struct{}

func (ClientTickEnd) PacketID() int32 { return 0x0B }

// SwingArm animates a hand swing, used both cosmetically and as part of
// attack/mine sequences (serverbound 0x36).
type SwingArm struct {
	Hand int32 `mc:"varint"`
}

func (SwingArm) PacketID() int32 { return 0x36 }

// Hand values for SwingArm/UseItemOn/InteractEntity.
const (
	HandMain int32 = 0
	HandOff  int32 = 1
)

// PlayerAction reports mining progress for the block under the crosshair
// (serverbound 0x27).
type PlayerAction struct {
	Status   int32 `mc:"varint"`
	Location int64 `mc:"position"`
	Face     int8  `mc:"i8"`
	Sequence int32 `mc:"varint"`
}

func (PlayerAction) PacketID() int32 { return 0x27 }

// PlayerAction status values.
const (
	DigStartedDigging int32 = iota
	DigCancelledDigging
	DigFinishedDigging
	DigDropItemStack
	DigDropItem
	DigShootArrowOrFinishEating
	DigSwapItemInHand
)

// InteractEntity attacks or interacts with an entity (serverbound 0x19).
type InteractEntity struct {
	EntityID int32  `mc:"varint"`
	Type     int32  `mc:"varint"`
	Raw      []byte `mc:"rest"`
}

func (InteractEntity) PacketID() int32 { return 0x19 }

// InteractEntity type values.
const (
	InteractTypeInteract int32 = iota
	InteractTypeAttack
	InteractTypeInteractAt
)

// ChatCommand sends an unsigned chat command (serverbound 0x05).
type ChatCommand struct {
	Command string `mc:"string"`
}

func (ChatCommand) PacketID() int32 { return 0x05 }

// ChatMessage sends a chat message (serverbound 0x08). Signing is out of
// scope; servers in signed-chat-required mode reject unsigned messages.
type ChatMessage struct {
	Message string `mc:"string"`
	Raw     []byte `mc:"rest"`
}

func (ChatMessage) PacketID() int32 { return 0x08 }

// KeepAlivePlayResponse echoes a KeepAlivePlay id back (serverbound 0x1A).
type KeepAlivePlayResponse struct {
	KeepAliveID int64 `mc:"i64"`
}

func (KeepAlivePlayResponse) PacketID() int32 { return 0x1A }

// PongPlay answers PingPlay (serverbound 0x2D).
type PongPlay struct {
	ID int32 `mc:"i32"`
}

func (PongPlay) PacketID() int32 { return 0x2D }

// PlayerLoaded tells the server terrain has finished loading after a
// respawn/dimension change, letting it stop holding the player in a frozen
// state (serverbound 0x2A).
type PlayerLoaded struct{}

func (PlayerLoaded) PacketID() int32 { return 0x2A }

// ClientCommand issues a persistent client request; the only one this core
// originates is respawn-after-death (serverbound 0x09).
type ClientCommand struct {
	ActionID int32 `mc:"varint"`
}

// ClientCommand action ids.
const (
	ClientCommandRespawn int32 = iota
	ClientCommandRequestStats
)

func (ClientCommand) PacketID() int32 { return 0x09 }

// ChatSessionUpdate establishes the player's signed-chat session key. This
// core never signs chat — ChatMessage always sends an unsigned message —
// so nothing here originates a ChatSessionUpdate on its own; it exists for
// embedders talking to a server that refuses unsigned chat outright
// (serverbound 0x07).
type ChatSessionUpdate struct {
	SessionID uuid.UUID `mc:"uuid"`
	Raw       []byte    `mc:"rest"` // expiresAt i64, public key, signature
}

func (ChatSessionUpdate) PacketID() int32 { return 0x07 }

// UseItemOn places a block or otherwise interacts with the block face
// under the crosshair (serverbound 0x38).
type UseItemOn struct {
	Hand           int32   `mc:"varint"`
	Location       int64   `mc:"position"`
	Face           int32   `mc:"varint"`
	CursorX        float32 `mc:"f32"`
	CursorY        float32 `mc:"f32"`
	CursorZ        float32 `mc:"f32"`
	InsideBlock    bool    `mc:"bool"`
	WorldBorderHit bool    `mc:"bool"`
	Sequence       int32   `mc:"varint"`
}

func (UseItemOn) PacketID() int32 { return 0x38 }

// Block face values for UseItemOn.
const (
	FaceBottom int32 = iota
	FaceTop
	FaceNorth
	FaceSouth
	FaceWest
	FaceEast
)

// UseItem activates the held item with no target block, e.g. eating or
// drawing a bow (serverbound 0x39).
type UseItem struct {
	Hand     int32   `mc:"varint"`
	Sequence int32   `mc:"varint"`
	Yaw      float32 `mc:"f32"`
	Pitch    float32 `mc:"f32"`
}

func (UseItem) PacketID() int32 { return 0x39 }

// ChunkBatchReceived reports the client's desired chunk-delivery rate in
// chunks per tick, sent after each ChunkBatchFinished (serverbound 0x0A).
type ChunkBatchReceived struct {
	ChunksPerTick float32 `mc:"f32"`
}

func (ChunkBatchReceived) PacketID() int32 { return 0x0A }
