package entity

import (
	"github.com/OCharnyshevich/gocraft-bot/world"
)

// GameMode mirrors the wire's game-mode byte.
type GameMode int8

const (
	GameModeSurvival  GameMode = 0
	GameModeCreative  GameMode = 1
	GameModeAdventure GameMode = 2
	GameModeSpectator GameMode = 3
)

// Attributes holds the subset of entity attributes the core's own physics
// and combat math depend on; everything else a server sends is forwarded
// to consumers unparsed.
type Attributes struct {
	MaxHealth       float64
	MovementSpeed   float64
	AttackSpeed     float64
	AttackDamage    float64
	KnockbackResist float64
}

// DefaultAttributes matches vanilla's base values for a fresh player.
func DefaultAttributes() Attributes {
	return Attributes{
		MaxHealth:     20,
		MovementSpeed: 0.1,
		AttackSpeed:   4,
		AttackDamage:  1,
	}
}

// ClientInformation holds the display preferences sent at the start of
// every Configuration phase, including re-entry from Game (spec.md §4.4's
// ambient handshake payload).
type ClientInformation struct {
	Locale              string
	ViewDistance        int8
	ChatMode            int32
	ChatColors          bool
	DisplayedSkinParts  uint8
	MainHand            int32
	TextFilteringOn     bool
	AllowServerListings bool
}

// PhysicsState is the tick-local mutable state the physics step in
// client/tick.go reads and writes: position/velocity plus the handful of
// flags that change its math (sneaking narrows the hitbox and slows
// movement; sprinting changes speed and hunger cost).
type PhysicsState struct {
	Position  world.Vec3
	Velocity  world.Vec3
	Rotation  world.Rotation
	OnGround  bool
	Sneaking  bool
	Sprinting bool
}

// LocalPlayer is the client's own entity: everything PhysicsState needs,
// plus the combat/health/inventory state mining and attacking read and
// mutate. It is never touched by the entity store's relative-update
// broadcast path — only the local input/physics pipeline writes to it.
type LocalPlayer struct {
	Handle   Handle
	ServerID int32

	Physics    PhysicsState
	Attributes Attributes
	Health     float32
	Food       int32
	FoodSat    float32
	GameMode   GameMode

	Inventory *Inventory

	// TicksSinceLastAttack backs the attack-cooldown math (spec.md §4.7
	// steps 2-3): AttackStrengthScale = clamp((ticks+0.5)/attackDelay, 0, 1).
	TicksSinceLastAttack int

	// Mining tracks an in-progress block-break, or is nil when idle.
	Mining *MiningProgress
}

// AttackDelay returns ticks-per-swing at full cooldown, derived from the
// attack-speed attribute.
func (lp *LocalPlayer) AttackDelay() float64 {
	if lp.Attributes.AttackSpeed <= 0 {
		return 20
	}
	return 20 / lp.Attributes.AttackSpeed
}

// AttackStrengthScale implements spec.md §4.7 step 3.
func (lp *LocalPlayer) AttackStrengthScale() float64 {
	scale := (float64(lp.TicksSinceLastAttack) + 0.5) / lp.AttackDelay()
	if scale < 0 {
		return 0
	}
	if scale > 1 {
		return 1
	}
	return scale
}

// MiningProgress tracks the block currently being destroyed. Started is
// false until tickMining has sent the initial start-digging action, which
// it bundles with that same tick's first swing.
type MiningProgress struct {
	Position world.BlockPos
	Face     int8
	Progress float64 // 0..1
	Sequence int32
	Started  bool
}
