package client

import (
	"fmt"

	"github.com/OCharnyshevich/gocraft-bot/entity"
	"github.com/OCharnyshevich/gocraft-bot/packet"
	"github.com/OCharnyshevich/gocraft-bot/world"
)

// movementEpsilon is the squared-distance threshold below which a position
// is treated as unchanged; chosen well under the smallest representable
// step to absorb floating-point jitter without ever masking a real move.
const movementEpsilon = 4e-8

// idleResendTicks forces a positional packet even with no real movement,
// the "whichever comes first" half of the position-changed test.
const idleResendTicks = 20

// movementState tracks what was last sent to the server, so each tick only
// emits the minimal packet variant the change actually requires.
type movementState struct {
	lastSentPos      world.Vec3
	lastSentRot      world.Rotation
	lastSentOnGround bool
	lastInputFlags   uint8
	ticksSincePos    int
	initialized      bool
	sprinting        bool
	sneaking         bool

	pendingTeleportID *int32
}

// emitMovement runs §4.9's movement emitter for one tick: PlayerInput (only
// if the held input bits changed), PlayerCommand (only on a sprint/sneak
// transition), exactly one of the four position/rotation packet variants,
// then ClientTickEnd. It is a no-op while a teleport acknowledgement is
// still pending, since no movement packet may precede it.
func (c *Client) emitMovement(inputFlags uint8) error {
	lp := c.LocalPlayer()
	if lp == nil {
		return c.endTick()
	}

	if c.movement.pendingTeleportID != nil {
		return c.endTick()
	}

	if inputFlags != c.movement.lastInputFlags {
		if err := c.pipeline.WritePacket(&packet.PlayerInput{Flags: inputFlags}); err != nil {
			return fmt.Errorf("write player input: %w", err)
		}
		c.movement.lastInputFlags = inputFlags
	}

	if err := c.emitCommandTransitions(lp); err != nil {
		return err
	}

	pos := lp.Physics.Position
	rot := lp.Physics.Rotation
	onGround := lp.Physics.OnGround

	if !c.movement.initialized {
		c.movement.lastSentPos = pos
		c.movement.lastSentRot = rot
		c.movement.lastSentOnGround = onGround
		c.movement.initialized = true
		if err := c.pipeline.WritePacket(&packet.MovePlayerPosRot{
			X: pos.X, Y: pos.Y, Z: pos.Z, Yaw: rot.Yaw, Pitch: rot.Pitch, OnGround: onGround,
		}); err != nil {
			return fmt.Errorf("write initial position: %w", err)
		}
		return c.endTick()
	}

	c.movement.ticksSincePos++
	posChanged := c.movement.lastSentPos.DistanceSquared(pos) > movementEpsilon ||
		c.movement.ticksSincePos >= idleResendTicks
	rotChanged := rot.Yaw != c.movement.lastSentRot.Yaw || rot.Pitch != c.movement.lastSentRot.Pitch
	groundChanged := onGround != c.movement.lastSentOnGround

	switch {
	case posChanged && rotChanged:
		err := c.pipeline.WritePacket(&packet.MovePlayerPosRot{
			X: pos.X, Y: pos.Y, Z: pos.Z, Yaw: rot.Yaw, Pitch: rot.Pitch, OnGround: onGround,
		})
		if err != nil {
			return fmt.Errorf("write pos+rot: %w", err)
		}
		c.movement.ticksSincePos = 0

	case posChanged:
		err := c.pipeline.WritePacket(&packet.MovePlayerPos{X: pos.X, Y: pos.Y, Z: pos.Z, OnGround: onGround})
		if err != nil {
			return fmt.Errorf("write pos: %w", err)
		}
		c.movement.ticksSincePos = 0

	case rotChanged:
		if err := c.pipeline.WritePacket(&packet.MovePlayerRot{Yaw: rot.Yaw, Pitch: rot.Pitch, OnGround: onGround}); err != nil {
			return fmt.Errorf("write rot: %w", err)
		}

	case groundChanged:
		if err := c.pipeline.WritePacket(&packet.MovePlayerStatusOnly{OnGround: onGround}); err != nil {
			return fmt.Errorf("write status-only: %w", err)
		}

	default:
		return c.endTick()
	}

	c.movement.lastSentPos = pos
	c.movement.lastSentRot = rot
	c.movement.lastSentOnGround = onGround
	return c.endTick()
}

// emitCommandTransitions sends PlayerCommand for any sprint/sneak edge
// since the last tick, strictly before the positional packet.
func (c *Client) emitCommandTransitions(lp *entity.LocalPlayer) error {
	if lp.Physics.Sprinting != c.movement.sprinting {
		action := int32(packet.PlayerCommandStartSprint)
		if !lp.Physics.Sprinting {
			action = packet.PlayerCommandStopSprint
		}
		if err := c.pipeline.WritePacket(&packet.PlayerCommand{EntityID: c.localPlayerServerID, ActionID: action}); err != nil {
			return fmt.Errorf("write sprint command: %w", err)
		}
		c.movement.sprinting = lp.Physics.Sprinting
	}

	if lp.Physics.Sneaking != c.movement.sneaking {
		action := int32(packet.PlayerCommandStartSneak)
		if !lp.Physics.Sneaking {
			action = packet.PlayerCommandStopSneak
		}
		if err := c.pipeline.WritePacket(&packet.PlayerCommand{EntityID: c.localPlayerServerID, ActionID: action}); err != nil {
			return fmt.Errorf("write sneak command: %w", err)
		}
		c.movement.sneaking = lp.Physics.Sneaking
	}

	return nil
}

func (c *Client) endTick() error {
	if err := c.pipeline.WritePacket(&packet.ClientTickEnd{}); err != nil {
		return fmt.Errorf("write client tick end: %w", err)
	}
	return nil
}

// acknowledgeTeleport answers a pending PlayerPosition teleport. Until this
// is sent, the emitter withholds every movement packet, and the emitter's
// last-sent cache is cleared so the next tick re-emits unconditionally.
func (c *Client) acknowledgeTeleport(teleportID int32) error {
	if err := c.pipeline.WritePacket(&packet.AcceptTeleportation{TeleportID: teleportID}); err != nil {
		return fmt.Errorf("write accept teleportation: %w", err)
	}
	c.movement.pendingTeleportID = nil
	c.movement.initialized = false
	return nil
}
