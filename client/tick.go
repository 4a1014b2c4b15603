package client

import (
	"github.com/OCharnyshevich/gocraft-bot/entity"
	"github.com/OCharnyshevich/gocraft-bot/packet"
)

// tick runs one fixed-rate simulation step, steps 1 through 8 in strict
// order with no preemption within the tick: step 1 drains every packet the
// read goroutine queued since the last tick (dispatching each in arrival
// order), then steps 2 through 8 run as before.
func (c *Client) tick() {
	if c.pendingPlayerLoaded {
		c.pendingPlayerLoaded = false
		if err := c.pipeline.WritePacket(&packet.PlayerLoaded{}); err != nil {
			c.log.Error("write player loaded", "error", err)
		}
	}

	c.drainIncoming()

	lp := c.LocalPlayer()
	if lp != nil {
		// Step 2: advance the attack cooldown counter.
		lp.TicksSinceLastAttack++

		// Step 3: AttackStrengthScale is derived on demand from
		// TicksSinceLastAttack via LocalPlayer.AttackStrengthScale(); no
		// stored field to recompute here.

		// Step 4: physics integration.
		c.tickPhysics(lp)
	}

	// Step 5: mining progress.
	if err := c.tickMining(); err != nil {
		c.log.Error("tick mining", "error", err)
	}

	// Step 6: queued attacks.
	if err := c.tickAttack(); err != nil {
		c.log.Error("tick attack", "error", err)
	}

	// Step 7: movement emitter.
	if err := c.emitMovement(c.currentInputFlags()); err != nil {
		c.log.Error("emit movement", "error", err)
	}

	// Step 8: client-tick-end is sent as part of emitMovement's own
	// ClientTickEnd write, keeping it last among this tick's outgoing
	// packets without a second pipeline round trip.

	c.tickCount++
	c.events.fireTick(c, c.tickCount)
}

// tickPhysics applies gravity and integrates velocity into position. Full
// collision/AABB resolution against the world mesh is not modeled; callers
// driving precise movement should set LocalPlayer.Physics.Position directly
// and let the movement emitter report it, rather than relying on this
// integrator for anything beyond idle gravity.
func (c *Client) tickPhysics(lp *entity.LocalPlayer) {
	const gravity = 0.08
	const drag = 0.98

	if !lp.Physics.OnGround {
		lp.Physics.Velocity.Y -= gravity
	}
	lp.Physics.Velocity.Y *= drag

	lp.Physics.Position = lp.Physics.Position.Add(lp.Physics.Velocity)

	if lp.Physics.Position.Y <= 0 && lp.Physics.Velocity.Y < 0 {
		lp.Physics.Position.Y = 0
		lp.Physics.Velocity.Y = 0
		lp.Physics.OnGround = true
	}
}

// currentInputFlags reports the currently-held movement keys. The base
// client never presses any on its own; callers driving autonomous movement
// set LocalPlayer state and override this via a future Events hook if
// needed, so for now it always reports nothing held.
func (c *Client) currentInputFlags() uint8 {
	return 0
}
