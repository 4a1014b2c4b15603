package client

import (
	"fmt"

	"github.com/OCharnyshevich/gocraft-bot/packet"
)

// Attack queues an attack on target for the next tick's step 6, rather than
// sending InteractEntity immediately, so it participates in the same
// cooldown/ordering rules as every other tick-driven action.
func (c *Client) Attack(targetServerID int32) {
	c.mu.Lock()
	c.queuedAttack = &targetServerID
	c.mu.Unlock()
}

// tickAttack runs step 6: emit the queued interact+swing, reset the attack
// cooldown, clear sprinting, and damp horizontal velocity by 0.6 — the
// vanilla lunge-reduction applied to the attacker on a successful hit.
func (c *Client) tickAttack() error {
	c.mu.Lock()
	target := c.queuedAttack
	c.queuedAttack = nil
	c.mu.Unlock()

	if target == nil {
		return nil
	}

	lp := c.LocalPlayer()
	if lp == nil {
		return nil
	}

	if err := c.pipeline.WritePacket(&packet.InteractEntity{
		EntityID: *target,
		Type:     packet.InteractTypeAttack,
	}); err != nil {
		return fmt.Errorf("write interact entity: %w", err)
	}
	if err := c.pipeline.WritePacket(&packet.SwingArm{Hand: packet.HandMain}); err != nil {
		return fmt.Errorf("write swing arm: %w", err)
	}

	lp.TicksSinceLastAttack = 0
	lp.Physics.Sprinting = false
	lp.Physics.Velocity.X *= 0.6
	lp.Physics.Velocity.Z *= 0.6

	return nil
}
