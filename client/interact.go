package client

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/OCharnyshevich/gocraft-bot/packet"
	"github.com/OCharnyshevich/gocraft-bot/world"
)

// Respawn requests a new life after death (the serverbound half of a
// SetHealth-triggered Death event).
func (c *Client) Respawn() error {
	if err := c.pipeline.WritePacket(&packet.ClientCommand{ActionID: packet.ClientCommandRespawn}); err != nil {
		return fmt.Errorf("write client command: %w", err)
	}
	return nil
}

// UseItemOn places a block or otherwise interacts with the given face of
// pos, using the held item in hand.
func (c *Client) UseItemOn(hand int32, pos world.BlockPos, face int32, cursorX, cursorY, cursorZ float32) error {
	if err := c.pipeline.WritePacket(&packet.UseItemOn{
		Hand:     hand,
		Location: pos.Encode(),
		Face:     face,
		CursorX:  cursorX,
		CursorY:  cursorY,
		CursorZ:  cursorZ,
		Sequence: c.nextActionSequence(),
	}); err != nil {
		return fmt.Errorf("write use item on: %w", err)
	}
	return nil
}

// UseItem activates the held item with no target block — eating, drawing
// a bow, and similar actions.
func (c *Client) UseItem(hand int32) error {
	var yaw, pitch float32
	if lp := c.LocalPlayer(); lp != nil {
		yaw, pitch = lp.Physics.Rotation.Yaw, lp.Physics.Rotation.Pitch
	}
	if err := c.pipeline.WritePacket(&packet.UseItem{
		Hand:     hand,
		Sequence: c.nextActionSequence(),
		Yaw:      yaw,
		Pitch:    pitch,
	}); err != nil {
		return fmt.Errorf("write use item: %w", err)
	}
	return nil
}

// SendChatSession establishes a signed-chat session key for an embedder
// that manages its own signing keys. This core's own ChatMessage sends are
// always unsigned, so nothing else in this package calls this.
func (c *Client) SendChatSession(sessionID uuid.UUID, raw []byte) error {
	if err := c.pipeline.WritePacket(&packet.ChatSessionUpdate{SessionID: sessionID, Raw: raw}); err != nil {
		return fmt.Errorf("write chat session update: %w", err)
	}
	return nil
}
