package client

import (
	"fmt"

	"github.com/OCharnyshevich/gocraft-bot/entity"
	"github.com/OCharnyshevich/gocraft-bot/packet"
	"github.com/OCharnyshevich/gocraft-bot/world"
)

// StartMining begins destroying the block at pos. The actual
// start-digging action is sent by tickMining, bundled with that same
// tick's first swing (Scenario 4: both land on the tick mining starts),
// rather than written here ahead of the tick that will immediately follow
// it with a swing.
func (c *Client) StartMining(pos world.BlockPos, face int8) error {
	lp := c.LocalPlayer()
	if lp == nil {
		return fmt.Errorf("start mining: no local player yet")
	}

	lp.Mining = &entity.MiningProgress{Position: pos, Face: face, Sequence: c.nextActionSequence()}
	return nil
}

// CancelMining aborts an in-progress dig without completing it.
func (c *Client) CancelMining() error {
	lp := c.LocalPlayer()
	if lp == nil || lp.Mining == nil {
		return nil
	}
	err := c.pipeline.WritePacket(&packet.PlayerAction{
		Status:   packet.DigCancelledDigging,
		Location: lp.Mining.Position.Encode(),
		Sequence: lp.Mining.Sequence,
	})
	lp.Mining = nil
	return err
}

// tickMining runs step 5: send the start action on the first tick a dig is
// active (bundled with that tick's swing), accumulate progress, swing the
// arm every tick a dig is active, and emit the finish action on
// completion.
func (c *Client) tickMining() error {
	lp := c.LocalPlayer()
	if lp == nil || lp.Mining == nil {
		return nil
	}
	m := lp.Mining

	if !m.Started {
		if err := c.pipeline.WritePacket(&packet.PlayerAction{
			Status:   packet.DigStartedDigging,
			Location: m.Position.Encode(),
			Face:     m.Face,
			Sequence: m.Sequence,
		}); err != nil {
			return fmt.Errorf("write start digging: %w", err)
		}
		m.Started = true
	}

	block, ok := c.gameData.Blocks.ByID(int(c.blockIDAt(m.Position)))
	if !ok || !block.Diggable || block.Hardness == nil {
		return nil
	}

	breakTime := calcBreakTime(*block.Hardness)
	if breakTime <= 0 {
		breakTime = 1
	}
	m.Progress += 1.0 / breakTime

	if err := c.pipeline.WritePacket(&packet.SwingArm{Hand: packet.HandMain}); err != nil {
		return fmt.Errorf("write swing arm: %w", err)
	}

	if m.Progress >= 1 {
		err := c.pipeline.WritePacket(&packet.PlayerAction{
			Status:   packet.DigFinishedDigging,
			Location: m.Position.Encode(),
			Face:     m.Face,
			Sequence: m.Sequence,
		})
		lp.Mining = nil
		return err
	}
	return nil
}

// calcBreakTime is vanilla's no-correct-tool break time: hardness * 100
// ticks. Tool-specific efficiency/haste multipliers are out of scope —
// there is no held-item speed lookup — so the multiplier is always 1.
func calcBreakTime(hardness float64) float64 {
	return hardness * 100 // ticks
}

func (c *Client) blockIDAt(pos world.BlockPos) int32 {
	chunkPos := world.ChunkPosOf(pos)
	col, ok := c.partialChunks.Get(chunkPos)
	if !ok {
		return 0
	}
	localX := int(((pos.X % 16) + 16) % 16)
	localZ := int(((pos.Z % 16) + 16) % 16)
	return col.BlockAt(localX, pos.Y, localZ)
}

// nextActionSequence returns this connection's next PlayerAction sequence
// number; the server echoes it back in BlockUpdate/world-ack packets to
// resolve ordering against speculative client-side predictions.
func (c *Client) nextActionSequence() int32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.actionSequence++
	return c.actionSequence
}
