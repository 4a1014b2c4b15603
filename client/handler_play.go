package client

import (
	"bytes"
	"fmt"

	"github.com/OCharnyshevich/gocraft-bot/entity"
	mcnet "github.com/OCharnyshevich/gocraft-bot/net"
	"github.com/OCharnyshevich/gocraft-bot/packet"
	"github.com/OCharnyshevich/gocraft-bot/world"
	"github.com/OCharnyshevich/gocraft-bot/world/nbt"
)

// dispatchPlay routes one play-state packet to its handler. Per §4.8, every
// handler validates cheaply and drops silently (with a log line) on an
// impossible referent rather than erroring the whole connection.
func (c *Client) dispatchPlay(id int32, data []byte) error {
	switch id {
	case (packet.Login{}).PacketID():
		return c.handleLoginPlay(data)

	case (packet.Respawn{}).PacketID():
		return c.handleRespawn(data)

	case (packet.SetHealth{}).PacketID():
		return c.handleSetHealth(data)

	case (packet.LevelChunkWithLight{}).PacketID():
		return c.handleLevelChunk(data)

	case (packet.ForgetLevelChunk{}).PacketID():
		return c.handleForgetChunk(data)

	case (packet.BlockUpdate{}).PacketID():
		return c.handleBlockUpdate(data)

	case (packet.PlayerPosition{}).PacketID():
		return c.handlePlayerPositionTeleport(data)

	case (packet.KeepAlivePlay{}).PacketID():
		return c.handleKeepAlivePlay(data)

	case (packet.PingPlay{}).PacketID():
		return c.handlePingPlay(data)

	case (packet.SystemChat{}).PacketID():
		var p packet.SystemChat
		if err := unmarshalInto(data, &p); err != nil {
			return err
		}
		c.events.fireChat(c, string(p.Content))
		return nil

	case (packet.PlayerChat{}).PacketID():
		var p packet.PlayerChat
		if err := unmarshalInto(data, &p); err != nil {
			return err
		}
		c.events.fireChat(c, extractPlayerChatContent(p.Raw))
		return nil

	case (packet.AddEntity{}).PacketID():
		return c.handleAddEntity(data)

	case (packet.RemoveEntities{}).PacketID():
		return c.handleRemoveEntities(data)

	case (packet.UpdateEntityPosition{}).PacketID():
		return c.handleUpdateEntityPosition(data)

	case (packet.UpdateEntityPositionAndRotation{}).PacketID():
		return c.handleUpdateEntityPositionAndRotation(data)

	case (packet.UpdateEntityRotation{}).PacketID():
		return c.handleUpdateEntityRotation(data)

	case (packet.TeleportEntity{}).PacketID():
		return c.handleTeleportEntity(data)

	case (packet.SetEntityMotion{}).PacketID():
		// velocity is cosmetic for everything but the local player, which
		// never receives broadcast updates; nothing in the core consumes it
		// beyond what Events.Packet surfaces to the caller.
		return nil

	case (packet.SetChunkCacheCenter{}).PacketID():
		return nil

	case (packet.ContainerSetSlot{}).PacketID():
		return c.handleContainerSetSlot(data)

	case (packet.ContainerSetContent{}).PacketID():
		return c.handleContainerSetContent(data)

	case (packet.SectionBlocksUpdate{}).PacketID():
		return c.handleSectionBlocksUpdate(data)

	case (packet.SetEntityMetadata{}).PacketID():
		return c.handleSetEntityMetadata(data)

	case (packet.PlayerInfoUpdate{}).PacketID():
		return c.handlePlayerInfoUpdate(data)

	case (packet.PlayerInfoRemove{}).PacketID():
		return c.handlePlayerInfoRemove(data)

	case (packet.SetChunkCacheRadius{}).PacketID():
		return c.handleSetChunkCacheRadius(data)

	case (packet.ChunkBatchStart{}).PacketID():
		return nil

	case (packet.ChunkBatchFinished{}).PacketID():
		return c.handleChunkBatchFinished(data)

	case (packet.PlayDisconnect{}).PacketID():
		var p packet.PlayDisconnect
		if err := unmarshalInto(data, &p); err != nil {
			return err
		}
		return fmt.Errorf("play disconnected: %s", string(p.Reason))

	case (packet.StartConfiguration{}).PacketID():
		c.setState(StateConfiguration)
		if err := c.pipeline.WritePacket(&packet.FinishConfigurationAck{}); err != nil {
			return fmt.Errorf("write finish configuration ack: %w", err)
		}
		if err := c.configure(); err != nil {
			return err
		}
		c.setState(StatePlay)
		return nil

	default:
		return nil
	}
}

func (c *Client) handleLoginPlay(data []byte) error {
	var p packet.Login
	if err := unmarshalInto(data, &p); err != nil {
		return err
	}

	c.mu.Lock()
	c.localPlayerServerID = p.EntityID
	c.mu.Unlock()

	lp := &entity.LocalPlayer{
		ServerID:   p.EntityID,
		GameMode:   entity.GameMode(p.GameMode),
		Attributes: entity.DefaultAttributes(),
		Health:     20,
		Inventory:  entity.NewInventory(),
	}

	c.mu.Lock()
	c.localPlayer = lp
	c.mu.Unlock()

	c.changeDimension(p.DimensionName, p.DimensionType)
	c.events.fireLogin(c, lp)
	return nil
}

func (c *Client) handleRespawn(data []byte) error {
	var p packet.Respawn
	if err := unmarshalInto(data, &p); err != nil {
		return err
	}

	lp := c.LocalPlayer()
	if lp != nil {
		lp.GameMode = entity.GameMode(p.GameMode)
	}

	c.changeDimension(p.DimensionName, p.DimensionType)
	return nil
}

// dimensionTypeRegistry is the well-known registry RegistryData carries
// per-dimension min_y/height under, keyed by the dimension type identifier
// Login/Respawn reference by name.
const dimensionTypeRegistry = "minecraft:dimension_type"

// changeDimension implements §4.8's Login/Respawn rule: clear chunk storage
// whenever the dimension actually differs from what this client already
// holds — either a different dimension name, or the same name redefined
// with a different world height (Scenario 6), which a CopyMetadata-style
// same-dimension respawn can still do if the server rotates a custom
// dimension's registry entry between respawns.
func (c *Client) changeDimension(name, dimensionType string) {
	minY, height := c.worldMinY, c.worldHeight
	if entry, ok := c.registry.EntryByID(dimensionTypeRegistry, dimensionType); ok && entry.Data != nil {
		if v, ok := entry.Data.Long("min_y"); ok {
			minY = int32(v)
		}
		if v, ok := entry.Data.Long("height"); ok {
			height = int32(v)
		}
	}

	if name == c.dimensionName && minY == c.worldMinY && height == c.worldHeight {
		return
	}
	c.dimensionName = name
	c.worldMinY = minY
	c.worldHeight = height
	c.partialChunks.Reset()
	c.awaitingFirstChunk = true
}

// heightmapPredicates returns a single opaque-block test shared by all four
// heightmap kinds — vanilla's per-kind leaf/fluid distinctions aren't
// exercised by anything this core does with a heightmap, so one predicate
// covers the column's incremental tracking without extra registry lookups.
func (c *Client) heightmapPredicates() map[world.HeightmapKind]world.IsOpaquePredicate {
	opaque := func(state int32) bool { return !c.isAirState(state) }
	return map[world.HeightmapKind]world.IsOpaquePredicate{
		world.HeightmapWorldSurface:           opaque,
		world.HeightmapMotionBlocking:         opaque,
		world.HeightmapOceanFloor:             opaque,
		world.HeightmapMotionBlockingNoLeaves: opaque,
	}
}

func (c *Client) handleLevelChunk(data []byte) error {
	var p packet.LevelChunkWithLight
	if err := unmarshalInto(data, &p); err != nil {
		return err
	}

	pos := world.ChunkPos{X: p.ChunkX, Z: p.ChunkZ}
	if c.partialChunks.Has(pos) {
		return nil
	}
	if _, ok := c.partialChunks.Adopt(pos); ok {
		c.announceFirstChunkIfAwaited()
		return nil
	}

	col, err := world.DecodeLevelChunk(p.Data, pos, c.worldMinY, c.worldHeight, c.heightmapPredicates())
	if err != nil {
		c.log.Error("decode level chunk", "chunk", pos, "error", err)
		return nil
	}
	c.partialChunks.Load(pos, func() *world.Column { return col })
	c.announceFirstChunkIfAwaited()
	return nil
}

func (c *Client) announceFirstChunkIfAwaited() {
	if !c.awaitingFirstChunk {
		return
	}
	c.awaitingFirstChunk = false
	c.pendingPlayerLoaded = true
}

func (c *Client) handleSetHealth(data []byte) error {
	var p packet.SetHealth
	if err := unmarshalInto(data, &p); err != nil {
		return err
	}

	lp := c.LocalPlayer()
	if lp == nil {
		return nil
	}
	lp.Health = p.Health
	lp.Food = p.Food
	lp.FoodSat = p.FoodSaturation

	if p.Health <= 0 {
		c.events.fireDeath(c)
	}
	return nil
}

func (c *Client) handleForgetChunk(data []byte) error {
	var p packet.ForgetLevelChunk
	if err := unmarshalInto(data, &p); err != nil {
		return err
	}
	c.partialChunks.Evict(world.ChunkPos{X: p.ChunkX, Z: p.ChunkZ})
	return nil
}

func (c *Client) handleBlockUpdate(data []byte) error {
	var p packet.BlockUpdate
	if err := unmarshalInto(data, &p); err != nil {
		return err
	}
	pos := world.DecodeBlockPos(p.Location)
	chunkPos := world.ChunkPosOf(pos)
	col, ok := c.partialChunks.Get(chunkPos)
	if !ok {
		c.log.Debug("block update for unknown chunk", "chunk", chunkPos)
		return nil
	}
	localX := int(((pos.X % 16) + 16) % 16)
	localZ := int(((pos.Z % 16) + 16) % 16)
	col.SetBlockAt(localX, pos.Y, localZ, p.BlockID, c.isAirState)
	return nil
}

// handleContainerSetSlot mirrors a single slot update into the local
// player's inventory when it targets the player's own window (0); updates
// to any other open container window aren't tracked, since this core only
// mirrors the player's own inventory state.
func (c *Client) handleContainerSetSlot(data []byte) error {
	var p packet.ContainerSetSlot
	if err := unmarshalInto(data, &p); err != nil {
		return err
	}
	if p.WindowID != 0 {
		return nil
	}

	lp := c.LocalPlayer()
	if lp == nil || lp.Inventory == nil {
		return nil
	}

	slot, err := entity.ReadSlot(bytes.NewReader(p.SlotData))
	if err != nil {
		c.log.Debug("decode container set slot", "slot", p.SlotIndex, "error", err)
		return nil
	}

	lp.Inventory.StateID = p.StateID
	if !lp.Inventory.Set(int(p.SlotIndex), slot) {
		c.log.Debug("container set slot out of range", "slot", p.SlotIndex)
	}
	return nil
}

// handleContainerSetContent replaces every slot of the player's own window
// (0) at once, the bulk counterpart to handleContainerSetSlot sent right
// after login populates the inventory.
func (c *Client) handleContainerSetContent(data []byte) error {
	var p packet.ContainerSetContent
	if err := unmarshalInto(data, &p); err != nil {
		return err
	}
	if p.WindowID != 0 {
		return nil
	}

	lp := c.LocalPlayer()
	if lp == nil || lp.Inventory == nil {
		return nil
	}

	r := bytes.NewReader(p.Raw)
	count, _, err := mcnet.ReadVarInt(r)
	if err != nil {
		return fmt.Errorf("decode container set content count: %w", err)
	}
	slots := make([]entity.Slot, count)
	for i := range slots {
		slots[i], err = entity.ReadSlot(r)
		if err != nil {
			return fmt.Errorf("decode container set content slot %d: %w", i, err)
		}
	}
	carried, err := entity.ReadSlot(r)
	if err != nil {
		return fmt.Errorf("decode container set content carried slot: %w", err)
	}

	lp.Inventory.StateID = p.StateID
	lp.Inventory.SetAll(slots, carried)
	return nil
}

// handleSectionBlocksUpdate applies a batch of block changes within one
// chunk section, the same SetBlockAt/heightmap path handleBlockUpdate uses
// for a single change.
func (c *Client) handleSectionBlocksUpdate(data []byte) error {
	var p packet.SectionBlocksUpdate
	if err := unmarshalInto(data, &p); err != nil {
		return err
	}
	sec := world.DecodeChunkSectionPos(p.SectionPos)

	chunkPos := world.ChunkPos{X: sec.X, Z: sec.Z}
	col, ok := c.partialChunks.Get(chunkPos)
	if !ok {
		c.log.Debug("section blocks update for unknown chunk", "chunk", chunkPos)
		return nil
	}

	r := bytes.NewReader(p.Raw)
	count, _, err := mcnet.ReadVarInt(r)
	if err != nil {
		return fmt.Errorf("decode section blocks update count: %w", err)
	}
	for i := int32(0); i < count; i++ {
		v, _, err := mcnet.ReadVarLong(r)
		if err != nil {
			return fmt.Errorf("decode section blocks update entry: %w", err)
		}
		state := int32(v >> 12)
		local := v & 0xFFF
		localX := int((local >> 8) & 0xF)
		localZ := int((local >> 4) & 0xF)
		y := sec.Y*16 + int32(local&0xF)
		col.SetBlockAt(localX, y, localZ, state, c.isAirState)
	}
	return nil
}

// handleSetEntityMetadata mirrors an entity's metadata blob opaquely; no
// per-kind field is interpreted here.
func (c *Client) handleSetEntityMetadata(data []byte) error {
	var p packet.SetEntityMetadata
	if err := unmarshalInto(data, &p); err != nil {
		return err
	}
	c.entities.SetMetadata(p.EntityID, p.Raw)
	return nil
}

// handlePlayerInfoUpdate decodes the action-bitset-driven player array and
// folds each entry into the tab-list mirror. Unrecognized bits can't be
// skipped safely (the field layout is action-dependent, not length
// prefixed), so an unknown action set aborts the packet with an error
// rather than silently misreading every following entry.
func (c *Client) handlePlayerInfoUpdate(data []byte) error {
	var p packet.PlayerInfoUpdate
	if err := unmarshalInto(data, &p); err != nil {
		return err
	}
	const knownActions = packet.PlayerInfoActionAddPlayer |
		packet.PlayerInfoActionInitializeChat |
		packet.PlayerInfoActionUpdateGameMode |
		packet.PlayerInfoActionUpdateListed |
		packet.PlayerInfoActionUpdateLatency |
		packet.PlayerInfoActionUpdateDisplayName
	if p.Actions&^knownActions != 0 {
		return fmt.Errorf("player info update: unsupported action bits 0x%02X", p.Actions)
	}

	r := bytes.NewReader(p.Raw)
	count, _, err := mcnet.ReadVarInt(r)
	if err != nil {
		return fmt.Errorf("decode player info update count: %w", err)
	}

	for i := int32(0); i < count; i++ {
		id, err := mcnet.ReadUUID(r)
		if err != nil {
			return fmt.Errorf("decode player info update uuid: %w", err)
		}

		var name string
		var gameMode, latency int32
		var listed bool
		haveName, haveGameMode, haveListed, haveLatency := false, false, false, false

		if p.Actions&packet.PlayerInfoActionAddPlayer != 0 {
			if name, err = mcnet.ReadString(r, 16); err != nil {
				return fmt.Errorf("decode player info update name: %w", err)
			}
			haveName = true

			propCount, _, err := mcnet.ReadVarInt(r)
			if err != nil {
				return fmt.Errorf("decode player info update property count: %w", err)
			}
			for j := int32(0); j < propCount; j++ {
				if _, err := mcnet.ReadString(r, 32767); err != nil {
					return fmt.Errorf("decode player info update property name: %w", err)
				}
				if _, err := mcnet.ReadString(r, 32767); err != nil {
					return fmt.Errorf("decode player info update property value: %w", err)
				}
				signed, err := mcnet.ReadBool(r)
				if err != nil {
					return fmt.Errorf("decode player info update property signed flag: %w", err)
				}
				if signed {
					if _, err := mcnet.ReadString(r, 32767); err != nil {
						return fmt.Errorf("decode player info update property signature: %w", err)
					}
				}
			}
		}

		if p.Actions&packet.PlayerInfoActionInitializeChat != 0 {
			hasSig, err := mcnet.ReadBool(r)
			if err != nil {
				return fmt.Errorf("decode player info update chat flag: %w", err)
			}
			if hasSig {
				if _, err := mcnet.ReadUUID(r); err != nil {
					return fmt.Errorf("decode player info update session id: %w", err)
				}
				if _, err := mcnet.ReadI64(r); err != nil {
					return fmt.Errorf("decode player info update expires at: %w", err)
				}
				keyLen, _, err := mcnet.ReadVarInt(r)
				if err != nil {
					return fmt.Errorf("decode player info update key length: %w", err)
				}
				if err := discardN(r, int(keyLen)); err != nil {
					return fmt.Errorf("decode player info update public key: %w", err)
				}
				sigLen, _, err := mcnet.ReadVarInt(r)
				if err != nil {
					return fmt.Errorf("decode player info update signature length: %w", err)
				}
				if err := discardN(r, int(sigLen)); err != nil {
					return fmt.Errorf("decode player info update signature: %w", err)
				}
			}
		}

		if p.Actions&packet.PlayerInfoActionUpdateGameMode != 0 {
			if gameMode, _, err = mcnet.ReadVarInt(r); err != nil {
				return fmt.Errorf("decode player info update game mode: %w", err)
			}
			haveGameMode = true
		}

		if p.Actions&packet.PlayerInfoActionUpdateListed != 0 {
			if listed, err = mcnet.ReadBool(r); err != nil {
				return fmt.Errorf("decode player info update listed flag: %w", err)
			}
			haveListed = true
		}

		if p.Actions&packet.PlayerInfoActionUpdateLatency != 0 {
			if latency, _, err = mcnet.ReadVarInt(r); err != nil {
				return fmt.Errorf("decode player info update latency: %w", err)
			}
			haveLatency = true
		}

		if p.Actions&packet.PlayerInfoActionUpdateDisplayName != 0 {
			hasDisplay, err := mcnet.ReadBool(r)
			if err != nil {
				return fmt.Errorf("decode player info update display name flag: %w", err)
			}
			if hasDisplay {
				if _, err := nbt.NewReader(r).ReadCompound(); err != nil {
					return fmt.Errorf("decode player info update display name: %w", err)
				}
			}
		}

		c.playerList.Upsert(id, func(e *entity.PlayerListEntry) {
			if haveName {
				e.Name = name
			}
			if haveGameMode {
				e.GameMode = entity.GameMode(gameMode)
			}
			if haveListed {
				e.Listed = listed
			}
			if haveLatency {
				e.Latency = latency
			}
		})
	}
	return nil
}

func (c *Client) handlePlayerInfoRemove(data []byte) error {
	var p packet.PlayerInfoRemove
	if err := unmarshalInto(data, &p); err != nil {
		return err
	}
	r := bytes.NewReader(p.Raw)
	count, _, err := mcnet.ReadVarInt(r)
	if err != nil {
		return fmt.Errorf("decode player info remove count: %w", err)
	}
	for i := int32(0); i < count; i++ {
		id, err := mcnet.ReadUUID(r)
		if err != nil {
			return fmt.Errorf("decode player info remove uuid: %w", err)
		}
		c.playerList.Remove(id)
	}
	return nil
}

func (c *Client) handleSetChunkCacheRadius(data []byte) error {
	var p packet.SetChunkCacheRadius
	if err := unmarshalInto(data, &p); err != nil {
		return err
	}
	c.mu.Lock()
	c.viewDistance = p.ViewDistance
	c.mu.Unlock()
	return nil
}

// chunkBatchChunksPerTick is the fixed rate this core reports back via
// ChunkBatchReceived; there is no frame-timing measurement here to derive
// an adaptive figure the way the real client does.
const chunkBatchChunksPerTick = 10.0

func (c *Client) handleChunkBatchFinished(data []byte) error {
	var p packet.ChunkBatchFinished
	if err := unmarshalInto(data, &p); err != nil {
		return err
	}
	c.log.Debug("chunk batch finished", "size", p.BatchSize)
	if err := c.pipeline.WritePacket(&packet.ChunkBatchReceived{ChunksPerTick: chunkBatchChunksPerTick}); err != nil {
		return fmt.Errorf("write chunk batch received: %w", err)
	}
	return nil
}

func (c *Client) isAirState(state int32) bool {
	block, ok := c.gameData.Blocks.ByID(int(state))
	if !ok {
		return true
	}
	return block.Transparent
}

// handlePlayerPositionTeleport implements §4.8's PlayerPosition rule:
// acknowledge before any movement packet this tick, apply the relative
// mask, and clear the movement emitter's cache so the next tick re-emits.
func (c *Client) handlePlayerPositionTeleport(data []byte) error {
	var p packet.PlayerPosition
	if err := unmarshalInto(data, &p); err != nil {
		return err
	}

	lp := c.LocalPlayer()
	if lp == nil {
		return nil
	}

	// Mark the teleport as outstanding before touching position/rotation.
	// acknowledgeTeleport clears it again before this handler returns, and
	// both dispatch and the emitter run on the single tick goroutine, so
	// emitMovement never observes it set from here: the ack is simply
	// written ahead of that tick's movement packets.
	c.movement.pendingTeleportID = &p.TeleportID

	pos := lp.Physics.Position
	if packet.PlayerPositionMask(packet.PosMaskRelX).Relative(p.Flags) {
		pos.X += p.X
	} else {
		pos.X = p.X
	}
	if packet.PlayerPositionMask(packet.PosMaskRelY).Relative(p.Flags) {
		pos.Y += p.Y
	} else {
		pos.Y = p.Y
	}
	if packet.PlayerPositionMask(packet.PosMaskRelZ).Relative(p.Flags) {
		pos.Z += p.Z
	} else {
		pos.Z = p.Z
	}
	lp.Physics.Position = pos

	rot := lp.Physics.Rotation
	if packet.PlayerPositionMask(packet.PosMaskRelYaw).Relative(p.Flags) {
		rot.Yaw += p.Yaw
	} else {
		rot.Yaw = p.Yaw
	}
	if packet.PlayerPositionMask(packet.PosMaskRelPitch).Relative(p.Flags) {
		rot.Pitch += p.Pitch
	} else {
		rot.Pitch = p.Pitch
	}
	lp.Physics.Rotation = rot

	if !packet.PlayerPositionMask(packet.PosMaskRotateDeltaVelocity).Relative(p.Flags) {
		lp.Physics.Velocity = world.Vec3{X: p.VelocityX, Y: p.VelocityY, Z: p.VelocityZ}
	}

	if err := c.acknowledgeTeleport(p.TeleportID); err != nil {
		return err
	}
	return nil
}

func (c *Client) handleKeepAlivePlay(data []byte) error {
	var p packet.KeepAlivePlay
	if err := unmarshalInto(data, &p); err != nil {
		return err
	}
	return c.pipeline.WritePacket(&packet.KeepAlivePlayResponse{KeepAliveID: p.KeepAliveID})
}

func (c *Client) handlePingPlay(data []byte) error {
	var p packet.PingPlay
	if err := unmarshalInto(data, &p); err != nil {
		return err
	}
	return c.pipeline.WritePacket(&packet.PongPlay{ID: p.ID})
}

func (c *Client) handleAddEntity(data []byte) error {
	var p packet.AddEntity
	if err := unmarshalInto(data, &p); err != nil {
		return err
	}
	kind := "unknown"
	if def, ok := c.gameData.Entities.ByID(int(p.EntityType)); ok {
		kind = def.Name
	}
	c.entities.Spawn(p.EntityID, p.EntityUUID, kind,
		world.Vec3{X: p.X, Y: p.Y, Z: p.Z},
		world.Rotation{Yaw: angleByteToDegrees(p.Yaw), Pitch: angleByteToDegrees(p.Pitch)},
		c)
	return nil
}

func (c *Client) handleRemoveEntities(data []byte) error {
	ids, err := decodeVarIntArray(data)
	if err != nil {
		return fmt.Errorf("decode remove entities: %w", err)
	}
	for _, id := range ids {
		c.entities.Despawn(id, c)
	}
	return nil
}

func (c *Client) handleUpdateEntityPosition(data []byte) error {
	var p packet.UpdateEntityPosition
	if err := unmarshalInto(data, &p); err != nil {
		return err
	}
	c.entities.ApplyRelativeIfDue(p.EntityID, c.localPlayerServerID, c.partialEntity, func(e *entity.Entity) {
		e.ApplyRelativeMove(p.DeltaX, p.DeltaY, p.DeltaZ)
		e.OnGround = p.OnGround
	})
	return nil
}

func (c *Client) handleUpdateEntityPositionAndRotation(data []byte) error {
	var p packet.UpdateEntityPositionAndRotation
	if err := unmarshalInto(data, &p); err != nil {
		return err
	}
	c.entities.ApplyRelativeIfDue(p.EntityID, c.localPlayerServerID, c.partialEntity, func(e *entity.Entity) {
		e.ApplyRelativeMove(p.DeltaX, p.DeltaY, p.DeltaZ)
		e.Rotation = world.Rotation{Yaw: angleByteToDegrees(p.Yaw), Pitch: angleByteToDegrees(p.Pitch)}
		e.OnGround = p.OnGround
	})
	return nil
}

func (c *Client) handleUpdateEntityRotation(data []byte) error {
	var p packet.UpdateEntityRotation
	if err := unmarshalInto(data, &p); err != nil {
		return err
	}
	c.entities.ApplyRelativeIfDue(p.EntityID, c.localPlayerServerID, c.partialEntity, func(e *entity.Entity) {
		e.Rotation = world.Rotation{Yaw: angleByteToDegrees(p.Yaw), Pitch: angleByteToDegrees(p.Pitch)}
		e.OnGround = p.OnGround
	})
	return nil
}

func (c *Client) handleTeleportEntity(data []byte) error {
	var p packet.TeleportEntity
	if err := unmarshalInto(data, &p); err != nil {
		return err
	}
	c.entities.SetAbsolute(p.EntityID, world.Vec3{X: p.X, Y: p.Y, Z: p.Z}, world.Rotation{Yaw: p.Yaw, Pitch: p.Pitch})
	return nil
}

// angleByteToDegrees converts the wire's 256ths-of-a-turn angle byte into
// degrees.
func angleByteToDegrees(b int8) float32 {
	return float32(b) * 360.0 / 256.0
}

// extractPlayerChatContent returns the leading string of a signed chat
// payload as the message text. The chat type is not resolved against the
// registry; a payload whose leading string cannot be decoded yields the
// fixed placeholder "<unreadable chat message>".
func extractPlayerChatContent(raw []byte) string {
	s, err := decodeLeadingString(raw)
	if err != nil {
		return "<unreadable chat message>"
	}
	return s
}
