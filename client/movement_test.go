package client

import (
	"bytes"
	"log/slog"
	"net"
	"testing"

	"github.com/OCharnyshevich/gocraft-bot/entity"
	mcnet "github.com/OCharnyshevich/gocraft-bot/net"
	"github.com/OCharnyshevich/gocraft-bot/packet"
	"github.com/OCharnyshevich/gocraft-bot/world"
)

func newTestClient(t *testing.T) (*Client, net.Conn) {
	t.Helper()
	serverSide, clientSide := net.Pipe()
	t.Cleanup(func() { serverSide.Close(); clientSide.Close() })

	c := &Client{
		cfg:      DefaultConfig("localhost", "tester"),
		log:      slog.Default(),
		events:   &Events{},
		pipeline: NewPipeline(clientSide),
	}
	c.localPlayer = &entity.LocalPlayer{
		Attributes: entity.DefaultAttributes(),
		Inventory:  entity.NewInventory(),
	}
	return c, serverSide
}

func readPacketID(t *testing.T, conn net.Conn) int32 {
	t.Helper()
	length, _, err := mcnet.ReadVarInt(conn)
	if err != nil {
		t.Fatalf("read frame length: %v", err)
	}
	raw := make([]byte, length)
	if _, err := readFull(conn, raw); err != nil {
		t.Fatalf("read frame body: %v", err)
	}
	id, _, err := mcnet.ReadVarInt(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("read packet id: %v", err)
	}
	return id
}

func TestMovementEmitterFirstTickSendsPosRot(t *testing.T) {
	c, server := newTestClient(t)

	done := make(chan int32, 1)
	go func() {
		done <- readPacketID(t, server)
		readPacketID(t, server) // drain the trailing ClientTickEnd
	}()

	if err := c.emitMovement(0); err != nil {
		t.Fatalf("emitMovement: %v", err)
	}
	if err := c.pipeline.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if got := <-done; got != (packet.MovePlayerPosRot{}).PacketID() {
		t.Fatalf("expected initial MovePlayerPosRot, got 0x%02X", got)
	}
}

func TestMovementEmitterIdleSendsOnlyTickEnd(t *testing.T) {
	c, server := newTestClient(t)
	c.movement.initialized = true
	c.movement.lastSentPos = c.localPlayer.Physics.Position
	c.movement.lastSentRot = c.localPlayer.Physics.Rotation
	c.movement.lastSentOnGround = c.localPlayer.Physics.OnGround

	done := make(chan int32, 1)
	go func() { done <- readPacketID(t, server) }()

	if err := c.emitMovement(0); err != nil {
		t.Fatalf("emitMovement: %v", err)
	}
	if err := c.pipeline.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if got := <-done; got != (packet.ClientTickEnd{}).PacketID() {
		t.Fatalf("expected only ClientTickEnd when nothing changed, got 0x%02X", got)
	}
}

func TestMovementEmitterWithheldDuringPendingTeleport(t *testing.T) {
	c, server := newTestClient(t)
	c.movement.initialized = true
	teleportID := int32(5)
	c.movement.pendingTeleportID = &teleportID
	c.localPlayer.Physics.Position = world.Vec3{X: 10}

	done := make(chan int32, 1)
	go func() { done <- readPacketID(t, server) }()

	if err := c.emitMovement(0); err != nil {
		t.Fatalf("emitMovement: %v", err)
	}
	if err := c.pipeline.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if got := <-done; got != (packet.ClientTickEnd{}).PacketID() {
		t.Fatalf("expected movement withheld while teleport is pending, got 0x%02X", got)
	}
}

func TestMovementEmitterIdleResendAfter20Ticks(t *testing.T) {
	c, server := newTestClient(t)
	c.movement.initialized = true
	c.movement.lastSentPos = c.localPlayer.Physics.Position
	c.movement.lastSentRot = c.localPlayer.Physics.Rotation
	c.movement.ticksSincePos = idleResendTicks - 1

	go func() {
		buf := make([]byte, 256)
		for {
			if _, err := server.Read(buf); err != nil {
				return
			}
		}
	}()

	if err := c.emitMovement(0); err != nil {
		t.Fatalf("emitMovement: %v", err)
	}
	if c.movement.ticksSincePos != 0 {
		t.Fatalf("expected idle resend to reset the tick counter, got %d", c.movement.ticksSincePos)
	}
}

func readFull(conn net.Conn, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := conn.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
