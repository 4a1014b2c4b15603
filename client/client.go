package client

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/OCharnyshevich/gocraft-bot/entity"
	"github.com/OCharnyshevich/gocraft-bot/gamedata"
	mcnet "github.com/OCharnyshevich/gocraft-bot/net"
	"github.com/OCharnyshevich/gocraft-bot/world"
)

// Client is one bot connection: the protocol state machine, the
// encryption/compression/framing pipeline, and the world/entity mirrors
// the tick loop and movement emitter read and write.
type Client struct {
	cfg    *Config
	log    *slog.Logger
	events *Events

	ctx    context.Context
	cancel context.CancelFunc

	pipeline *Pipeline

	mu    sync.Mutex
	state State

	gameData *gamedata.GameData

	registry *Registry

	sharedChunks  *world.SharedStorage
	partialChunks *world.PartialStorage
	entities      *entity.Store
	partialEntity *entity.PartialInfos
	playerList    *entity.PlayerList

	localPlayer         *entity.LocalPlayer
	localPlayerServerID int32
	identity            Identity

	dimensionName       string
	worldMinY           int32
	worldHeight         int32
	awaitingFirstChunk  bool
	pendingPlayerLoaded bool
	viewDistance        int32

	// handshake/login scratch state
	verifyToken []byte
	serverID    string

	tickCount      uint64
	actionSequence int32
	queuedAttack   *int32

	movement movementState

	// incoming is the read goroutine's only handoff to the tick loop: it
	// never calls dispatchPlay itself, it just frames and enqueues. The
	// tick loop drains this at the top of every tick (step 1), so packet
	// handlers and the movement emitter/physics integrator never run
	// concurrently with each other.
	incoming chan inboundPacket
}

// inboundPacket is one framed, not-yet-dispatched packet handed from the
// read goroutine to the tick loop's step-1 drain.
type inboundPacket struct {
	id   int32
	data []byte
}

const incomingQueueSize = 256

// New constructs a Client ready to Connect. gameData supplies the
// protocol-version-specific block/item/entity/biome tables; pass
// gamedata.Load(version) for the negotiated protocol version.
func New(cfg *Config, gameData *gamedata.GameData, events *Events, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	shared := world.NewSharedStorage()
	return &Client{
		cfg:                 cfg,
		log:                 log,
		events:              events,
		gameData:            gameData,
		registry:            NewRegistry(),
		sharedChunks:        shared,
		partialChunks:       world.NewPartialStorage(shared),
		entities:            entity.NewStore(),
		partialEntity:       entity.NewPartialInfos(),
		playerList:          entity.NewPlayerList(),
		localPlayerServerID: -1,
		state:               StateHandshake,
		worldMinY:           -64,
		worldHeight:         384,
		incoming:            make(chan inboundPacket, incomingQueueSize),
	}
}

// Connect dials the server, resolves DNS per the usual SRV-then-literal
// rule, and runs the handshake through login and configuration. It
// returns once the client enters the play state; the caller should then
// call Run to drive the read loop and tick loop.
func (c *Client) Connect(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	c.ctx = ctx
	c.cancel = cancel

	dialCtx, dialCancel := context.WithTimeout(ctx, c.cfg.DialTimeout)
	defer dialCancel()

	resolver := net.DefaultResolver
	host, port, err := resolveServerAddress(dialCtx, resolver, c.cfg.ServerAddress, c.cfg.ServerPort)
	if err != nil {
		return fmt.Errorf("resolve server address: %w", err)
	}

	var d net.Dialer
	conn, err := d.DialContext(dialCtx, "tcp", fmt.Sprintf("%s:%d", host, port))
	if err != nil {
		return fmt.Errorf("dial %s:%d: %w", host, port, err)
	}

	c.pipeline = NewPipeline(conn)
	c.log = c.log.With("server", fmt.Sprintf("%s:%d", host, port), "user", c.cfg.Username)

	auth := c.cfg.Authenticator
	if auth == nil {
		auth = OfflineAuthenticator{}
	}
	identity, err := auth.Identity(ctx, c.cfg.Username)
	if err != nil {
		conn.Close()
		return fmt.Errorf("resolve identity: %w", err)
	}
	c.identity = identity

	if err := c.handshake(host, port); err != nil {
		conn.Close()
		return err
	}
	if err := c.login(ctx, auth); err != nil {
		conn.Close()
		return err
	}
	if err := c.configure(); err != nil {
		conn.Close()
		return err
	}

	c.setState(StatePlay)
	c.events.fireInit(c)
	return nil
}

func (c *Client) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Run drives the tick loop until the connection closes or ctx is
// cancelled. It should be called after Connect succeeds. A single
// background goroutine frames incoming packets and hands them off on
// incoming; every dispatch, every tick-driven write, and the whole tick
// body run here, on this one goroutine. Public actions such as Respawn or
// UseItemOn write from the caller's goroutine; the Pipeline's mutex
// serializes those writes against the tick loop's.
func (c *Client) Run() error {
	defer c.cancel()

	readErr := make(chan error, 1)
	go c.readLoop(readErr)

	ticker := time.NewTicker(c.tickInterval())
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return nil
		case err := <-readErr:
			return err
		case <-ticker.C:
			c.tick()
		}
	}
}

// readLoop only frames bytes off the socket and enqueues them; it never
// touches client state or the pipeline's write side, so it can run freely
// alongside the tick loop's own writes without corrupting either.
func (c *Client) readLoop(done chan<- error) {
	for {
		packetID, data, err := c.pipeline.ReadFrame()
		if err != nil {
			reason := fmt.Sprintf("read error: %v", err)
			c.events.fireDisconnect(c, reason, err)
			done <- err
			return
		}

		select {
		case c.incoming <- inboundPacket{id: packetID, data: data}:
		case <-c.ctx.Done():
			return
		}
	}
}

// drainIncoming runs tick step 1: dispatch every packet the read goroutine
// queued since the last tick, in arrival order, without blocking past what
// is already buffered.
func (c *Client) drainIncoming() {
	for {
		select {
		case pkt := <-c.incoming:
			if err := c.dispatchPlay(pkt.id, pkt.data); err != nil {
				c.log.Error("dispatch play packet", "id", fmt.Sprintf("0x%02X", pkt.id), "error", err)
				continue
			}
			c.events.firePacket(c, pkt.id, pkt.data)
		default:
			return
		}
	}
}

func (c *Client) tickInterval() time.Duration {
	if c.cfg.TickInterval > 0 {
		return c.cfg.TickInterval
	}
	return 50 * time.Millisecond
}

// Close tears down the connection immediately.
func (c *Client) Close() error {
	c.cancel()
	if c.pipeline != nil {
		return c.pipeline.Close()
	}
	return nil
}

// LocalPlayer returns the client's own entity state, nil until Login fires.
func (c *Client) LocalPlayer() *entity.LocalPlayer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.localPlayer
}

// Entities exposes the shared entity store for read-only inspection.
func (c *Client) Entities() *entity.Store { return c.entities }

// Chunks exposes this client's partial chunk view for read-only inspection.
func (c *Client) Chunks() *world.PartialStorage { return c.partialChunks }

// PlayerList exposes the tab-list mirror for read-only inspection.
func (c *Client) PlayerList() *entity.PlayerList { return c.playerList }

// ViewDistance returns the server's last-reported simulation/view
// distance (SetChunkCacheRadius), 0 until one arrives.
func (c *Client) ViewDistance() int32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewDistance
}

func (c *Client) identityUUID() uuid.UUID { return c.identity.UUID }
