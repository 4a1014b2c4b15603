package client

import "github.com/OCharnyshevich/gocraft-bot/entity"

// Events is the callback surface a caller can attach to observe the
// connection lifecycle. Every field is optional; nil callbacks are simply
// not invoked. Handlers run on the Client's own goroutines and must not
// block for long, since they run inline with packet dispatch and the tick
// loop.
type Events struct {
	// Init fires once the play state begins, before any tick has run.
	Init func(c *Client)

	// Login fires when the local player's entity becomes available.
	Login func(c *Client, player *entity.LocalPlayer)

	// Chat fires for both system and player chat messages.
	Chat func(c *Client, message string)

	// Death fires when the local player's health drops to zero.
	Death func(c *Client)

	// Packet fires for every packet received in the play state, after
	// internal state has already been updated from it.
	Packet func(c *Client, packetID int32, data []byte)

	// Tick fires once per tick, after the tick loop's own steps run.
	Tick func(c *Client, tickCount uint64)

	// Disconnect fires when the connection ends, whether cleanly or not.
	Disconnect func(c *Client, reason string, err error)
}

func (e *Events) fireInit(c *Client) {
	if e != nil && e.Init != nil {
		e.Init(c)
	}
}

func (e *Events) fireLogin(c *Client, p *entity.LocalPlayer) {
	if e != nil && e.Login != nil {
		e.Login(c, p)
	}
}

func (e *Events) fireChat(c *Client, message string) {
	if e != nil && e.Chat != nil {
		e.Chat(c, message)
	}
}

func (e *Events) fireDeath(c *Client) {
	if e != nil && e.Death != nil {
		e.Death(c)
	}
}

func (e *Events) firePacket(c *Client, packetID int32, data []byte) {
	if e != nil && e.Packet != nil {
		e.Packet(c, packetID, data)
	}
}

func (e *Events) fireTick(c *Client, tickCount uint64) {
	if e != nil && e.Tick != nil {
		e.Tick(c, tickCount)
	}
}

func (e *Events) fireDisconnect(c *Client, reason string, err error) {
	if e != nil && e.Disconnect != nil {
		e.Disconnect(c, reason, err)
	}
}
