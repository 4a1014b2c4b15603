package client

import (
	"context"
	"time"
)

// RunForever connects and runs the client, automatically reconnecting
// after a dropped connection until ctx is cancelled or reconnection is
// disabled via Config.ReconnectDelay. Each reconnect attempt dials a fresh
// pipeline and clears per-connection state (the registry and the
// chunk/entity stores carry over since they're process-wide collaborators
// a fresh connection simply re-populates).
func (c *Client) RunForever(ctx context.Context) error {
	delay := c.cfg.ReconnectDelay
	if delay == 0 {
		delay = defaultReconnectDelay
	}

	for {
		err := c.Connect(ctx)
		if err == nil {
			err = c.Run()
		}

		if ctx.Err() != nil {
			return nil
		}
		if err == nil {
			return nil
		}
		if delay == DisableReconnect {
			return err
		}

		c.log.Warn("connection lost, reconnecting", "delay", delay, "error", err)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}

		c.resetForReconnect()
	}
}

// resetForReconnect clears per-connection scratch state so a fresh Connect
// starts from a clean handshake; the shared chunk/entity stores are left
// alone since they're keyed by server-assigned ids the next connection
// will repopulate on its own Login/AddEntity traffic.
func (c *Client) resetForReconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = StateHandshake
	c.localPlayer = nil
	c.localPlayerServerID = -1
	c.dimensionName = ""
	c.awaitingFirstChunk = false
	c.pendingPlayerLoaded = false
	c.movement = movementState{}
	c.actionSequence = 0
	c.queuedAttack = nil
}
