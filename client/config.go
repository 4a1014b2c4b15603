// Package client implements the core bot: the protocol state machine, the
// encryption/compression/framing pipeline, packet dispatch into the world
// and entity stores, and the fixed-rate tick loop that drives physics and
// the movement emitter.
package client

import "time"

// Config holds the options a Client is constructed with.
type Config struct {
	ServerAddress string
	ServerPort    uint16
	Username      string

	// ProtocolVersion is the client's self-reported version in Intention;
	// it must match the gamedata version loaded for packet-field decisions
	// that vary across versions (currently none do, since only 769 ships).
	ProtocolVersion int32

	// Authenticator performs the login key-exchange/session-join dance.
	// OfflineAuthenticator is used when nil, matching an offline-mode
	// client that never talks to Mojang.
	Authenticator Authenticator

	// ClientInfo is sent at the start of every Configuration phase,
	// including re-entry from Game.
	ClientInfo ClientInformationConfig

	// DialTimeout bounds DNS resolution and the initial TCP dial.
	DialTimeout time.Duration

	// TickInterval overrides the default 50ms tick; only meant for tests.
	TickInterval time.Duration

	// ReconnectDelay is how long RunForever waits between a dropped
	// connection and the next Connect attempt. Zero selects the default
	// 5 seconds; set to DisableReconnect to make a single connection
	// failure fatal instead of retried.
	ReconnectDelay time.Duration
}

// DisableReconnect, set as Config.ReconnectDelay, turns off RunForever's
// automatic retry: the first connection error is returned to the caller.
const DisableReconnect time.Duration = -1

const defaultReconnectDelay = 5 * time.Second

// ClientInformationConfig mirrors packet.ClientInformation's fields at the
// configuration layer, before any connection exists to marshal them into.
type ClientInformationConfig struct {
	Locale       string
	ViewDistance int8
	MainHand     int32
}

// DefaultConfig returns sane defaults for connecting to a modern server.
func DefaultConfig(address string, username string) *Config {
	return &Config{
		ServerAddress:   address,
		ServerPort:      25565,
		Username:        username,
		ProtocolVersion: 769,
		ClientInfo: ClientInformationConfig{
			Locale:       "en_us",
			ViewDistance: 10,
			MainHand:     1,
		},
		DialTimeout:  10 * time.Second,
		TickInterval: 50 * time.Millisecond,
	}
}
