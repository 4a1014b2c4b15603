// Package packet declares the wire schema for every packet the core speaks,
// as plain Go structs tagged for net.Marshal/net.Unmarshal. Schemas are
// grouped by protocol state and direction, one file per state, matching the
// states a Connection moves through (handshake → status|login →
// configuration ↔ game).
//
// Packet ids below target protocol version 769 (Java Edition 1.21.4) and
// are regenerated by cmd/codegen from PrismarineJS minecraft-data when
// retargeting a new version — nothing outside this package or gamedata
// should ever hard-code an id.
package packet

// Intention is the only handshake packet: it picks the next state and
// carries the client's self-reported protocol version.
type Intention struct {
	ProtocolVersion int32  `mc:"varint"`
	ServerAddress   string `mc:"string"`
	ServerPort      uint16 `mc:"u16"`
	NextState       int32  `mc:"varint"`
}

func (Intention) PacketID() int32 { return 0x00 }

// Next-state values carried by Intention.
const (
	NextStateStatus = 1
	NextStateLogin  = 2
)
