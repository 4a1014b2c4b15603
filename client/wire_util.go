package client

import (
	"bytes"
	"io"

	mcnet "github.com/OCharnyshevich/gocraft-bot/net"
)

// decodeVarIntArray reads a varint-prefixed count followed by that many
// varint entity ids, the shape RemoveEntities carries in its raw payload.
func decodeVarIntArray(data []byte) ([]int32, error) {
	r := bytes.NewReader(data)
	count, _, err := mcnet.ReadVarInt(r)
	if err != nil {
		return nil, err
	}
	out := make([]int32, 0, count)
	for i := int32(0); i < count; i++ {
		v, _, err := mcnet.ReadVarInt(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// discardN skips exactly n bytes of r, the shape a handful of play-state
// payloads need for fields this core reads the length of but never
// interprets (signed-chat keys/signatures in PlayerInfoUpdate).
func discardN(r *bytes.Reader, n int) error {
	_, err := io.CopyN(io.Discard, r, int64(n))
	return err
}

// decodeLeadingString reads the length-prefixed string at the start of a
// raw packet payload, used by the chat packet handlers to pull the plain
// text component out without a full JSON-text-component parser.
func decodeLeadingString(data []byte) (string, error) {
	r := bytes.NewReader(data)
	return mcnet.ReadString(r, 262144)
}
