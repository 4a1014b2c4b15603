package net

import (
	"bytes"
	"fmt"
	"io"
)

// MaxFramePayload caps a single decoded frame body (before the packet id),
// matching the game's own sanity limit for a single packet.
const MaxFramePayload = 1 << 21 // 2 MiB

// ReadRawFrame reads one length-prefixed frame and splits off the leading
// packet id varint. The returned data is everything after the id.
func ReadRawFrame(r io.Reader) (packetID int32, data []byte, err error) {
	length, _, err := ReadVarInt(r)
	if err != nil {
		return 0, nil, fmt.Errorf("read frame length: %w", err)
	}
	if length < 1 {
		return 0, nil, fmt.Errorf("frame length too small: %d", length)
	}
	if length > MaxFramePayload {
		return 0, nil, fmt.Errorf("frame too large: %d bytes", length)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return 0, nil, fmt.Errorf("read frame payload: %w", err)
	}

	buf := bytes.NewReader(payload)
	packetID, _, err = ReadVarInt(buf)
	if err != nil {
		return 0, nil, fmt.Errorf("read packet id: %w", err)
	}

	remaining := make([]byte, buf.Len())
	if _, err := io.ReadFull(buf, remaining); err != nil {
		return 0, nil, fmt.Errorf("read packet body: %w", err)
	}

	return packetID, remaining, nil
}

// WriteRawFrame writes a length-prefixed frame: varint(len(id)+len(data))
// || varint(id) || data.
func WriteRawFrame(w io.Writer, packetID int32, data []byte) error {
	idSize := VarIntSize(packetID)
	total := idSize + len(data)

	var buf bytes.Buffer
	buf.Grow(VarIntSize(int32(total)) + total)

	if _, err := WriteVarInt(&buf, int32(total)); err != nil {
		return fmt.Errorf("write frame length: %w", err)
	}
	if _, err := WriteVarInt(&buf, packetID); err != nil {
		return fmt.Errorf("write packet id: %w", err)
	}
	if _, err := buf.Write(data); err != nil {
		return fmt.Errorf("write packet body: %w", err)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// WritePacket marshals p and writes it as a raw frame.
func WritePacket(w io.Writer, p Packet) error {
	data, err := Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal packet 0x%02X: %w", p.PacketID(), err)
	}
	return WriteRawFrame(w, p.PacketID(), data)
}

// ReadPacket reads a raw frame and unmarshals it into p, verifying the
// packet id matches.
func ReadPacket(r io.Reader, p Packet) error {
	id, data, err := ReadRawFrame(r)
	if err != nil {
		return err
	}
	if id != p.PacketID() {
		return fmt.Errorf("expected packet 0x%02X, got 0x%02X", p.PacketID(), id)
	}
	return Unmarshal(data, p)
}
