package client

import (
	"bytes"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	mcnet "github.com/OCharnyshevich/gocraft-bot/net"
)

// Pipeline is the layered read/write path over a TCP connection: optional
// AES/CFB8 encryption, then optional zlib compression once the server
// requests it, then the varint length-prefixed frame, then the packet
// codec in the net package. Each stage can be switched on mid-connection,
// matching the real handshake sequence (encryption kicks in after
// EncryptionKeyResponse, compression after LoginCompression).
//
// Writes apply the stages in the mirror order of reads: marshal packet,
// compress the body, length-prefix it as a frame, then encrypt the whole
// thing going out over the wire.
type Pipeline struct {
	mu   sync.Mutex
	conn net.Conn

	compressionThreshold int32 // -1 disables compression
}

// NewPipeline wraps a freshly dialed, unencrypted, uncompressed connection.
func NewPipeline(conn net.Conn) *Pipeline {
	return &Pipeline{conn: conn, compressionThreshold: -1}
}

// EnableEncryption swaps the underlying connection for one that transparently
// encrypts writes and decrypts reads. Must be called exactly once, right
// after the shared secret is established.
func (p *Pipeline) EnableEncryption(sharedSecret []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	enc, err := newEncryptedConn(p.conn, sharedSecret)
	if err != nil {
		return fmt.Errorf("enable encryption: %w", err)
	}
	p.conn = &encryptedNetConn{encryptedConn: enc, underlying: p.conn}
	return nil
}

// EnableCompression turns on the compression frame shape. A negative
// threshold disables it again (servers may do this, though it's unusual).
func (p *Pipeline) EnableCompression(threshold int32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.compressionThreshold = threshold
}

// WritePacket marshals p, optionally compresses it, frames it, and writes
// it to the connection.
func (p *Pipeline) WritePacket(pkt mcnet.Packet) error {
	data, err := mcnet.Marshal(pkt)
	if err != nil {
		return fmt.Errorf("marshal packet 0x%02X: %w", pkt.PacketID(), err)
	}

	var body bytes.Buffer
	if _, err := mcnet.WriteVarInt(&body, pkt.PacketID()); err != nil {
		return fmt.Errorf("write packet id: %w", err)
	}
	body.Write(data)

	// The mutex is held across the actual conn.Write below, not just the
	// field reads: two goroutines (the tick loop and a caller invoking an
	// action such as Respawn or UseItemOn directly) writing frames to the same
	// socket without serializing the write itself would interleave their
	// bytes mid-frame, corrupting the stream for both.
	p.mu.Lock()
	defer p.mu.Unlock()

	threshold := p.compressionThreshold
	conn := p.conn

	frameBody := body.Bytes()
	if threshold >= 0 {
		frameBody, err = compressFrameBody(frameBody, threshold)
		if err != nil {
			return fmt.Errorf("compress frame: %w", err)
		}
	}

	var out bytes.Buffer
	if _, err := mcnet.WriteVarInt(&out, int32(len(frameBody))); err != nil {
		return fmt.Errorf("write frame length: %w", err)
	}
	out.Write(frameBody)

	_, err = conn.Write(out.Bytes())
	return err
}

// ReadFrame reads one frame and returns the decompressed (packetID-varint +
// data) body, ready for a packet id switch and Unmarshal.
func (p *Pipeline) ReadFrame() (packetID int32, data []byte, err error) {
	p.mu.Lock()
	conn := p.conn
	threshold := p.compressionThreshold
	p.mu.Unlock()

	length, _, err := mcnet.ReadVarInt(conn)
	if err != nil {
		return 0, nil, fmt.Errorf("read frame length: %w", err)
	}
	if length < 1 || length > mcnet.MaxFramePayload {
		return 0, nil, fmt.Errorf("invalid frame length: %d", length)
	}

	raw := make([]byte, length)
	if _, err := io.ReadFull(conn, raw); err != nil {
		return 0, nil, fmt.Errorf("read frame payload: %w", err)
	}

	body := raw
	if threshold >= 0 {
		body, err = decompressFrameBody(raw)
		if err != nil {
			return 0, nil, fmt.Errorf("decompress frame: %w", err)
		}
	}

	r := bytes.NewReader(body)
	packetID, _, err = mcnet.ReadVarInt(r)
	if err != nil {
		return 0, nil, fmt.Errorf("read packet id: %w", err)
	}
	remaining := make([]byte, r.Len())
	if _, err := io.ReadFull(r, remaining); err != nil {
		return 0, nil, fmt.Errorf("read packet body: %w", err)
	}
	return packetID, remaining, nil
}

// ReadPacket reads one frame and unmarshals it into p, verifying the
// packet id matches what p expects.
func (p *Pipeline) ReadPacket(pkt mcnet.Packet) error {
	id, data, err := p.ReadFrame()
	if err != nil {
		return err
	}
	if id != pkt.PacketID() {
		return fmt.Errorf("expected packet 0x%02X, got 0x%02X", pkt.PacketID(), id)
	}
	return mcnet.Unmarshal(data, pkt)
}

func (p *Pipeline) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.conn.Close()
}

// encryptedNetConn adapts encryptedConn (which only implements io.Reader/
// io.Writer) back into a full net.Conn by delegating the rest to the
// underlying connection.
type encryptedNetConn struct {
	*encryptedConn
	underlying net.Conn
}

func (e *encryptedNetConn) Close() error                       { return e.underlying.Close() }
func (e *encryptedNetConn) LocalAddr() net.Addr                { return e.underlying.LocalAddr() }
func (e *encryptedNetConn) RemoteAddr() net.Addr               { return e.underlying.RemoteAddr() }
func (e *encryptedNetConn) SetDeadline(t time.Time) error      { return e.underlying.SetDeadline(t) }
func (e *encryptedNetConn) SetReadDeadline(t time.Time) error  { return e.underlying.SetReadDeadline(t) }
func (e *encryptedNetConn) SetWriteDeadline(t time.Time) error { return e.underlying.SetWriteDeadline(t) }
