package client

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	mcnet "github.com/OCharnyshevich/gocraft-bot/net"
)

// compressFrameBody applies the post-LoginCompression frame shape:
// varint(dataLength) followed by either the raw body (dataLength == 0,
// meaning the packet was below the threshold and sent uncompressed) or a
// zlib stream of it. body is packetID-varint + packet data, matching what
// ReadRawFrame/WriteRawFrame treat as the frame payload.
func compressFrameBody(body []byte, threshold int32) ([]byte, error) {
	if int32(len(body)) < threshold {
		var buf bytes.Buffer
		if _, err := mcnet.WriteVarInt(&buf, 0); err != nil {
			return nil, fmt.Errorf("write zero data length: %w", err)
		}
		buf.Write(body)
		return buf.Bytes(), nil
	}

	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	if _, err := zw.Write(body); err != nil {
		return nil, fmt.Errorf("zlib write: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zlib close: %w", err)
	}

	var buf bytes.Buffer
	if _, err := mcnet.WriteVarInt(&buf, int32(len(body))); err != nil {
		return nil, fmt.Errorf("write data length: %w", err)
	}
	buf.Write(compressed.Bytes())
	return buf.Bytes(), nil
}

// decompressFrameBody reverses compressFrameBody, given the bytes that
// followed the outer frame length prefix.
func decompressFrameBody(raw []byte) ([]byte, error) {
	r := bytes.NewReader(raw)
	dataLength, _, err := mcnet.ReadVarInt(r)
	if err != nil {
		return nil, fmt.Errorf("read data length: %w", err)
	}

	rest := make([]byte, r.Len())
	if _, err := io.ReadFull(r, rest); err != nil {
		return nil, fmt.Errorf("read frame remainder: %w", err)
	}

	if dataLength == 0 {
		return rest, nil
	}

	zr, err := zlib.NewReader(bytes.NewReader(rest))
	if err != nil {
		return nil, fmt.Errorf("open zlib reader: %w", err)
	}
	defer zr.Close()

	body := make([]byte, dataLength)
	if _, err := io.ReadFull(zr, body); err != nil {
		return nil, fmt.Errorf("zlib read: %w", err)
	}
	return body, nil
}
