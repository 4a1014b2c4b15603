package net

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// ReadString reads a varint-length-prefixed UTF-8 string. maxChars bounds
// the *decoded* character budget; the reader enforces a quadrupled byte
// budget (maxChars*4) before allocating, per the protocol's worst-case
// UTF-8 expansion.
func ReadString(r io.Reader, maxChars int) (string, error) {
	length, _, err := ReadVarInt(r)
	if err != nil {
		return "", checkRead(err)
	}
	if length < 0 {
		return "", fmt.Errorf("%w: negative string length %d", ErrStringTooLong, length)
	}
	if maxChars > 0 && int(length) > maxChars*4 {
		return "", fmt.Errorf("%w: %d bytes exceeds budget %d", ErrStringTooLong, length, maxChars*4)
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", checkRead(err)
	}
	return string(buf), nil
}

// WriteString writes s as a varint-length-prefixed UTF-8 string.
func WriteString(w io.Writer, s string) (int, error) {
	n1, err := WriteVarInt(w, int32(len(s)))
	if err != nil {
		return n1, err
	}
	n2, err := w.Write([]byte(s))
	return n1 + n2, err
}

// ReadByteArray reads a varint-length-prefixed byte slice, capped at maxLen
// (0 means no cap).
func ReadByteArray(r io.Reader, maxLen int) ([]byte, error) {
	length, _, err := ReadVarInt(r)
	if err != nil {
		return nil, checkRead(err)
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: negative byte array length %d", ErrVecTooLong, length)
	}
	if maxLen > 0 && int(length) > maxLen {
		return nil, fmt.Errorf("%w: %d exceeds cap %d", ErrVecTooLong, length, maxLen)
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, checkRead(err)
	}
	return buf, nil
}

// WriteByteArray writes data as a varint-length-prefixed byte slice.
func WriteByteArray(w io.Writer, data []byte) (int, error) {
	n1, err := WriteVarInt(w, int32(len(data)))
	if err != nil {
		return n1, err
	}
	n2, err := w.Write(data)
	return n1 + n2, err
}

// ReadUUID reads the wire UUID format: two big-endian u64 (16 raw bytes).
func ReadUUID(r io.Reader) (uuid.UUID, error) {
	var buf [16]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return uuid.UUID{}, checkRead(err)
	}
	var u uuid.UUID
	copy(u[:], buf[:])
	return u, nil
}

// WriteUUID writes u as two big-endian u64 (16 raw bytes).
func WriteUUID(w io.Writer, u uuid.UUID) (int, error) {
	return w.Write(u[:])
}

func ReadBool(r io.Reader) (bool, error) {
	v, err := ReadU8(r)
	return v != 0, err
}

func WriteBool(w io.Writer, v bool) error {
	var b byte
	if v {
		b = 1
	}
	_, err := w.Write([]byte{b})
	return err
}

func ReadI8(r io.Reader) (int8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, checkRead(err)
	}
	return int8(buf[0]), nil
}

func ReadU8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, checkRead(err)
	}
	return buf[0], nil
}

func ReadI16(r io.Reader) (int16, error) {
	var v int16
	err := binary.Read(r, binary.BigEndian, &v)
	return v, checkRead(err)
}

func ReadU16(r io.Reader) (uint16, error) {
	var v uint16
	err := binary.Read(r, binary.BigEndian, &v)
	return v, checkRead(err)
}

func ReadI32(r io.Reader) (int32, error) {
	var v int32
	err := binary.Read(r, binary.BigEndian, &v)
	return v, checkRead(err)
}

func ReadI64(r io.Reader) (int64, error) {
	var v int64
	err := binary.Read(r, binary.BigEndian, &v)
	return v, checkRead(err)
}

func ReadF32(r io.Reader) (float32, error) {
	var v float32
	err := binary.Read(r, binary.BigEndian, &v)
	return v, checkRead(err)
}

func ReadF64(r io.Reader) (float64, error) {
	var v float64
	err := binary.Read(r, binary.BigEndian, &v)
	return v, checkRead(err)
}

// FixedBitSet reads/writes a fixed-size little-endian-byte-array bit-set of
// n bits.
func ReadFixedBitSet(r io.Reader, nBits int) ([]byte, error) {
	n := (nBits + 7) / 8
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, checkRead(err)
	}
	return buf, nil
}

func WriteFixedBitSet(w io.Writer, bits []byte) error {
	_, err := w.Write(bits)
	return err
}

// VarBitSet is the variable-length bit-set: a varint word count followed by
// that many little-endian u64 words.
type VarBitSet []uint64

func ReadVarBitSet(r io.Reader) (VarBitSet, error) {
	count, _, err := ReadVarInt(r)
	if err != nil {
		return nil, checkRead(err)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative bitset word count", ErrVecTooLong)
	}
	words := make(VarBitSet, count)
	for i := range words {
		var buf [8]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, checkRead(err)
		}
		words[i] = binary.LittleEndian.Uint64(buf[:])
	}
	return words, nil
}

func WriteVarBitSet(w io.Writer, bits VarBitSet) error {
	if _, err := WriteVarInt(w, int32(len(bits))); err != nil {
		return err
	}
	var buf [8]byte
	for _, word := range bits {
		binary.LittleEndian.PutUint64(buf[:], word)
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}
	return nil
}

// Get reports whether bit i is set.
func (b VarBitSet) Get(i int) bool {
	word := i / 64
	if word >= len(b) {
		return false
	}
	return b[word]&(1<<(uint(i)%64)) != 0
}
