package nbt

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Reader decodes NBT binary data from an io.Reader in big-endian format.
type Reader struct {
	r io.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadNamedCompound reads a root-level compound tag (byte id || name ||
// body), the form both RegistryData entries and Login's dimension codec
// use, and returns its decoded body.
func (r *Reader) ReadNamedCompound() (string, Compound, error) {
	tagType, err := r.readByte()
	if err != nil {
		return "", nil, err
	}
	if tagType != TagCompound {
		return "", nil, fmt.Errorf("nbt: expected root compound, got tag %d", tagType)
	}
	name, err := r.readString()
	if err != nil {
		return "", nil, err
	}
	body, err := r.readCompoundBody()
	if err != nil {
		return "", nil, err
	}
	return name, body, nil
}

// ReadCompound reads a compound tag in the "network NBT" shape used inside
// RegistryData entries and a few other play-state payloads: a leading tag
// type byte with no name string, unlike ReadNamedCompound's file-format
// root. TagEnd (0) means "no data" and returns a nil Compound.
func (r *Reader) ReadCompound() (Compound, error) {
	tagType, err := r.readByte()
	if err != nil {
		return nil, err
	}
	if tagType == TagEnd {
		return nil, nil
	}
	if tagType != TagCompound {
		return nil, fmt.Errorf("nbt: expected compound, got tag %d", tagType)
	}
	return r.readCompoundBody()
}

func (r *Reader) readCompoundBody() (Compound, error) {
	result := make(Compound)
	for {
		tagType, err := r.readByte()
		if err != nil {
			return nil, err
		}
		if tagType == TagEnd {
			return result, nil
		}
		name, err := r.readString()
		if err != nil {
			return nil, err
		}
		value, err := r.readPayload(tagType)
		if err != nil {
			return nil, fmt.Errorf("nbt: field %q: %w", name, err)
		}
		result[name] = value
	}
}

func (r *Reader) readPayload(tagType byte) (any, error) {
	switch tagType {
	case TagByte:
		v, err := r.readByte()
		return int8(v), err
	case TagShort:
		v, err := r.readUint16()
		return int16(v), err
	case TagInt:
		v, err := r.readUint32()
		return int32(v), err
	case TagLong:
		v, err := r.readUint64()
		return int64(v), err
	case TagFloat:
		v, err := r.readUint32()
		return math.Float32frombits(v), err
	case TagDouble:
		v, err := r.readUint64()
		return math.Float64frombits(v), err
	case TagByteArray:
		n, err := r.readUint32()
		if err != nil {
			return nil, err
		}
		buf := make([]byte, int32(n))
		_, err = io.ReadFull(r.r, buf)
		return buf, err
	case TagString:
		return r.readString()
	case TagList:
		return r.readList()
	case TagCompound:
		return r.readCompoundBody()
	case TagIntArray:
		n, err := r.readUint32()
		if err != nil {
			return nil, err
		}
		out := make([]int32, int32(n))
		for i := range out {
			v, err := r.readUint32()
			if err != nil {
				return nil, err
			}
			out[i] = int32(v)
		}
		return out, nil
	case TagLongArray:
		n, err := r.readUint32()
		if err != nil {
			return nil, err
		}
		out := make([]int64, int32(n))
		for i := range out {
			v, err := r.readUint64()
			if err != nil {
				return nil, err
			}
			out[i] = int64(v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("nbt: unknown tag type %d", tagType)
	}
}

func (r *Reader) readList() ([]any, error) {
	elemType, err := r.readByte()
	if err != nil {
		return nil, err
	}
	n, err := r.readUint32()
	if err != nil {
		return nil, err
	}
	out := make([]any, int32(n))
	for i := range out {
		v, err := r.readPayload(elemType)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (r *Reader) readByte() (byte, error) {
	var buf [1]byte
	_, err := io.ReadFull(r.r, buf[:])
	return buf[0], err
}

func (r *Reader) readUint16() (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r.r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

func (r *Reader) readUint32() (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r.r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

func (r *Reader) readUint64() (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r.r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

func (r *Reader) readString() (string, error) {
	n, err := r.readUint16()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
