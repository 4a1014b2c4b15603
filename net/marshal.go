package net

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

func writeBigEndian(buf *bytes.Buffer, v any) error {
	return binary.Write(buf, binary.BigEndian, v)
}

// tagName is the struct tag key every packet schema field is declared
// under, e.g. `mc:"varint"`.
const tagName = "mc"

// Packet is implemented by every wire packet struct.
type Packet interface {
	PacketID() int32
}

// Marshal encodes a Packet struct into its body bytes (not including the
// packet id) using its `mc` struct tags.
func Marshal(p Packet) ([]byte, error) {
	v := reflect.ValueOf(p)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("marshal: expected struct, got %s", v.Kind())
	}

	var buf bytes.Buffer
	t := v.Type()

	for i := range t.NumField() {
		field := t.Field(i)
		tag := field.Tag.Get(tagName)
		if tag == "" || tag == "-" {
			continue
		}
		if err := writeTaggedField(&buf, tag, v.Field(i)); err != nil {
			return nil, fmt.Errorf("marshal field %s: %w", field.Name, err)
		}
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes body bytes into a pointer-to-Packet struct using its
// `mc` struct tags.
func Unmarshal(data []byte, p Packet) error {
	v := reflect.ValueOf(p)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("unmarshal: expected non-nil pointer, got %T", p)
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("unmarshal: expected pointer to struct, got pointer to %s", v.Kind())
	}

	r := bytes.NewReader(data)
	t := v.Type()

	for i := range t.NumField() {
		field := t.Field(i)
		tag := field.Tag.Get(tagName)
		if tag == "" || tag == "-" {
			continue
		}
		if err := readTaggedField(r, tag, v.Field(i)); err != nil {
			return fmt.Errorf("unmarshal field %s: %w", field.Name, err)
		}
	}

	return nil
}

// writeTaggedField dispatches on the tag's base type. A tag of the form
// "option" treats the field as an `Option<T>`: a bool presence flag
// (reflect.Value.IsNil for pointers/slices) followed by the inner encoding,
// declared as "option:<inner>".
func writeTaggedField(buf *bytes.Buffer, tag string, fv reflect.Value) error {
	if opt, inner, ok := splitOption(tag); ok {
		return writeOption(buf, opt, inner, fv)
	}

	switch tag {
	case "varint":
		_, err := WriteVarInt(buf, int32(fv.Int()))
		return err
	case "varlong":
		_, err := WriteVarLong(buf, fv.Int())
		return err
	case "i8":
		return writeFixed(buf, int8(fv.Int()))
	case "u8":
		return writeFixed(buf, uint8(fv.Uint()))
	case "i16":
		return writeFixed(buf, int16(fv.Int()))
	case "u16":
		return writeFixed(buf, uint16(fv.Uint()))
	case "i32":
		return writeFixed(buf, int32(fv.Int()))
	case "i64", "position":
		return writeFixed(buf, fv.Int())
	case "f32":
		return writeFixed(buf, float32(fv.Float()))
	case "f64":
		return writeFixed(buf, fv.Float())
	case "bool":
		return WriteBool(buf, fv.Bool())
	case "string":
		_, err := WriteString(buf, fv.String())
		return err
	case "uuid":
		u, ok := fv.Interface().(uuid.UUID)
		if !ok {
			return fmt.Errorf("field is not uuid.UUID")
		}
		_, err := WriteUUID(buf, u)
		return err
	case "bytearray":
		_, err := WriteByteArray(buf, fv.Bytes())
		return err
	case "rest":
		_, err := buf.Write(fv.Bytes())
		return err
	default:
		return fmt.Errorf("unknown field tag %q", tag)
	}
}

func readTaggedField(r *bytes.Reader, tag string, fv reflect.Value) error {
	if opt, inner, ok := splitOption(tag); ok {
		return readOption(r, opt, inner, fv)
	}

	switch tag {
	case "varint":
		v, _, err := ReadVarInt(r)
		if err != nil {
			return err
		}
		fv.SetInt(int64(v))
		return nil
	case "varlong":
		v, _, err := ReadVarLong(r)
		if err != nil {
			return err
		}
		fv.SetInt(v)
		return nil
	case "i8":
		v, err := ReadI8(r)
		if err != nil {
			return err
		}
		fv.SetInt(int64(v))
		return nil
	case "u8":
		v, err := ReadU8(r)
		if err != nil {
			return err
		}
		fv.SetUint(uint64(v))
		return nil
	case "i16":
		v, err := ReadI16(r)
		if err != nil {
			return err
		}
		fv.SetInt(int64(v))
		return nil
	case "u16":
		v, err := ReadU16(r)
		if err != nil {
			return err
		}
		fv.SetUint(uint64(v))
		return nil
	case "i32":
		v, err := ReadI32(r)
		if err != nil {
			return err
		}
		fv.SetInt(int64(v))
		return nil
	case "i64", "position":
		v, err := ReadI64(r)
		if err != nil {
			return err
		}
		fv.SetInt(v)
		return nil
	case "f32":
		v, err := ReadF32(r)
		if err != nil {
			return err
		}
		fv.SetFloat(float64(v))
		return nil
	case "f64":
		v, err := ReadF64(r)
		if err != nil {
			return err
		}
		fv.SetFloat(v)
		return nil
	case "bool":
		v, err := ReadBool(r)
		if err != nil {
			return err
		}
		fv.SetBool(v)
		return nil
	case "string":
		v, err := ReadString(r, 32767)
		if err != nil {
			return err
		}
		fv.SetString(v)
		return nil
	case "uuid":
		v, err := ReadUUID(r)
		if err != nil {
			return err
		}
		fv.Set(reflect.ValueOf(v))
		return nil
	case "bytearray":
		v, err := ReadByteArray(r, 0)
		if err != nil {
			return err
		}
		fv.SetBytes(v)
		return nil
	case "rest":
		v := make([]byte, r.Len())
		if _, err := r.Read(v); err != nil {
			return err
		}
		fv.SetBytes(v)
		return nil
	default:
		return fmt.Errorf("unknown field tag %q", tag)
	}
}

func writeFixed(buf *bytes.Buffer, v any) error {
	return writeBigEndian(buf, v)
}

// splitOption recognizes tags of the form "option:<inner>".
func splitOption(tag string) (outer, inner string, ok bool) {
	const prefix = "option:"
	if len(tag) > len(prefix) && tag[:len(prefix)] == prefix {
		return "option", tag[len(prefix):], true
	}
	return "", "", false
}

func writeOption(buf *bytes.Buffer, _ string, inner string, fv reflect.Value) error {
	present := !fv.IsNil()
	if err := WriteBool(buf, present); err != nil {
		return err
	}
	if !present {
		return nil
	}
	return writeTaggedField(buf, inner, fv.Elem())
}

func readOption(r *bytes.Reader, _ string, inner string, fv reflect.Value) error {
	present, err := ReadBool(r)
	if err != nil {
		return err
	}
	if !present {
		fv.Set(reflect.Zero(fv.Type()))
		return nil
	}
	elem := reflect.New(fv.Type().Elem())
	if err := readTaggedField(r, inner, elem.Elem()); err != nil {
		return err
	}
	fv.Set(elem)
	return nil
}
