package net

import (
	"bytes"
	"testing"
)

func TestVarIntRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value int32
		size  int
	}{
		{"zero", 0, 1},
		{"one", 1, 1},
		{"127", 127, 1},
		{"128", 128, 2},
		{"2^21-1", 1<<21 - 1, 3},
		{"25565", 25565, 3},
		{"max_int32", 2147483647, 5},
		{"min_int32", -2147483648, 5},
		{"negative_one", -1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			n, err := WriteVarInt(&buf, tt.value)
			if err != nil {
				t.Fatalf("WriteVarInt(%d): %v", tt.value, err)
			}
			if n != tt.size {
				t.Errorf("WriteVarInt(%d) wrote %d bytes, want %d", tt.value, n, tt.size)
			}
			if VarIntSize(tt.value) != tt.size {
				t.Errorf("VarIntSize(%d) = %d, want %d", tt.value, VarIntSize(tt.value), tt.size)
			}

			got, read, err := ReadVarInt(&buf)
			if err != nil {
				t.Fatalf("ReadVarInt: %v", err)
			}
			if read != tt.size || got != tt.value {
				t.Errorf("ReadVarInt = %d (%d bytes), want %d (%d bytes)", got, read, tt.value, tt.size)
			}
		})
	}
}

func TestVarIntTooLong(t *testing.T) {
	buf := bytes.NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF})
	if _, _, err := ReadVarInt(buf); err == nil {
		t.Fatal("expected error for varint longer than 5 bytes")
	}
}

func TestVarLongRoundTrip(t *testing.T) {
	tests := []int64{0, 1, -1, 127, 128, 1 << 34, -(1 << 40), 9223372036854775807, -9223372036854775808}

	for _, v := range tests {
		var buf bytes.Buffer
		if _, err := WriteVarLong(&buf, v); err != nil {
			t.Fatalf("WriteVarLong(%d): %v", v, err)
		}
		got, _, err := ReadVarLong(&buf)
		if err != nil {
			t.Fatalf("ReadVarLong: %v", err)
		}
		if got != v {
			t.Errorf("ReadVarLong = %d, want %d", got, v)
		}
	}
}

func TestVarLongTooLong(t *testing.T) {
	buf := bytes.NewReader(bytes.Repeat([]byte{0xFF}, 11))
	if _, _, err := ReadVarLong(buf); err == nil {
		t.Fatal("expected error for varlong longer than 10 bytes")
	}
}

func TestBlockPositionRoundTrip(t *testing.T) {
	tests := []struct{ x, y, z int32 }{
		{0, 0, 0},
		{1, 2, 3},
		{-1, -1, -1},
		{18615, 207, -5},
		{-33554432, -2048, 33554431},
	}

	for _, tt := range tests {
		packed := EncodeBlockPosition(tt.x, tt.y, tt.z)
		x, y, z := DecodeBlockPosition(packed)
		if x != tt.x || y != tt.y || z != tt.z {
			t.Errorf("EncodeBlockPosition/DecodeBlockPosition(%d,%d,%d) = (%d,%d,%d)", tt.x, tt.y, tt.z, x, y, z)
		}
	}
}
