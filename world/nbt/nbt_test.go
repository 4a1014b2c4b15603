package nbt

import (
	"bytes"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.BeginCompound("root")
	w.WriteString("name", "overworld")
	w.WriteInt("height", 384)
	w.WriteLong("min_y", -64)
	w.WriteLongArray("heights", []int64{1, 2, 3})
	w.BeginCompound("nested")
	w.WriteTagByte("flag", 1)
	w.EndCompound()
	w.EndCompound()
	if err := w.Err(); err != nil {
		t.Fatalf("write: %v", err)
	}

	name, body, err := NewReader(&buf).ReadNamedCompound()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if name != "root" {
		t.Errorf("root name = %q, want %q", name, "root")
	}
	if got, ok := body.String("name"); !ok || got != "overworld" {
		t.Errorf("name = %v, ok=%v", got, ok)
	}
	if got, ok := body.Long("height"); !ok || got != 384 {
		t.Errorf("height = %v, ok=%v", got, ok)
	}
	if got, ok := body.Long("min_y"); !ok || got != -64 {
		t.Errorf("min_y = %v, ok=%v", got, ok)
	}
	if got, ok := body.LongArray("heights"); !ok || len(got) != 3 || got[1] != 2 {
		t.Errorf("heights = %v, ok=%v", got, ok)
	}
	nested, ok := body.Compound("nested")
	if !ok {
		t.Fatal("expected nested compound")
	}
	if v, ok := nested["flag"].(int8); !ok || v != 1 {
		t.Errorf("nested.flag = %v, ok=%v", v, ok)
	}
}
