package net

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
)

type testPacket struct {
	ID       int32   `mc:"-"`
	Name     string  `mc:"string"`
	Count    int32   `mc:"varint"`
	Flags    uint8   `mc:"u8"`
	Height   float64 `mc:"f64"`
	Nickname *string `mc:"option:string"`
}

func (p *testPacket) PacketID() int32 { return p.ID }

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	nick := "bot"
	want := &testPacket{
		ID:       0x42,
		Name:     "steve",
		Count:    300,
		Flags:    0x07,
		Height:   1.8,
		Nickname: &nick,
	}

	data, err := Marshal(want)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	got := &testPacket{}
	if err := Unmarshal(data, got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if got.Name != want.Name || got.Count != want.Count || got.Flags != want.Flags || got.Height != want.Height {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
	if got.Nickname == nil || *got.Nickname != *want.Nickname {
		t.Errorf("option field mismatch: got %v, want %v", got.Nickname, want.Nickname)
	}
}

func TestMarshalUnmarshalOptionAbsent(t *testing.T) {
	want := &testPacket{Name: "x", Nickname: nil}
	data, err := Marshal(want)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got := &testPacket{}
	if err := Unmarshal(data, got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Nickname != nil {
		t.Errorf("expected nil Nickname, got %v", *got.Nickname)
	}
}

type uuidPacket struct {
	ID uuid.UUID `mc:"uuid"`
}

func (uuidPacket) PacketID() int32 { return 0 }

func TestMarshalUUID(t *testing.T) {
	want := uuidPacket{ID: uuid.New()}
	data, err := Marshal(want)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got uuidPacket
	if err := Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.ID != want.ID {
		t.Errorf("UUID mismatch: got %s, want %s", got.ID, want.ID)
	}
}

func TestReadStringLengthTooLong(t *testing.T) {
	var buf bytes.Buffer
	if _, err := WriteVarInt(&buf, 1000); err != nil {
		t.Fatalf("WriteVarInt: %v", err)
	}
	buf.Write(make([]byte, 1000))
	if _, err := ReadString(&buf, 100); err == nil {
		t.Fatal("expected ErrStringTooLong")
	}
}
