package packet

import (
	"testing"

	"github.com/google/uuid"

	mcnet "github.com/OCharnyshevich/gocraft-bot/net"
)

func TestHelloRoundTrip(t *testing.T) {
	want := &Hello{Name: "steve", PlayerUUID: uuid.New()}
	data, err := mcnet.Marshal(want)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got := &Hello{}
	if err := mcnet.Unmarshal(data, got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Name != want.Name || got.PlayerUUID != want.PlayerUUID {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestPlayerPositionFlags(t *testing.T) {
	flags := int32(PosMaskRelX | PosMaskRelYaw)
	if !PosMaskRelX.Relative(flags) {
		t.Error("expected relative X")
	}
	if PosMaskRelY.Relative(flags) {
		t.Error("did not expect relative Y")
	}
	if !PosMaskRelYaw.Relative(flags) {
		t.Error("expected relative yaw")
	}
}

func TestCustomQueryAnswerAbsent(t *testing.T) {
	want := &CustomQueryAnswer{TransactionID: 7, Payload: nil}
	data, err := mcnet.Marshal(want)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got := &CustomQueryAnswer{}
	if err := mcnet.Unmarshal(data, got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Payload != nil {
		t.Errorf("expected nil payload, got %v", *got.Payload)
	}
}

func TestMovePlayerPosRotRoundTrip(t *testing.T) {
	want := &MovePlayerPosRot{X: 1.5, Y: 64, Z: -8.25, Yaw: 90, Pitch: -10, OnGround: true}
	data, err := mcnet.Marshal(want)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got := &MovePlayerPosRot{}
	if err := mcnet.Unmarshal(data, got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}
