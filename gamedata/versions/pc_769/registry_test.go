package pc_769_test

import (
	"testing"

	"github.com/OCharnyshevich/gocraft-bot/gamedata"
	_ "github.com/OCharnyshevich/gocraft-bot/gamedata/versions/pc_769"
)

func TestInitRegistration(t *testing.T) {
	gd, err := gamedata.Load("1.21.4")
	if err != nil {
		t.Fatalf("1.21.4 should be registered via init(): %v", err)
	}
	stone, ok := gd.Blocks.ByID(1)
	if !ok || stone.Name != "stone" {
		t.Fatalf("expected block 1 to be stone, got %+v ok=%v", stone, ok)
	}
}

func TestBlocksByName(t *testing.T) {
	gd, err := gamedata.Load("1.21.4")
	if err != nil {
		t.Fatal(err)
	}
	water, ok := gd.Blocks.ByName("water")
	if !ok {
		t.Fatal("expected water block")
	}
	if !water.IsFluid {
		t.Error("expected water to be marked as a fluid block")
	}
}

func TestUnknownVersion(t *testing.T) {
	if _, err := gamedata.Load("nonexistent"); err == nil {
		t.Fatal("expected error for unregistered version")
	}
}
