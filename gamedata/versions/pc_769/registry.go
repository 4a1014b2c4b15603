// Package pc_769 registers the gamedata.GameData for protocol version 769
// (Java Edition 1.21.4). The full table is generated by cmd/codegen from
// cmd/dmd's minecraft-data checkout; this file seeds the entries the core's
// own tests and examples exercise directly, as a checked-in fallback for
// environments that haven't run the generator.
package pc_769

import "github.com/OCharnyshevich/gocraft-bot/gamedata"

const VersionName = "1.21.4"

func init() {
	gamedata.Register(VersionName, New)
}

func New() *gamedata.GameData {
	gd := &gamedata.GameData{
		Version:  VersionName,
		Blocks:   gamedata.NewTable[gamedata.Block](),
		Items:    gamedata.NewTable[gamedata.Item](),
		Entities: gamedata.NewTable[gamedata.Entity](),
		Biomes:   gamedata.NewTable[gamedata.Biome](),
	}

	hardness := func(v float64) *float64 { return &v }

	blocks := []gamedata.Block{
		{ID: 0, Name: "air", DisplayName: "Air", Transparent: true, Hardness: hardness(0)},
		{ID: 1, Name: "stone", DisplayName: "Stone", Material: "rock", Hardness: hardness(1.5)},
		{ID: 9, Name: "water", DisplayName: "Water", Material: "water", IsFluid: true, FluidLevel: 0, Hardness: hardness(100)},
		{ID: 11, Name: "lava", DisplayName: "Lava", Material: "lava", IsFluid: true, FluidLevel: 0, Hardness: hardness(100)},
		{ID: 10, Name: "dirt", DisplayName: "Dirt", Material: "dirt", Hardness: hardness(0.5)},
		{ID: 79, Name: "oak_leaves", DisplayName: "Oak Leaves", Material: "leaves", Transparent: true, Hardness: hardness(0.2)},
	}
	for _, b := range blocks {
		gd.Blocks.Insert(b.ID, b.Name, b)
	}

	items := []gamedata.Item{
		{ID: 1, Name: "stone", StackSize: 64},
		{ID: 780, Name: "diamond_pickaxe", StackSize: 1, MaxDamage: 1561, ToolTier: 4, AttackDamage: 3},
		{ID: 736, Name: "wooden_sword", StackSize: 1, MaxDamage: 59, AttackDamage: 4},
	}
	for _, it := range items {
		gd.Items.Insert(it.ID, it.Name, it)
	}

	entities := []gamedata.Entity{
		{ID: 128, Name: "player", DisplayName: "Player", Type: "player", Width: 0.6, Height: 1.8},
		{ID: 158, Name: "zombie", DisplayName: "Zombie", Type: "mob", Width: 0.6, Height: 1.95},
		{ID: 68, Name: "item", DisplayName: "Item", Type: "object", Width: 0.25, Height: 0.25},
	}
	for _, e := range entities {
		gd.Entities.Insert(e.ID, e.Name, e)
	}

	biomes := []gamedata.Biome{
		{ID: 1, Name: "plains"},
		{ID: 21, Name: "ocean"},
	}
	for _, b := range biomes {
		gd.Biomes.Insert(b.ID, b.Name, b)
	}

	return gd
}
