package world

import "testing"

func TestPalettedContainerRoundTrip(t *testing.T) {
	p := NewBlockPalette()
	want := make([]int32, 16*16*16)
	for i := range want {
		want[i] = int32(i % 37)
		p.Set(i, want[i])
	}
	for i, v := range want {
		if got := p.Get(i); got != v {
			t.Fatalf("index %d: got %d, want %d", i, got, v)
		}
	}
}

func TestPalettedContainerSwitchesToDirect(t *testing.T) {
	p := NewBlockPalette()
	for i := 0; i < 16*16*16; i++ {
		p.Set(i, int32(i)) // forces far more than 256 distinct values
	}
	if p.BitsPerEntry() < 9 {
		t.Fatalf("expected direct palette (bpc >= 9), got %d", p.BitsPerEntry())
	}
	if p.Palette() != nil {
		t.Fatalf("expected no indirect palette once direct, got %v", p.Palette())
	}
	for i := 0; i < 16*16*16; i++ {
		if got := p.Get(i); got != int32(i) {
			t.Fatalf("index %d: got %d, want %d", i, got, i)
		}
	}
}

func TestWordCountMatchesPaddedLayout(t *testing.T) {
	cases := []struct {
		cellCount, bpc, want int
	}{
		{4096, 4, 256},
		{4096, 5, 342}, // 64/5=12 entries/word -> ceil(4096/12)=342
		{64, 1, 1},
		{64, 2, 2},
	}
	for _, c := range cases {
		if got := WordCount(c.cellCount, c.bpc); got != c.want {
			t.Errorf("WordCount(%d,%d) = %d, want %d", c.cellCount, c.bpc, got, c.want)
		}
	}
}

func TestColumnHeightmapIncremental(t *testing.T) {
	predicates := map[HeightmapKind]IsOpaquePredicate{
		HeightmapMotionBlocking: func(state int32) bool { return state != 0 },
	}
	col := NewColumn(ChunkPos{X: 0, Z: 0}, -64, 384, predicates)
	isAir := func(state int32) bool { return state == 0 }

	col.SetBlockAt(0, 0, 0, 1, isAir)
	if got := col.Heightmap(HeightmapMotionBlocking, 0, 0); got != 1 {
		t.Fatalf("after placing at y=0: got height %d, want 1", got)
	}

	col.SetBlockAt(0, 10, 0, 1, isAir)
	if got := col.Heightmap(HeightmapMotionBlocking, 0, 0); got != 11 {
		t.Fatalf("after placing at y=10: got height %d, want 11", got)
	}

	col.SetBlockAt(0, 10, 0, 0, isAir)
	if got := col.Heightmap(HeightmapMotionBlocking, 0, 0); got != 1 {
		t.Fatalf("after removing y=10 block: got height %d, want 1 (rescan)", got)
	}
}

func TestDeriveFluidStateWaterlogged(t *testing.T) {
	fs := DeriveFluidState(BlockStateInfo{Waterlogged: true})
	if fs.Kind != FluidWater || fs.Amount != 0 {
		t.Errorf("waterlogged block should report full water, got %+v", fs)
	}
	if fs.Legacy() != 8 {
		t.Errorf("legacy amount for full water should be 8, got %d", fs.Legacy())
	}
}

func TestDeriveFluidStateFluidBlock(t *testing.T) {
	fs := DeriveFluidState(BlockStateInfo{IsFluid: true, FluidKind: FluidLava, Level: 3, FluidFalling: true})
	if fs.Kind != FluidLava || fs.Amount != 3 || !fs.Falling {
		t.Errorf("unexpected derived state: %+v", fs)
	}
}
